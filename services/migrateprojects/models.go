package migrateprojects

import "time"

// MigrateProject groups the discovery, assessment and migration data of one
// migration effort.
type MigrateProject struct {
	ID         *string                   `json:"id,omitempty"`
	Name       *string                   `json:"name,omitempty"`
	Type       *string                   `json:"type,omitempty"`
	ETag       *string                   `json:"eTag,omitempty"`
	Location   *string                   `json:"location,omitempty"`
	Tags       map[string]string         `json:"tags,omitempty"`
	Properties *MigrateProjectProperties `json:"properties,omitempty"`
}

// MigrateProjectProperties are the properties of a project.
type MigrateProjectProperties struct {
	RegisteredTools          []Tool                    `json:"registeredTools,omitempty"`
	Summary                  map[string]ProjectSummary `json:"summary,omitempty"`
	LastSummaryRefreshedTime *time.Time                `json:"lastSummaryRefreshedTime,omitempty"`
	RefreshSummaryState      *RefreshSummaryState      `json:"refreshSummaryState,omitempty"`
	ProvisioningState        *ProvisioningState        `json:"provisioningState,omitempty"`
}

// ProjectSummary is the per-goal summary of a project, keyed by goal. The
// counters are only set when InstanceType is Servers.
type ProjectSummary struct {
	InstanceType             *InstanceType        `json:"instanceType,omitempty"`
	RefreshSummaryState      *RefreshSummaryState `json:"refreshSummaryState,omitempty"`
	LastSummaryRefreshedTime *time.Time           `json:"lastSummaryRefreshedTime,omitempty"`
	ExtendedSummary          map[string]string    `json:"extendedSummary,omitempty"`

	DiscoveredCount   *int32 `json:"discoveredCount,omitempty"`
	AssessedCount     *int32 `json:"assessedCount,omitempty"`
	ReplicatingCount  *int32 `json:"replicatingCount,omitempty"`
	TestMigratedCount *int32 `json:"testMigratedCount,omitempty"`
	MigratedCount     *int32 `json:"migratedCount,omitempty"`
}

// RegisterToolInput names the tool to register.
type RegisterToolInput struct {
	Tool *Tool `json:"tool,omitempty"`
}

// RegistrationResult reports whether the tool is now registered.
type RegistrationResult struct {
	IsRegistered *bool `json:"isRegistered,omitempty"`
}

// RefreshSummaryInput names the goal whose summary is refreshed.
type RefreshSummaryInput struct {
	Goal *Goal `json:"goal,omitempty"`
}

// RefreshSummaryResult reports whether the summary was refreshed.
type RefreshSummaryResult struct {
	IsRefreshed *bool `json:"isRefreshed,omitempty"`
}

// Solution is a tool's view of a project.
type Solution struct {
	ID         *string             `json:"id,omitempty"`
	Name       *string             `json:"name,omitempty"`
	Type       *string             `json:"type,omitempty"`
	Etag       *string             `json:"etag,omitempty"`
	Properties *SolutionProperties `json:"properties,omitempty"`
}

// SolutionProperties are the properties of a solution.
type SolutionProperties struct {
	Tool         *Tool            `json:"tool,omitempty"`
	Purpose      *Purpose         `json:"purpose,omitempty"`
	Goal         *Goal            `json:"goal,omitempty"`
	Status       *SolutionStatus  `json:"status,omitempty"`
	CleanupState *CleanupState    `json:"cleanupState,omitempty"`
	Summary      *SolutionSummary `json:"summary,omitempty"`
	Details      *SolutionDetails `json:"details,omitempty"`
}

// SolutionSummary is the summary of a solution. Servers solutions fill the
// machine counters, Databases solutions the database ones.
type SolutionSummary struct {
	InstanceType *InstanceType `json:"instanceType,omitempty"`

	DiscoveredCount   *int32 `json:"discoveredCount,omitempty"`
	AssessedCount     *int32 `json:"assessedCount,omitempty"`
	ReplicatingCount  *int32 `json:"replicatingCount,omitempty"`
	TestMigratedCount *int32 `json:"testMigratedCount,omitempty"`
	MigratedCount     *int32 `json:"migratedCount,omitempty"`

	DatabasesAssessedCount         *int32 `json:"databasesAssessedCount,omitempty"`
	DatabaseInstancesAssessedCount *int32 `json:"databaseInstancesAssessedCount,omitempty"`
	MigrationReadyCount            *int32 `json:"migrationReadyCount,omitempty"`
}

// SolutionDetails are tool-specific counters.
type SolutionDetails struct {
	GroupCount      *int32            `json:"groupCount,omitempty"`
	AssessmentCount *int32            `json:"assessmentCount,omitempty"`
	ExtendedDetails map[string]string `json:"extendedDetails,omitempty"`
}

// SolutionsCollection is one page of solutions.
type SolutionsCollection struct {
	Value    []Solution `json:"value,omitempty"`
	NextLink *string    `json:"nextLink,omitempty"`
}

// SolutionConfig carries the upload location of a solution.
type SolutionConfig struct {
	PublisherSasURI *string `json:"publisherSasUri,omitempty"`
}

// Machine is a discovered server.
type Machine struct {
	ID         *string            `json:"id,omitempty"`
	Name       *string            `json:"name,omitempty"`
	Type       *string            `json:"type,omitempty"`
	Properties *MachineProperties `json:"properties,omitempty"`
}

// MachineProperties aggregate what each tool reported about a machine.
type MachineProperties struct {
	DiscoveryData   []DiscoveryDetails  `json:"discoveryData,omitempty"`
	AssessmentData  []AssessmentDetails `json:"assessmentData,omitempty"`
	MigrationData   []MigrationDetails  `json:"migrationData,omitempty"`
	LastUpdatedTime *time.Time          `json:"lastUpdatedTime,omitempty"`
}

// ReportedMachine holds the fields every tool report about a machine carries.
type ReportedMachine struct {
	EnqueueTime      *string           `json:"enqueueTime,omitempty"`
	SolutionName     *string           `json:"solutionName,omitempty"`
	MachineID        *string           `json:"machineId,omitempty"`
	MachineManagerID *string           `json:"machineManagerId,omitempty"`
	FabricType       *string           `json:"fabricType,omitempty"`
	LastUpdatedTime  *time.Time        `json:"lastUpdatedTime,omitempty"`
	MachineName      *string           `json:"machineName,omitempty"`
	IPAddresses      []string          `json:"ipAddresses,omitempty"`
	Fqdn             *string           `json:"fqdn,omitempty"`
	BiosID           *string           `json:"biosId,omitempty"`
	MacAddresses     []string          `json:"macAddresses,omitempty"`
	ExtendedInfo     map[string]string `json:"extendedInfo,omitempty"`
}

// DiscoveryDetails is a discovery tool's report.
type DiscoveryDetails struct {
	ReportedMachine

	OSType    *string `json:"osType,omitempty"`
	OSName    *string `json:"osName,omitempty"`
	OSVersion *string `json:"osVersion,omitempty"`
}

// AssessmentDetails is an assessment tool's report.
type AssessmentDetails struct {
	ReportedMachine

	AssessmentID      *string           `json:"assessmentId,omitempty"`
	TargetVMSize      *string           `json:"targetVMSize,omitempty"`
	TargetVMLocation  *string           `json:"targetVMLocation,omitempty"`
	TargetStorageType map[string]string `json:"targetStorageType,omitempty"`
}

// MigrationDetails is a migration tool's report.
type MigrationDetails struct {
	ReportedMachine

	MigrationPhase                *string `json:"migrationPhase,omitempty"`
	MigrationTested               *bool   `json:"migrationTested,omitempty"`
	ReplicationProgressPercentage *int32  `json:"replicationProgressPercentage,omitempty"`
	TargetVMArmID                 *string `json:"targetVMArmId,omitempty"`
}

// MachineCollection is one page of machines.
type MachineCollection struct {
	Value    []Machine `json:"value,omitempty"`
	NextLink *string   `json:"nextLink,omitempty"`
}

// Database is a discovered database.
type Database struct {
	ID         *string             `json:"id,omitempty"`
	Name       *string             `json:"name,omitempty"`
	Type       *string             `json:"type,omitempty"`
	Properties *DatabaseProperties `json:"properties,omitempty"`
}

// DatabaseProperties aggregate the assessments of a database.
type DatabaseProperties struct {
	AssessmentData  []DatabaseAssessmentDetails `json:"assessmentData,omitempty"`
	LastUpdatedTime *time.Time                  `json:"lastUpdatedTime,omitempty"`
}

// DatabaseAssessmentDetails is one assessment of a database.
type DatabaseAssessmentDetails struct {
	AssessmentID           *string           `json:"assessmentId,omitempty"`
	MigrationBlockersCount *int32            `json:"migrationBlockersCount,omitempty"`
	BreakingChangesCount   *int32            `json:"breakingChangesCount,omitempty"`
	IsReadyForMigration    *bool             `json:"isReadyForMigration,omitempty"`
	AssessmentTargetType   *string           `json:"assessmentTargetType,omitempty"`
	LastAssessedTime       *time.Time        `json:"lastAssessedTime,omitempty"`
	CompatibilityLevel     *string           `json:"compatibilityLevel,omitempty"`
	DatabaseSizeInMB       *string           `json:"databaseSizeInMB,omitempty"`
	LastUpdatedTime        *time.Time        `json:"lastUpdatedTime,omitempty"`
	EnqueueTime            *string           `json:"enqueueTime,omitempty"`
	SolutionName           *string           `json:"solutionName,omitempty"`
	InstanceID             *string           `json:"instanceId,omitempty"`
	DatabaseName           *string           `json:"databaseName,omitempty"`
	ExtendedInfo           map[string]string `json:"extendedInfo,omitempty"`
}

// DatabaseCollection is one page of databases.
type DatabaseCollection struct {
	Value    []Database `json:"value,omitempty"`
	NextLink *string    `json:"nextLink,omitempty"`
}

// DatabaseInstance is a discovered database server instance.
type DatabaseInstance struct {
	ID         *string                     `json:"id,omitempty"`
	Name       *string                     `json:"name,omitempty"`
	Type       *string                     `json:"type,omitempty"`
	Properties *DatabaseInstanceProperties `json:"properties,omitempty"`
}

// DatabaseInstanceProperties aggregate what each tool reported about an instance.
type DatabaseInstanceProperties struct {
	DiscoveryData   []DatabaseInstanceDiscoveryDetails `json:"discoveryData,omitempty"`
	Summary         map[string]DatabaseInstanceSummary `json:"summary,omitempty"`
	LastUpdatedTime *time.Time                         `json:"lastUpdatedTime,omitempty"`
}

// DatabaseInstanceDiscoveryDetails is a discovery tool's report on an instance.
type DatabaseInstanceDiscoveryDetails struct {
	LastUpdatedTime *time.Time        `json:"lastUpdatedTime,omitempty"`
	InstanceID      *string           `json:"instanceId,omitempty"`
	EnqueueTime     *string           `json:"enqueueTime,omitempty"`
	SolutionName    *string           `json:"solutionName,omitempty"`
	InstanceName    *string           `json:"instanceName,omitempty"`
	InstanceVersion *string           `json:"instanceVersion,omitempty"`
	InstanceType    *string           `json:"instanceType,omitempty"`
	HostName        *string           `json:"hostName,omitempty"`
	IPAddress       *string           `json:"ipAddress,omitempty"`
	PortNumber      *int32            `json:"portNumber,omitempty"`
	ExtendedInfo    map[string]string `json:"extendedInfo,omitempty"`
}

// DatabaseInstanceSummary counts the assessed databases of an instance.
type DatabaseInstanceSummary struct {
	DatabasesAssessedCount *int32 `json:"databasesAssessedCount,omitempty"`
	MigrationReadyCount    *int32 `json:"migrationReadyCount,omitempty"`
}

// DatabaseInstanceCollection is one page of database instances.
type DatabaseInstanceCollection struct {
	Value    []DatabaseInstance `json:"value,omitempty"`
	NextLink *string            `json:"nextLink,omitempty"`
}

// MigrateEvent is an error reported by a tool. InstanceType selects the
// subject: Machines sets Machine, Databases sets Database and
// DatabaseInstanceID.
type MigrateEvent struct {
	ID         *string                 `json:"id,omitempty"`
	Name       *string                 `json:"name,omitempty"`
	Type       *string                 `json:"type,omitempty"`
	Properties *MigrateEventProperties `json:"properties,omitempty"`
}

// MigrateEventProperties are the properties of an event.
type MigrateEventProperties struct {
	InstanceType    *InstanceType `json:"instanceType,omitempty"`
	ErrorCode       *string       `json:"errorCode,omitempty"`
	ErrorMessage    *string       `json:"errorMessage,omitempty"`
	Recommendation  *string       `json:"recommendation,omitempty"`
	PossibleCauses  *string       `json:"possibleCauses,omitempty"`
	Solution        *string       `json:"solution,omitempty"`
	ClientRequestID *string       `json:"clientRequestId,omitempty"`

	Machine            *string `json:"machine,omitempty"`
	Database           *string `json:"database,omitempty"`
	DatabaseInstanceID *string `json:"databaseInstanceId,omitempty"`
}

// EventCollection is one page of events.
type EventCollection struct {
	Value    []MigrateEvent `json:"value,omitempty"`
	NextLink *string        `json:"nextLink,omitempty"`
}
