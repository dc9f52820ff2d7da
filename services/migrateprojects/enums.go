package migrateprojects

// Tool is a migration tool that can register with a project.
type Tool string

const (
	ToolServerDiscovery            Tool = "ServerDiscovery"
	ToolServerAssessment           Tool = "ServerAssessment"
	ToolServerMigration            Tool = "ServerMigration"
	ToolCloudamize                 Tool = "Cloudamize"
	ToolTurbonomic                 Tool = "Turbonomic"
	ToolZerto                      Tool = "Zerto"
	ToolCorentTech                 Tool = "CorentTech"
	ToolServerAssessmentV1         Tool = "ServerAssessmentV1"
	ToolServerMigrationReplication Tool = "ServerMigration_Replication"
	ToolCarbonite                  Tool = "Carbonite"
	ToolDataMigrationAssistant     Tool = "DataMigrationAssistant"
	ToolDatabaseMigrationService   Tool = "DatabaseMigrationService"
)

// PossibleToolValues returns the known values for Tool.
func PossibleToolValues() []Tool {
	return []Tool{
		ToolServerDiscovery,
		ToolServerAssessment,
		ToolServerMigration,
		ToolCloudamize,
		ToolTurbonomic,
		ToolZerto,
		ToolCorentTech,
		ToolServerAssessmentV1,
		ToolServerMigrationReplication,
		ToolCarbonite,
		ToolDataMigrationAssistant,
		ToolDatabaseMigrationService,
	}
}

// Purpose is the migration stage a solution serves.
type Purpose string

const (
	PurposeDiscovery  Purpose = "Discovery"
	PurposeAssessment Purpose = "Assessment"
	PurposeMigration  Purpose = "Migration"
)

// PossiblePurposeValues returns the known values for Purpose.
func PossiblePurposeValues() []Purpose {
	return []Purpose{
		PurposeDiscovery,
		PurposeAssessment,
		PurposeMigration,
	}
}

// Goal is the kind of workload a solution migrates.
type Goal string

const (
	GoalServers   Goal = "Servers"
	GoalDatabases Goal = "Databases"
)

// PossibleGoalValues returns the known values for Goal.
func PossibleGoalValues() []Goal {
	return []Goal{
		GoalServers,
		GoalDatabases,
	}
}

// SolutionStatus reports whether a solution is in use.
type SolutionStatus string

const (
	SolutionStatusInactive SolutionStatus = "Inactive"
	SolutionStatusActive   SolutionStatus = "Active"
)

// PossibleSolutionStatusValues returns the known values for SolutionStatus.
func PossibleSolutionStatusValues() []SolutionStatus {
	return []SolutionStatus{
		SolutionStatusInactive,
		SolutionStatusActive,
	}
}

// CleanupState is the progress of a solution data cleanup.
type CleanupState string

const (
	CleanupStateNone       CleanupState = "None"
	CleanupStateStarted    CleanupState = "Started"
	CleanupStateInProgress CleanupState = "InProgress"
	CleanupStateCompleted  CleanupState = "Completed"
	CleanupStateFailed     CleanupState = "Failed"
)

// PossibleCleanupStateValues returns the known values for CleanupState.
func PossibleCleanupStateValues() []CleanupState {
	return []CleanupState{
		CleanupStateNone,
		CleanupStateStarted,
		CleanupStateInProgress,
		CleanupStateCompleted,
		CleanupStateFailed,
	}
}

// RefreshSummaryState is the progress of a summary refresh.
type RefreshSummaryState string

const (
	RefreshSummaryStateStarted    RefreshSummaryState = "Started"
	RefreshSummaryStateInProgress RefreshSummaryState = "InProgress"
	RefreshSummaryStateCompleted  RefreshSummaryState = "Completed"
	RefreshSummaryStateFailed     RefreshSummaryState = "Failed"
)

// PossibleRefreshSummaryStateValues returns the known values for RefreshSummaryState.
func PossibleRefreshSummaryStateValues() []RefreshSummaryState {
	return []RefreshSummaryState{
		RefreshSummaryStateStarted,
		RefreshSummaryStateInProgress,
		RefreshSummaryStateCompleted,
		RefreshSummaryStateFailed,
	}
}

// ProvisioningState is the provisioning state of a project.
type ProvisioningState string

const (
	ProvisioningStateAccepted  ProvisioningState = "Accepted"
	ProvisioningStateCreating  ProvisioningState = "Creating"
	ProvisioningStateDeleting  ProvisioningState = "Deleting"
	ProvisioningStateFailed    ProvisioningState = "Failed"
	ProvisioningStateMoving    ProvisioningState = "Moving"
	ProvisioningStateSucceeded ProvisioningState = "Succeeded"
)

// PossibleProvisioningStateValues returns the known values for ProvisioningState.
func PossibleProvisioningStateValues() []ProvisioningState {
	return []ProvisioningState{
		ProvisioningStateAccepted,
		ProvisioningStateCreating,
		ProvisioningStateDeleting,
		ProvisioningStateFailed,
		ProvisioningStateMoving,
		ProvisioningStateSucceeded,
	}
}

// InstanceType discriminates summaries and events by workload.
type InstanceType string

const (
	InstanceTypeServers   InstanceType = "Servers"
	InstanceTypeDatabases InstanceType = "Databases"
	InstanceTypeMachines  InstanceType = "Machines"
)

// PossibleInstanceTypeValues returns the known values for InstanceType.
func PossibleInstanceTypeValues() []InstanceType {
	return []InstanceType{
		InstanceTypeServers,
		InstanceTypeDatabases,
		InstanceTypeMachines,
	}
}
