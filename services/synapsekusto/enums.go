package synapsekusto

// SkuName is the compute family of a Kusto pool.
type SkuName string

const (
	SkuNameStandardDS13V2Plus1TBPS  SkuName = "Standard_DS13_v2+1TB_PS"
	SkuNameStandardDS13V2Plus2TBPS  SkuName = "Standard_DS13_v2+2TB_PS"
	SkuNameStandardDS14V2Plus3TBPS  SkuName = "Standard_DS14_v2+3TB_PS"
	SkuNameStandardDS14V2Plus4TBPS  SkuName = "Standard_DS14_v2+4TB_PS"
	SkuNameStandardD13V2            SkuName = "Standard_D13_v2"
	SkuNameStandardD14V2            SkuName = "Standard_D14_v2"
	SkuNameStandardL8s              SkuName = "Standard_L8s"
	SkuNameStandardL16s             SkuName = "Standard_L16s"
	SkuNameStandardL8sV2            SkuName = "Standard_L8s_v2"
	SkuNameStandardL16sV2           SkuName = "Standard_L16s_v2"
	SkuNameStandardD11V2            SkuName = "Standard_D11_v2"
	SkuNameStandardD12V2            SkuName = "Standard_D12_v2"
	SkuNameStandardL4s              SkuName = "Standard_L4s"
	SkuNameDevNoSLAStandardD11V2    SkuName = "Dev(No SLA)_Standard_D11_v2"
	SkuNameStandardE64iV3           SkuName = "Standard_E64i_v3"
	SkuNameStandardE80idsV4         SkuName = "Standard_E80ids_v4"
	SkuNameStandardE2aV4            SkuName = "Standard_E2a_v4"
	SkuNameStandardE4aV4            SkuName = "Standard_E4a_v4"
	SkuNameStandardE8aV4            SkuName = "Standard_E8a_v4"
	SkuNameStandardE16aV4           SkuName = "Standard_E16a_v4"
	SkuNameStandardE8asV4Plus1TBPS  SkuName = "Standard_E8as_v4+1TB_PS"
	SkuNameStandardE8asV4Plus2TBPS  SkuName = "Standard_E8as_v4+2TB_PS"
	SkuNameStandardE16asV4Plus3TBPS SkuName = "Standard_E16as_v4+3TB_PS"
	SkuNameStandardE16asV4Plus4TBPS SkuName = "Standard_E16as_v4+4TB_PS"
	SkuNameDevNoSLAStandardE2aV4    SkuName = "Dev(No SLA)_Standard_E2a_v4"
	SkuNameComputeOptimized         SkuName = "Compute optimized"
	SkuNameStorageOptimized         SkuName = "Storage optimized"
)

// PossibleSkuNameValues returns the known values for SkuName.
func PossibleSkuNameValues() []SkuName {
	return []SkuName{
		SkuNameStandardDS13V2Plus1TBPS,
		SkuNameStandardDS13V2Plus2TBPS,
		SkuNameStandardDS14V2Plus3TBPS,
		SkuNameStandardDS14V2Plus4TBPS,
		SkuNameStandardD13V2,
		SkuNameStandardD14V2,
		SkuNameStandardL8s,
		SkuNameStandardL16s,
		SkuNameStandardL8sV2,
		SkuNameStandardL16sV2,
		SkuNameStandardD11V2,
		SkuNameStandardD12V2,
		SkuNameStandardL4s,
		SkuNameDevNoSLAStandardD11V2,
		SkuNameStandardE64iV3,
		SkuNameStandardE80idsV4,
		SkuNameStandardE2aV4,
		SkuNameStandardE4aV4,
		SkuNameStandardE8aV4,
		SkuNameStandardE16aV4,
		SkuNameStandardE8asV4Plus1TBPS,
		SkuNameStandardE8asV4Plus2TBPS,
		SkuNameStandardE16asV4Plus3TBPS,
		SkuNameStandardE16asV4Plus4TBPS,
		SkuNameDevNoSLAStandardE2aV4,
		SkuNameComputeOptimized,
		SkuNameStorageOptimized,
	}
}

// SkuSize is the size of a Kusto pool SKU.
type SkuSize string

const (
	SkuSizeExtraSmall SkuSize = "Extra small"
	SkuSizeSmall      SkuSize = "Small"
	SkuSizeMedium     SkuSize = "Medium"
	SkuSizeLarge      SkuSize = "Large"
)

// PossibleSkuSizeValues returns the known values for SkuSize.
func PossibleSkuSizeValues() []SkuSize {
	return []SkuSize{SkuSizeExtraSmall, SkuSizeSmall, SkuSizeMedium, SkuSizeLarge}
}

// State is the runtime state of a Kusto pool.
type State string

const (
	StateCreating    State = "Creating"
	StateUnavailable State = "Unavailable"
	StateRunning     State = "Running"
	StateDeleting    State = "Deleting"
	StateDeleted     State = "Deleted"
	StateStopping    State = "Stopping"
	StateStopped     State = "Stopped"
	StateStarting    State = "Starting"
	StateUpdating    State = "Updating"
)

// PossibleStateValues returns the known values for State.
func PossibleStateValues() []State {
	return []State{
		StateCreating,
		StateUnavailable,
		StateRunning,
		StateDeleting,
		StateDeleted,
		StateStopping,
		StateStopped,
		StateStarting,
		StateUpdating,
	}
}

// ResourceProvisioningState is the provisioning state shared by every Kusto pool resource.
type ResourceProvisioningState string

const (
	ResourceProvisioningStateRunning   ResourceProvisioningState = "Running"
	ResourceProvisioningStateCreating  ResourceProvisioningState = "Creating"
	ResourceProvisioningStateDeleting  ResourceProvisioningState = "Deleting"
	ResourceProvisioningStateSucceeded ResourceProvisioningState = "Succeeded"
	ResourceProvisioningStateFailed    ResourceProvisioningState = "Failed"
	ResourceProvisioningStateMoving    ResourceProvisioningState = "Moving"
	ResourceProvisioningStateCanceled  ResourceProvisioningState = "Canceled"
)

// PossibleResourceProvisioningStateValues returns the known values for ResourceProvisioningState.
func PossibleResourceProvisioningStateValues() []ResourceProvisioningState {
	return []ResourceProvisioningState{
		ResourceProvisioningStateRunning,
		ResourceProvisioningStateCreating,
		ResourceProvisioningStateDeleting,
		ResourceProvisioningStateSucceeded,
		ResourceProvisioningStateFailed,
		ResourceProvisioningStateMoving,
		ResourceProvisioningStateCanceled,
	}
}

// EngineType is the Kusto engine generation.
type EngineType string

const (
	EngineTypeV2 EngineType = "V2"
	EngineTypeV3 EngineType = "V3"
)

// PossibleEngineTypeValues returns the known values for EngineType.
func PossibleEngineTypeValues() []EngineType {
	return []EngineType{EngineTypeV2, EngineTypeV3}
}

// DatabaseKind discriminates database variants.
type DatabaseKind string

const (
	DatabaseKindReadWrite         DatabaseKind = "ReadWrite"
	DatabaseKindReadOnlyFollowing DatabaseKind = "ReadOnlyFollowing"
)

// PossibleDatabaseKindValues returns the known values for DatabaseKind.
func PossibleDatabaseKindValues() []DatabaseKind {
	return []DatabaseKind{DatabaseKindReadWrite, DatabaseKindReadOnlyFollowing}
}

// DataConnectionKind discriminates data connection variants.
type DataConnectionKind string

const (
	DataConnectionKindEventHub  DataConnectionKind = "EventHub"
	DataConnectionKindEventGrid DataConnectionKind = "EventGrid"
	DataConnectionKindIotHub    DataConnectionKind = "IotHub"
)

// PossibleDataConnectionKindValues returns the known values for DataConnectionKind.
func PossibleDataConnectionKindValues() []DataConnectionKind {
	return []DataConnectionKind{DataConnectionKindEventHub, DataConnectionKindEventGrid, DataConnectionKindIotHub}
}

// DataFormat is the ingestion format of a data connection.
// Event Hub, Event Grid and IoT Hub connections share the same set.
type DataFormat string

const (
	DataFormatMultiJSON  DataFormat = "MULTIJSON"
	DataFormatJSON       DataFormat = "JSON"
	DataFormatCSV        DataFormat = "CSV"
	DataFormatTSV        DataFormat = "TSV"
	DataFormatSCSV       DataFormat = "SCSV"
	DataFormatSOHSV      DataFormat = "SOHSV"
	DataFormatPSV        DataFormat = "PSV"
	DataFormatTXT        DataFormat = "TXT"
	DataFormatRaw        DataFormat = "RAW"
	DataFormatSingleJSON DataFormat = "SINGLEJSON"
	DataFormatAvro       DataFormat = "AVRO"
	DataFormatTSVE       DataFormat = "TSVE"
	DataFormatParquet    DataFormat = "PARQUET"
	DataFormatORC        DataFormat = "ORC"
	DataFormatApacheAvro DataFormat = "APACHEAVRO"
	DataFormatW3CLogFile DataFormat = "W3CLOGFILE"
)

// PossibleDataFormatValues returns the known values for DataFormat.
func PossibleDataFormatValues() []DataFormat {
	return []DataFormat{
		DataFormatMultiJSON,
		DataFormatJSON,
		DataFormatCSV,
		DataFormatTSV,
		DataFormatSCSV,
		DataFormatSOHSV,
		DataFormatPSV,
		DataFormatTXT,
		DataFormatRaw,
		DataFormatSingleJSON,
		DataFormatAvro,
		DataFormatTSVE,
		DataFormatParquet,
		DataFormatORC,
		DataFormatApacheAvro,
		DataFormatW3CLogFile,
	}
}

// Compression is the compression of event hub messages.
type Compression string

const (
	CompressionNone Compression = "None"
	CompressionGZip Compression = "GZip"
)

// PossibleCompressionValues returns the known values for Compression.
func PossibleCompressionValues() []Compression {
	return []Compression{CompressionNone, CompressionGZip}
}

// BlobStorageEventType is the blob event that triggers Event Grid ingestion.
type BlobStorageEventType string

const (
	BlobStorageEventTypeBlobCreated BlobStorageEventType = "Microsoft.Storage.BlobCreated"
	BlobStorageEventTypeBlobRenamed BlobStorageEventType = "Microsoft.Storage.BlobRenamed"
)

// PossibleBlobStorageEventTypeValues returns the known values for BlobStorageEventType.
func PossibleBlobStorageEventTypeValues() []BlobStorageEventType {
	return []BlobStorageEventType{BlobStorageEventTypeBlobCreated, BlobStorageEventTypeBlobRenamed}
}

// ClusterPrincipalRole is a pool-level principal role.
type ClusterPrincipalRole string

const (
	ClusterPrincipalRoleAllDatabasesAdmin  ClusterPrincipalRole = "AllDatabasesAdmin"
	ClusterPrincipalRoleAllDatabasesViewer ClusterPrincipalRole = "AllDatabasesViewer"
)

// PossibleClusterPrincipalRoleValues returns the known values for ClusterPrincipalRole.
func PossibleClusterPrincipalRoleValues() []ClusterPrincipalRole {
	return []ClusterPrincipalRole{ClusterPrincipalRoleAllDatabasesAdmin, ClusterPrincipalRoleAllDatabasesViewer}
}

// DatabasePrincipalRole is a database-level principal role.
type DatabasePrincipalRole string

const (
	DatabasePrincipalRoleAdmin              DatabasePrincipalRole = "Admin"
	DatabasePrincipalRoleIngestor           DatabasePrincipalRole = "Ingestor"
	DatabasePrincipalRoleMonitor            DatabasePrincipalRole = "Monitor"
	DatabasePrincipalRoleUser               DatabasePrincipalRole = "User"
	DatabasePrincipalRoleUnrestrictedViewer DatabasePrincipalRole = "UnrestrictedViewer"
	DatabasePrincipalRoleViewer             DatabasePrincipalRole = "Viewer"
)

// PossibleDatabasePrincipalRoleValues returns the known values for DatabasePrincipalRole.
func PossibleDatabasePrincipalRoleValues() []DatabasePrincipalRole {
	return []DatabasePrincipalRole{
		DatabasePrincipalRoleAdmin,
		DatabasePrincipalRoleIngestor,
		DatabasePrincipalRoleMonitor,
		DatabasePrincipalRoleUser,
		DatabasePrincipalRoleUnrestrictedViewer,
		DatabasePrincipalRoleViewer,
	}
}

// PrincipalType is the kind of principal in an assignment.
type PrincipalType string

const (
	PrincipalTypeApp   PrincipalType = "App"
	PrincipalTypeGroup PrincipalType = "Group"
	PrincipalTypeUser  PrincipalType = "User"
)

// PossiblePrincipalTypeValues returns the known values for PrincipalType.
func PossiblePrincipalTypeValues() []PrincipalType {
	return []PrincipalType{PrincipalTypeApp, PrincipalTypeGroup, PrincipalTypeUser}
}

// CheckNameReason explains why a name is unavailable.
type CheckNameReason string

const (
	CheckNameReasonInvalid       CheckNameReason = "Invalid"
	CheckNameReasonAlreadyExists CheckNameReason = "AlreadyExists"
)

// PossibleCheckNameReasonValues returns the known values for CheckNameReason.
func PossibleCheckNameReasonValues() []CheckNameReason {
	return []CheckNameReason{CheckNameReasonInvalid, CheckNameReasonAlreadyExists}
}

// KustoPoolResourceType is the ARM type of a Kusto pool, used in name checks.
const KustoPoolResourceType = "Microsoft.Synapse/workspaces/kustoPools"
