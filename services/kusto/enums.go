package kusto

// ClusterState is the runtime state of a cluster.
type ClusterState string

const (
	ClusterStateCreating    ClusterState = "Creating"
	ClusterStateUnavailable ClusterState = "Unavailable"
	ClusterStateRunning     ClusterState = "Running"
	ClusterStateDeleting    ClusterState = "Deleting"
	ClusterStateDeleted     ClusterState = "Deleted"
	ClusterStateStopping    ClusterState = "Stopping"
	ClusterStateStopped     ClusterState = "Stopped"
	ClusterStateStarting    ClusterState = "Starting"
	ClusterStateUpdating    ClusterState = "Updating"
)

// PossibleClusterStateValues returns the known values for ClusterState.
func PossibleClusterStateValues() []ClusterState {
	return []ClusterState{
		ClusterStateCreating,
		ClusterStateUnavailable,
		ClusterStateRunning,
		ClusterStateDeleting,
		ClusterStateDeleted,
		ClusterStateStopping,
		ClusterStateStopped,
		ClusterStateStarting,
		ClusterStateUpdating,
	}
}

// ClusterProvisioningState is the provisioning state of clusters and databases.
type ClusterProvisioningState string

const (
	ClusterProvisioningStateRunning   ClusterProvisioningState = "Running"
	ClusterProvisioningStateCreating  ClusterProvisioningState = "Creating"
	ClusterProvisioningStateDeleting  ClusterProvisioningState = "Deleting"
	ClusterProvisioningStateSucceeded ClusterProvisioningState = "Succeeded"
	ClusterProvisioningStateFailed    ClusterProvisioningState = "Failed"
	ClusterProvisioningStateMoving    ClusterProvisioningState = "Moving"
)

// PossibleClusterProvisioningStateValues returns the known values for ClusterProvisioningState.
func PossibleClusterProvisioningStateValues() []ClusterProvisioningState {
	return []ClusterProvisioningState{
		ClusterProvisioningStateRunning,
		ClusterProvisioningStateCreating,
		ClusterProvisioningStateDeleting,
		ClusterProvisioningStateSucceeded,
		ClusterProvisioningStateFailed,
		ClusterProvisioningStateMoving,
	}
}

// AzureSkuName is the compute SKU of a cluster.
type AzureSkuName string

const (
	AzureSkuNameStandardDS13V21TBPS   AzureSkuName = "Standard_DS13_v2+1TB_PS"
	AzureSkuNameStandardDS13V22TBPS   AzureSkuName = "Standard_DS13_v2+2TB_PS"
	AzureSkuNameStandardDS14V23TBPS   AzureSkuName = "Standard_DS14_v2+3TB_PS"
	AzureSkuNameStandardDS14V24TBPS   AzureSkuName = "Standard_DS14_v2+4TB_PS"
	AzureSkuNameStandardD13V2         AzureSkuName = "Standard_D13_v2"
	AzureSkuNameStandardD14V2         AzureSkuName = "Standard_D14_v2"
	AzureSkuNameStandardL8s           AzureSkuName = "Standard_L8s"
	AzureSkuNameStandardL16s          AzureSkuName = "Standard_L16s"
	AzureSkuNameStandardD11V2         AzureSkuName = "Standard_D11_v2"
	AzureSkuNameStandardD12V2         AzureSkuName = "Standard_D12_v2"
	AzureSkuNameStandardL4s           AzureSkuName = "Standard_L4s"
	AzureSkuNameDevNoSLAStandardD11V2 AzureSkuName = "Dev(No SLA)_Standard_D11_v2"
)

// PossibleAzureSkuNameValues returns the known values for AzureSkuName.
func PossibleAzureSkuNameValues() []AzureSkuName {
	return []AzureSkuName{
		AzureSkuNameStandardDS13V21TBPS,
		AzureSkuNameStandardDS13V22TBPS,
		AzureSkuNameStandardDS14V23TBPS,
		AzureSkuNameStandardDS14V24TBPS,
		AzureSkuNameStandardD13V2,
		AzureSkuNameStandardD14V2,
		AzureSkuNameStandardL8s,
		AzureSkuNameStandardL16s,
		AzureSkuNameStandardD11V2,
		AzureSkuNameStandardD12V2,
		AzureSkuNameStandardL4s,
		AzureSkuNameDevNoSLAStandardD11V2,
	}
}

// AzureSkuTier is the SKU tier.
type AzureSkuTier string

const (
	AzureSkuTierBasic    AzureSkuTier = "Basic"
	AzureSkuTierStandard AzureSkuTier = "Standard"
)

// PossibleAzureSkuTierValues returns the known values for AzureSkuTier.
func PossibleAzureSkuTierValues() []AzureSkuTier {
	return []AzureSkuTier{AzureSkuTierBasic, AzureSkuTierStandard}
}

// AzureScaleType is how a SKU scales.
type AzureScaleType string

const (
	AzureScaleTypeAutomatic AzureScaleType = "automatic"
	AzureScaleTypeManual    AzureScaleType = "manual"
	AzureScaleTypeNone      AzureScaleType = "none"
)

// PossibleAzureScaleTypeValues returns the known values for AzureScaleType.
func PossibleAzureScaleTypeValues() []AzureScaleType {
	return []AzureScaleType{AzureScaleTypeAutomatic, AzureScaleTypeManual, AzureScaleTypeNone}
}

// IdentityType is the managed identity type of a cluster.
type IdentityType string

const (
	IdentityTypeNone           IdentityType = "None"
	IdentityTypeSystemAssigned IdentityType = "SystemAssigned"
)

// PossibleIdentityTypeValues returns the known values for IdentityType.
func PossibleIdentityTypeValues() []IdentityType {
	return []IdentityType{IdentityTypeNone, IdentityTypeSystemAssigned}
}

// DatabaseKind discriminates the database variants.
type DatabaseKind string

const (
	DatabaseKindReadWrite         DatabaseKind = "ReadWrite"
	DatabaseKindReadOnlyFollowing DatabaseKind = "ReadOnlyFollowing"
)

// PossibleDatabaseKindValues returns the known values for DatabaseKind.
func PossibleDatabaseKindValues() []DatabaseKind {
	return []DatabaseKind{DatabaseKindReadWrite, DatabaseKindReadOnlyFollowing}
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

// Resource types accepted by name availability checks.
const (
	ClusterResourceType  = "Microsoft.Kusto/clusters"
	DatabaseResourceType = "Microsoft.Kusto/clusters/databases"
)
