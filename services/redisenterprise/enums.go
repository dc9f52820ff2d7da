package redisenterprise

// SkuName is the Redis Enterprise cluster SKU.
type SkuName string

const (
	SkuNameEnterpriseE10        SkuName = "Enterprise_E10"
	SkuNameEnterpriseE20        SkuName = "Enterprise_E20"
	SkuNameEnterpriseE50        SkuName = "Enterprise_E50"
	SkuNameEnterpriseE100       SkuName = "Enterprise_E100"
	SkuNameEnterpriseFlashF300  SkuName = "EnterpriseFlash_F300"
	SkuNameEnterpriseFlashF700  SkuName = "EnterpriseFlash_F700"
	SkuNameEnterpriseFlashF1500 SkuName = "EnterpriseFlash_F1500"
)

// PossibleSkuNameValues returns the known values for SkuName.
func PossibleSkuNameValues() []SkuName {
	return []SkuName{
		SkuNameEnterpriseE10,
		SkuNameEnterpriseE20,
		SkuNameEnterpriseE50,
		SkuNameEnterpriseE100,
		SkuNameEnterpriseFlashF300,
		SkuNameEnterpriseFlashF700,
		SkuNameEnterpriseFlashF1500,
	}
}

// TLSVersion is the minimum TLS version clients must use.
type TLSVersion string

const (
	TLSVersionOne0 TLSVersion = "1.0"
	TLSVersionOne1 TLSVersion = "1.1"
	TLSVersionOne2 TLSVersion = "1.2"
)

// PossibleTLSVersionValues returns the known values for TLSVersion.
func PossibleTLSVersionValues() []TLSVersion {
	return []TLSVersion{TLSVersionOne0, TLSVersionOne1, TLSVersionOne2}
}

// ProvisioningState is the state of the last ARM operation on a resource.
type ProvisioningState string

const (
	ProvisioningStateSucceeded ProvisioningState = "Succeeded"
	ProvisioningStateFailed    ProvisioningState = "Failed"
	ProvisioningStateCanceled  ProvisioningState = "Canceled"
	ProvisioningStateCreating  ProvisioningState = "Creating"
	ProvisioningStateUpdating  ProvisioningState = "Updating"
	ProvisioningStateDeleting  ProvisioningState = "Deleting"
)

// PossibleProvisioningStateValues returns the known values for ProvisioningState.
func PossibleProvisioningStateValues() []ProvisioningState {
	return []ProvisioningState{
		ProvisioningStateSucceeded,
		ProvisioningStateFailed,
		ProvisioningStateCanceled,
		ProvisioningStateCreating,
		ProvisioningStateUpdating,
		ProvisioningStateDeleting,
	}
}

// ResourceState is the runtime state of a cluster or database.
type ResourceState string

const (
	ResourceStateRunning       ResourceState = "Running"
	ResourceStateCreating      ResourceState = "Creating"
	ResourceStateCreateFailed  ResourceState = "CreateFailed"
	ResourceStateUpdating      ResourceState = "Updating"
	ResourceStateUpdateFailed  ResourceState = "UpdateFailed"
	ResourceStateDeleting      ResourceState = "Deleting"
	ResourceStateDeleteFailed  ResourceState = "DeleteFailed"
	ResourceStateEnabling      ResourceState = "Enabling"
	ResourceStateEnableFailed  ResourceState = "EnableFailed"
	ResourceStateDisabling     ResourceState = "Disabling"
	ResourceStateDisableFailed ResourceState = "DisableFailed"
	ResourceStateDisabled      ResourceState = "Disabled"
)

// PossibleResourceStateValues returns the known values for ResourceState.
func PossibleResourceStateValues() []ResourceState {
	return []ResourceState{
		ResourceStateRunning,
		ResourceStateCreating,
		ResourceStateCreateFailed,
		ResourceStateUpdating,
		ResourceStateUpdateFailed,
		ResourceStateDeleting,
		ResourceStateDeleteFailed,
		ResourceStateEnabling,
		ResourceStateEnableFailed,
		ResourceStateDisabling,
		ResourceStateDisableFailed,
		ResourceStateDisabled,
	}
}

// Protocol is the client protocol of a database.
type Protocol string

const (
	ProtocolEncrypted Protocol = "Encrypted"
	ProtocolPlaintext Protocol = "Plaintext"
)

// PossibleProtocolValues returns the known values for Protocol.
func PossibleProtocolValues() []Protocol {
	return []Protocol{ProtocolEncrypted, ProtocolPlaintext}
}

// ClusteringPolicy is the clustering mode of a database.
type ClusteringPolicy string

const (
	ClusteringPolicyEnterpriseCluster ClusteringPolicy = "EnterpriseCluster"
	ClusteringPolicyOSSCluster        ClusteringPolicy = "OSSCluster"
)

// PossibleClusteringPolicyValues returns the known values for ClusteringPolicy.
func PossibleClusteringPolicyValues() []ClusteringPolicy {
	return []ClusteringPolicy{ClusteringPolicyEnterpriseCluster, ClusteringPolicyOSSCluster}
}

// EvictionPolicy is the Redis eviction policy.
type EvictionPolicy string

const (
	EvictionPolicyAllKeysLFU     EvictionPolicy = "AllKeysLFU"
	EvictionPolicyAllKeysLRU     EvictionPolicy = "AllKeysLRU"
	EvictionPolicyAllKeysRandom  EvictionPolicy = "AllKeysRandom"
	EvictionPolicyVolatileLRU    EvictionPolicy = "VolatileLRU"
	EvictionPolicyVolatileLFU    EvictionPolicy = "VolatileLFU"
	EvictionPolicyVolatileTTL    EvictionPolicy = "VolatileTTL"
	EvictionPolicyVolatileRandom EvictionPolicy = "VolatileRandom"
	EvictionPolicyNoEviction     EvictionPolicy = "NoEviction"
)

// PossibleEvictionPolicyValues returns the known values for EvictionPolicy.
func PossibleEvictionPolicyValues() []EvictionPolicy {
	return []EvictionPolicy{
		EvictionPolicyAllKeysLFU,
		EvictionPolicyAllKeysLRU,
		EvictionPolicyAllKeysRandom,
		EvictionPolicyVolatileLRU,
		EvictionPolicyVolatileLFU,
		EvictionPolicyVolatileTTL,
		EvictionPolicyVolatileRandom,
		EvictionPolicyNoEviction,
	}
}

// AofFrequency is how often the append-only file is written.
type AofFrequency string

const (
	AofFrequencyOneSecond AofFrequency = "1s"
	AofFrequencyAlways    AofFrequency = "always"
)

// PossibleAofFrequencyValues returns the known values for AofFrequency.
func PossibleAofFrequencyValues() []AofFrequency {
	return []AofFrequency{AofFrequencyOneSecond, AofFrequencyAlways}
}

// RdbFrequency is how often a snapshot is taken.
type RdbFrequency string

const (
	RdbFrequencyOneHour     RdbFrequency = "1h"
	RdbFrequencySixHours    RdbFrequency = "6h"
	RdbFrequencyTwelveHours RdbFrequency = "12h"
)

// PossibleRdbFrequencyValues returns the known values for RdbFrequency.
func PossibleRdbFrequencyValues() []RdbFrequency {
	return []RdbFrequency{RdbFrequencyOneHour, RdbFrequencySixHours, RdbFrequencyTwelveHours}
}

// AccessKeyType selects the key to regenerate.
type AccessKeyType string

const (
	AccessKeyTypePrimary   AccessKeyType = "Primary"
	AccessKeyTypeSecondary AccessKeyType = "Secondary"
)

// PossibleAccessKeyTypeValues returns the known values for AccessKeyType.
func PossibleAccessKeyTypeValues() []AccessKeyType {
	return []AccessKeyType{AccessKeyTypePrimary, AccessKeyTypeSecondary}
}

// PrivateEndpointServiceConnectionStatus is the approval state of a private endpoint connection.
type PrivateEndpointServiceConnectionStatus string

const (
	PrivateEndpointServiceConnectionStatusPending  PrivateEndpointServiceConnectionStatus = "Pending"
	PrivateEndpointServiceConnectionStatusApproved PrivateEndpointServiceConnectionStatus = "Approved"
	PrivateEndpointServiceConnectionStatusRejected PrivateEndpointServiceConnectionStatus = "Rejected"
)

// PossiblePrivateEndpointServiceConnectionStatusValues returns the known values for PrivateEndpointServiceConnectionStatus.
func PossiblePrivateEndpointServiceConnectionStatusValues() []PrivateEndpointServiceConnectionStatus {
	return []PrivateEndpointServiceConnectionStatus{
		PrivateEndpointServiceConnectionStatusPending,
		PrivateEndpointServiceConnectionStatusApproved,
		PrivateEndpointServiceConnectionStatusRejected,
	}
}

// PrivateEndpointConnectionProvisioningState is the provisioning state of a private endpoint connection.
type PrivateEndpointConnectionProvisioningState string

const (
	PrivateEndpointConnectionProvisioningStateSucceeded PrivateEndpointConnectionProvisioningState = "Succeeded"
	PrivateEndpointConnectionProvisioningStateCreating  PrivateEndpointConnectionProvisioningState = "Creating"
	PrivateEndpointConnectionProvisioningStateDeleting  PrivateEndpointConnectionProvisioningState = "Deleting"
	PrivateEndpointConnectionProvisioningStateFailed    PrivateEndpointConnectionProvisioningState = "Failed"
)

// PossiblePrivateEndpointConnectionProvisioningStateValues returns the known values for PrivateEndpointConnectionProvisioningState.
func PossiblePrivateEndpointConnectionProvisioningStateValues() []PrivateEndpointConnectionProvisioningState {
	return []PrivateEndpointConnectionProvisioningState{
		PrivateEndpointConnectionProvisioningStateSucceeded,
		PrivateEndpointConnectionProvisioningStateCreating,
		PrivateEndpointConnectionProvisioningStateDeleting,
		PrivateEndpointConnectionProvisioningStateFailed,
	}
}
