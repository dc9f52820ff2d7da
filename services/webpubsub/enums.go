package webpubsub

// ProvisioningState is the provisioning state of a Web PubSub resource.
type ProvisioningState string

const (
	ProvisioningStateUnknown   ProvisioningState = "Unknown"
	ProvisioningStateSucceeded ProvisioningState = "Succeeded"
	ProvisioningStateFailed    ProvisioningState = "Failed"
	ProvisioningStateCanceled  ProvisioningState = "Canceled"
	ProvisioningStateRunning   ProvisioningState = "Running"
	ProvisioningStateCreating  ProvisioningState = "Creating"
	ProvisioningStateUpdating  ProvisioningState = "Updating"
	ProvisioningStateDeleting  ProvisioningState = "Deleting"
	ProvisioningStateMoving    ProvisioningState = "Moving"
)

// PossibleProvisioningStateValues returns the known values for ProvisioningState.
func PossibleProvisioningStateValues() []ProvisioningState {
	return []ProvisioningState{
		ProvisioningStateUnknown,
		ProvisioningStateSucceeded,
		ProvisioningStateFailed,
		ProvisioningStateCanceled,
		ProvisioningStateRunning,
		ProvisioningStateCreating,
		ProvisioningStateUpdating,
		ProvisioningStateDeleting,
		ProvisioningStateMoving,
	}
}

// SkuTier is the pricing tier of a resource.
type SkuTier string

const (
	SkuTierFree     SkuTier = "Free"
	SkuTierBasic    SkuTier = "Basic"
	SkuTierStandard SkuTier = "Standard"
	SkuTierPremium  SkuTier = "Premium"
)

// PossibleSkuTierValues returns the known values for SkuTier.
func PossibleSkuTierValues() []SkuTier {
	return []SkuTier{
		SkuTierFree,
		SkuTierBasic,
		SkuTierStandard,
		SkuTierPremium,
	}
}

// ServiceKind selects the protocol family of a resource.
type ServiceKind string

const (
	ServiceKindWebPubSub ServiceKind = "WebPubSub"
	ServiceKindSocketIO  ServiceKind = "SocketIO"
)

// PossibleServiceKindValues returns the known values for ServiceKind.
func PossibleServiceKindValues() []ServiceKind {
	return []ServiceKind{
		ServiceKindWebPubSub,
		ServiceKindSocketIO,
	}
}

// KeyType names the access key to regenerate.
type KeyType string

const (
	KeyTypePrimary   KeyType = "Primary"
	KeyTypeSecondary KeyType = "Secondary"
	KeyTypeSalt      KeyType = "Salt"
)

// PossibleKeyTypeValues returns the known values for KeyType.
func PossibleKeyTypeValues() []KeyType {
	return []KeyType{
		KeyTypePrimary,
		KeyTypeSecondary,
		KeyTypeSalt,
	}
}

// ManagedIdentityType is the kind of managed identity assigned to a resource.
type ManagedIdentityType string

const (
	ManagedIdentityTypeNone           ManagedIdentityType = "None"
	ManagedIdentityTypeSystemAssigned ManagedIdentityType = "SystemAssigned"
	ManagedIdentityTypeUserAssigned   ManagedIdentityType = "UserAssigned"
)

// PossibleManagedIdentityTypeValues returns the known values for ManagedIdentityType.
func PossibleManagedIdentityTypeValues() []ManagedIdentityType {
	return []ManagedIdentityType{
		ManagedIdentityTypeNone,
		ManagedIdentityTypeSystemAssigned,
		ManagedIdentityTypeUserAssigned,
	}
}

// UpstreamAuthType is how the service authenticates to an upstream.
type UpstreamAuthType string

const (
	UpstreamAuthTypeNone            UpstreamAuthType = "None"
	UpstreamAuthTypeManagedIdentity UpstreamAuthType = "ManagedIdentity"
)

// PossibleUpstreamAuthTypeValues returns the known values for UpstreamAuthType.
func PossibleUpstreamAuthTypeValues() []UpstreamAuthType {
	return []UpstreamAuthType{
		UpstreamAuthTypeNone,
		UpstreamAuthTypeManagedIdentity,
	}
}

// ACLAction is the default action of a network ACL.
type ACLAction string

const (
	ACLActionAllow ACLAction = "Allow"
	ACLActionDeny  ACLAction = "Deny"
)

// PossibleACLActionValues returns the known values for ACLAction.
func PossibleACLActionValues() []ACLAction {
	return []ACLAction{
		ACLActionAllow,
		ACLActionDeny,
	}
}

// RequestType is a class of traffic a network ACL filters.
type RequestType string

const (
	RequestTypeClientConnection RequestType = "ClientConnection"
	RequestTypeServerConnection RequestType = "ServerConnection"
	RequestTypeRESTAPI          RequestType = "RESTAPI"
	RequestTypeTrace            RequestType = "Trace"
)

// PossibleRequestTypeValues returns the known values for RequestType.
func PossibleRequestTypeValues() []RequestType {
	return []RequestType{
		RequestTypeClientConnection,
		RequestTypeServerConnection,
		RequestTypeRESTAPI,
		RequestTypeTrace,
	}
}

// ScaleType is how a SKU scales.
type ScaleType string

const (
	ScaleTypeNone      ScaleType = "None"
	ScaleTypeManual    ScaleType = "Manual"
	ScaleTypeAutomatic ScaleType = "Automatic"
)

// PossibleScaleTypeValues returns the known values for ScaleType.
func PossibleScaleTypeValues() []ScaleType {
	return []ScaleType{
		ScaleTypeNone,
		ScaleTypeManual,
		ScaleTypeAutomatic,
	}
}

// PrivateLinkServiceConnectionStatus is the approval state of a private endpoint connection.
type PrivateLinkServiceConnectionStatus string

const (
	PrivateLinkServiceConnectionStatusPending      PrivateLinkServiceConnectionStatus = "Pending"
	PrivateLinkServiceConnectionStatusApproved     PrivateLinkServiceConnectionStatus = "Approved"
	PrivateLinkServiceConnectionStatusRejected     PrivateLinkServiceConnectionStatus = "Rejected"
	PrivateLinkServiceConnectionStatusDisconnected PrivateLinkServiceConnectionStatus = "Disconnected"
)

// PossiblePrivateLinkServiceConnectionStatusValues returns the known values for PrivateLinkServiceConnectionStatus.
func PossiblePrivateLinkServiceConnectionStatusValues() []PrivateLinkServiceConnectionStatus {
	return []PrivateLinkServiceConnectionStatus{
		PrivateLinkServiceConnectionStatusPending,
		PrivateLinkServiceConnectionStatusApproved,
		PrivateLinkServiceConnectionStatusRejected,
		PrivateLinkServiceConnectionStatusDisconnected,
	}
}

// SharedPrivateLinkResourceStatus is the approval state of a shared private link.
type SharedPrivateLinkResourceStatus string

const (
	SharedPrivateLinkResourceStatusPending      SharedPrivateLinkResourceStatus = "Pending"
	SharedPrivateLinkResourceStatusApproved     SharedPrivateLinkResourceStatus = "Approved"
	SharedPrivateLinkResourceStatusRejected     SharedPrivateLinkResourceStatus = "Rejected"
	SharedPrivateLinkResourceStatusDisconnected SharedPrivateLinkResourceStatus = "Disconnected"
	SharedPrivateLinkResourceStatusTimeout      SharedPrivateLinkResourceStatus = "Timeout"
)

// PossibleSharedPrivateLinkResourceStatusValues returns the known values for SharedPrivateLinkResourceStatus.
func PossibleSharedPrivateLinkResourceStatusValues() []SharedPrivateLinkResourceStatus {
	return []SharedPrivateLinkResourceStatus{
		SharedPrivateLinkResourceStatusPending,
		SharedPrivateLinkResourceStatusApproved,
		SharedPrivateLinkResourceStatusRejected,
		SharedPrivateLinkResourceStatusDisconnected,
		SharedPrivateLinkResourceStatusTimeout,
	}
}

// ResourceType is the ARM type of a Web PubSub resource.
const ResourceType = "Microsoft.SignalRService/WebPubSub"

// Discriminators of the event listener filter and endpoint unions.
const (
	FilterTypeEventName  = "EventName"
	EndpointTypeEventHub = "EventHub"
)
