package webpubsub

import "github.com/yaroslav/azrest/models"

// ResourceSku is the billing SKU of a resource.
type ResourceSku struct {
	// Name is e.g. "Standard_S1" or "Free_F1"
	Name     string   `json:"name"`
	Tier     *SkuTier `json:"tier,omitempty"`
	Size     *string  `json:"size,omitempty"`
	Family   *string  `json:"family,omitempty"`
	Capacity *int32   `json:"capacity,omitempty"`
}

// Resource is a Web PubSub service.
type Resource struct {
	models.TrackedResource

	Sku        *ResourceSku     `json:"sku,omitempty"`
	Properties *Properties      `json:"properties,omitempty"`
	Kind       *ServiceKind     `json:"kind,omitempty"`
	Identity   *ManagedIdentity `json:"identity,omitempty"`
}

// ProvisioningStateOf returns the provisioning state or an empty string.
func (r *Resource) ProvisioningStateOf() string {
	if r.Properties == nil || r.Properties.ProvisioningState == nil {
		return ""
	}
	return string(*r.Properties.ProvisioningState)
}

// Properties are the properties of a Web PubSub service.
type Properties struct {
	ProvisioningState          *ProvisioningState          `json:"provisioningState,omitempty"`
	ExternalIP                 *string                     `json:"externalIP,omitempty"`
	HostName                   *string                     `json:"hostName,omitempty"`
	PublicPort                 *int32                      `json:"publicPort,omitempty"`
	ServerPort                 *int32                      `json:"serverPort,omitempty"`
	Version                    *string                     `json:"version,omitempty"`
	PrivateEndpointConnections []PrivateEndpointConnection `json:"privateEndpointConnections,omitempty"`
	SharedPrivateLinkResources []SharedPrivateLinkResource `json:"sharedPrivateLinkResources,omitempty"`
	TLS                        *TLSSettings                `json:"tls,omitempty"`
	HostNamePrefix             *string                     `json:"hostNamePrefix,omitempty"`
	LiveTraceConfiguration     *LiveTraceConfiguration     `json:"liveTraceConfiguration,omitempty"`
	ResourceLogConfiguration   *ResourceLogConfiguration   `json:"resourceLogConfiguration,omitempty"`
	NetworkACLs                *NetworkACLs                `json:"networkACLs,omitempty"`
	PublicNetworkAccess        *string                     `json:"publicNetworkAccess,omitempty"`
	DisableLocalAuth           *bool                       `json:"disableLocalAuth,omitempty"`
	DisableAADAuth             *bool                       `json:"disableAadAuth,omitempty"`
}

// TLSSettings control client certificate authentication.
type TLSSettings struct {
	ClientCertEnabled *bool `json:"clientCertEnabled,omitempty"`
}

// LiveTraceConfiguration enables live trace per category.
type LiveTraceConfiguration struct {
	// Enabled is "true" or "false"
	Enabled    *string             `json:"enabled,omitempty"`
	Categories []LiveTraceCategory `json:"categories,omitempty"`
}

// LiveTraceCategory toggles one live trace category.
type LiveTraceCategory struct {
	Name    *string `json:"name,omitempty"`
	Enabled *string `json:"enabled,omitempty"`
}

// ResourceLogConfiguration enables resource logs per category.
type ResourceLogConfiguration struct {
	Categories []ResourceLogCategory `json:"categories,omitempty"`
}

// ResourceLogCategory toggles one resource log category.
type ResourceLogCategory struct {
	Name    *string `json:"name,omitempty"`
	Enabled *string `json:"enabled,omitempty"`
}

// NetworkACLs filter traffic by source network.
type NetworkACLs struct {
	DefaultAction    *ACLAction           `json:"defaultAction,omitempty"`
	PublicNetwork    *NetworkACL          `json:"publicNetwork,omitempty"`
	PrivateEndpoints []PrivateEndpointACL `json:"privateEndpoints,omitempty"`
}

// NetworkACL allows and denies request types.
type NetworkACL struct {
	Allow []RequestType `json:"allow,omitempty"`
	Deny  []RequestType `json:"deny,omitempty"`
}

// PrivateEndpointACL is the ACL of one private endpoint connection.
type PrivateEndpointACL struct {
	NetworkACL

	Name string `json:"name"`
}

// ManagedIdentity is the identity of a resource.
type ManagedIdentity struct {
	Type                   *ManagedIdentityType                    `json:"type,omitempty"`
	UserAssignedIdentities map[string]UserAssignedIdentityProperty `json:"userAssignedIdentities,omitempty"`
	PrincipalID            *string                                 `json:"principalId,omitempty"`
	TenantID               *string                                 `json:"tenantId,omitempty"`
}

// UserAssignedIdentityProperty describes one user-assigned identity.
type UserAssignedIdentityProperty struct {
	PrincipalID *string `json:"principalId,omitempty"`
	ClientID    *string `json:"clientId,omitempty"`
}

// PrivateEndpointConnection is a private endpoint connected to a resource.
type PrivateEndpointConnection struct {
	models.ProxyResource

	Properties *PrivateEndpointConnectionProperties `json:"properties,omitempty"`
}

// PrivateEndpointConnectionProperties are the properties of a private endpoint connection.
type PrivateEndpointConnectionProperties struct {
	ProvisioningState                 *ProvisioningState                 `json:"provisioningState,omitempty"`
	PrivateEndpoint                   *PrivateEndpoint                   `json:"privateEndpoint,omitempty"`
	GroupIDs                          []string                           `json:"groupIds,omitempty"`
	PrivateLinkServiceConnectionState *PrivateLinkServiceConnectionState `json:"privateLinkServiceConnectionState,omitempty"`
}

// PrivateEndpoint references the private endpoint resource.
type PrivateEndpoint struct {
	ID *string `json:"id,omitempty"`
}

// PrivateLinkServiceConnectionState is the approval state of a connection.
type PrivateLinkServiceConnectionState struct {
	Status          *PrivateLinkServiceConnectionStatus `json:"status,omitempty"`
	Description     *string                             `json:"description,omitempty"`
	ActionsRequired *string                             `json:"actionsRequired,omitempty"`
}

// SharedPrivateLinkResource is an outbound private link from the service.
type SharedPrivateLinkResource struct {
	models.ProxyResource

	Properties *SharedPrivateLinkResourceProperties `json:"properties,omitempty"`
}

// SharedPrivateLinkResourceProperties are the properties of a shared private link.
type SharedPrivateLinkResourceProperties struct {
	GroupID               string                           `json:"groupId"`
	PrivateLinkResourceID string                           `json:"privateLinkResourceId"`
	ProvisioningState     *ProvisioningState               `json:"provisioningState,omitempty"`
	RequestMessage        *string                          `json:"requestMessage,omitempty"`
	Status                *SharedPrivateLinkResourceStatus `json:"status,omitempty"`
}

// ResourceList is one page of Web PubSub services.
type ResourceList struct {
	Value    []Resource `json:"value,omitempty"`
	NextLink *string    `json:"nextLink,omitempty"`
}

// Keys are the access keys of a resource.
type Keys struct {
	PrimaryKey                *string `json:"primaryKey,omitempty"`
	SecondaryKey              *string `json:"secondaryKey,omitempty"`
	PrimaryConnectionString   *string `json:"primaryConnectionString,omitempty"`
	SecondaryConnectionString *string `json:"secondaryConnectionString,omitempty"`
}

// RegenerateKeyParameters name the key to regenerate.
type RegenerateKeyParameters struct {
	KeyType *KeyType `json:"keyType,omitempty"`
}

// NameAvailabilityParameters ask whether a resource name is free.
type NameAvailabilityParameters struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// NameAvailability is the answer to NameAvailabilityParameters.
type NameAvailability struct {
	NameAvailable *bool   `json:"nameAvailable,omitempty"`
	Reason        *string `json:"reason,omitempty"`
	Message       *string `json:"message,omitempty"`
}

// Sku is a SKU a resource can move to.
type Sku struct {
	ResourceType *string      `json:"resourceType,omitempty"`
	Sku          *ResourceSku `json:"sku,omitempty"`
	Capacity     *SkuCapacity `json:"capacity,omitempty"`
}

// SkuCapacity bounds the unit count of a SKU.
type SkuCapacity struct {
	Minimum       *int32     `json:"minimum,omitempty"`
	Maximum       *int32     `json:"maximum,omitempty"`
	Default       *int32     `json:"default,omitempty"`
	AllowedValues []int32    `json:"allowedValues,omitempty"`
	ScaleType     *ScaleType `json:"scaleType,omitempty"`
}

// SkuList is one page of SKUs.
type SkuList struct {
	Value    []Sku   `json:"value,omitempty"`
	NextLink *string `json:"nextLink,omitempty"`
}

// Hub is the settings of one hub of a resource.
type Hub struct {
	models.ProxyResource

	Properties HubProperties `json:"properties"`
}

// HubProperties configure event delivery for a hub.
type HubProperties struct {
	EventHandlers  []EventHandler  `json:"eventHandlers,omitempty"`
	EventListeners []EventListener `json:"eventListeners,omitempty"`

	// AnonymousConnectPolicy is "allow" or "deny"
	AnonymousConnectPolicy *string `json:"anonymousConnectPolicy,omitempty"`
}

// HubList is one page of hubs.
type HubList struct {
	Value    []Hub   `json:"value,omitempty"`
	NextLink *string `json:"nextLink,omitempty"`
}

// EventHandler sends matching events to an upstream URL.
type EventHandler struct {
	// URLTemplate may contain {hub} and {event}
	URLTemplate      string                `json:"urlTemplate"`
	UserEventPattern *string               `json:"userEventPattern,omitempty"`
	SystemEvents     []string              `json:"systemEvents,omitempty"`
	Auth             *UpstreamAuthSettings `json:"auth,omitempty"`
}

// UpstreamAuthSettings configure upstream authentication.
type UpstreamAuthSettings struct {
	Type            *UpstreamAuthType        `json:"type,omitempty"`
	ManagedIdentity *ManagedIdentitySettings `json:"managedIdentity,omitempty"`
}

// ManagedIdentitySettings name the token audience.
type ManagedIdentitySettings struct {
	Resource *string `json:"resource,omitempty"`
}

// EventListener sends matching events to an endpoint.
type EventListener struct {
	Filter   EventListenerFilter   `json:"filter"`
	Endpoint EventListenerEndpoint `json:"endpoint"`
}

// EventListenerFilter selects events. Type is always FilterTypeEventName.
type EventListenerFilter struct {
	Type             string   `json:"type"`
	SystemEvents     []string `json:"systemEvents,omitempty"`
	UserEventPattern *string  `json:"userEventPattern,omitempty"`
}

// NewEventNameFilter filters events by name. Supported system events are
// "connected" and "disconnected".
func NewEventNameFilter(systemEvents []string, userEventPattern string) EventListenerFilter {
	f := EventListenerFilter{Type: FilterTypeEventName, SystemEvents: systemEvents}
	if userEventPattern != "" {
		f.UserEventPattern = &userEventPattern
	}
	return f
}

// EventListenerEndpoint is where events go. Type is always EndpointTypeEventHub.
type EventListenerEndpoint struct {
	Type                    string `json:"type"`
	FullyQualifiedNamespace string `json:"fullyQualifiedNamespace"`
	EventHubName            string `json:"eventHubName"`
}

// NewEventHubEndpoint sends events to an event hub.
func NewEventHubEndpoint(fullyQualifiedNamespace, eventHubName string) EventListenerEndpoint {
	return EventListenerEndpoint{
		Type:                    EndpointTypeEventHub,
		FullyQualifiedNamespace: fullyQualifiedNamespace,
		EventHubName:            eventHubName,
	}
}

// Usage is the current use of one quota.
type Usage struct {
	ID           *string    `json:"id,omitempty"`
	CurrentValue *int64     `json:"currentValue,omitempty"`
	Limit        *int64     `json:"limit,omitempty"`
	Name         *UsageName `json:"name,omitempty"`
	Unit         *string    `json:"unit,omitempty"`
}

// UsageName is the localized name of a quota.
type UsageName struct {
	Value          *string `json:"value,omitempty"`
	LocalizedValue *string `json:"localizedValue,omitempty"`
}

// UsageList is one page of usages.
type UsageList struct {
	Value    []Usage `json:"value,omitempty"`
	NextLink *string `json:"nextLink,omitempty"`
}
