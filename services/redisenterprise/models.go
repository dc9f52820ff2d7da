package redisenterprise

import "github.com/yaroslav/azrest/models"

// Sku is the SKU and capacity of a cluster.
type Sku struct {
	// Name is the SKU name, e.g. Enterprise_E10
	Name SkuName `json:"name"`

	// Capacity is the node count (2, 4, 6, ... for Enterprise; 3, 9, ... for Flash)
	Capacity *int32 `json:"capacity,omitempty"`
}

// Cluster is a Redis Enterprise cluster.
type Cluster struct {
	models.TrackedResource

	Sku        Sku                `json:"sku"`
	Zones      []string           `json:"zones,omitempty"`
	Properties *ClusterProperties `json:"properties,omitempty"`
}

// ClusterProperties are the cluster's properties.
type ClusterProperties struct {
	MinimumTLSVersion          *TLSVersion                 `json:"minimumTlsVersion,omitempty"`
	HostName                   *string                     `json:"hostName,omitempty"`
	ProvisioningState          *ProvisioningState          `json:"provisioningState,omitempty"`
	ResourceState              *ResourceState              `json:"resourceState,omitempty"`
	RedisVersion               *string                     `json:"redisVersion,omitempty"`
	PrivateEndpointConnections []PrivateEndpointConnection `json:"privateEndpointConnections,omitempty"`
}

// ClusterUpdate is the PATCH body for a cluster.
type ClusterUpdate struct {
	Sku        *Sku               `json:"sku,omitempty"`
	Properties *ClusterProperties `json:"properties,omitempty"`
	Tags       map[string]string  `json:"tags,omitempty"`
}

// ClusterList is one page of clusters.
type ClusterList struct {
	Value    []Cluster `json:"value,omitempty"`
	NextLink *string   `json:"nextLink,omitempty"`
}

// Database is a Redis database inside a cluster.
type Database struct {
	models.ProxyResource

	Properties *DatabaseProperties `json:"properties,omitempty"`
}

// DatabaseProperties are the database's properties.
type DatabaseProperties struct {
	ClientProtocol    *Protocol          `json:"clientProtocol,omitempty"`
	Port              *int32             `json:"port,omitempty"`
	ProvisioningState *ProvisioningState `json:"provisioningState,omitempty"`
	ResourceState     *ResourceState     `json:"resourceState,omitempty"`
	ClusteringPolicy  *ClusteringPolicy  `json:"clusteringPolicy,omitempty"`
	EvictionPolicy    *EvictionPolicy    `json:"evictionPolicy,omitempty"`
	Persistence       *Persistence       `json:"persistence,omitempty"`
	Modules           []Module           `json:"modules,omitempty"`
}

// DatabaseUpdate is the PATCH body for a database.
type DatabaseUpdate struct {
	Properties *DatabaseProperties `json:"properties,omitempty"`
}

// DatabaseList is one page of databases.
type DatabaseList struct {
	Value    []Database `json:"value,omitempty"`
	NextLink *string    `json:"nextLink,omitempty"`
}

// Persistence configures AOF and RDB persistence.
type Persistence struct {
	AofEnabled   *bool         `json:"aofEnabled,omitempty"`
	RdbEnabled   *bool         `json:"rdbEnabled,omitempty"`
	AofFrequency *AofFrequency `json:"aofFrequency,omitempty"`
	RdbFrequency *RdbFrequency `json:"rdbFrequency,omitempty"`
}

// Module is a Redis module enabled on a database.
type Module struct {
	Name    string  `json:"name"`
	Args    *string `json:"args,omitempty"`
	Version *string `json:"version,omitempty"`
}

// AccessKeys are the database access keys.
type AccessKeys struct {
	PrimaryKey   *string `json:"primaryKey,omitempty"`
	SecondaryKey *string `json:"secondaryKey,omitempty"`
}

// RegenerateKeyParameters selects the key to regenerate.
type RegenerateKeyParameters struct {
	KeyType AccessKeyType `json:"keyType"`
}

// ImportClusterParameters points an import at a blob.
type ImportClusterParameters struct {
	SasURI string `json:"sasUri"`
}

// ExportClusterParameters points an export at a blob container.
type ExportClusterParameters struct {
	SasURI string `json:"sasUri"`
}

// OperationStatus is the status of an asynchronous operation.
type OperationStatus struct {
	ID        *string               `json:"id,omitempty"`
	Name      *string               `json:"name,omitempty"`
	StartTime *string               `json:"startTime,omitempty"`
	EndTime   *string               `json:"endTime,omitempty"`
	Status    *string               `json:"status,omitempty"`
	Error     *models.ErrorResponse `json:"error,omitempty"`
}

// PrivateEndpoint is the resource ID of a private endpoint.
type PrivateEndpoint struct {
	ID *string `json:"id,omitempty"`
}

// PrivateEndpointConnection connects a private endpoint to a cluster.
type PrivateEndpointConnection struct {
	models.Resource

	Properties *PrivateEndpointConnectionProperties `json:"properties,omitempty"`
}

// PrivateEndpointConnectionProperties are the connection's properties.
type PrivateEndpointConnectionProperties struct {
	PrivateEndpoint                   *PrivateEndpoint                            `json:"privateEndpoint,omitempty"`
	PrivateLinkServiceConnectionState PrivateLinkServiceConnectionState           `json:"privateLinkServiceConnectionState"`
	ProvisioningState                 *PrivateEndpointConnectionProvisioningState `json:"provisioningState,omitempty"`
}

// PrivateLinkServiceConnectionState is the approval state of a connection.
type PrivateLinkServiceConnectionState struct {
	Status          *PrivateEndpointServiceConnectionStatus `json:"status,omitempty"`
	Description     *string                                 `json:"description,omitempty"`
	ActionsRequired *string                                 `json:"actionsRequired,omitempty"`
}

// PrivateEndpointConnectionListResult lists the connections of a cluster.
type PrivateEndpointConnectionListResult struct {
	Value []PrivateEndpointConnection `json:"value,omitempty"`
}

// PrivateLinkResource is a group a private endpoint can connect to.
type PrivateLinkResource struct {
	models.Resource

	Properties *PrivateLinkResourceProperties `json:"properties,omitempty"`
}

// PrivateLinkResourceProperties are the private link resource's properties.
type PrivateLinkResourceProperties struct {
	GroupID           *string  `json:"groupId,omitempty"`
	RequiredMembers   []string `json:"requiredMembers,omitempty"`
	RequiredZoneNames []string `json:"requiredZoneNames,omitempty"`
}

// PrivateLinkResourceListResult lists the private link resources of a cluster.
type PrivateLinkResourceListResult struct {
	Value []PrivateLinkResource `json:"value,omitempty"`
}

// ProvisioningStateOf returns the cluster provisioning state as a string, or "".
func (c *Cluster) ProvisioningStateOf() string {
	if c.Properties == nil || c.Properties.ProvisioningState == nil {
		return ""
	}
	return string(*c.Properties.ProvisioningState)
}
