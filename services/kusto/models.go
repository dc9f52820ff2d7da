package kusto

import "github.com/yaroslav/azrest/models"

// AzureSku is the SKU of a cluster.
type AzureSku struct {
	Name     AzureSkuName `json:"name"`
	Capacity *int64       `json:"capacity,omitempty"`
	Tier     AzureSkuTier `json:"tier"`
}

// AzureCapacity describes how a SKU can scale.
type AzureCapacity struct {
	ScaleType AzureScaleType `json:"scaleType"`
	Minimum   int64          `json:"minimum"`
	Maximum   int64          `json:"maximum"`
	Default   int64          `json:"default"`
}

// AzureResourceSku is a SKU available to an existing cluster.
type AzureResourceSku struct {
	ResourceType *string        `json:"resourceType,omitempty"`
	Sku          *AzureSku      `json:"sku,omitempty"`
	Capacity     *AzureCapacity `json:"capacity,omitempty"`
}

// ListResourceSkusResult lists the SKUs available to a cluster.
type ListResourceSkusResult struct {
	Value []AzureResourceSku `json:"value,omitempty"`
}

// SkuDescription is a SKU offered in the subscription.
type SkuDescription struct {
	ResourceType *string               `json:"resourceType,omitempty"`
	Name         *string               `json:"name,omitempty"`
	Tier         *string               `json:"tier,omitempty"`
	Locations    []string              `json:"locations,omitempty"`
	LocationInfo []SkuLocationInfoItem `json:"locationInfo,omitempty"`
	Restrictions []map[string]any      `json:"restrictions,omitempty"`
}

// SkuLocationInfoItem lists the zones of a SKU in one location.
type SkuLocationInfoItem struct {
	Location string   `json:"location"`
	Zones    []string `json:"zones,omitempty"`
}

// SkuDescriptionList lists the SKUs offered in the subscription.
type SkuDescriptionList struct {
	Value []SkuDescription `json:"value,omitempty"`
}

// Identity is the managed identity of a cluster.
type Identity struct {
	PrincipalID            *string                   `json:"principalId,omitempty"`
	TenantID               *string                   `json:"tenantId,omitempty"`
	Type                   IdentityType              `json:"type"`
	UserAssignedIdentities map[string]map[string]any `json:"userAssignedIdentities,omitempty"`
}

// Cluster is a Kusto cluster.
type Cluster struct {
	models.TrackedResource

	Sku        AzureSku           `json:"sku"`
	Zones      []string           `json:"zones,omitempty"`
	Identity   *Identity          `json:"identity,omitempty"`
	Properties *ClusterProperties `json:"properties,omitempty"`
}

// ClusterProperties are the cluster's properties.
type ClusterProperties struct {
	State                       *ClusterState                `json:"state,omitempty"`
	ProvisioningState           *ClusterProvisioningState    `json:"provisioningState,omitempty"`
	URI                         *string                      `json:"uri,omitempty"`
	DataIngestionURI            *string                      `json:"dataIngestionUri,omitempty"`
	TrustedExternalTenants      []TrustedExternalTenant      `json:"trustedExternalTenants,omitempty"`
	OptimizedAutoscale          *OptimizedAutoscale          `json:"optimizedAutoscale,omitempty"`
	EnableDiskEncryption        *bool                        `json:"enableDiskEncryption,omitempty"`
	EnableStreamingIngest       *bool                        `json:"enableStreamingIngest,omitempty"`
	VirtualNetworkConfiguration *VirtualNetworkConfiguration `json:"virtualNetworkConfiguration,omitempty"`
	KeyVaultProperties          *KeyVaultProperties          `json:"keyVaultProperties,omitempty"`
}

// ClusterUpdate is the PATCH body for a cluster.
type ClusterUpdate struct {
	models.Resource

	Tags       map[string]string  `json:"tags,omitempty"`
	Location   *string            `json:"location,omitempty"`
	Sku        *AzureSku          `json:"sku,omitempty"`
	Identity   *Identity          `json:"identity,omitempty"`
	Properties *ClusterProperties `json:"properties,omitempty"`
}

// ClusterListResult lists clusters.
type ClusterListResult struct {
	Value []Cluster `json:"value,omitempty"`
}

// TrustedExternalTenant is a tenant allowed to access the cluster.
type TrustedExternalTenant struct {
	Value *string `json:"value,omitempty"`
}

// OptimizedAutoscale configures automatic scaling.
type OptimizedAutoscale struct {
	Version   int64 `json:"version"`
	IsEnabled bool  `json:"isEnabled"`
	Minimum   int64 `json:"minimum"`
	Maximum   int64 `json:"maximum"`
}

// VirtualNetworkConfiguration injects the cluster into a subnet.
type VirtualNetworkConfiguration struct {
	SubnetID                 string `json:"subnetId"`
	EnginePublicIPID         string `json:"enginePublicIpId"`
	DataManagementPublicIPID string `json:"dataManagementPublicIpId"`
}

// KeyVaultProperties configures customer-managed keys.
type KeyVaultProperties struct {
	KeyName     string `json:"keyName"`
	KeyVersion  string `json:"keyVersion"`
	KeyVaultURI string `json:"keyVaultUri"`
}

// Database is a Kusto database. Kind selects the variant; the properties of
// both variants share one struct and only the fields of the variant are set.
type Database struct {
	models.ProxyResource

	Location   *string             `json:"location,omitempty"`
	Kind       DatabaseKind        `json:"kind"`
	Properties *DatabaseProperties `json:"properties,omitempty"`
}

// DatabaseProperties are the properties of ReadWrite and ReadOnlyFollowing databases.
type DatabaseProperties struct {
	ProvisioningState *ClusterProvisioningState `json:"provisioningState,omitempty"`
	SoftDeletePeriod  *string                   `json:"softDeletePeriod,omitempty"`
	HotCachePeriod    *string                   `json:"hotCachePeriod,omitempty"`
	Statistics        *DatabaseStatistics       `json:"statistics,omitempty"`

	// Read-only following databases only.
	LeaderClusterResourceID           *string `json:"leaderClusterResourceId,omitempty"`
	AttachedDatabaseConfigurationName *string `json:"attachedDatabaseConfigurationName,omitempty"`
	PrincipalsModificationKind        *string `json:"principalsModificationKind,omitempty"`
}

// DatabaseStatistics are database size statistics.
type DatabaseStatistics struct {
	Size *float64 `json:"size,omitempty"`
}

// DatabaseListResult lists databases.
type DatabaseListResult struct {
	Value []Database `json:"value,omitempty"`
}

// ClusterCheckNameRequest checks a cluster name.
type ClusterCheckNameRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// CheckNameRequest checks a database name.
type CheckNameRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// CheckNameResult is the result of a name availability check.
type CheckNameResult struct {
	NameAvailable *bool            `json:"nameAvailable,omitempty"`
	Name          *string          `json:"name,omitempty"`
	Message       *string          `json:"message,omitempty"`
	Reason        *CheckNameReason `json:"reason,omitempty"`
}
