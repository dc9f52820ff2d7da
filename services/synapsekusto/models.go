package synapsekusto

import (
	"encoding/json"
	"fmt"

	"github.com/yaroslav/azrest/models"
)

// AzureSku is the SKU of a Kusto pool.
type AzureSku struct {
	Name     SkuName `json:"name"`
	Size     SkuSize `json:"size,omitempty"`
	Capacity *int32  `json:"capacity,omitempty"`
	Tier     string  `json:"tier,omitempty"`
}

// KustoPool is a Kusto pool inside a Synapse workspace.
type KustoPool struct {
	models.TrackedResource

	Sku        AzureSku             `json:"sku"`
	Properties *KustoPoolProperties `json:"properties,omitempty"`
	Etag       *string              `json:"etag,omitempty"`
}

// KustoPoolProperties are the properties of a Kusto pool.
type KustoPoolProperties struct {
	State             *State                     `json:"state,omitempty"`
	ProvisioningState *ResourceProvisioningState `json:"provisioningState,omitempty"`
	URI               *string                    `json:"uri,omitempty"`
	DataIngestionURI  *string                    `json:"dataIngestionUri,omitempty"`
	StateReason       *string                    `json:"stateReason,omitempty"`
	EngineType        *EngineType                `json:"engineType,omitempty"`
	WorkspaceUID      *string                    `json:"workspaceUid,omitempty"`
}

// ProvisioningStateOf returns the provisioning state or an empty string.
func (p *KustoPool) ProvisioningStateOf() string {
	if p.Properties == nil || p.Properties.ProvisioningState == nil {
		return ""
	}
	return string(*p.Properties.ProvisioningState)
}

// KustoPoolUpdate is the PATCH body of a Kusto pool.
type KustoPoolUpdate struct {
	models.Resource

	Tags       map[string]string    `json:"tags,omitempty"`
	Sku        *AzureSku            `json:"sku,omitempty"`
	Properties *KustoPoolProperties `json:"properties,omitempty"`
}

// KustoPoolListResult is the (unpaged) list of pools in a workspace.
type KustoPoolListResult struct {
	Value []KustoPool `json:"value,omitempty"`
}

// KustoPoolCheckNameRequest checks a pool name.
type KustoPoolCheckNameRequest struct {
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

// Database is a Kusto pool database. Kind selects the variant.
type Database struct {
	models.ProxyResource

	Location   *string                      `json:"location,omitempty"`
	Kind       DatabaseKind                 `json:"kind"`
	Properties *ReadWriteDatabaseProperties `json:"properties,omitempty"`
}

// ReadWriteDatabaseProperties are the properties of a read-write database.
type ReadWriteDatabaseProperties struct {
	ProvisioningState *ResourceProvisioningState `json:"provisioningState,omitempty"`
	SoftDeletePeriod  *string                    `json:"softDeletePeriod,omitempty"`
	HotCachePeriod    *string                    `json:"hotCachePeriod,omitempty"`
	Statistics        *DatabaseStatistics        `json:"statistics,omitempty"`
	IsFollowed        *bool                      `json:"isFollowed,omitempty"`
}

// DatabaseStatistics are database size statistics.
type DatabaseStatistics struct {
	Size *float64 `json:"size,omitempty"`
}

// DatabaseListResult lists the databases of a pool.
type DatabaseListResult struct {
	Value []Database `json:"value,omitempty"`
}

// DataConnection is an ingestion connection of a database. Properties hold
// the raw variant payload; use the typed accessors to read them.
type DataConnection struct {
	models.ProxyResource

	Location   *string            `json:"location,omitempty"`
	Kind       DataConnectionKind `json:"kind"`
	Properties json.RawMessage    `json:"properties,omitempty"`
}

// DataConnectionListResult lists the data connections of a database.
type DataConnectionListResult struct {
	Value []DataConnection `json:"value,omitempty"`
}

// EventHubConnectionProperties are the properties of an EventHub connection.
type EventHubConnectionProperties struct {
	EventHubResourceID    string                     `json:"eventHubResourceId"`
	ConsumerGroup         string                     `json:"consumerGroup"`
	TableName             *string                    `json:"tableName,omitempty"`
	MappingRuleName       *string                    `json:"mappingRuleName,omitempty"`
	DataFormat            *DataFormat                `json:"dataFormat,omitempty"`
	EventSystemProperties []string                   `json:"eventSystemProperties,omitempty"`
	Compression           *Compression               `json:"compression,omitempty"`
	ProvisioningState     *ResourceProvisioningState `json:"provisioningState,omitempty"`
}

// EventGridConnectionProperties are the properties of an EventGrid connection.
type EventGridConnectionProperties struct {
	StorageAccountResourceID string                     `json:"storageAccountResourceId"`
	EventHubResourceID       string                     `json:"eventHubResourceId"`
	ConsumerGroup            string                     `json:"consumerGroup"`
	TableName                *string                    `json:"tableName,omitempty"`
	MappingRuleName          *string                    `json:"mappingRuleName,omitempty"`
	DataFormat               *DataFormat                `json:"dataFormat,omitempty"`
	IgnoreFirstRecord        *bool                      `json:"ignoreFirstRecord,omitempty"`
	BlobStorageEventType     *BlobStorageEventType      `json:"blobStorageEventType,omitempty"`
	ProvisioningState        *ResourceProvisioningState `json:"provisioningState,omitempty"`
}

// IotHubConnectionProperties are the properties of an IotHub connection.
type IotHubConnectionProperties struct {
	IotHubResourceID       string                     `json:"iotHubResourceId"`
	ConsumerGroup          string                     `json:"consumerGroup"`
	TableName              *string                    `json:"tableName,omitempty"`
	MappingRuleName        *string                    `json:"mappingRuleName,omitempty"`
	DataFormat             *DataFormat                `json:"dataFormat,omitempty"`
	EventSystemProperties  []string                   `json:"eventSystemProperties,omitempty"`
	SharedAccessPolicyName string                     `json:"sharedAccessPolicyName"`
	ProvisioningState      *ResourceProvisioningState `json:"provisioningState,omitempty"`
}

// NewEventHubDataConnection builds an EventHub data connection.
func NewEventHubDataConnection(location string, props EventHubConnectionProperties) (DataConnection, error) {
	return newDataConnection(location, DataConnectionKindEventHub, props)
}

// NewEventGridDataConnection builds an EventGrid data connection.
func NewEventGridDataConnection(location string, props EventGridConnectionProperties) (DataConnection, error) {
	return newDataConnection(location, DataConnectionKindEventGrid, props)
}

// NewIotHubDataConnection builds an IotHub data connection.
func NewIotHubDataConnection(location string, props IotHubConnectionProperties) (DataConnection, error) {
	return newDataConnection(location, DataConnectionKindIotHub, props)
}

func newDataConnection(location string, kind DataConnectionKind, props any) (DataConnection, error) {
	raw, err := json.Marshal(props)
	if err != nil {
		return DataConnection{}, fmt.Errorf("failed to marshal %s properties: %w", kind, err)
	}
	dc := DataConnection{Kind: kind, Properties: raw}
	if location != "" {
		dc.Location = models.Ptr(location)
	}
	return dc, nil
}

// EventHubProperties decodes the properties of an EventHub connection.
func (d *DataConnection) EventHubProperties() (*EventHubConnectionProperties, error) {
	var props EventHubConnectionProperties
	if err := d.decodeProperties(DataConnectionKindEventHub, &props); err != nil {
		return nil, err
	}
	return &props, nil
}

// EventGridProperties decodes the properties of an EventGrid connection.
func (d *DataConnection) EventGridProperties() (*EventGridConnectionProperties, error) {
	var props EventGridConnectionProperties
	if err := d.decodeProperties(DataConnectionKindEventGrid, &props); err != nil {
		return nil, err
	}
	return &props, nil
}

// IotHubProperties decodes the properties of an IotHub connection.
func (d *DataConnection) IotHubProperties() (*IotHubConnectionProperties, error) {
	var props IotHubConnectionProperties
	if err := d.decodeProperties(DataConnectionKindIotHub, &props); err != nil {
		return nil, err
	}
	return &props, nil
}

func (d *DataConnection) decodeProperties(kind DataConnectionKind, out any) error {
	if d.Kind != kind {
		return fmt.Errorf("data connection kind is %q, not %q", d.Kind, kind)
	}
	if len(d.Properties) == 0 {
		return nil
	}
	if err := json.Unmarshal(d.Properties, out); err != nil {
		return fmt.Errorf("failed to decode %s properties: %w", kind, err)
	}
	return nil
}

// ClusterPrincipalAssignment grants a principal a role on a pool.
type ClusterPrincipalAssignment struct {
	models.ProxyResource

	Properties *ClusterPrincipalProperties `json:"properties,omitempty"`
}

// ClusterPrincipalProperties are the properties of a pool principal assignment.
type ClusterPrincipalProperties struct {
	PrincipalID       string                     `json:"principalId"`
	Role              ClusterPrincipalRole       `json:"role"`
	TenantID          *string                    `json:"tenantId,omitempty"`
	PrincipalType     PrincipalType              `json:"principalType"`
	TenantName        *string                    `json:"tenantName,omitempty"`
	PrincipalName     *string                    `json:"principalName,omitempty"`
	ProvisioningState *ResourceProvisioningState `json:"provisioningState,omitempty"`
}

// ClusterPrincipalAssignmentListResult lists pool principal assignments.
type ClusterPrincipalAssignmentListResult struct {
	Value []ClusterPrincipalAssignment `json:"value,omitempty"`
}

// DatabasePrincipalAssignment grants a principal a role on a database.
type DatabasePrincipalAssignment struct {
	models.ProxyResource

	Properties *DatabasePrincipalProperties `json:"properties,omitempty"`
}

// DatabasePrincipalProperties are the properties of a database principal assignment.
type DatabasePrincipalProperties struct {
	PrincipalID       string                     `json:"principalId"`
	Role              DatabasePrincipalRole      `json:"role"`
	TenantID          *string                    `json:"tenantId,omitempty"`
	PrincipalType     PrincipalType              `json:"principalType"`
	TenantName        *string                    `json:"tenantName,omitempty"`
	PrincipalName     *string                    `json:"principalName,omitempty"`
	ProvisioningState *ResourceProvisioningState `json:"provisioningState,omitempty"`
}

// DatabasePrincipalAssignmentListResult lists database principal assignments.
type DatabasePrincipalAssignmentListResult struct {
	Value []DatabasePrincipalAssignment `json:"value,omitempty"`
}
