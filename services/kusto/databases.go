package kusto

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// DatabasesClient manages the databases of a cluster.
type DatabasesClient struct {
	c *Client
}

// databaseRef identifies one database.
type databaseRef struct {
	c                 *Client
	resourceGroupName string
	clusterName       string
	databaseName      string
}

func (r databaseRef) request(method string) (*sdk.Request, error) {
	return r.c.newRequest(method, databasePath, r.c.subscriptionID, r.resourceGroupName, r.clusterName, r.databaseName)
}

// DatabasesListByClusterCall lists the databases of a cluster.
type DatabasesListByClusterCall struct {
	clusterRef
}

// ListByCluster lists the databases of a cluster.
func (d *DatabasesClient) ListByCluster(resourceGroupName, clusterName string) *DatabasesListByClusterCall {
	return &DatabasesListByClusterCall{clusterRef{d.c, resourceGroupName, clusterName}}
}

// Do sends the request.
func (call *DatabasesListByClusterCall) Do(ctx context.Context) (*DatabaseListResult, error) {
	req, err := call.request(http.MethodGet, "/databases")
	if err != nil {
		return nil, err
	}
	return sdk.Do[DatabaseListResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// DatabasesGetCall is GET on a database.
type DatabasesGetCall struct {
	databaseRef
}

// Get returns a database.
func (d *DatabasesClient) Get(resourceGroupName, clusterName, databaseName string) *DatabasesGetCall {
	return &DatabasesGetCall{databaseRef{d.c, resourceGroupName, clusterName, databaseName}}
}

// Do sends the request.
func (call *DatabasesGetCall) Do(ctx context.Context) (*Database, error) {
	req, err := call.request(http.MethodGet)
	if err != nil {
		return nil, err
	}
	return sdk.Do[Database](ctx, call.c.pipeline, req, http.StatusOK)
}

// DatabasesCreateOrUpdateCall is PUT on a database.
type DatabasesCreateOrUpdateCall struct {
	databaseRef
	parameters Database
}

// CreateOrUpdate creates or replaces a database (200, 201 or 202).
func (d *DatabasesClient) CreateOrUpdate(resourceGroupName, clusterName, databaseName string, parameters Database) *DatabasesCreateOrUpdateCall {
	return &DatabasesCreateOrUpdateCall{databaseRef: databaseRef{d.c, resourceGroupName, clusterName, databaseName}, parameters: parameters}
}

// Do sends the request.
func (call *DatabasesCreateOrUpdateCall) Do(ctx context.Context) (*sdk.Result[Database], error) {
	req, err := call.request(http.MethodPut)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[Database](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated, http.StatusAccepted)
}

// DatabasesUpdateCall is PATCH on a database.
type DatabasesUpdateCall struct {
	databaseRef
	parameters Database
}

// Update patches a database (200, 201 or 202).
func (d *DatabasesClient) Update(resourceGroupName, clusterName, databaseName string, parameters Database) *DatabasesUpdateCall {
	return &DatabasesUpdateCall{databaseRef: databaseRef{d.c, resourceGroupName, clusterName, databaseName}, parameters: parameters}
}

// Do sends the request.
func (call *DatabasesUpdateCall) Do(ctx context.Context) (*sdk.Result[Database], error) {
	req, err := call.request(http.MethodPatch)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[Database](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated, http.StatusAccepted)
}

// DatabasesDeleteCall is DELETE on a database.
type DatabasesDeleteCall struct {
	databaseRef
}

// Delete deletes a database.
func (d *DatabasesClient) Delete(resourceGroupName, clusterName, databaseName string) *DatabasesDeleteCall {
	return &DatabasesDeleteCall{databaseRef{d.c, resourceGroupName, clusterName, databaseName}}
}

// Do sends the request.
func (call *DatabasesDeleteCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodDelete)
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusAccepted, http.StatusNoContent)
	return err
}

// DatabasesCheckNameAvailabilityCall checks whether a database name is free in a cluster.
type DatabasesCheckNameAvailabilityCall struct {
	clusterRef
	name CheckNameRequest
}

// CheckNameAvailability checks whether a database name is free in a cluster.
// An empty request type defaults to Microsoft.Kusto/clusters/databases.
func (d *DatabasesClient) CheckNameAvailability(resourceGroupName, clusterName string, name CheckNameRequest) *DatabasesCheckNameAvailabilityCall {
	if name.Type == "" {
		name.Type = DatabaseResourceType
	}
	return &DatabasesCheckNameAvailabilityCall{clusterRef: clusterRef{d.c, resourceGroupName, clusterName}, name: name}
}

// Do sends the request.
func (call *DatabasesCheckNameAvailabilityCall) Do(ctx context.Context) (*CheckNameResult, error) {
	req, err := call.request(http.MethodPost, "/checkNameAvailability")
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.name); err != nil {
		return nil, err
	}
	return sdk.Do[CheckNameResult](ctx, call.c.pipeline, req, http.StatusOK)
}
