package synapsekusto

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// DatabasesClient manages the databases of a Kusto pool.
type DatabasesClient struct {
	c *Client
}

// databaseRef identifies one database.
type databaseRef struct {
	c                 *Client
	resourceGroupName string
	workspaceName     string
	kustoPoolName     string
	databaseName      string
}

func (r databaseRef) request(method, suffix string) (*sdk.Request, error) {
	return r.c.newRequest(method, databasePath+suffix,
		r.c.subscriptionID, r.resourceGroupName, r.workspaceName, r.kustoPoolName, r.databaseName)
}

// DatabasesListByKustoPoolCall lists the databases of a pool.
type DatabasesListByKustoPoolCall struct {
	kustoPoolRef
}

// ListByKustoPool lists the databases of a pool.
func (d *DatabasesClient) ListByKustoPool(resourceGroupName, workspaceName, kustoPoolName string) *DatabasesListByKustoPoolCall {
	return &DatabasesListByKustoPoolCall{kustoPoolRef{d.c, resourceGroupName, workspaceName, kustoPoolName}}
}

// Do sends the request.
func (call *DatabasesListByKustoPoolCall) Do(ctx context.Context) (*DatabaseListResult, error) {
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
func (d *DatabasesClient) Get(resourceGroupName, workspaceName, kustoPoolName, databaseName string) *DatabasesGetCall {
	return &DatabasesGetCall{databaseRef{d.c, resourceGroupName, workspaceName, kustoPoolName, databaseName}}
}

// Do sends the request.
func (call *DatabasesGetCall) Do(ctx context.Context) (*Database, error) {
	req, err := call.request(http.MethodGet, "")
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
func (d *DatabasesClient) CreateOrUpdate(resourceGroupName, workspaceName, kustoPoolName, databaseName string, parameters Database) *DatabasesCreateOrUpdateCall {
	return &DatabasesCreateOrUpdateCall{
		databaseRef: databaseRef{d.c, resourceGroupName, workspaceName, kustoPoolName, databaseName},
		parameters:  parameters,
	}
}

// Do sends the request.
func (call *DatabasesCreateOrUpdateCall) Do(ctx context.Context) (*sdk.Result[Database], error) {
	req, err := call.request(http.MethodPut, "")
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
func (d *DatabasesClient) Update(resourceGroupName, workspaceName, kustoPoolName, databaseName string, parameters Database) *DatabasesUpdateCall {
	return &DatabasesUpdateCall{
		databaseRef: databaseRef{d.c, resourceGroupName, workspaceName, kustoPoolName, databaseName},
		parameters:  parameters,
	}
}

// Do sends the request.
func (call *DatabasesUpdateCall) Do(ctx context.Context) (*sdk.Result[Database], error) {
	req, err := call.request(http.MethodPatch, "")
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
func (d *DatabasesClient) Delete(resourceGroupName, workspaceName, kustoPoolName, databaseName string) *DatabasesDeleteCall {
	return &DatabasesDeleteCall{databaseRef{d.c, resourceGroupName, workspaceName, kustoPoolName, databaseName}}
}

// Do sends the request.
func (call *DatabasesDeleteCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodDelete, "")
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusAccepted, http.StatusNoContent)
	return err
}
