package synapsekusto

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// DataConnectionsClient manages the ingestion connections of a database.
type DataConnectionsClient struct {
	c *Client
}

// dataConnectionRef identifies one data connection.
type dataConnectionRef struct {
	databaseRef
	dataConnectionName string
}

func (r dataConnectionRef) request(method string) (*sdk.Request, error) {
	return r.c.newRequest(method, databasePath+"/dataConnections/{dataConnectionName}",
		r.c.subscriptionID, r.resourceGroupName, r.workspaceName, r.kustoPoolName, r.databaseName, r.dataConnectionName)
}

func (d *DataConnectionsClient) ref(resourceGroupName, workspaceName, kustoPoolName, databaseName, dataConnectionName string) dataConnectionRef {
	return dataConnectionRef{
		databaseRef:        databaseRef{d.c, resourceGroupName, workspaceName, kustoPoolName, databaseName},
		dataConnectionName: dataConnectionName,
	}
}

// DataConnectionsListByDatabaseCall lists the data connections of a database.
type DataConnectionsListByDatabaseCall struct {
	databaseRef
}

// ListByDatabase lists the data connections of a database.
func (d *DataConnectionsClient) ListByDatabase(resourceGroupName, workspaceName, kustoPoolName, databaseName string) *DataConnectionsListByDatabaseCall {
	return &DataConnectionsListByDatabaseCall{databaseRef{d.c, resourceGroupName, workspaceName, kustoPoolName, databaseName}}
}

// Do sends the request.
func (call *DataConnectionsListByDatabaseCall) Do(ctx context.Context) (*DataConnectionListResult, error) {
	req, err := call.databaseRef.request(http.MethodGet, "/dataConnections")
	if err != nil {
		return nil, err
	}
	return sdk.Do[DataConnectionListResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// DataConnectionsGetCall is GET on a data connection.
type DataConnectionsGetCall struct {
	dataConnectionRef
}

// Get returns a data connection.
func (d *DataConnectionsClient) Get(resourceGroupName, workspaceName, kustoPoolName, databaseName, dataConnectionName string) *DataConnectionsGetCall {
	return &DataConnectionsGetCall{d.ref(resourceGroupName, workspaceName, kustoPoolName, databaseName, dataConnectionName)}
}

// Do sends the request.
func (call *DataConnectionsGetCall) Do(ctx context.Context) (*DataConnection, error) {
	req, err := call.request(http.MethodGet)
	if err != nil {
		return nil, err
	}
	return sdk.Do[DataConnection](ctx, call.c.pipeline, req, http.StatusOK)
}

// DataConnectionsCreateOrUpdateCall is PUT on a data connection.
type DataConnectionsCreateOrUpdateCall struct {
	dataConnectionRef
	parameters DataConnection
}

// CreateOrUpdate creates or replaces a data connection (200, 201 or 202).
func (d *DataConnectionsClient) CreateOrUpdate(resourceGroupName, workspaceName, kustoPoolName, databaseName, dataConnectionName string, parameters DataConnection) *DataConnectionsCreateOrUpdateCall {
	return &DataConnectionsCreateOrUpdateCall{
		dataConnectionRef: d.ref(resourceGroupName, workspaceName, kustoPoolName, databaseName, dataConnectionName),
		parameters:        parameters,
	}
}

// Do sends the request.
func (call *DataConnectionsCreateOrUpdateCall) Do(ctx context.Context) (*sdk.Result[DataConnection], error) {
	req, err := call.request(http.MethodPut)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[DataConnection](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated, http.StatusAccepted)
}

// DataConnectionsUpdateCall is PATCH on a data connection.
type DataConnectionsUpdateCall struct {
	dataConnectionRef
	parameters DataConnection
}

// Update patches a data connection (200, 201 or 202).
func (d *DataConnectionsClient) Update(resourceGroupName, workspaceName, kustoPoolName, databaseName, dataConnectionName string, parameters DataConnection) *DataConnectionsUpdateCall {
	return &DataConnectionsUpdateCall{
		dataConnectionRef: d.ref(resourceGroupName, workspaceName, kustoPoolName, databaseName, dataConnectionName),
		parameters:        parameters,
	}
}

// Do sends the request.
func (call *DataConnectionsUpdateCall) Do(ctx context.Context) (*sdk.Result[DataConnection], error) {
	req, err := call.request(http.MethodPatch)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[DataConnection](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated, http.StatusAccepted)
}

// DataConnectionsDeleteCall is DELETE on a data connection.
type DataConnectionsDeleteCall struct {
	dataConnectionRef
}

// Delete deletes a data connection.
func (d *DataConnectionsClient) Delete(resourceGroupName, workspaceName, kustoPoolName, databaseName, dataConnectionName string) *DataConnectionsDeleteCall {
	return &DataConnectionsDeleteCall{d.ref(resourceGroupName, workspaceName, kustoPoolName, databaseName, dataConnectionName)}
}

// Do sends the request.
func (call *DataConnectionsDeleteCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodDelete)
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusAccepted, http.StatusNoContent)
	return err
}
