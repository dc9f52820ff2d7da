package redisenterprise

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

func (r databaseRef) request(method, suffix string) (*sdk.Request, error) {
	return r.c.newRequest(method, databasePath+suffix,
		r.c.subscriptionID, r.resourceGroupName, r.clusterName, r.databaseName)
}

func (d *DatabasesClient) ref(resourceGroupName, clusterName, databaseName string) databaseRef {
	return databaseRef{c: d.c, resourceGroupName: resourceGroupName, clusterName: clusterName, databaseName: databaseName}
}

// DatabasesListByClusterCall lists the databases of a cluster.
type DatabasesListByClusterCall struct {
	c                 *Client
	resourceGroupName string
	clusterName       string
}

// ListByCluster lists the databases of a cluster.
func (d *DatabasesClient) ListByCluster(resourceGroupName, clusterName string) *DatabasesListByClusterCall {
	return &DatabasesListByClusterCall{c: d.c, resourceGroupName: resourceGroupName, clusterName: clusterName}
}

func (call *DatabasesListByClusterCall) request() (*sdk.Request, error) {
	return call.c.newRequest(http.MethodGet, clusterPath+"/databases",
		call.c.subscriptionID, call.resourceGroupName, call.clusterName)
}

// Do fetches the first page.
func (call *DatabasesListByClusterCall) Do(ctx context.Context) (*DatabaseList, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[DatabaseList](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *DatabasesListByClusterCall) Pager() *sdk.Pager[*DatabaseList] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, func(p *DatabaseList) string {
		return sdk.NextLink(p.NextLink)
	})
}

// DatabasesCreateCall is PUT on a database.
type DatabasesCreateCall struct {
	databaseRef
	parameters Database
}

// Create creates or replaces a database (200 or 201).
func (d *DatabasesClient) Create(resourceGroupName, clusterName, databaseName string, parameters Database) *DatabasesCreateCall {
	return &DatabasesCreateCall{databaseRef: d.ref(resourceGroupName, clusterName, databaseName), parameters: parameters}
}

// Do sends the request.
func (call *DatabasesCreateCall) Do(ctx context.Context) (*sdk.Result[Database], error) {
	req, err := call.request(http.MethodPut, "")
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[Database](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated)
}

// DatabasesUpdateCall is PATCH on a database.
type DatabasesUpdateCall struct {
	databaseRef
	parameters DatabaseUpdate
}

// Update patches a database (200 or 202).
func (d *DatabasesClient) Update(resourceGroupName, clusterName, databaseName string, parameters DatabaseUpdate) *DatabasesUpdateCall {
	return &DatabasesUpdateCall{databaseRef: d.ref(resourceGroupName, clusterName, databaseName), parameters: parameters}
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
	return sdk.DoResult[Database](ctx, call.c.pipeline, req, http.StatusOK, http.StatusAccepted)
}

// DatabasesGetCall is GET on a database.
type DatabasesGetCall struct {
	databaseRef
}

// Get returns a database.
func (d *DatabasesClient) Get(resourceGroupName, clusterName, databaseName string) *DatabasesGetCall {
	return &DatabasesGetCall{d.ref(resourceGroupName, clusterName, databaseName)}
}

// Do sends the request.
func (call *DatabasesGetCall) Do(ctx context.Context) (*Database, error) {
	req, err := call.request(http.MethodGet, "")
	if err != nil {
		return nil, err
	}
	return sdk.Do[Database](ctx, call.c.pipeline, req, http.StatusOK)
}

// DatabasesDeleteCall is DELETE on a database.
type DatabasesDeleteCall struct {
	databaseRef
}

// Delete deletes a database.
func (d *DatabasesClient) Delete(resourceGroupName, clusterName, databaseName string) *DatabasesDeleteCall {
	return &DatabasesDeleteCall{d.ref(resourceGroupName, clusterName, databaseName)}
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

// DatabasesListKeysCall is POST .../listKeys.
type DatabasesListKeysCall struct {
	databaseRef
}

// ListKeys returns the database access keys.
func (d *DatabasesClient) ListKeys(resourceGroupName, clusterName, databaseName string) *DatabasesListKeysCall {
	return &DatabasesListKeysCall{d.ref(resourceGroupName, clusterName, databaseName)}
}

// Do sends the request.
func (call *DatabasesListKeysCall) Do(ctx context.Context) (*AccessKeys, error) {
	req, err := call.request(http.MethodPost, "/listKeys")
	if err != nil {
		return nil, err
	}
	return sdk.Do[AccessKeys](ctx, call.c.pipeline, req, http.StatusOK)
}

// DatabasesRegenerateKeyCall is POST .../regenerateKey.
type DatabasesRegenerateKeyCall struct {
	databaseRef
	parameters RegenerateKeyParameters
}

// RegenerateKey regenerates one access key (200 with the new keys, or 202).
func (d *DatabasesClient) RegenerateKey(resourceGroupName, clusterName, databaseName string, parameters RegenerateKeyParameters) *DatabasesRegenerateKeyCall {
	return &DatabasesRegenerateKeyCall{databaseRef: d.ref(resourceGroupName, clusterName, databaseName), parameters: parameters}
}

// Do sends the request.
func (call *DatabasesRegenerateKeyCall) Do(ctx context.Context) (*sdk.Result[AccessKeys], error) {
	req, err := call.request(http.MethodPost, "/regenerateKey")
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[AccessKeys](ctx, call.c.pipeline, req, http.StatusOK, http.StatusAccepted)
}

// DatabasesImportCall is POST .../import.
type DatabasesImportCall struct {
	databaseRef
	parameters ImportClusterParameters
}

// Import imports an RDB file into the database.
func (d *DatabasesClient) Import(resourceGroupName, clusterName, databaseName string, parameters ImportClusterParameters) *DatabasesImportCall {
	return &DatabasesImportCall{databaseRef: d.ref(resourceGroupName, clusterName, databaseName), parameters: parameters}
}

// Do sends the request.
func (call *DatabasesImportCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodPost, "/import")
	if err != nil {
		return err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusAccepted)
	return err
}

// DatabasesExportCall is POST .../export.
type DatabasesExportCall struct {
	databaseRef
	parameters ExportClusterParameters
}

// Export exports the database to a blob container.
func (d *DatabasesClient) Export(resourceGroupName, clusterName, databaseName string, parameters ExportClusterParameters) *DatabasesExportCall {
	return &DatabasesExportCall{databaseRef: d.ref(resourceGroupName, clusterName, databaseName), parameters: parameters}
}

// Do sends the request.
func (call *DatabasesExportCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodPost, "/export")
	if err != nil {
		return err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusAccepted)
	return err
}
