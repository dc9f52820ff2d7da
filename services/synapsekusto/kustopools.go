package synapsekusto

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// KustoPoolsClient manages Kusto pools.
type KustoPoolsClient struct {
	c *Client
}

// kustoPoolRef identifies one pool.
type kustoPoolRef struct {
	c                 *Client
	resourceGroupName string
	workspaceName     string
	kustoPoolName     string
}

func (r kustoPoolRef) request(method, suffix string) (*sdk.Request, error) {
	return r.c.newRequest(method, kustoPoolPath+suffix, r.c.subscriptionID, r.resourceGroupName, r.workspaceName, r.kustoPoolName)
}

// KustoPoolsListByWorkspaceCall lists the pools of a workspace.
type KustoPoolsListByWorkspaceCall struct {
	c                 *Client
	resourceGroupName string
	workspaceName     string
}

// ListByWorkspace lists the pools of a workspace.
func (k *KustoPoolsClient) ListByWorkspace(resourceGroupName, workspaceName string) *KustoPoolsListByWorkspaceCall {
	return &KustoPoolsListByWorkspaceCall{c: k.c, resourceGroupName: resourceGroupName, workspaceName: workspaceName}
}

// Do sends the request.
func (call *KustoPoolsListByWorkspaceCall) Do(ctx context.Context) (*KustoPoolListResult, error) {
	req, err := call.c.newRequest(http.MethodGet, workspacePath+"/kustoPools", call.c.subscriptionID, call.resourceGroupName, call.workspaceName)
	if err != nil {
		return nil, err
	}
	return sdk.Do[KustoPoolListResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// KustoPoolsGetCall is GET on a pool.
type KustoPoolsGetCall struct {
	kustoPoolRef
}

// Get returns a pool.
func (k *KustoPoolsClient) Get(resourceGroupName, workspaceName, kustoPoolName string) *KustoPoolsGetCall {
	return &KustoPoolsGetCall{kustoPoolRef{k.c, resourceGroupName, workspaceName, kustoPoolName}}
}

// Do sends the request.
func (call *KustoPoolsGetCall) Do(ctx context.Context) (*KustoPool, error) {
	req, err := call.request(http.MethodGet, "")
	if err != nil {
		return nil, err
	}
	return sdk.Do[KustoPool](ctx, call.c.pipeline, req, http.StatusOK)
}

// KustoPoolsCreateOrUpdateCall is PUT on a pool.
type KustoPoolsCreateOrUpdateCall struct {
	kustoPoolRef
	parameters  KustoPool
	ifMatch     string
	ifNoneMatch string
}

// CreateOrUpdate creates or replaces a pool (200 or 201).
func (k *KustoPoolsClient) CreateOrUpdate(resourceGroupName, workspaceName, kustoPoolName string, parameters KustoPool) *KustoPoolsCreateOrUpdateCall {
	return &KustoPoolsCreateOrUpdateCall{kustoPoolRef: kustoPoolRef{k.c, resourceGroupName, workspaceName, kustoPoolName}, parameters: parameters}
}

// IfMatch only replaces the pool when its etag matches. "*" requires it to exist.
func (call *KustoPoolsCreateOrUpdateCall) IfMatch(etag string) *KustoPoolsCreateOrUpdateCall {
	call.ifMatch = etag
	return call
}

// IfNoneMatch with "*" only creates the pool when it does not exist yet.
func (call *KustoPoolsCreateOrUpdateCall) IfNoneMatch(etag string) *KustoPoolsCreateOrUpdateCall {
	call.ifNoneMatch = etag
	return call
}

// Do sends the request.
func (call *KustoPoolsCreateOrUpdateCall) Do(ctx context.Context) (*sdk.Result[KustoPool], error) {
	req, err := call.request(http.MethodPut, "")
	if err != nil {
		return nil, err
	}
	req.SetHeader(sdk.HeaderIfMatch, call.ifMatch)
	req.SetHeader(sdk.HeaderIfNoneMatch, call.ifNoneMatch)
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[KustoPool](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated)
}

// KustoPoolsUpdateCall is PATCH on a pool.
type KustoPoolsUpdateCall struct {
	kustoPoolRef
	parameters KustoPoolUpdate
	ifMatch    string
}

// Update patches a pool (200, 201 or 202).
func (k *KustoPoolsClient) Update(resourceGroupName, workspaceName, kustoPoolName string, parameters KustoPoolUpdate) *KustoPoolsUpdateCall {
	return &KustoPoolsUpdateCall{kustoPoolRef: kustoPoolRef{k.c, resourceGroupName, workspaceName, kustoPoolName}, parameters: parameters}
}

// IfMatch only patches the pool when its etag matches.
func (call *KustoPoolsUpdateCall) IfMatch(etag string) *KustoPoolsUpdateCall {
	call.ifMatch = etag
	return call
}

// Do sends the request.
func (call *KustoPoolsUpdateCall) Do(ctx context.Context) (*sdk.Result[KustoPool], error) {
	req, err := call.request(http.MethodPatch, "")
	if err != nil {
		return nil, err
	}
	req.SetHeader(sdk.HeaderIfMatch, call.ifMatch)
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[KustoPool](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated, http.StatusAccepted)
}

// KustoPoolsDeleteCall is DELETE on a pool.
type KustoPoolsDeleteCall struct {
	kustoPoolRef
}

// Delete deletes a pool.
func (k *KustoPoolsClient) Delete(resourceGroupName, workspaceName, kustoPoolName string) *KustoPoolsDeleteCall {
	return &KustoPoolsDeleteCall{kustoPoolRef{k.c, resourceGroupName, workspaceName, kustoPoolName}}
}

// Do sends the request.
func (call *KustoPoolsDeleteCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodDelete, "")
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusAccepted, http.StatusNoContent)
	return err
}

// KustoPoolsCheckNameAvailabilityCall checks whether a pool name is free in a region.
type KustoPoolsCheckNameAvailabilityCall struct {
	c        *Client
	location string
	name     KustoPoolCheckNameRequest
}

// CheckNameAvailability checks whether a pool name is free in a region.
// An empty request type defaults to Microsoft.Synapse/workspaces/kustoPools.
func (k *KustoPoolsClient) CheckNameAvailability(location string, name KustoPoolCheckNameRequest) *KustoPoolsCheckNameAvailabilityCall {
	if name.Type == "" {
		name.Type = KustoPoolResourceType
	}
	return &KustoPoolsCheckNameAvailabilityCall{c: k.c, location: location, name: name}
}

// Do sends the request.
func (call *KustoPoolsCheckNameAvailabilityCall) Do(ctx context.Context) (*CheckNameResult, error) {
	req, err := call.c.newRequest(http.MethodPost,
		"/subscriptions/{subscriptionId}/providers/Microsoft.Synapse/locations/{location}/kustoPoolCheckNameAvailability",
		call.c.subscriptionID, call.location)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.name); err != nil {
		return nil, err
	}
	return sdk.Do[CheckNameResult](ctx, call.c.pipeline, req, http.StatusOK)
}
