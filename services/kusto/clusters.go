package kusto

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// ClustersClient manages Kusto clusters.
type ClustersClient struct {
	c *Client
}

// clusterRef identifies one cluster.
type clusterRef struct {
	c                 *Client
	resourceGroupName string
	clusterName       string
}

func (r clusterRef) request(method, suffix string) (*sdk.Request, error) {
	return r.c.newRequest(method, clusterPath+suffix, r.c.subscriptionID, r.resourceGroupName, r.clusterName)
}

// ClustersGetCall is GET on a cluster.
type ClustersGetCall struct {
	clusterRef
}

// Get returns a cluster.
func (cl *ClustersClient) Get(resourceGroupName, clusterName string) *ClustersGetCall {
	return &ClustersGetCall{clusterRef{cl.c, resourceGroupName, clusterName}}
}

// Do sends the request.
func (call *ClustersGetCall) Do(ctx context.Context) (*Cluster, error) {
	req, err := call.request(http.MethodGet, "")
	if err != nil {
		return nil, err
	}
	return sdk.Do[Cluster](ctx, call.c.pipeline, req, http.StatusOK)
}

// ClustersCreateOrUpdateCall is PUT on a cluster.
type ClustersCreateOrUpdateCall struct {
	clusterRef
	parameters Cluster
}

// CreateOrUpdate creates or replaces a cluster (200 or 201).
func (cl *ClustersClient) CreateOrUpdate(resourceGroupName, clusterName string, parameters Cluster) *ClustersCreateOrUpdateCall {
	return &ClustersCreateOrUpdateCall{clusterRef: clusterRef{cl.c, resourceGroupName, clusterName}, parameters: parameters}
}

// Do sends the request.
func (call *ClustersCreateOrUpdateCall) Do(ctx context.Context) (*sdk.Result[Cluster], error) {
	req, err := call.request(http.MethodPut, "")
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[Cluster](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated)
}

// ClustersUpdateCall is PATCH on a cluster.
type ClustersUpdateCall struct {
	clusterRef
	parameters ClusterUpdate
}

// Update patches a cluster (200, 201 or 202).
func (cl *ClustersClient) Update(resourceGroupName, clusterName string, parameters ClusterUpdate) *ClustersUpdateCall {
	return &ClustersUpdateCall{clusterRef: clusterRef{cl.c, resourceGroupName, clusterName}, parameters: parameters}
}

// Do sends the request.
func (call *ClustersUpdateCall) Do(ctx context.Context) (*sdk.Result[Cluster], error) {
	req, err := call.request(http.MethodPatch, "")
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[Cluster](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated, http.StatusAccepted)
}

// ClustersDeleteCall is DELETE on a cluster.
type ClustersDeleteCall struct {
	clusterRef
}

// Delete deletes a cluster.
func (cl *ClustersClient) Delete(resourceGroupName, clusterName string) *ClustersDeleteCall {
	return &ClustersDeleteCall{clusterRef{cl.c, resourceGroupName, clusterName}}
}

// Do sends the request.
func (call *ClustersDeleteCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodDelete, "")
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusAccepted, http.StatusNoContent)
	return err
}

// ClustersStopCall is POST .../stop.
type ClustersStopCall struct {
	clusterRef
}

// Stop stops a cluster.
func (cl *ClustersClient) Stop(resourceGroupName, clusterName string) *ClustersStopCall {
	return &ClustersStopCall{clusterRef{cl.c, resourceGroupName, clusterName}}
}

// Do sends the request.
func (call *ClustersStopCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodPost, "/stop")
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusAccepted)
	return err
}

// ClustersStartCall is POST .../start.
type ClustersStartCall struct {
	clusterRef
}

// Start starts a stopped cluster.
func (cl *ClustersClient) Start(resourceGroupName, clusterName string) *ClustersStartCall {
	return &ClustersStartCall{clusterRef{cl.c, resourceGroupName, clusterName}}
}

// Do sends the request.
func (call *ClustersStartCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodPost, "/start")
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusAccepted)
	return err
}

// ClustersListSkusByResourceCall lists the SKUs an existing cluster can move to.
type ClustersListSkusByResourceCall struct {
	clusterRef
}

// ListSkusByResource lists the SKUs an existing cluster can move to.
func (cl *ClustersClient) ListSkusByResource(resourceGroupName, clusterName string) *ClustersListSkusByResourceCall {
	return &ClustersListSkusByResourceCall{clusterRef{cl.c, resourceGroupName, clusterName}}
}

// Do sends the request.
func (call *ClustersListSkusByResourceCall) Do(ctx context.Context) (*ListResourceSkusResult, error) {
	req, err := call.request(http.MethodGet, "/skus")
	if err != nil {
		return nil, err
	}
	return sdk.Do[ListResourceSkusResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// ClustersListByResourceGroupCall lists the clusters in a resource group.
type ClustersListByResourceGroupCall struct {
	c                 *Client
	resourceGroupName string
}

// ListByResourceGroup lists the clusters in a resource group.
func (cl *ClustersClient) ListByResourceGroup(resourceGroupName string) *ClustersListByResourceGroupCall {
	return &ClustersListByResourceGroupCall{c: cl.c, resourceGroupName: resourceGroupName}
}

// Do sends the request.
func (call *ClustersListByResourceGroupCall) Do(ctx context.Context) (*ClusterListResult, error) {
	req, err := call.c.newRequest(http.MethodGet,
		"/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.Kusto/clusters",
		call.c.subscriptionID, call.resourceGroupName)
	if err != nil {
		return nil, err
	}
	return sdk.Do[ClusterListResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// ClustersListCall lists the clusters in the subscription.
type ClustersListCall struct {
	c *Client
}

// List lists the clusters in the subscription.
func (cl *ClustersClient) List() *ClustersListCall {
	return &ClustersListCall{c: cl.c}
}

// Do sends the request.
func (call *ClustersListCall) Do(ctx context.Context) (*ClusterListResult, error) {
	req, err := call.c.newRequest(http.MethodGet, "/subscriptions/{subscriptionId}/providers/Microsoft.Kusto/clusters", call.c.subscriptionID)
	if err != nil {
		return nil, err
	}
	return sdk.Do[ClusterListResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// ClustersListSkusCall lists the SKUs offered in the subscription.
type ClustersListSkusCall struct {
	c *Client
}

// ListSkus lists the SKUs offered in the subscription.
func (cl *ClustersClient) ListSkus() *ClustersListSkusCall {
	return &ClustersListSkusCall{c: cl.c}
}

// Do sends the request.
func (call *ClustersListSkusCall) Do(ctx context.Context) (*SkuDescriptionList, error) {
	req, err := call.c.newRequest(http.MethodGet, "/subscriptions/{subscriptionId}/providers/Microsoft.Kusto/skus", call.c.subscriptionID)
	if err != nil {
		return nil, err
	}
	return sdk.Do[SkuDescriptionList](ctx, call.c.pipeline, req, http.StatusOK)
}

// ClustersCheckNameAvailabilityCall checks whether a cluster name is free in a location.
type ClustersCheckNameAvailabilityCall struct {
	c        *Client
	location string
	request  ClusterCheckNameRequest
}

// CheckNameAvailability checks whether a cluster name is free in a location.
// An empty request type defaults to Microsoft.Kusto/clusters.
func (cl *ClustersClient) CheckNameAvailability(location string, request ClusterCheckNameRequest) *ClustersCheckNameAvailabilityCall {
	if request.Type == "" {
		request.Type = ClusterResourceType
	}
	return &ClustersCheckNameAvailabilityCall{c: cl.c, location: location, request: request}
}

// Do sends the request.
func (call *ClustersCheckNameAvailabilityCall) Do(ctx context.Context) (*CheckNameResult, error) {
	req, err := call.c.newRequest(http.MethodPost,
		"/subscriptions/{subscriptionId}/providers/Microsoft.Kusto/locations/{location}/checkNameAvailability",
		call.c.subscriptionID, call.location)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.request); err != nil {
		return nil, err
	}
	return sdk.Do[CheckNameResult](ctx, call.c.pipeline, req, http.StatusOK)
}
