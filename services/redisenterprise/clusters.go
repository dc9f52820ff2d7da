package redisenterprise

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// ClustersClient manages Redis Enterprise clusters.
type ClustersClient struct {
	c *Client
}

// ClustersCreateCall is PUT on a cluster.
type ClustersCreateCall struct {
	c                 *Client
	resourceGroupName string
	clusterName       string
	parameters        Cluster
}

// Create creates or replaces a cluster. The service answers 201 while the
// cluster is provisioned and 200 when an existing cluster was replaced.
func (cl *ClustersClient) Create(resourceGroupName, clusterName string, parameters Cluster) *ClustersCreateCall {
	return &ClustersCreateCall{c: cl.c, resourceGroupName: resourceGroupName, clusterName: clusterName, parameters: parameters}
}

// Do sends the request.
func (call *ClustersCreateCall) Do(ctx context.Context) (*sdk.Result[Cluster], error) {
	req, err := call.c.newRequest(http.MethodPut, clusterPath, call.c.subscriptionID, call.resourceGroupName, call.clusterName)
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
	c                 *Client
	resourceGroupName string
	clusterName       string
	parameters        ClusterUpdate
}

// Update patches a cluster.
func (cl *ClustersClient) Update(resourceGroupName, clusterName string, parameters ClusterUpdate) *ClustersUpdateCall {
	return &ClustersUpdateCall{c: cl.c, resourceGroupName: resourceGroupName, clusterName: clusterName, parameters: parameters}
}

// Do sends the request.
func (call *ClustersUpdateCall) Do(ctx context.Context) (*sdk.Result[Cluster], error) {
	req, err := call.c.newRequest(http.MethodPatch, clusterPath, call.c.subscriptionID, call.resourceGroupName, call.clusterName)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[Cluster](ctx, call.c.pipeline, req, http.StatusOK, http.StatusAccepted)
}

// ClustersDeleteCall is DELETE on a cluster.
type ClustersDeleteCall struct {
	c                 *Client
	resourceGroupName string
	clusterName       string
}

// Delete deletes a cluster.
func (cl *ClustersClient) Delete(resourceGroupName, clusterName string) *ClustersDeleteCall {
	return &ClustersDeleteCall{c: cl.c, resourceGroupName: resourceGroupName, clusterName: clusterName}
}

// Do sends the request.
func (call *ClustersDeleteCall) Do(ctx context.Context) error {
	req, err := call.c.newRequest(http.MethodDelete, clusterPath, call.c.subscriptionID, call.resourceGroupName, call.clusterName)
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusAccepted, http.StatusNoContent)
	return err
}

// ClustersGetCall is GET on a cluster.
type ClustersGetCall struct {
	c                 *Client
	resourceGroupName string
	clusterName       string
}

// Get returns a cluster.
func (cl *ClustersClient) Get(resourceGroupName, clusterName string) *ClustersGetCall {
	return &ClustersGetCall{c: cl.c, resourceGroupName: resourceGroupName, clusterName: clusterName}
}

// Do sends the request.
func (call *ClustersGetCall) Do(ctx context.Context) (*Cluster, error) {
	req, err := call.c.newRequest(http.MethodGet, clusterPath, call.c.subscriptionID, call.resourceGroupName, call.clusterName)
	if err != nil {
		return nil, err
	}
	return sdk.Do[Cluster](ctx, call.c.pipeline, req, http.StatusOK)
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

func (call *ClustersListByResourceGroupCall) request() (*sdk.Request, error) {
	return call.c.newRequest(http.MethodGet,
		"/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.Cache/redisEnterprise",
		call.c.subscriptionID, call.resourceGroupName)
}

// Do fetches the first page.
func (call *ClustersListByResourceGroupCall) Do(ctx context.Context) (*ClusterList, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[ClusterList](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *ClustersListByResourceGroupCall) Pager() *sdk.Pager[*ClusterList] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, clusterListNextLink)
}

// ClustersListCall lists the clusters in the subscription.
type ClustersListCall struct {
	c *Client
}

// List lists the clusters in the subscription.
func (cl *ClustersClient) List() *ClustersListCall {
	return &ClustersListCall{c: cl.c}
}

func (call *ClustersListCall) request() (*sdk.Request, error) {
	return call.c.newRequest(http.MethodGet,
		"/subscriptions/{subscriptionId}/providers/Microsoft.Cache/redisEnterprise",
		call.c.subscriptionID)
}

// Do fetches the first page.
func (call *ClustersListCall) Do(ctx context.Context) (*ClusterList, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[ClusterList](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *ClustersListCall) Pager() *sdk.Pager[*ClusterList] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, clusterListNextLink)
}

func clusterListNextLink(p *ClusterList) string {
	return sdk.NextLink(p.NextLink)
}
