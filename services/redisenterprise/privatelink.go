package redisenterprise

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

const privateEndpointConnectionPath = clusterPath + "/privateEndpointConnections/{privateEndpointConnectionName}"

// PrivateEndpointConnectionsClient manages private endpoint connections of a cluster.
type PrivateEndpointConnectionsClient struct {
	c *Client
}

// PrivateEndpointConnectionsListCall lists the connections of a cluster.
type PrivateEndpointConnectionsListCall struct {
	c                 *Client
	resourceGroupName string
	clusterName       string
}

// List lists the connections of a cluster.
func (p *PrivateEndpointConnectionsClient) List(resourceGroupName, clusterName string) *PrivateEndpointConnectionsListCall {
	return &PrivateEndpointConnectionsListCall{c: p.c, resourceGroupName: resourceGroupName, clusterName: clusterName}
}

// Do sends the request.
func (call *PrivateEndpointConnectionsListCall) Do(ctx context.Context) (*PrivateEndpointConnectionListResult, error) {
	req, err := call.c.newRequest(http.MethodGet, clusterPath+"/privateEndpointConnections",
		call.c.subscriptionID, call.resourceGroupName, call.clusterName)
	if err != nil {
		return nil, err
	}
	return sdk.Do[PrivateEndpointConnectionListResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// connectionRef identifies one private endpoint connection.
type connectionRef struct {
	c                 *Client
	resourceGroupName string
	clusterName       string
	connectionName    string
}

func (r connectionRef) request(method string) (*sdk.Request, error) {
	return r.c.newRequest(method, privateEndpointConnectionPath,
		r.c.subscriptionID, r.resourceGroupName, r.clusterName, r.connectionName)
}

// PrivateEndpointConnectionsGetCall is GET on a connection.
type PrivateEndpointConnectionsGetCall struct {
	connectionRef
}

// Get returns a connection.
func (p *PrivateEndpointConnectionsClient) Get(resourceGroupName, clusterName, connectionName string) *PrivateEndpointConnectionsGetCall {
	return &PrivateEndpointConnectionsGetCall{connectionRef{p.c, resourceGroupName, clusterName, connectionName}}
}

// Do sends the request.
func (call *PrivateEndpointConnectionsGetCall) Do(ctx context.Context) (*PrivateEndpointConnection, error) {
	req, err := call.request(http.MethodGet)
	if err != nil {
		return nil, err
	}
	return sdk.Do[PrivateEndpointConnection](ctx, call.c.pipeline, req, http.StatusOK)
}

// PrivateEndpointConnectionsPutCall is PUT on a connection.
type PrivateEndpointConnectionsPutCall struct {
	connectionRef
	properties PrivateEndpointConnection
}

// Put approves or rejects a connection. The service answers 201.
func (p *PrivateEndpointConnectionsClient) Put(resourceGroupName, clusterName, connectionName string, properties PrivateEndpointConnection) *PrivateEndpointConnectionsPutCall {
	return &PrivateEndpointConnectionsPutCall{
		connectionRef: connectionRef{p.c, resourceGroupName, clusterName, connectionName},
		properties:    properties,
	}
}

// Do sends the request.
func (call *PrivateEndpointConnectionsPutCall) Do(ctx context.Context) (*PrivateEndpointConnection, error) {
	req, err := call.request(http.MethodPut)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.properties); err != nil {
		return nil, err
	}
	return sdk.Do[PrivateEndpointConnection](ctx, call.c.pipeline, req, http.StatusCreated)
}

// PrivateEndpointConnectionsDeleteCall is DELETE on a connection.
type PrivateEndpointConnectionsDeleteCall struct {
	connectionRef
}

// Delete deletes a connection.
func (p *PrivateEndpointConnectionsClient) Delete(resourceGroupName, clusterName, connectionName string) *PrivateEndpointConnectionsDeleteCall {
	return &PrivateEndpointConnectionsDeleteCall{connectionRef{p.c, resourceGroupName, clusterName, connectionName}}
}

// Do sends the request.
func (call *PrivateEndpointConnectionsDeleteCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodDelete)
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusNoContent)
	return err
}

// PrivateLinkResourcesClient lists private link resources.
type PrivateLinkResourcesClient struct {
	c *Client
}

// PrivateLinkResourcesListByClusterCall lists the private link resources of a cluster.
type PrivateLinkResourcesListByClusterCall struct {
	c                 *Client
	resourceGroupName string
	clusterName       string
}

// ListByCluster lists the private link resources of a cluster.
func (p *PrivateLinkResourcesClient) ListByCluster(resourceGroupName, clusterName string) *PrivateLinkResourcesListByClusterCall {
	return &PrivateLinkResourcesListByClusterCall{c: p.c, resourceGroupName: resourceGroupName, clusterName: clusterName}
}

// Do sends the request.
func (call *PrivateLinkResourcesListByClusterCall) Do(ctx context.Context) (*PrivateLinkResourceListResult, error) {
	req, err := call.c.newRequest(http.MethodGet, clusterPath+"/privateLinkResources",
		call.c.subscriptionID, call.resourceGroupName, call.clusterName)
	if err != nil {
		return nil, err
	}
	return sdk.Do[PrivateLinkResourceListResult](ctx, call.c.pipeline, req, http.StatusOK)
}
