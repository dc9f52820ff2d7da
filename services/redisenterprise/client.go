// Package redisenterprise is a client for the Azure Redis Enterprise
// management API (Microsoft.Cache/redisEnterprise, api-version 2021-03-01).
package redisenterprise

import (
	"github.com/yaroslav/azrest/sdk"
)

// DefaultAPIVersion is the API version this package is written against.
const DefaultAPIVersion = "2021-03-01"

const (
	clusterPath  = "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.Cache/redisEnterprise/{clusterName}"
	databasePath = clusterPath + "/databases/{databaseName}"
)

// Client is the entry point for Redis Enterprise operations.
type Client struct {
	pipeline       *sdk.Client
	subscriptionID string
}

// NewClient creates a client for one subscription. The endpoint defaults to
// Azure Resource Manager and the API version to DefaultAPIVersion.
func NewClient(subscriptionID string, config sdk.ClientConfig) (*Client, error) {
	if config.Endpoint == "" {
		config.Endpoint = sdk.DefaultEndpoint
	}
	if config.APIVersion == "" {
		config.APIVersion = DefaultAPIVersion
	}

	pipeline, err := sdk.NewClient(config)
	if err != nil {
		return nil, err
	}

	return &Client{pipeline: pipeline, subscriptionID: subscriptionID}, nil
}

// Operations returns the provider operations client.
func (c *Client) Operations() *OperationsClient { return &OperationsClient{c} }

// OperationsStatus returns the async operation status client.
func (c *Client) OperationsStatus() *OperationsStatusClient { return &OperationsStatusClient{c} }

// Clusters returns the clusters client.
func (c *Client) Clusters() *ClustersClient { return &ClustersClient{c} }

// Databases returns the databases client.
func (c *Client) Databases() *DatabasesClient { return &DatabasesClient{c} }

// PrivateEndpointConnections returns the private endpoint connections client.
func (c *Client) PrivateEndpointConnections() *PrivateEndpointConnectionsClient {
	return &PrivateEndpointConnectionsClient{c}
}

// PrivateLinkResources returns the private link resources client.
func (c *Client) PrivateLinkResources() *PrivateLinkResourcesClient {
	return &PrivateLinkResourcesClient{c}
}

// newRequest renders the path template and creates a request.
func (c *Client) newRequest(method, template string, params ...string) (*sdk.Request, error) {
	path, err := sdk.FormatPath(template, params...)
	if err != nil {
		return nil, err
	}
	return c.pipeline.NewRequest(method, path), nil
}
