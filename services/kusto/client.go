// Package kusto is a client for the Azure Data Explorer (Kusto) management API
// (Microsoft.Kusto, api-version 2019-09-07).
package kusto

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/sdk"
)

// DefaultAPIVersion is the API version this package is written against.
const DefaultAPIVersion = "2019-09-07"

const (
	clusterPath  = "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.Kusto/clusters/{clusterName}"
	databasePath = clusterPath + "/databases/{databaseName}"
)

// Client is the entry point for Kusto operations.
type Client struct {
	pipeline       *sdk.Client
	subscriptionID string
}

// NewClient creates a client for one subscription.
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

// Clusters returns the clusters client.
func (c *Client) Clusters() *ClustersClient { return &ClustersClient{c} }

// Databases returns the databases client.
func (c *Client) Databases() *DatabasesClient { return &DatabasesClient{c} }

// Operations returns the provider operations client.
func (c *Client) Operations() *OperationsClient { return &OperationsClient{c} }

func (c *Client) newRequest(method, template string, params ...string) (*sdk.Request, error) {
	path, err := sdk.FormatPath(template, params...)
	if err != nil {
		return nil, err
	}
	return c.pipeline.NewRequest(method, path), nil
}

// OperationsClient lists the operations of the Microsoft.Kusto provider.
type OperationsClient struct {
	c *Client
}

// OperationsListCall is GET /providers/Microsoft.Kusto/operations.
type OperationsListCall struct {
	c *Client
}

// List lists the provider operations.
func (o *OperationsClient) List() *OperationsListCall {
	return &OperationsListCall{c: o.c}
}

func (call *OperationsListCall) request() (*sdk.Request, error) {
	return call.c.newRequest(http.MethodGet, "/providers/Microsoft.Kusto/operations")
}

// Do fetches the first page.
func (call *OperationsListCall) Do(ctx context.Context) (*models.OperationListResult, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[models.OperationListResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *OperationsListCall) Pager() *sdk.Pager[*models.OperationListResult] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, func(p *models.OperationListResult) string {
		return p.NextPageLink()
	})
}
