// Package synapsekusto is a client for Kusto pools in Azure Synapse workspaces
// (Microsoft.Synapse, api-version 2021-04-01-preview).
package synapsekusto

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/sdk"
)

// DefaultAPIVersion is the API version this package is written against.
const DefaultAPIVersion = "2021-04-01-preview"

const (
	workspacePath = "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.Synapse/workspaces/{workspaceName}"
	kustoPoolPath = workspacePath + "/kustoPools/{kustoPoolName}"
	databasePath  = kustoPoolPath + "/databases/{databaseName}"
)

// Client is the entry point for Kusto pool operations.
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

// KustoOperations returns the Kusto operations client.
func (c *Client) KustoOperations() *KustoOperationsClient { return &KustoOperationsClient{c} }

// KustoPools returns the Kusto pools client.
func (c *Client) KustoPools() *KustoPoolsClient { return &KustoPoolsClient{c} }

// Databases returns the databases client.
func (c *Client) Databases() *DatabasesClient { return &DatabasesClient{c} }

// DataConnections returns the data connections client.
func (c *Client) DataConnections() *DataConnectionsClient { return &DataConnectionsClient{c} }

// KustoPoolPrincipalAssignments returns the pool principal assignments client.
func (c *Client) KustoPoolPrincipalAssignments() *KustoPoolPrincipalAssignmentsClient {
	return &KustoPoolPrincipalAssignmentsClient{c}
}

// DatabasePrincipalAssignments returns the database principal assignments client.
func (c *Client) DatabasePrincipalAssignments() *DatabasePrincipalAssignmentsClient {
	return &DatabasePrincipalAssignmentsClient{c}
}

func (c *Client) newRequest(method, template string, params ...string) (*sdk.Request, error) {
	path, err := sdk.FormatPath(template, params...)
	if err != nil {
		return nil, err
	}
	return c.pipeline.NewRequest(method, path), nil
}

// KustoOperationsClient lists the Kusto operations of the Synapse provider.
type KustoOperationsClient struct {
	c *Client
}

// KustoOperationsListCall is GET /providers/Microsoft.Synapse/kustooperations.
type KustoOperationsListCall struct {
	c *Client
}

// List lists the Kusto operations.
func (o *KustoOperationsClient) List() *KustoOperationsListCall {
	return &KustoOperationsListCall{c: o.c}
}

func (call *KustoOperationsListCall) request() (*sdk.Request, error) {
	return call.c.newRequest(http.MethodGet, "/providers/Microsoft.Synapse/kustooperations")
}

// Do fetches the first page.
func (call *KustoOperationsListCall) Do(ctx context.Context) (*models.OperationListResult, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[models.OperationListResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *KustoOperationsListCall) Pager() *sdk.Pager[*models.OperationListResult] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, func(p *models.OperationListResult) string {
		return p.NextPageLink()
	})
}
