// Package webpubsub is a client for Azure Web PubSub resources
// (Microsoft.SignalRService/webPubSub, api-version 2023-06-01-preview).
//
// The data plane of a running service lives in the dataplane subpackage.
package webpubsub

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/sdk"
)

// DefaultAPIVersion is the API version this package is written against.
const DefaultAPIVersion = "2023-06-01-preview"

const (
	provider     = "/providers/Microsoft.SignalRService"
	locationPath = "/subscriptions/{subscriptionId}" + provider + "/locations/{location}"
	resourcePath = "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}" + provider + "/webPubSub/{resourceName}"
)

// Client is the entry point for Web PubSub management operations.
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

// Operations returns the operations client.
func (c *Client) Operations() *OperationsClient { return &OperationsClient{c} }

// WebPubSub returns the resource client.
func (c *Client) WebPubSub() *WebPubSubClient { return &WebPubSubClient{c} }

// Hubs returns the hub settings client.
func (c *Client) Hubs() *HubsClient { return &HubsClient{c} }

// Usages returns the quota usage client.
func (c *Client) Usages() *UsagesClient { return &UsagesClient{c} }

func (c *Client) newRequest(method, template string, params ...string) (*sdk.Request, error) {
	path, err := sdk.FormatPath(template, params...)
	if err != nil {
		return nil, err
	}
	return c.pipeline.NewRequest(method, path), nil
}

// OperationsClient lists the operations of the Microsoft.SignalRService provider.
type OperationsClient struct {
	c *Client
}

// OperationsListCall is GET /providers/Microsoft.SignalRService/operations.
type OperationsListCall struct {
	c *Client
}

// List lists the provider operations.
func (o *OperationsClient) List() *OperationsListCall {
	return &OperationsListCall{c: o.c}
}

func (call *OperationsListCall) request() (*sdk.Request, error) {
	return call.c.newRequest(http.MethodGet, provider+"/operations")
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

// UsagesClient reads quota usage per region.
type UsagesClient struct {
	c *Client
}

// UsagesListCall is GET .../locations/{location}/usages.
type UsagesListCall struct {
	c        *Client
	location string
}

// List lists the quota usage of a region.
func (u *UsagesClient) List(location string) *UsagesListCall {
	return &UsagesListCall{c: u.c, location: location}
}

func (call *UsagesListCall) request() (*sdk.Request, error) {
	return call.c.newRequest(http.MethodGet, locationPath+"/usages", call.c.subscriptionID, call.location)
}

// Do fetches the first page.
func (call *UsagesListCall) Do(ctx context.Context) (*UsageList, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[UsageList](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *UsagesListCall) Pager() *sdk.Pager[*UsageList] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, func(p *UsageList) string {
		return sdk.NextLink(p.NextLink)
	})
}
