// Package help is a client for Azure self-help diagnostics, solutions and
// troubleshooters (Microsoft.Help, api-version 2023-09-01-preview).
//
// Resources live under an arbitrary ARM scope, e.g. a subscription or a
// single resource ID. Scopes are passed as resource ID paths.
package help

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/sdk"
)

// DefaultAPIVersion is the API version this package is written against.
const DefaultAPIVersion = "2023-09-01-preview"

const (
	provider           = "/providers/Microsoft.Help"
	scopePath          = "/{+scope}" + provider
	diagnosticPath     = scopePath + "/diagnostics/{diagnosticsResourceName}"
	solutionPath       = scopePath + "/solutions/{solutionResourceName}"
	troubleshooterPath = scopePath + "/troubleshooters/{troubleshooterName}"
)

// Client is the entry point for self-help operations.
type Client struct {
	pipeline *sdk.Client
}

// NewClient creates a client.
func NewClient(config sdk.ClientConfig) (*Client, error) {
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

	return &Client{pipeline: pipeline}, nil
}

// Operations returns the operations client.
func (c *Client) Operations() *OperationsClient { return &OperationsClient{c} }

// Diagnostics returns the diagnostics client.
func (c *Client) Diagnostics() *DiagnosticsClient { return &DiagnosticsClient{c} }

// DiscoverySolution returns the solution discovery client.
func (c *Client) DiscoverySolution() *DiscoverySolutionClient { return &DiscoverySolutionClient{c} }

// Solution returns the solutions client.
func (c *Client) Solution() *SolutionClient { return &SolutionClient{c} }

// Troubleshooters returns the troubleshooters client.
func (c *Client) Troubleshooters() *TroubleshootersClient { return &TroubleshootersClient{c} }

func (c *Client) newRequest(method, template string, params ...string) (*sdk.Request, error) {
	path, err := sdk.FormatPath(template, params...)
	if err != nil {
		return nil, err
	}
	return c.pipeline.NewRequest(method, path), nil
}

// OperationsClient lists the operations of the Microsoft.Help provider.
type OperationsClient struct {
	c *Client
}

// OperationsListCall is GET /providers/Microsoft.Help/operations.
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

// CheckNameAvailabilityCall is POST {scope}/providers/Microsoft.Help/checkNameAvailability.
type CheckNameAvailabilityCall struct {
	c     *Client
	scope string
	body  CheckNameAvailabilityRequest
}

// CheckNameAvailability checks whether a diagnostic, solution or
// troubleshooter name is free under scope.
func (c *Client) CheckNameAvailability(scope string, body CheckNameAvailabilityRequest) *CheckNameAvailabilityCall {
	return &CheckNameAvailabilityCall{c: c, scope: scope, body: body}
}

// Do sends the request.
func (call *CheckNameAvailabilityCall) Do(ctx context.Context) (*CheckNameAvailabilityResponse, error) {
	req, err := call.c.newRequest(http.MethodPost, scopePath+"/checkNameAvailability", call.scope)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.body); err != nil {
		return nil, err
	}
	return sdk.Do[CheckNameAvailabilityResponse](ctx, call.c.pipeline, req, http.StatusOK)
}
