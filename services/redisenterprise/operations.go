package redisenterprise

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/sdk"
)

// OperationsClient lists the operations of the Microsoft.Cache provider.
type OperationsClient struct {
	c *Client
}

// OperationsListCall is GET /providers/Microsoft.Cache/operations.
type OperationsListCall struct {
	c *Client
}

// List lists the provider operations.
func (o *OperationsClient) List() *OperationsListCall {
	return &OperationsListCall{c: o.c}
}

func (call *OperationsListCall) request() (*sdk.Request, error) {
	return call.c.newRequest(http.MethodGet, "/providers/Microsoft.Cache/operations")
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
		return sdk.NextLink(p.NextLink)
	})
}

// OperationsStatusClient reads the status of asynchronous operations.
type OperationsStatusClient struct {
	c *Client
}

// OperationsStatusGetCall is GET .../locations/{location}/operationsStatus/{operationId}.
type OperationsStatusGetCall struct {
	c           *Client
	location    string
	operationID string
}

// Get returns the status of an asynchronous operation.
func (o *OperationsStatusClient) Get(location, operationID string) *OperationsStatusGetCall {
	return &OperationsStatusGetCall{c: o.c, location: location, operationID: operationID}
}

// Do sends the request.
func (call *OperationsStatusGetCall) Do(ctx context.Context) (*OperationStatus, error) {
	req, err := call.c.newRequest(http.MethodGet,
		"/subscriptions/{subscriptionId}/providers/Microsoft.Cache/locations/{location}/operationsStatus/{operationId}",
		call.c.subscriptionID, call.location, call.operationID)
	if err != nil {
		return nil, err
	}
	return sdk.Do[OperationStatus](ctx, call.c.pipeline, req, http.StatusOK)
}
