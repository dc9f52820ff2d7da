// Package billingbenefits is a client for savings plans and reservation
// purchases (Microsoft.BillingBenefits, api-version 2022-11-01).
//
// Every operation is tenant scoped, so the client carries no subscription.
package billingbenefits

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/sdk"
)

// DefaultAPIVersion is the API version this package is written against.
const DefaultAPIVersion = "2022-11-01"

const (
	provider  = "/providers/Microsoft.BillingBenefits"
	orderPath = provider + "/savingsPlanOrders/{savingsPlanOrderId}"
	planPath  = orderPath + "/savingsPlans/{savingsPlanId}"
)

// Client is the entry point for billing benefit operations.
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

// SavingsPlanOrderAliases returns the savings plan order alias client.
func (c *Client) SavingsPlanOrderAliases() *SavingsPlanOrderAliasesClient {
	return &SavingsPlanOrderAliasesClient{c}
}

// SavingsPlanOrders returns the savings plan orders client.
func (c *Client) SavingsPlanOrders() *SavingsPlanOrdersClient { return &SavingsPlanOrdersClient{c} }

// SavingsPlans returns the savings plans client.
func (c *Client) SavingsPlans() *SavingsPlansClient { return &SavingsPlansClient{c} }

// ReservationOrderAliases returns the reservation order alias client.
func (c *Client) ReservationOrderAliases() *ReservationOrderAliasesClient {
	return &ReservationOrderAliasesClient{c}
}

func (c *Client) newRequest(method, template string, params ...string) (*sdk.Request, error) {
	path, err := sdk.FormatPath(template, params...)
	if err != nil {
		return nil, err
	}
	return c.pipeline.NewRequest(method, path), nil
}

// OperationsClient lists the operations of the Microsoft.BillingBenefits provider.
type OperationsClient struct {
	c *Client
}

// OperationsListCall is GET /providers/Microsoft.BillingBenefits/operations.
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

// ValidatePurchaseCall is POST /providers/Microsoft.BillingBenefits/validate.
type ValidatePurchaseCall struct {
	c    *Client
	body SavingsPlanPurchaseValidateRequest
}

// ValidatePurchase checks whether the savings plan purchases in body would succeed.
func (c *Client) ValidatePurchase(body SavingsPlanPurchaseValidateRequest) *ValidatePurchaseCall {
	return &ValidatePurchaseCall{c: c, body: body}
}

// Do sends the request.
func (call *ValidatePurchaseCall) Do(ctx context.Context) (*SavingsPlanValidateResponse, error) {
	req, err := call.c.newRequest(http.MethodPost, provider+"/validate")
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.body); err != nil {
		return nil, err
	}
	return sdk.Do[SavingsPlanValidateResponse](ctx, call.c.pipeline, req, http.StatusOK)
}
