package billingbenefits

import (
	"context"
	"net/http"
	"strconv"

	"github.com/yaroslav/azrest/sdk"
)

// SavingsPlanOrdersClient reads savings plan orders.
type SavingsPlanOrdersClient struct {
	c *Client
}

// SavingsPlanOrdersGetCall is GET on an order.
type SavingsPlanOrdersGetCall struct {
	c       *Client
	orderID string
	expand  string
}

// Get returns an order.
func (o *SavingsPlanOrdersClient) Get(orderID string) *SavingsPlanOrdersGetCall {
	return &SavingsPlanOrdersGetCall{c: o.c, orderID: orderID}
}

// Expand adds related data, e.g. "schedule" for the payment plan.
func (call *SavingsPlanOrdersGetCall) Expand(expand string) *SavingsPlanOrdersGetCall {
	call.expand = expand
	return call
}

// Do sends the request.
func (call *SavingsPlanOrdersGetCall) Do(ctx context.Context) (*SavingsPlanOrderModel, error) {
	req, err := call.c.newRequest(http.MethodGet, orderPath, call.orderID)
	if err != nil {
		return nil, err
	}
	req.SetQuery("$expand", call.expand)
	return sdk.Do[SavingsPlanOrderModel](ctx, call.c.pipeline, req, http.StatusOK)
}

// SavingsPlanOrdersListCall lists the orders visible to the caller.
type SavingsPlanOrdersListCall struct {
	c *Client
}

// List lists the orders visible to the caller.
func (o *SavingsPlanOrdersClient) List() *SavingsPlanOrdersListCall {
	return &SavingsPlanOrdersListCall{c: o.c}
}

func (call *SavingsPlanOrdersListCall) request() (*sdk.Request, error) {
	return call.c.newRequest(http.MethodGet, provider+"/savingsPlanOrders")
}

// Do fetches the first page.
func (call *SavingsPlanOrdersListCall) Do(ctx context.Context) (*SavingsPlanOrderModelList, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[SavingsPlanOrderModelList](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *SavingsPlanOrdersListCall) Pager() *sdk.Pager[*SavingsPlanOrderModelList] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, func(p *SavingsPlanOrderModelList) string {
		return sdk.NextLink(p.NextLink)
	})
}

// SavingsPlanOrdersElevateCall is POST .../savingsPlanOrders/{id}/elevate.
type SavingsPlanOrdersElevateCall struct {
	c       *Client
	orderID string
}

// Elevate grants the caller the owner role on the order.
func (o *SavingsPlanOrdersClient) Elevate(orderID string) *SavingsPlanOrdersElevateCall {
	return &SavingsPlanOrdersElevateCall{c: o.c, orderID: orderID}
}

// Do sends the request.
func (call *SavingsPlanOrdersElevateCall) Do(ctx context.Context) (*RoleAssignmentEntity, error) {
	req, err := call.c.newRequest(http.MethodPost, orderPath+"/elevate", call.orderID)
	if err != nil {
		return nil, err
	}
	return sdk.Do[RoleAssignmentEntity](ctx, call.c.pipeline, req, http.StatusOK)
}

// SavingsPlansClient reads and updates savings plans.
type SavingsPlansClient struct {
	c *Client
}

// SavingsPlansListCall lists the plans of one order.
type SavingsPlansListCall struct {
	c       *Client
	orderID string
}

// List lists the plans of an order.
func (s *SavingsPlansClient) List(orderID string) *SavingsPlansListCall {
	return &SavingsPlansListCall{c: s.c, orderID: orderID}
}

func (call *SavingsPlansListCall) request() (*sdk.Request, error) {
	return call.c.newRequest(http.MethodGet, orderPath+"/savingsPlans", call.orderID)
}

// Do fetches the first page.
func (call *SavingsPlansListCall) Do(ctx context.Context) (*SavingsPlanModelList, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[SavingsPlanModelList](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *SavingsPlansListCall) Pager() *sdk.Pager[*SavingsPlanModelList] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, func(p *SavingsPlanModelList) string {
		return sdk.NextLink(p.NextLink)
	})
}

// SavingsPlansListAllCall lists every plan visible to the caller.
type SavingsPlansListAllCall struct {
	c              *Client
	filter         string
	orderBy        string
	refreshSummary string
	skipToken      string
	selectedState  string
	take           *float64
}

// ListAll lists every plan visible to the caller.
func (s *SavingsPlansClient) ListAll() *SavingsPlansListAllCall {
	return &SavingsPlansListAllCall{c: s.c}
}

// Filter sets $filter, e.g. "properties/archived eq false".
func (call *SavingsPlansListAllCall) Filter(filter string) *SavingsPlansListAllCall {
	call.filter = filter
	return call
}

// OrderBy sets $orderby.
func (call *SavingsPlansListAllCall) OrderBy(orderBy string) *SavingsPlansListAllCall {
	call.orderBy = orderBy
	return call
}

// RefreshSummary asks the service to recompute the summary counts.
func (call *SavingsPlansListAllCall) RefreshSummary(refresh string) *SavingsPlansListAllCall {
	call.refreshSummary = refresh
	return call
}

// SkipToken sets $skiptoken.
func (call *SavingsPlansListAllCall) SkipToken(token string) *SavingsPlansListAllCall {
	call.skipToken = token
	return call
}

// SelectedState restricts the result to a display provisioning state.
func (call *SavingsPlansListAllCall) SelectedState(state string) *SavingsPlansListAllCall {
	call.selectedState = state
	return call
}

// Take limits the number of plans per page.
func (call *SavingsPlansListAllCall) Take(take float64) *SavingsPlansListAllCall {
	call.take = &take
	return call
}

func (call *SavingsPlansListAllCall) request() (*sdk.Request, error) {
	req, err := call.c.newRequest(http.MethodGet, provider+"/savingsPlans")
	if err != nil {
		return nil, err
	}
	req.SetQuery("$filter", call.filter)
	req.SetQuery("$orderby", call.orderBy)
	req.SetQuery("refreshSummary", call.refreshSummary)
	req.SetQuery("$skiptoken", call.skipToken)
	req.SetQuery("selectedState", call.selectedState)
	if call.take != nil {
		req.SetQuery("take", strconv.FormatFloat(*call.take, 'f', -1, 64))
	}
	return req, nil
}

// Do fetches the first page.
func (call *SavingsPlansListAllCall) Do(ctx context.Context) (*SavingsPlanModelListResult, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[SavingsPlanModelListResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *SavingsPlansListAllCall) Pager() *sdk.Pager[*SavingsPlanModelListResult] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, func(p *SavingsPlanModelListResult) string {
		return sdk.NextLink(p.NextLink)
	})
}

// SavingsPlansGetCall is GET on a plan.
type SavingsPlansGetCall struct {
	c       *Client
	orderID string
	planID  string
	expand  string
}

// Get returns a plan.
func (s *SavingsPlansClient) Get(orderID, planID string) *SavingsPlansGetCall {
	return &SavingsPlansGetCall{c: s.c, orderID: orderID, planID: planID}
}

// Expand adds related data, e.g. "renewProperties".
func (call *SavingsPlansGetCall) Expand(expand string) *SavingsPlansGetCall {
	call.expand = expand
	return call
}

// Do sends the request.
func (call *SavingsPlansGetCall) Do(ctx context.Context) (*SavingsPlanModel, error) {
	req, err := call.c.newRequest(http.MethodGet, planPath, call.orderID, call.planID)
	if err != nil {
		return nil, err
	}
	req.SetQuery("$expand", call.expand)
	return sdk.Do[SavingsPlanModel](ctx, call.c.pipeline, req, http.StatusOK)
}

// SavingsPlansUpdateCall is PATCH on a plan.
type SavingsPlansUpdateCall struct {
	c       *Client
	orderID string
	planID  string
	body    SavingsPlanUpdateRequest
}

// Update patches a plan (200 or 202).
func (s *SavingsPlansClient) Update(orderID, planID string, body SavingsPlanUpdateRequest) *SavingsPlansUpdateCall {
	return &SavingsPlansUpdateCall{c: s.c, orderID: orderID, planID: planID, body: body}
}

// Do sends the request. A 202 carries no body.
func (call *SavingsPlansUpdateCall) Do(ctx context.Context) (*sdk.Result[SavingsPlanModel], error) {
	req, err := call.c.newRequest(http.MethodPatch, planPath, call.orderID, call.planID)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.body); err != nil {
		return nil, err
	}
	return sdk.DoResult[SavingsPlanModel](ctx, call.c.pipeline, req, http.StatusOK, http.StatusAccepted)
}

// SavingsPlansValidateUpdateCall is POST .../savingsPlans/{id}/validate.
type SavingsPlansValidateUpdateCall struct {
	c       *Client
	orderID string
	planID  string
	body    SavingsPlanUpdateValidateRequest
}

// ValidateUpdate checks whether the updates in body would succeed.
func (s *SavingsPlansClient) ValidateUpdate(orderID, planID string, body SavingsPlanUpdateValidateRequest) *SavingsPlansValidateUpdateCall {
	return &SavingsPlansValidateUpdateCall{c: s.c, orderID: orderID, planID: planID, body: body}
}

// Do sends the request.
func (call *SavingsPlansValidateUpdateCall) Do(ctx context.Context) (*SavingsPlanValidateResponse, error) {
	req, err := call.c.newRequest(http.MethodPost, planPath+"/validate", call.orderID, call.planID)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.body); err != nil {
		return nil, err
	}
	return sdk.Do[SavingsPlanValidateResponse](ctx, call.c.pipeline, req, http.StatusOK)
}
