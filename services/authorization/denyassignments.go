package authorization

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// DenyAssignmentsClient reads deny assignments.
type DenyAssignmentsClient struct {
	c *Client
}

// DenyAssignmentsListForScopeCall lists the deny assignments at a scope.
type DenyAssignmentsListForScopeCall struct {
	c      *Client
	scope  string
	filter string
}

// ListForScope lists the deny assignments at a scope.
func (d *DenyAssignmentsClient) ListForScope(scope string) *DenyAssignmentsListForScopeCall {
	return &DenyAssignmentsListForScopeCall{c: d.c, scope: scope}
}

// Filter sets $filter, e.g. "atScope()" or "denyAssignmentName eq '{name}'".
func (call *DenyAssignmentsListForScopeCall) Filter(filter string) *DenyAssignmentsListForScopeCall {
	call.filter = filter
	return call
}

func (call *DenyAssignmentsListForScopeCall) request() (*sdk.Request, error) {
	req, err := call.c.newRequest(http.MethodGet, denyAssignmentsPath, call.scope)
	if err != nil {
		return nil, err
	}
	req.SetQuery("$filter", call.filter)
	return req, nil
}

// Do fetches the first page.
func (call *DenyAssignmentsListForScopeCall) Do(ctx context.Context) (*DenyAssignmentListResult, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[DenyAssignmentListResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *DenyAssignmentsListForScopeCall) Pager() *sdk.Pager[*DenyAssignmentListResult] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, func(p *DenyAssignmentListResult) string {
		return sdk.NextLink(p.NextLink)
	})
}

// DenyAssignmentsGetCall is GET on a deny assignment.
type DenyAssignmentsGetCall struct {
	c                *Client
	scope            string
	denyAssignmentID string
}

// Get returns a deny assignment.
func (d *DenyAssignmentsClient) Get(scope, denyAssignmentID string) *DenyAssignmentsGetCall {
	return &DenyAssignmentsGetCall{c: d.c, scope: scope, denyAssignmentID: denyAssignmentID}
}

// Do sends the request.
func (call *DenyAssignmentsGetCall) Do(ctx context.Context) (*DenyAssignment, error) {
	req, err := call.c.newRequest(http.MethodGet, denyAssignmentsPath+"/{denyAssignmentId}", call.scope, call.denyAssignmentID)
	if err != nil {
		return nil, err
	}
	return sdk.Do[DenyAssignment](ctx, call.c.pipeline, req, http.StatusOK)
}
