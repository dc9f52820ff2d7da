package authorization

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// RoleAssignmentsClient manages role assignments.
type RoleAssignmentsClient struct {
	c *Client
}

// RoleAssignmentsListCall lists role assignments at a subscription, resource
// group or arbitrary scope.
type RoleAssignmentsListCall struct {
	c         *Client
	template  string
	params    []string
	filter    string
	tenantID  string
	skipToken string
}

// ListForSubscription lists the role assignments of the client subscription.
func (r *RoleAssignmentsClient) ListForSubscription() *RoleAssignmentsListCall {
	return &RoleAssignmentsListCall{
		c:        r.c,
		template: "/subscriptions/{subscriptionId}" + provider + "/roleAssignments",
		params:   []string{r.c.subscriptionID},
	}
}

// ListForResourceGroup lists the role assignments of a resource group.
func (r *RoleAssignmentsClient) ListForResourceGroup(resourceGroupName string) *RoleAssignmentsListCall {
	return &RoleAssignmentsListCall{
		c:        r.c,
		template: "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}" + provider + "/roleAssignments",
		params:   []string{r.c.subscriptionID, resourceGroupName},
	}
}

// ListForScope lists the role assignments at and above a scope.
func (r *RoleAssignmentsClient) ListForScope(scope string) *RoleAssignmentsListCall {
	return &RoleAssignmentsListCall{c: r.c, template: roleAssignmentsPath, params: []string{scope}}
}

// Filter sets $filter, e.g. "atScope()" or "principalId eq '{id}'".
func (call *RoleAssignmentsListCall) Filter(filter string) *RoleAssignmentsListCall {
	call.filter = filter
	return call
}

// TenantID sets the tenant for cross-tenant requests.
func (call *RoleAssignmentsListCall) TenantID(tenantID string) *RoleAssignmentsListCall {
	call.tenantID = tenantID
	return call
}

// SkipToken sets $skipToken. Only honored by scope listings.
func (call *RoleAssignmentsListCall) SkipToken(token string) *RoleAssignmentsListCall {
	call.skipToken = token
	return call
}

func (call *RoleAssignmentsListCall) request() (*sdk.Request, error) {
	req, err := call.c.newRequest(http.MethodGet, call.template, call.params...)
	if err != nil {
		return nil, err
	}
	req.SetQuery("$filter", call.filter)
	req.SetQuery("tenantId", call.tenantID)
	req.SetQuery("$skipToken", call.skipToken)
	return req, nil
}

// Do fetches the first page.
func (call *RoleAssignmentsListCall) Do(ctx context.Context) (*RoleAssignmentListResult, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[RoleAssignmentListResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *RoleAssignmentsListCall) Pager() *sdk.Pager[*RoleAssignmentListResult] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, func(p *RoleAssignmentListResult) string {
		return sdk.NextLink(p.NextLink)
	})
}

// roleAssignmentRef identifies one role assignment by scope and name, or by
// its full ID.
type roleAssignmentRef struct {
	c        *Client
	template string
	params   []string
	tenantID string
}

func (r *roleAssignmentRef) request(method string) (*sdk.Request, error) {
	req, err := r.c.newRequest(method, r.template, r.params...)
	if err != nil {
		return nil, err
	}
	req.SetQuery("tenantId", r.tenantID)
	return req, nil
}

func (r *RoleAssignmentsClient) ref(scope, roleAssignmentName string) roleAssignmentRef {
	return roleAssignmentRef{
		c:        r.c,
		template: roleAssignmentsPath + "/{roleAssignmentName}",
		params:   []string{scope, roleAssignmentName},
	}
}

// RoleAssignmentsGetCall is GET on a role assignment.
type RoleAssignmentsGetCall struct {
	roleAssignmentRef
}

// Get returns a role assignment by scope and name.
func (r *RoleAssignmentsClient) Get(scope, roleAssignmentName string) *RoleAssignmentsGetCall {
	return &RoleAssignmentsGetCall{r.ref(scope, roleAssignmentName)}
}

// GetByID returns a role assignment by its full resource ID.
func (r *RoleAssignmentsClient) GetByID(roleAssignmentID string) *RoleAssignmentsGetCall {
	return &RoleAssignmentsGetCall{roleAssignmentRef{c: r.c, template: "/{+roleAssignmentId}", params: []string{roleAssignmentID}}}
}

// TenantID sets the tenant for cross-tenant requests.
func (call *RoleAssignmentsGetCall) TenantID(tenantID string) *RoleAssignmentsGetCall {
	call.tenantID = tenantID
	return call
}

// Do sends the request.
func (call *RoleAssignmentsGetCall) Do(ctx context.Context) (*RoleAssignment, error) {
	req, err := call.request(http.MethodGet)
	if err != nil {
		return nil, err
	}
	return sdk.Do[RoleAssignment](ctx, call.c.pipeline, req, http.StatusOK)
}

// RoleAssignmentsCreateCall is PUT on a role assignment.
type RoleAssignmentsCreateCall struct {
	roleAssignmentRef
	parameters RoleAssignmentCreateParameters
}

// Create creates or replaces a role assignment (200 or 201). The name must be a GUID.
func (r *RoleAssignmentsClient) Create(scope, roleAssignmentName string, parameters RoleAssignmentCreateParameters) *RoleAssignmentsCreateCall {
	return &RoleAssignmentsCreateCall{roleAssignmentRef: r.ref(scope, roleAssignmentName), parameters: parameters}
}

// Do sends the request.
func (call *RoleAssignmentsCreateCall) Do(ctx context.Context) (*sdk.Result[RoleAssignment], error) {
	req, err := call.request(http.MethodPut)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[RoleAssignment](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated)
}

// RoleAssignmentsDeleteCall is DELETE on a role assignment.
type RoleAssignmentsDeleteCall struct {
	roleAssignmentRef
}

// Delete deletes a role assignment.
func (r *RoleAssignmentsClient) Delete(scope, roleAssignmentName string) *RoleAssignmentsDeleteCall {
	return &RoleAssignmentsDeleteCall{r.ref(scope, roleAssignmentName)}
}

// TenantID sets the tenant for cross-tenant requests.
func (call *RoleAssignmentsDeleteCall) TenantID(tenantID string) *RoleAssignmentsDeleteCall {
	call.tenantID = tenantID
	return call
}

// Do sends the request. On 200 the deleted assignment is returned; on 204
// (nothing to delete) the result value is empty.
func (call *RoleAssignmentsDeleteCall) Do(ctx context.Context) (*sdk.Result[RoleAssignment], error) {
	req, err := call.request(http.MethodDelete)
	if err != nil {
		return nil, err
	}
	return sdk.DoResult[RoleAssignment](ctx, call.c.pipeline, req, http.StatusOK, http.StatusNoContent)
}
