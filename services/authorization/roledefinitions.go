package authorization

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// RoleDefinitionsClient manages role definitions.
type RoleDefinitionsClient struct {
	c *Client
}

// RoleDefinitionsListCall lists the role definitions usable at a scope.
type RoleDefinitionsListCall struct {
	c      *Client
	scope  string
	filter string
}

// List lists the role definitions usable at a scope.
func (r *RoleDefinitionsClient) List(scope string) *RoleDefinitionsListCall {
	return &RoleDefinitionsListCall{c: r.c, scope: scope}
}

// Filter sets $filter, e.g. "atScopeAndBelow()" or "type eq 'CustomRole'".
func (call *RoleDefinitionsListCall) Filter(filter string) *RoleDefinitionsListCall {
	call.filter = filter
	return call
}

func (call *RoleDefinitionsListCall) request() (*sdk.Request, error) {
	req, err := call.c.newRequest(http.MethodGet, roleDefinitionsPath, call.scope)
	if err != nil {
		return nil, err
	}
	req.SetQuery("$filter", call.filter)
	return req, nil
}

// Do fetches the first page.
func (call *RoleDefinitionsListCall) Do(ctx context.Context) (*RoleDefinitionListResult, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[RoleDefinitionListResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *RoleDefinitionsListCall) Pager() *sdk.Pager[*RoleDefinitionListResult] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, func(p *RoleDefinitionListResult) string {
		return sdk.NextLink(p.NextLink)
	})
}

// roleDefinitionRef identifies one role definition.
type roleDefinitionRef struct {
	c        *Client
	template string
	params   []string
}

func (r roleDefinitionRef) request(method string) (*sdk.Request, error) {
	return r.c.newRequest(method, r.template, r.params...)
}

func (r *RoleDefinitionsClient) ref(scope, roleDefinitionID string) roleDefinitionRef {
	return roleDefinitionRef{c: r.c, template: roleDefinitionsPath + "/{roleDefinitionId}", params: []string{scope, roleDefinitionID}}
}

// RoleDefinitionsGetCall is GET on a role definition.
type RoleDefinitionsGetCall struct {
	roleDefinitionRef
}

// Get returns a role definition by scope and GUID.
func (r *RoleDefinitionsClient) Get(scope, roleDefinitionID string) *RoleDefinitionsGetCall {
	return &RoleDefinitionsGetCall{r.ref(scope, roleDefinitionID)}
}

// GetByID returns a role definition by its full resource ID, e.g.
// "/subscriptions/{id}/providers/Microsoft.Authorization/roleDefinitions/{guid}".
func (r *RoleDefinitionsClient) GetByID(roleID string) *RoleDefinitionsGetCall {
	return &RoleDefinitionsGetCall{roleDefinitionRef{c: r.c, template: "/{+roleId}", params: []string{roleID}}}
}

// Do sends the request.
func (call *RoleDefinitionsGetCall) Do(ctx context.Context) (*RoleDefinition, error) {
	req, err := call.request(http.MethodGet)
	if err != nil {
		return nil, err
	}
	return sdk.Do[RoleDefinition](ctx, call.c.pipeline, req, http.StatusOK)
}

// RoleDefinitionsCreateOrUpdateCall is PUT on a role definition.
type RoleDefinitionsCreateOrUpdateCall struct {
	roleDefinitionRef
	definition RoleDefinition
}

// CreateOrUpdate creates or replaces a custom role definition (201).
func (r *RoleDefinitionsClient) CreateOrUpdate(scope, roleDefinitionID string, definition RoleDefinition) *RoleDefinitionsCreateOrUpdateCall {
	return &RoleDefinitionsCreateOrUpdateCall{roleDefinitionRef: r.ref(scope, roleDefinitionID), definition: definition}
}

// Do sends the request.
func (call *RoleDefinitionsCreateOrUpdateCall) Do(ctx context.Context) (*RoleDefinition, error) {
	req, err := call.request(http.MethodPut)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.definition); err != nil {
		return nil, err
	}
	return sdk.Do[RoleDefinition](ctx, call.c.pipeline, req, http.StatusCreated)
}

// RoleDefinitionsDeleteCall is DELETE on a role definition.
type RoleDefinitionsDeleteCall struct {
	roleDefinitionRef
}

// Delete deletes a custom role definition.
func (r *RoleDefinitionsClient) Delete(scope, roleDefinitionID string) *RoleDefinitionsDeleteCall {
	return &RoleDefinitionsDeleteCall{r.ref(scope, roleDefinitionID)}
}

// Do sends the request. On 200 the deleted definition is returned.
func (call *RoleDefinitionsDeleteCall) Do(ctx context.Context) (*sdk.Result[RoleDefinition], error) {
	req, err := call.request(http.MethodDelete)
	if err != nil {
		return nil, err
	}
	return sdk.DoResult[RoleDefinition](ctx, call.c.pipeline, req, http.StatusOK, http.StatusNoContent)
}
