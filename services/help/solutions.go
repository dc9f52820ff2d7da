package help

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// SolutionClient instantiates solutions for a scope.
type SolutionClient struct {
	c *Client
}

// SolutionCreateCall is PUT on a solution.
type SolutionCreateCall struct {
	c     *Client
	scope string
	name  string
	body  SolutionResource
}

// Create instantiates a solution selected by the trigger criteria in body.
func (s *SolutionClient) Create(scope, name string, body SolutionResource) *SolutionCreateCall {
	return &SolutionCreateCall{c: s.c, scope: scope, name: name, body: body}
}

// Do sends the request.
func (call *SolutionCreateCall) Do(ctx context.Context) (*SolutionResource, error) {
	req, err := call.c.newRequest(http.MethodPut, solutionPath, call.scope, call.name)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.body); err != nil {
		return nil, err
	}
	return sdk.Do[SolutionResource](ctx, call.c.pipeline, req, http.StatusCreated)
}

// SolutionGetCall is GET on a solution.
type SolutionGetCall struct {
	c     *Client
	scope string
	name  string
}

// Get returns a solution.
func (s *SolutionClient) Get(scope, name string) *SolutionGetCall {
	return &SolutionGetCall{c: s.c, scope: scope, name: name}
}

// Do sends the request.
func (call *SolutionGetCall) Do(ctx context.Context) (*SolutionResource, error) {
	req, err := call.c.newRequest(http.MethodGet, solutionPath, call.scope, call.name)
	if err != nil {
		return nil, err
	}
	return sdk.Do[SolutionResource](ctx, call.c.pipeline, req, http.StatusOK)
}

// SolutionUpdateCall is PATCH on a solution.
type SolutionUpdateCall struct {
	c     *Client
	scope string
	name  string
	body  SolutionPatchRequestBody
}

// Update patches a solution (200 or 202).
func (s *SolutionClient) Update(scope, name string, body SolutionPatchRequestBody) *SolutionUpdateCall {
	return &SolutionUpdateCall{c: s.c, scope: scope, name: name, body: body}
}

// Do sends the request.
func (call *SolutionUpdateCall) Do(ctx context.Context) (*sdk.Result[SolutionResource], error) {
	req, err := call.c.newRequest(http.MethodPatch, solutionPath, call.scope, call.name)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.body); err != nil {
		return nil, err
	}
	return sdk.DoResult[SolutionResource](ctx, call.c.pipeline, req, http.StatusOK, http.StatusAccepted)
}
