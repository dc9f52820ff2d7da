package help

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// DiagnosticsClient runs insight diagnostics.
type DiagnosticsClient struct {
	c *Client
}

// DiagnosticsCreateCall is PUT on a diagnostic.
type DiagnosticsCreateCall struct {
	c     *Client
	scope string
	name  string
	body  DiagnosticResource
}

// Create starts the diagnostics in body. The service answers 201 and runs
// them asynchronously; poll Get until the provisioning state is terminal.
func (d *DiagnosticsClient) Create(scope, name string, body DiagnosticResource) *DiagnosticsCreateCall {
	return &DiagnosticsCreateCall{c: d.c, scope: scope, name: name, body: body}
}

// Do sends the request.
func (call *DiagnosticsCreateCall) Do(ctx context.Context) (*DiagnosticResource, error) {
	req, err := call.c.newRequest(http.MethodPut, diagnosticPath, call.scope, call.name)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.body); err != nil {
		return nil, err
	}
	return sdk.Do[DiagnosticResource](ctx, call.c.pipeline, req, http.StatusCreated)
}

// DiagnosticsGetCall is GET on a diagnostic.
type DiagnosticsGetCall struct {
	c     *Client
	scope string
	name  string
}

// Get returns a diagnostic with its results so far.
func (d *DiagnosticsClient) Get(scope, name string) *DiagnosticsGetCall {
	return &DiagnosticsGetCall{c: d.c, scope: scope, name: name}
}

// Do sends the request.
func (call *DiagnosticsGetCall) Do(ctx context.Context) (*DiagnosticResource, error) {
	req, err := call.c.newRequest(http.MethodGet, diagnosticPath, call.scope, call.name)
	if err != nil {
		return nil, err
	}
	return sdk.Do[DiagnosticResource](ctx, call.c.pipeline, req, http.StatusOK)
}

// DiscoverySolutionClient discovers the solutions available for a scope.
type DiscoverySolutionClient struct {
	c *Client
}

// DiscoverySolutionListCall is GET {scope}/providers/Microsoft.Help/discoverySolutions.
type DiscoverySolutionListCall struct {
	c         *Client
	scope     string
	filter    string
	skipToken string
}

// List lists the solutions available for scope.
func (d *DiscoverySolutionClient) List(scope string) *DiscoverySolutionListCall {
	return &DiscoverySolutionListCall{c: d.c, scope: scope}
}

// Filter sets $filter, e.g. "ProblemClassificationId eq '...'".
func (call *DiscoverySolutionListCall) Filter(filter string) *DiscoverySolutionListCall {
	call.filter = filter
	return call
}

// SkipToken sets $skiptoken.
func (call *DiscoverySolutionListCall) SkipToken(token string) *DiscoverySolutionListCall {
	call.skipToken = token
	return call
}

func (call *DiscoverySolutionListCall) request() (*sdk.Request, error) {
	req, err := call.c.newRequest(http.MethodGet, scopePath+"/discoverySolutions", call.scope)
	if err != nil {
		return nil, err
	}
	req.SetQuery("$filter", call.filter)
	req.SetQuery("$skiptoken", call.skipToken)
	return req, nil
}

// Do fetches the first page.
func (call *DiscoverySolutionListCall) Do(ctx context.Context) (*DiscoveryResponse, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[DiscoveryResponse](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *DiscoverySolutionListCall) Pager() *sdk.Pager[*DiscoveryResponse] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, func(p *DiscoveryResponse) string {
		return sdk.NextLink(p.NextLink)
	})
}
