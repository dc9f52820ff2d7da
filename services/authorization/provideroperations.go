package authorization

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// defaultExpand is the $expand the service applies when none is given.
const defaultExpand = "resourceTypes"

// ProviderOperationsMetadataClient reads the operations exposed by resource providers.
type ProviderOperationsMetadataClient struct {
	c *Client
}

// ProviderOperationsMetadataGetCall is GET on one provider's metadata.
type ProviderOperationsMetadataGetCall struct {
	c         *Client
	namespace string
	expand    string
}

// Get returns the operations of a resource provider namespace.
func (p *ProviderOperationsMetadataClient) Get(resourceProviderNamespace string) *ProviderOperationsMetadataGetCall {
	return &ProviderOperationsMetadataGetCall{c: p.c, namespace: resourceProviderNamespace, expand: defaultExpand}
}

// Expand sets $expand.
func (call *ProviderOperationsMetadataGetCall) Expand(expand string) *ProviderOperationsMetadataGetCall {
	call.expand = expand
	return call
}

// Do sends the request.
func (call *ProviderOperationsMetadataGetCall) Do(ctx context.Context) (*ProviderOperationsMetadata, error) {
	req, err := call.c.newRequest(http.MethodGet, provider+"/providerOperations/{resourceProviderNamespace}", call.namespace)
	if err != nil {
		return nil, err
	}
	req.SetQuery("$expand", call.expand)
	return sdk.Do[ProviderOperationsMetadata](ctx, call.c.pipeline, req, http.StatusOK)
}

// ProviderOperationsMetadataListCall lists the metadata of every provider.
type ProviderOperationsMetadataListCall struct {
	c      *Client
	expand string
}

// List lists the operations of every resource provider.
func (p *ProviderOperationsMetadataClient) List() *ProviderOperationsMetadataListCall {
	return &ProviderOperationsMetadataListCall{c: p.c, expand: defaultExpand}
}

// Expand sets $expand.
func (call *ProviderOperationsMetadataListCall) Expand(expand string) *ProviderOperationsMetadataListCall {
	call.expand = expand
	return call
}

func (call *ProviderOperationsMetadataListCall) request() (*sdk.Request, error) {
	req, err := call.c.newRequest(http.MethodGet, provider+"/providerOperations")
	if err != nil {
		return nil, err
	}
	req.SetQuery("$expand", call.expand)
	return req, nil
}

// Do fetches the first page.
func (call *ProviderOperationsMetadataListCall) Do(ctx context.Context) (*ProviderOperationsMetadataListResult, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[ProviderOperationsMetadataListResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *ProviderOperationsMetadataListCall) Pager() *sdk.Pager[*ProviderOperationsMetadataListResult] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, func(p *ProviderOperationsMetadataListResult) string {
		return sdk.NextLink(p.NextLink)
	})
}
