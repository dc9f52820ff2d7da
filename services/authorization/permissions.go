package authorization

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// PermissionsClient reads the effective permissions of the caller.
type PermissionsClient struct {
	c *Client
}

// PermissionsListCall lists the caller's permissions on a resource group or resource.
type PermissionsListCall struct {
	c        *Client
	template string
	params   []string
}

// ListForResourceGroup lists the caller's permissions on a resource group.
func (p *PermissionsClient) ListForResourceGroup(resourceGroupName string) *PermissionsListCall {
	return &PermissionsListCall{
		c:        p.c,
		template: "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}" + provider + "/permissions",
		params:   []string{p.c.subscriptionID, resourceGroupName},
	}
}

// ListForResource lists the caller's permissions on a resource.
// parentResourcePath may be empty for top-level resources.
func (p *PermissionsClient) ListForResource(resourceGroupName, resourceProviderNamespace, parentResourcePath, resourceType, resourceName string) *PermissionsListCall {
	template := "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/{resourceProviderNamespace}/"
	params := []string{p.c.subscriptionID, resourceGroupName, resourceProviderNamespace}
	if parentResourcePath != "" {
		template += "{+parentResourcePath}/"
		params = append(params, parentResourcePath)
	}
	template += "{+resourceType}/{resourceName}" + provider + "/permissions"
	params = append(params, resourceType, resourceName)

	return &PermissionsListCall{c: p.c, template: template, params: params}
}

func (call *PermissionsListCall) request() (*sdk.Request, error) {
	return call.c.newRequest(http.MethodGet, call.template, call.params...)
}

// Do fetches the first page.
func (call *PermissionsListCall) Do(ctx context.Context) (*PermissionGetResult, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[PermissionGetResult](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *PermissionsListCall) Pager() *sdk.Pager[*PermissionGetResult] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, func(p *PermissionGetResult) string {
		return sdk.NextLink(p.NextLink)
	})
}
