package webpubsub

import (
	"context"
	"net/http"

	"github.com/yaroslav/azrest/sdk"
)

// WebPubSubClient manages Web PubSub services.
type WebPubSubClient struct {
	c *Client
}

// resourceRef identifies one service.
type resourceRef struct {
	c                 *Client
	resourceGroupName string
	resourceName      string
}

func (r resourceRef) request(method, suffix string, params ...string) (*sdk.Request, error) {
	args := append([]string{r.c.subscriptionID, r.resourceGroupName, r.resourceName}, params...)
	return r.c.newRequest(method, resourcePath+suffix, args...)
}

// CheckNameAvailabilityCall is POST .../locations/{location}/checkNameAvailability.
type CheckNameAvailabilityCall struct {
	c          *Client
	location   string
	parameters NameAvailabilityParameters
}

// CheckNameAvailability checks whether a resource name is free in a region.
// An empty parameter type defaults to Microsoft.SignalRService/WebPubSub.
func (w *WebPubSubClient) CheckNameAvailability(location string, parameters NameAvailabilityParameters) *CheckNameAvailabilityCall {
	if parameters.Type == "" {
		parameters.Type = ResourceType
	}
	return &CheckNameAvailabilityCall{c: w.c, location: location, parameters: parameters}
}

// Do sends the request.
func (call *CheckNameAvailabilityCall) Do(ctx context.Context) (*NameAvailability, error) {
	req, err := call.c.newRequest(http.MethodPost, locationPath+"/checkNameAvailability", call.c.subscriptionID, call.location)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.Do[NameAvailability](ctx, call.c.pipeline, req, http.StatusOK)
}

// ListBySubscriptionCall lists the services of the subscription.
type ListBySubscriptionCall struct {
	c *Client
}

// ListBySubscription lists the services of the subscription.
func (w *WebPubSubClient) ListBySubscription() *ListBySubscriptionCall {
	return &ListBySubscriptionCall{c: w.c}
}

func (call *ListBySubscriptionCall) request() (*sdk.Request, error) {
	return call.c.newRequest(http.MethodGet, "/subscriptions/{subscriptionId}"+provider+"/webPubSub", call.c.subscriptionID)
}

// Do fetches the first page.
func (call *ListBySubscriptionCall) Do(ctx context.Context) (*ResourceList, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[ResourceList](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *ListBySubscriptionCall) Pager() *sdk.Pager[*ResourceList] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, func(p *ResourceList) string {
		return sdk.NextLink(p.NextLink)
	})
}

// ListByResourceGroupCall lists the services of a resource group.
type ListByResourceGroupCall struct {
	c                 *Client
	resourceGroupName string
}

// ListByResourceGroup lists the services of a resource group.
func (w *WebPubSubClient) ListByResourceGroup(resourceGroupName string) *ListByResourceGroupCall {
	return &ListByResourceGroupCall{c: w.c, resourceGroupName: resourceGroupName}
}

func (call *ListByResourceGroupCall) request() (*sdk.Request, error) {
	return call.c.newRequest(http.MethodGet,
		"/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}"+provider+"/webPubSub",
		call.c.subscriptionID, call.resourceGroupName)
}

// Do fetches the first page.
func (call *ListByResourceGroupCall) Do(ctx context.Context) (*ResourceList, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[ResourceList](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *ListByResourceGroupCall) Pager() *sdk.Pager[*ResourceList] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, func(p *ResourceList) string {
		return sdk.NextLink(p.NextLink)
	})
}

// GetCall is GET on a service.
type GetCall struct {
	resourceRef
}

// Get returns a service.
func (w *WebPubSubClient) Get(resourceGroupName, resourceName string) *GetCall {
	return &GetCall{resourceRef{w.c, resourceGroupName, resourceName}}
}

// Do sends the request.
func (call *GetCall) Do(ctx context.Context) (*Resource, error) {
	req, err := call.request(http.MethodGet, "")
	if err != nil {
		return nil, err
	}
	return sdk.Do[Resource](ctx, call.c.pipeline, req, http.StatusOK)
}

// CreateOrUpdateCall is PUT on a service.
type CreateOrUpdateCall struct {
	resourceRef
	parameters Resource
}

// CreateOrUpdate creates or replaces a service (200, 201 or 202).
func (w *WebPubSubClient) CreateOrUpdate(resourceGroupName, resourceName string, parameters Resource) *CreateOrUpdateCall {
	return &CreateOrUpdateCall{resourceRef: resourceRef{w.c, resourceGroupName, resourceName}, parameters: parameters}
}

// Do sends the request.
func (call *CreateOrUpdateCall) Do(ctx context.Context) (*sdk.Result[Resource], error) {
	req, err := call.request(http.MethodPut, "")
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[Resource](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated, http.StatusAccepted)
}

// UpdateCall is PATCH on a service.
type UpdateCall struct {
	resourceRef
	parameters Resource
}

// Update patches a service (200 or 202).
func (w *WebPubSubClient) Update(resourceGroupName, resourceName string, parameters Resource) *UpdateCall {
	return &UpdateCall{resourceRef: resourceRef{w.c, resourceGroupName, resourceName}, parameters: parameters}
}

// Do sends the request.
func (call *UpdateCall) Do(ctx context.Context) (*sdk.Result[Resource], error) {
	req, err := call.request(http.MethodPatch, "")
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[Resource](ctx, call.c.pipeline, req, http.StatusOK, http.StatusAccepted)
}

// DeleteCall is DELETE on a service.
type DeleteCall struct {
	resourceRef
}

// Delete deletes a service.
func (w *WebPubSubClient) Delete(resourceGroupName, resourceName string) *DeleteCall {
	return &DeleteCall{resourceRef{w.c, resourceGroupName, resourceName}}
}

// Do sends the request.
func (call *DeleteCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodDelete, "")
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusAccepted, http.StatusNoContent)
	return err
}

// ListKeysCall is POST .../listKeys.
type ListKeysCall struct {
	resourceRef
}

// ListKeys returns the access keys of a service.
func (w *WebPubSubClient) ListKeys(resourceGroupName, resourceName string) *ListKeysCall {
	return &ListKeysCall{resourceRef{w.c, resourceGroupName, resourceName}}
}

// Do sends the request.
func (call *ListKeysCall) Do(ctx context.Context) (*Keys, error) {
	req, err := call.request(http.MethodPost, "/listKeys")
	if err != nil {
		return nil, err
	}
	return sdk.Do[Keys](ctx, call.c.pipeline, req, http.StatusOK)
}

// RegenerateKeyCall is POST .../regenerateKey.
type RegenerateKeyCall struct {
	resourceRef
	parameters RegenerateKeyParameters
}

// RegenerateKey regenerates one access key. The service answers 202 and
// the new keys may not be in the response; call ListKeys to read them.
func (w *WebPubSubClient) RegenerateKey(resourceGroupName, resourceName string, parameters RegenerateKeyParameters) *RegenerateKeyCall {
	return &RegenerateKeyCall{resourceRef: resourceRef{w.c, resourceGroupName, resourceName}, parameters: parameters}
}

// Do sends the request.
func (call *RegenerateKeyCall) Do(ctx context.Context) (*sdk.Result[Keys], error) {
	req, err := call.request(http.MethodPost, "/regenerateKey")
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[Keys](ctx, call.c.pipeline, req, http.StatusAccepted)
}

// RestartCall is POST .../restart.
type RestartCall struct {
	resourceRef
}

// Restart restarts a service.
func (w *WebPubSubClient) Restart(resourceGroupName, resourceName string) *RestartCall {
	return &RestartCall{resourceRef{w.c, resourceGroupName, resourceName}}
}

// Do sends the request and returns the URL of the async operation.
func (call *RestartCall) Do(ctx context.Context) (string, error) {
	req, err := call.request(http.MethodPost, "/restart")
	if err != nil {
		return "", err
	}
	res, err := sdk.DoResult[struct{}](ctx, call.c.pipeline, req, http.StatusAccepted)
	if err != nil {
		return "", err
	}
	return res.AsyncOperation(), nil
}

// ListSkusCall is GET .../skus.
type ListSkusCall struct {
	resourceRef
}

// ListSkus lists the SKUs a service can move to.
func (w *WebPubSubClient) ListSkus(resourceGroupName, resourceName string) *ListSkusCall {
	return &ListSkusCall{resourceRef{w.c, resourceGroupName, resourceName}}
}

// Do sends the request.
func (call *ListSkusCall) Do(ctx context.Context) (*SkuList, error) {
	req, err := call.request(http.MethodGet, "/skus")
	if err != nil {
		return nil, err
	}
	return sdk.Do[SkuList](ctx, call.c.pipeline, req, http.StatusOK)
}

// HubsClient manages hub settings.
type HubsClient struct {
	c *Client
}

// HubsListCall lists the hub settings of a service.
type HubsListCall struct {
	resourceRef
}

// List lists the hub settings of a service.
func (h *HubsClient) List(resourceGroupName, resourceName string) *HubsListCall {
	return &HubsListCall{resourceRef{h.c, resourceGroupName, resourceName}}
}

func (call *HubsListCall) first() (*sdk.Request, error) {
	return call.request(http.MethodGet, "/hubs")
}

// Do fetches the first page.
func (call *HubsListCall) Do(ctx context.Context) (*HubList, error) {
	req, err := call.first()
	if err != nil {
		return nil, err
	}
	return sdk.Do[HubList](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *HubsListCall) Pager() *sdk.Pager[*HubList] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.first, func(p *HubList) string {
		return sdk.NextLink(p.NextLink)
	})
}

// HubsGetCall is GET on a hub.
type HubsGetCall struct {
	resourceRef
	hubName string
}

// Get returns the settings of a hub.
func (h *HubsClient) Get(resourceGroupName, resourceName, hubName string) *HubsGetCall {
	return &HubsGetCall{resourceRef{h.c, resourceGroupName, resourceName}, hubName}
}

// Do sends the request.
func (call *HubsGetCall) Do(ctx context.Context) (*Hub, error) {
	req, err := call.request(http.MethodGet, "/hubs/{hubName}", call.hubName)
	if err != nil {
		return nil, err
	}
	return sdk.Do[Hub](ctx, call.c.pipeline, req, http.StatusOK)
}

// HubsCreateOrUpdateCall is PUT on a hub.
type HubsCreateOrUpdateCall struct {
	resourceRef
	hubName    string
	parameters Hub
}

// CreateOrUpdate creates or replaces the settings of a hub (200 or 201).
func (h *HubsClient) CreateOrUpdate(resourceGroupName, resourceName, hubName string, parameters Hub) *HubsCreateOrUpdateCall {
	return &HubsCreateOrUpdateCall{resourceRef{h.c, resourceGroupName, resourceName}, hubName, parameters}
}

// Do sends the request.
func (call *HubsCreateOrUpdateCall) Do(ctx context.Context) (*sdk.Result[Hub], error) {
	req, err := call.request(http.MethodPut, "/hubs/{hubName}", call.hubName)
	if err != nil {
		return nil, err
	}
	if err := req.SetJSONBody(call.parameters); err != nil {
		return nil, err
	}
	return sdk.DoResult[Hub](ctx, call.c.pipeline, req, http.StatusOK, http.StatusCreated)
}

// HubsDeleteCall is DELETE on a hub.
type HubsDeleteCall struct {
	resourceRef
	hubName string
}

// Delete deletes the settings of a hub.
func (h *HubsClient) Delete(resourceGroupName, resourceName, hubName string) *HubsDeleteCall {
	return &HubsDeleteCall{resourceRef{h.c, resourceGroupName, resourceName}, hubName}
}

// Do sends the request.
func (call *HubsDeleteCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodDelete, "/hubs/{hubName}", call.hubName)
	if err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK, http.StatusAccepted, http.StatusNoContent)
	return err
}
