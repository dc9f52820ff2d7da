// Package migrateprojects is a client for Azure Migrate hub projects
// (Microsoft.Migrate/migrateProjects, api-version 2018-09-01-preview).
//
// A project collects what registered tools report about machines,
// databases and database instances, plus the events they raise.
package migrateprojects

import (
	"context"
	"net/http"
	"strconv"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/sdk"
)

// DefaultAPIVersion is the API version this package is written against.
const DefaultAPIVersion = "2018-09-01-preview"

const projectPath = "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.Migrate/migrateProjects/{migrateProjectName}"

// Client is the entry point for Migrate project operations.
type Client struct {
	pipeline       *sdk.Client
	subscriptionID string
}

// NewClient creates a client for one subscription.
func NewClient(subscriptionID string, config sdk.ClientConfig) (*Client, error) {
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

	return &Client{pipeline: pipeline, subscriptionID: subscriptionID}, nil
}

// Operations returns the operations client.
func (c *Client) Operations() *OperationsClient { return &OperationsClient{c} }

// MigrateProjects returns the projects client.
func (c *Client) MigrateProjects() *MigrateProjectsClient { return &MigrateProjectsClient{c} }

// Solutions returns the solutions client.
func (c *Client) Solutions() *SolutionsClient { return &SolutionsClient{c} }

// Machines returns the machines client.
func (c *Client) Machines() *MachinesClient { return &MachinesClient{c} }

// Databases returns the databases client.
func (c *Client) Databases() *DatabasesClient { return &DatabasesClient{c} }

// DatabaseInstances returns the database instances client.
func (c *Client) DatabaseInstances() *DatabaseInstancesClient { return &DatabaseInstancesClient{c} }

// Events returns the events client.
func (c *Client) Events() *EventsClient { return &EventsClient{c} }

func (c *Client) newRequest(method, template string, params ...string) (*sdk.Request, error) {
	path, err := sdk.FormatPath(template, params...)
	if err != nil {
		return nil, err
	}
	return c.pipeline.NewRequest(method, path), nil
}

// projectRef identifies one project.
type projectRef struct {
	c                  *Client
	resourceGroupName  string
	migrateProjectName string
}

// request builds a request for a path below the project. Extra path
// parameters follow the project name.
func (r projectRef) request(method, suffix string, params ...string) (*sdk.Request, error) {
	args := append([]string{r.c.subscriptionID, r.resourceGroupName, r.migrateProjectName}, params...)
	return r.c.newRequest(method, projectPath+suffix, args...)
}

// CollectionListCall lists one kind of project child. The service pages
// with continuationToken; the pager follows nextLink.
type CollectionListCall[T any] struct {
	projectRef
	suffix            string
	nextLink          func(*T) string
	continuationToken string
	pageSize          *int64
	acceptLanguage    string
}

func newCollectionListCall[T any](ref projectRef, suffix string, nextLink func(*T) string) *CollectionListCall[T] {
	return &CollectionListCall[T]{projectRef: ref, suffix: suffix, nextLink: nextLink}
}

// ContinuationToken resumes a listing.
func (call *CollectionListCall[T]) ContinuationToken(token string) *CollectionListCall[T] {
	call.continuationToken = token
	return call
}

// PageSize limits the number of items per page.
func (call *CollectionListCall[T]) PageSize(size int64) *CollectionListCall[T] {
	call.pageSize = &size
	return call
}

// AcceptLanguage sets the language of localized messages.
func (call *CollectionListCall[T]) AcceptLanguage(lang string) *CollectionListCall[T] {
	call.acceptLanguage = lang
	return call
}

func (call *CollectionListCall[T]) request() (*sdk.Request, error) {
	req, err := call.projectRef.request(http.MethodGet, call.suffix)
	if err != nil {
		return nil, err
	}
	req.SetQuery("continuationToken", call.continuationToken)
	if call.pageSize != nil {
		req.SetQuery("pageSize", strconv.FormatInt(*call.pageSize, 10))
	}
	req.SetHeader(sdk.HeaderAcceptLanguage, call.acceptLanguage)
	return req, nil
}

// Do fetches the first page.
func (call *CollectionListCall[T]) Do(ctx context.Context) (*T, error) {
	req, err := call.request()
	if err != nil {
		return nil, err
	}
	return sdk.Do[T](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page.
func (call *CollectionListCall[T]) Pager() *sdk.Pager[*T] {
	return sdk.NewNextLinkPager(call.c.pipeline, call.request, call.nextLink)
}

// OperationsClient lists the operations of the Microsoft.Migrate provider.
type OperationsClient struct {
	c *Client
}

// OperationsListCall is GET /providers/Microsoft.Migrate/operations.
type OperationsListCall struct {
	c *Client
}

// List lists the provider operations. The result is a single page.
func (o *OperationsClient) List() *OperationsListCall {
	return &OperationsListCall{c: o.c}
}

// Do sends the request.
func (call *OperationsListCall) Do(ctx context.Context) (*models.OperationListResult, error) {
	req, err := call.c.newRequest(http.MethodGet, "/providers/Microsoft.Migrate/operations")
	if err != nil {
		return nil, err
	}
	return sdk.Do[models.OperationListResult](ctx, call.c.pipeline, req, http.StatusOK)
}
