// Package dataplane is a client for the REST API of a running Azure Web
// PubSub service (api-version 2021-10-01): client tokens, connection
// management, group membership, permissions and message delivery.
package dataplane

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/yaroslav/azrest/sdk"
)

// DefaultAPIVersion is the API version this package is written against.
const DefaultAPIVersion = "2021-10-01"

// DefaultScope is the token scope of the Web PubSub data plane.
const DefaultScope = "https://webpubsub.azure.com/.default"

// ErrInvalidHub is returned before any request when a hub name is malformed.
var ErrInvalidHub = errors.New("invalid hub name")

var hubPattern = regexp.MustCompile("^[A-Za-z][A-Za-z0-9_`,.\\[\\]]{0,127}$")

// ValidHub reports whether name is a legal hub name: a letter followed by
// up to 127 letters, digits or the characters _ ` , . [ ].
func ValidHub(name string) bool {
	return hubPattern.MatchString(name)
}

// Client talks to one Web PubSub service, e.g. https://wps1.webpubsub.azure.com.
type Client struct {
	pipeline *sdk.Client
}

// NewClient creates a data plane client. config.Endpoint is required.
func NewClient(config sdk.ClientConfig) (*Client, error) {
	if config.APIVersion == "" {
		config.APIVersion = DefaultAPIVersion
	}
	if len(config.Scopes) == 0 {
		config.Scopes = []string{DefaultScope}
	}

	pipeline, err := sdk.NewClient(config)
	if err != nil {
		return nil, err
	}

	return &Client{pipeline: pipeline}, nil
}

// Connections returns the client for single connections of a hub.
func (c *Client) Connections(hub string) *ConnectionsClient {
	return &ConnectionsClient{hubRef{c, hub}}
}

// Groups returns the client for groups of a hub.
func (c *Client) Groups(hub string) *GroupsClient {
	return &GroupsClient{hubRef{c, hub}}
}

// Users returns the client for users of a hub.
func (c *Client) Users(hub string) *UsersClient {
	return &UsersClient{hubRef{c, hub}}
}

// Permissions returns the client for connection permissions of a hub.
func (c *Client) Permissions(hub string) *PermissionsClient {
	return &PermissionsClient{hubRef{c, hub}}
}

// hubRef is the hub every data plane call is scoped to.
type hubRef struct {
	c   *Client
	hub string
}

func (h hubRef) request(method, suffix string, params ...string) (*sdk.Request, error) {
	if !ValidHub(h.hub) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHub, h.hub)
	}
	path, err := sdk.FormatPath("/api/hubs/{hub}"+suffix, append([]string{h.hub}, params...)...)
	if err != nil {
		return nil, err
	}
	return h.c.pipeline.NewRequest(method, path), nil
}

func (h hubRef) invoke(ctx context.Context, req *sdk.Request, expected ...int) error {
	_, err := h.c.pipeline.Invoke(ctx, req, nil, expected...)
	return err
}

// HealthStatusCall is HEAD /api/health.
type HealthStatusCall struct {
	c *Client
}

// HealthStatus checks that the service is up.
func (c *Client) HealthStatus() *HealthStatusCall {
	return &HealthStatusCall{c: c}
}

// Do sends the request.
func (call *HealthStatusCall) Do(ctx context.Context) error {
	req := call.c.pipeline.NewRequest(http.MethodHead, "/api/health")
	_, err := call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK)
	return err
}
