// Package queuestorage is a client for the Azure Queue Storage REST API
// (x-ms-version 2018-03-28). Request and response bodies are XML.
package queuestorage

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/yaroslav/azrest/sdk"
)

const (
	// DefaultAPIVersion is sent in the x-ms-version header.
	DefaultAPIVersion = "2018-03-28"

	// VersionHeader carries the API version on every request.
	VersionHeader = "x-ms-version"

	// DefaultScope is the token scope of Azure Storage.
	DefaultScope = "https://storage.azure.com/.default"
)

// Response headers read by this package.
const (
	headerMetaPrefix      = "x-ms-meta-"
	headerMessageCount    = "x-ms-approximate-messages-count"
	headerPopReceipt      = "x-ms-popreceipt"
	headerTimeNextVisible = "x-ms-time-next-visible"
)

// ErrInvalidMetadata is returned before any request when a metadata name
// is not a valid identifier.
var ErrInvalidMetadata = errors.New("invalid metadata name")

var metadataName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Client talks to the queue endpoint of one storage account,
// e.g. https://account.queue.core.windows.net.
type Client struct {
	pipeline *sdk.Client
}

// NewClient creates a queue client. config.Endpoint is required.
func NewClient(config sdk.ClientConfig) (*Client, error) {
	if config.APIVersion == "" {
		config.APIVersion = DefaultAPIVersion
	}
	if config.VersionHeader == "" {
		config.VersionHeader = VersionHeader
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

// Service returns the account-level client.
func (c *Client) Service() *ServiceClient { return &ServiceClient{c} }

// Queues returns the queue client.
func (c *Client) Queues() *QueuesClient { return &QueuesClient{c} }

// Messages returns the client for the messages of a queue.
func (c *Client) Messages() *MessagesClient { return &MessagesClient{c} }

// MessageID returns the client for single messages.
func (c *Client) MessageID() *MessageIDClient { return &MessageIDClient{c} }

func (c *Client) newRequest(method, template string, params ...string) (*sdk.Request, error) {
	path, err := sdk.FormatPath(template, params...)
	if err != nil {
		return nil, err
	}
	req := c.pipeline.NewRequest(method, path)
	req.SetHeader("Accept", "application/xml")
	return req, nil
}

// callOptions are accepted by every operation.
type callOptions struct {
	timeout         int
	clientRequestID string
}

func (o callOptions) apply(req *sdk.Request) {
	if o.timeout > 0 {
		req.SetQuery("timeout", strconv.Itoa(o.timeout))
	}
	req.SetHeader(sdk.HeaderClientRequestID, o.clientRequestID)
}

func setMetadataHeaders(req *sdk.Request, metadata map[string]string) error {
	for name, value := range metadata {
		if !metadataName.MatchString(name) {
			return fmt.Errorf("%w: %q", ErrInvalidMetadata, name)
		}
		req.Header.Set(headerMetaPrefix+name, value)
	}
	return nil
}

// metadataFromHeaders collects x-ms-meta-* headers. Header names are
// case-insensitive, so names come back in lower case.
func metadataFromHeaders(header http.Header) map[string]string {
	metadata := map[string]string{}
	for key, values := range header {
		lower := strings.ToLower(key)
		if !strings.HasPrefix(lower, headerMetaPrefix) || len(values) == 0 {
			continue
		}
		metadata[strings.TrimPrefix(lower, headerMetaPrefix)] = values[0]
	}
	return metadata
}
