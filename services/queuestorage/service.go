package queuestorage

import (
	"context"
	"net/http"
	"strconv"

	"github.com/yaroslav/azrest/sdk"
)

// ServiceClient reads and configures the queue service of the account.
type ServiceClient struct {
	c *Client
}

// ServiceGetPropertiesCall is GET /?restype=service&comp=properties.
type ServiceGetPropertiesCall struct {
	c *Client
	callOptions
}

// GetProperties returns the analytics and CORS settings.
func (s *ServiceClient) GetProperties() *ServiceGetPropertiesCall {
	return &ServiceGetPropertiesCall{c: s.c}
}

// Do sends the request.
func (call *ServiceGetPropertiesCall) Do(ctx context.Context) (*StorageServiceProperties, error) {
	req, err := call.c.newRequest(http.MethodGet, "/?restype=service&comp=properties")
	if err != nil {
		return nil, err
	}
	call.apply(req)
	return sdk.Do[StorageServiceProperties](ctx, call.c.pipeline, req, http.StatusOK)
}

// ServiceSetPropertiesCall is PUT /?restype=service&comp=properties.
type ServiceSetPropertiesCall struct {
	c *Client
	callOptions
	properties StorageServiceProperties
}

// SetProperties replaces the analytics and CORS settings.
func (s *ServiceClient) SetProperties(properties StorageServiceProperties) *ServiceSetPropertiesCall {
	return &ServiceSetPropertiesCall{c: s.c, properties: properties}
}

// Do sends the request.
func (call *ServiceSetPropertiesCall) Do(ctx context.Context) error {
	req, err := call.c.newRequest(http.MethodPut, "/?restype=service&comp=properties")
	if err != nil {
		return err
	}
	call.apply(req)
	if err := req.SetXMLBody(call.properties); err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusAccepted)
	return err
}

// ServiceGetStatisticsCall is GET /?restype=service&comp=stats.
type ServiceGetStatisticsCall struct {
	c *Client
	callOptions
}

// GetStatistics returns replication statistics. It is answered by the
// secondary endpoint of a read-access geo-redundant account.
func (s *ServiceClient) GetStatistics() *ServiceGetStatisticsCall {
	return &ServiceGetStatisticsCall{c: s.c}
}

// Do sends the request.
func (call *ServiceGetStatisticsCall) Do(ctx context.Context) (*StorageServiceStats, error) {
	req, err := call.c.newRequest(http.MethodGet, "/?restype=service&comp=stats")
	if err != nil {
		return nil, err
	}
	call.apply(req)
	return sdk.Do[StorageServiceStats](ctx, call.c.pipeline, req, http.StatusOK)
}

// ListQueuesCall is GET /?comp=list.
type ListQueuesCall struct {
	c *Client
	callOptions
	prefix          string
	marker          string
	maxResults      int32
	includeMetadata bool
}

// ListQueues lists the queues of the account.
func (s *ServiceClient) ListQueues() *ListQueuesCall {
	return &ListQueuesCall{c: s.c}
}

// Prefix keeps only queues whose name starts with prefix.
func (call *ListQueuesCall) Prefix(prefix string) *ListQueuesCall {
	call.prefix = prefix
	return call
}

// Marker resumes a listing at the NextMarker of a previous page.
func (call *ListQueuesCall) Marker(marker string) *ListQueuesCall {
	call.marker = marker
	return call
}

// MaxResults caps the page size. The service never returns more than 5000.
func (call *ListQueuesCall) MaxResults(n int32) *ListQueuesCall {
	call.maxResults = n
	return call
}

// IncludeMetadata returns the metadata of each queue.
func (call *ListQueuesCall) IncludeMetadata() *ListQueuesCall {
	call.includeMetadata = true
	return call
}

func (call *ListQueuesCall) request(marker string) (*sdk.Request, error) {
	req, err := call.c.newRequest(http.MethodGet, "/?comp=list")
	if err != nil {
		return nil, err
	}
	call.apply(req)
	req.SetQuery("prefix", call.prefix)
	req.SetQuery("marker", marker)
	if call.maxResults > 0 {
		req.SetQuery("maxresults", strconv.FormatInt(int64(call.maxResults), 10))
	}
	if call.includeMetadata {
		req.SetQuery("include", "metadata")
	}
	return req, nil
}

// Do fetches one page.
func (call *ListQueuesCall) Do(ctx context.Context) (*ListQueuesSegmentResponse, error) {
	req, err := call.request(call.marker)
	if err != nil {
		return nil, err
	}
	return sdk.Do[ListQueuesSegmentResponse](ctx, call.c.pipeline, req, http.StatusOK)
}

// Pager iterates over every page, following NextMarker.
func (call *ListQueuesCall) Pager() *sdk.Pager[*ListQueuesSegmentResponse] {
	return sdk.NewPager(func(ctx context.Context, marker string) (*ListQueuesSegmentResponse, string, error) {
		if marker == "" {
			marker = call.marker
		}
		req, err := call.request(marker)
		if err != nil {
			return nil, "", err
		}
		page, err := sdk.Do[ListQueuesSegmentResponse](ctx, call.c.pipeline, req, http.StatusOK)
		if err != nil {
			return nil, "", err
		}
		return page, page.NextMarker, nil
	})
}
