package queuestorage

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/yaroslav/azrest/sdk"
)

// QueuesClient manages queues.
type QueuesClient struct {
	c *Client
}

// QueueCreateCall is PUT /{queueName}.
type QueueCreateCall struct {
	c *Client
	callOptions
	queueName string
	metadata  map[string]string
}

// Create creates a queue.
func (q *QueuesClient) Create(queueName string) *QueueCreateCall {
	return &QueueCreateCall{c: q.c, queueName: queueName}
}

// Metadata sets the metadata of the new queue.
func (call *QueueCreateCall) Metadata(metadata map[string]string) *QueueCreateCall {
	call.metadata = metadata
	return call
}

// Do sends the request. created is false when a queue with the same name
// and metadata already existed (204).
func (call *QueueCreateCall) Do(ctx context.Context) (created bool, err error) {
	req, err := call.c.newRequest(http.MethodPut, "/{queueName}", call.queueName)
	if err != nil {
		return false, err
	}
	call.apply(req)
	if err := setMetadataHeaders(req, call.metadata); err != nil {
		return false, err
	}
	resp, err := call.c.pipeline.Invoke(ctx, req, nil, http.StatusCreated, http.StatusNoContent)
	if err != nil {
		return false, err
	}
	return resp.StatusCode == http.StatusCreated, nil
}

// QueueDeleteCall is DELETE /{queueName}.
type QueueDeleteCall struct {
	c *Client
	callOptions
	queueName string
}

// Delete deletes a queue and its messages.
func (q *QueuesClient) Delete(queueName string) *QueueDeleteCall {
	return &QueueDeleteCall{c: q.c, queueName: queueName}
}

// Do sends the request.
func (call *QueueDeleteCall) Do(ctx context.Context) error {
	req, err := call.c.newRequest(http.MethodDelete, "/{queueName}", call.queueName)
	if err != nil {
		return err
	}
	call.apply(req)
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusNoContent)
	return err
}

// QueueGetPropertiesCall is GET /{queueName}?comp=metadata.
type QueueGetPropertiesCall struct {
	c *Client
	callOptions
	queueName string
}

// GetProperties returns the metadata and approximate message count of a queue.
func (q *QueuesClient) GetProperties(queueName string) *QueueGetPropertiesCall {
	return &QueueGetPropertiesCall{c: q.c, queueName: queueName}
}

// Do sends the request.
func (call *QueueGetPropertiesCall) Do(ctx context.Context) (*QueueProperties, error) {
	req, err := call.c.newRequest(http.MethodGet, "/{queueName}?comp=metadata", call.queueName)
	if err != nil {
		return nil, err
	}
	call.apply(req)
	resp, err := call.c.pipeline.Invoke(ctx, req, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	props := &QueueProperties{Metadata: metadataFromHeaders(resp.Header)}
	if v := resp.Header.Get(headerMessageCount); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", headerMessageCount, err)
		}
		props.ApproximateMessagesCount = n
	}
	return props, nil
}

// QueueSetMetadataCall is PUT /{queueName}?comp=metadata.
type QueueSetMetadataCall struct {
	c *Client
	callOptions
	queueName string
	metadata  map[string]string
}

// SetMetadata replaces the metadata of a queue. Empty metadata clears it.
func (q *QueuesClient) SetMetadata(queueName string, metadata map[string]string) *QueueSetMetadataCall {
	return &QueueSetMetadataCall{c: q.c, queueName: queueName, metadata: metadata}
}

// Do sends the request.
func (call *QueueSetMetadataCall) Do(ctx context.Context) error {
	req, err := call.c.newRequest(http.MethodPut, "/{queueName}?comp=metadata", call.queueName)
	if err != nil {
		return err
	}
	call.apply(req)
	if err := setMetadataHeaders(req, call.metadata); err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusNoContent)
	return err
}

// QueueGetAccessPolicyCall is GET /{queueName}?comp=acl.
type QueueGetAccessPolicyCall struct {
	c *Client
	callOptions
	queueName string
}

// GetAccessPolicy returns the stored access policies of a queue.
func (q *QueuesClient) GetAccessPolicy(queueName string) *QueueGetAccessPolicyCall {
	return &QueueGetAccessPolicyCall{c: q.c, queueName: queueName}
}

// Do sends the request.
func (call *QueueGetAccessPolicyCall) Do(ctx context.Context) ([]SignedIdentifier, error) {
	req, err := call.c.newRequest(http.MethodGet, "/{queueName}?comp=acl", call.queueName)
	if err != nil {
		return nil, err
	}
	call.apply(req)
	res, err := sdk.Do[signedIdentifiers](ctx, call.c.pipeline, req, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

// QueueSetAccessPolicyCall is PUT /{queueName}?comp=acl.
type QueueSetAccessPolicyCall struct {
	c *Client
	callOptions
	queueName string
	policies  []SignedIdentifier
}

// SetAccessPolicy replaces the stored access policies of a queue.
// A queue holds at most five.
func (q *QueuesClient) SetAccessPolicy(queueName string, policies []SignedIdentifier) *QueueSetAccessPolicyCall {
	return &QueueSetAccessPolicyCall{c: q.c, queueName: queueName, policies: policies}
}

// Do sends the request.
func (call *QueueSetAccessPolicyCall) Do(ctx context.Context) error {
	req, err := call.c.newRequest(http.MethodPut, "/{queueName}?comp=acl", call.queueName)
	if err != nil {
		return err
	}
	call.apply(req)
	if err := req.SetXMLBody(signedIdentifiers{Items: call.policies}); err != nil {
		return err
	}
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusNoContent)
	return err
}
