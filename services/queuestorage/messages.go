package queuestorage

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/yaroslav/azrest/sdk"
)

// MessagesClient reads and writes the messages of a queue.
type MessagesClient struct {
	c *Client
}

// DequeueCall is GET /{queueName}/messages.
type DequeueCall struct {
	c *Client
	callOptions
	queueName         string
	numberOfMessages  int
	visibilityTimeout int
}

// Dequeue takes messages from the front of a queue and hides them for
// the visibility timeout.
func (m *MessagesClient) Dequeue(queueName string) *DequeueCall {
	return &DequeueCall{c: m.c, queueName: queueName}
}

// NumberOfMessages asks for up to n messages (1 to 32, default 1).
func (call *DequeueCall) NumberOfMessages(n int) *DequeueCall {
	call.numberOfMessages = n
	return call
}

// VisibilityTimeout hides the messages for the given seconds (default 30).
func (call *DequeueCall) VisibilityTimeout(seconds int) *DequeueCall {
	call.visibilityTimeout = seconds
	return call
}

// Do sends the request.
func (call *DequeueCall) Do(ctx context.Context) ([]DequeuedMessage, error) {
	req, err := call.c.newRequest(http.MethodGet, "/{queueName}/messages", call.queueName)
	if err != nil {
		return nil, err
	}
	call.apply(req)
	setPositive(req, "numofmessages", call.numberOfMessages)
	setPositive(req, "visibilitytimeout", call.visibilityTimeout)
	res, err := sdk.Do[messagesList[DequeuedMessage]](ctx, call.c.pipeline, req, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

// EnqueueCall is POST /{queueName}/messages.
type EnqueueCall struct {
	c *Client
	callOptions
	queueName         string
	message           QueueMessage
	visibilityTimeout int
	messageTTL        *int
}

// Enqueue adds a message to the back of a queue.
func (m *MessagesClient) Enqueue(queueName, text string) *EnqueueCall {
	return &EnqueueCall{c: m.c, queueName: queueName, message: QueueMessage{MessageText: text}}
}

// VisibilityTimeout keeps the new message hidden for the given seconds.
func (call *EnqueueCall) VisibilityTimeout(seconds int) *EnqueueCall {
	call.visibilityTimeout = seconds
	return call
}

// MessageTTL sets the time to live in seconds. -1 means the message never expires.
func (call *EnqueueCall) MessageTTL(seconds int) *EnqueueCall {
	call.messageTTL = &seconds
	return call
}

// Do sends the request.
func (call *EnqueueCall) Do(ctx context.Context) (*EnqueuedMessage, error) {
	req, err := call.c.newRequest(http.MethodPost, "/{queueName}/messages", call.queueName)
	if err != nil {
		return nil, err
	}
	call.apply(req)
	setPositive(req, "visibilitytimeout", call.visibilityTimeout)
	if call.messageTTL != nil {
		req.SetQuery("messagettl", strconv.Itoa(*call.messageTTL))
	}
	if err := req.SetXMLBody(call.message); err != nil {
		return nil, err
	}
	res, err := sdk.Do[messagesList[EnqueuedMessage]](ctx, call.c.pipeline, req, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	if len(res.Items) == 0 {
		return nil, fmt.Errorf("enqueue response lists no message")
	}
	return &res.Items[0], nil
}

// ClearCall is DELETE /{queueName}/messages.
type ClearCall struct {
	c *Client
	callOptions
	queueName string
}

// Clear deletes every message of a queue.
func (m *MessagesClient) Clear(queueName string) *ClearCall {
	return &ClearCall{c: m.c, queueName: queueName}
}

// Do sends the request.
func (call *ClearCall) Do(ctx context.Context) error {
	req, err := call.c.newRequest(http.MethodDelete, "/{queueName}/messages", call.queueName)
	if err != nil {
		return err
	}
	call.apply(req)
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusNoContent)
	return err
}

// PeekCall is GET /{queueName}/messages?peekonly=true.
type PeekCall struct {
	c *Client
	callOptions
	queueName        string
	numberOfMessages int
}

// Peek reads messages from the front of a queue without hiding them.
func (m *MessagesClient) Peek(queueName string) *PeekCall {
	return &PeekCall{c: m.c, queueName: queueName}
}

// NumberOfMessages asks for up to n messages (1 to 32, default 1).
func (call *PeekCall) NumberOfMessages(n int) *PeekCall {
	call.numberOfMessages = n
	return call
}

// Do sends the request.
func (call *PeekCall) Do(ctx context.Context) ([]PeekedMessage, error) {
	req, err := call.c.newRequest(http.MethodGet, "/{queueName}/messages?peekonly=true", call.queueName)
	if err != nil {
		return nil, err
	}
	call.apply(req)
	setPositive(req, "numofmessages", call.numberOfMessages)
	res, err := sdk.Do[messagesList[PeekedMessage]](ctx, call.c.pipeline, req, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

// MessageIDClient updates and deletes single messages.
type MessageIDClient struct {
	c *Client
}

// MessageUpdateCall is PUT /{queueName}/messages/{messageId}.
type MessageUpdateCall struct {
	c *Client
	callOptions
	queueName         string
	messageID         string
	popReceipt        string
	visibilityTimeout int
	text              *string
}

// Update changes the visibility timeout of a dequeued message and,
// with Text, its content.
func (m *MessageIDClient) Update(queueName, messageID, popReceipt string, visibilityTimeout int) *MessageUpdateCall {
	return &MessageUpdateCall{
		c:                 m.c,
		queueName:         queueName,
		messageID:         messageID,
		popReceipt:        popReceipt,
		visibilityTimeout: visibilityTimeout,
	}
}

// Text replaces the message content.
func (call *MessageUpdateCall) Text(text string) *MessageUpdateCall {
	call.text = &text
	return call
}

// Do sends the request. The returned pop receipt replaces the old one.
func (call *MessageUpdateCall) Do(ctx context.Context) (*UpdatedMessage, error) {
	if call.popReceipt == "" {
		return nil, fmt.Errorf("%w: popreceipt", sdk.ErrMissingParameter)
	}
	req, err := call.c.newRequest(http.MethodPut, "/{queueName}/messages/{messageId}", call.queueName, call.messageID)
	if err != nil {
		return nil, err
	}
	call.apply(req)
	req.SetQuery("popreceipt", call.popReceipt)
	req.SetQuery("visibilitytimeout", strconv.Itoa(call.visibilityTimeout))
	if call.text != nil {
		if err := req.SetXMLBody(QueueMessage{MessageText: *call.text}); err != nil {
			return nil, err
		}
	}
	resp, err := call.c.pipeline.Invoke(ctx, req, nil, http.StatusNoContent)
	if err != nil {
		return nil, err
	}

	updated := &UpdatedMessage{PopReceipt: resp.Header.Get(headerPopReceipt)}
	if v := resp.Header.Get(headerTimeNextVisible); v != "" {
		t, err := http.ParseTime(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", headerTimeNextVisible, err)
		}
		updated.TimeNextVisible = t
	}
	return updated, nil
}

// MessageDeleteCall is DELETE /{queueName}/messages/{messageId}.
type MessageDeleteCall struct {
	c *Client
	callOptions
	queueName  string
	messageID  string
	popReceipt string
}

// Delete deletes a dequeued message.
func (m *MessageIDClient) Delete(queueName, messageID, popReceipt string) *MessageDeleteCall {
	return &MessageDeleteCall{c: m.c, queueName: queueName, messageID: messageID, popReceipt: popReceipt}
}

// Do sends the request.
func (call *MessageDeleteCall) Do(ctx context.Context) error {
	if call.popReceipt == "" {
		return fmt.Errorf("%w: popreceipt", sdk.ErrMissingParameter)
	}
	req, err := call.c.newRequest(http.MethodDelete, "/{queueName}/messages/{messageId}", call.queueName, call.messageID)
	if err != nil {
		return err
	}
	call.apply(req)
	req.SetQuery("popreceipt", call.popReceipt)
	_, err = call.c.pipeline.Invoke(ctx, req, nil, http.StatusNoContent)
	return err
}

func setPositive(req *sdk.Request, key string, value int) {
	if value > 0 {
		req.SetQuery(key, strconv.Itoa(value))
	}
}
