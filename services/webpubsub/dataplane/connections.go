package dataplane

import (
	"context"
	"net/http"
)

// ConnectionsClient manages single connections of a hub.
type ConnectionsClient struct {
	hubRef
}

// CloseConnectionCall is DELETE /api/hubs/{hub}/connections/{connectionId}.
type CloseConnectionCall struct {
	hubRef
	connectionID string
	reason       string
}

// Close closes one connection.
func (cc *ConnectionsClient) Close(connectionID string) *CloseConnectionCall {
	return &CloseConnectionCall{hubRef: cc.hubRef, connectionID: connectionID}
}

// Reason is sent to the client being closed.
func (call *CloseConnectionCall) Reason(reason string) *CloseConnectionCall {
	call.reason = reason
	return call
}

// Do sends the request.
func (call *CloseConnectionCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodDelete, "/connections/{connectionId}", call.connectionID)
	if err != nil {
		return err
	}
	req.SetQuery("reason", call.reason)
	return call.invoke(ctx, req, http.StatusNoContent)
}

// Exists checks whether a connection is open.
func (cc *ConnectionsClient) Exists(connectionID string) *ExistsCall {
	return &ExistsCall{hubRef: cc.hubRef, suffix: "/connections/{connectionId}", params: []string{connectionID}}
}

// Send delivers message to one connection.
func (cc *ConnectionsClient) Send(connectionID string, message Message) *SendCall {
	return &SendCall{hubRef: cc.hubRef, suffix: "/connections/{connectionId}/:send", params: []string{connectionID}, message: message}
}
