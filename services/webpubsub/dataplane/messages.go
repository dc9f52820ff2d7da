package dataplane

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/yaroslav/azrest/sdk"
)

// Content types accepted by the send operations.
const (
	ContentTypeJSON   = "application/json"
	ContentTypeText   = "text/plain"
	ContentTypeBinary = "application/octet-stream"
)

// Message is the payload of a send operation.
type Message struct {
	ContentType string
	Data        []byte
}

// JSONMessage marshals v into a JSON message.
func JSONMessage(v any) (Message, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Message{}, fmt.Errorf("failed to marshal message: %w", err)
	}
	return Message{ContentType: ContentTypeJSON, Data: data}, nil
}

// TextMessage is a plain text message.
func TextMessage(text string) Message {
	return Message{ContentType: ContentTypeText, Data: []byte(text)}
}

// BinaryMessage is an opaque binary message.
func BinaryMessage(data []byte) Message {
	return Message{ContentType: ContentTypeBinary, Data: data}
}

func (m Message) apply(req *sdk.Request) {
	contentType := m.ContentType
	if contentType == "" {
		contentType = ContentTypeJSON
	}
	req.SetBody(contentType, m.Data)
}

func addExcluded(req *sdk.Request, excluded []string) {
	for _, id := range excluded {
		if id != "" {
			req.Query.Add("excluded", id)
		}
	}
}

// ClientTokenResponse carries a client access token.
type ClientTokenResponse struct {
	Token *string `json:"token,omitempty"`
}

// GenerateClientTokenCall is POST /api/hubs/{hub}/:generateToken.
type GenerateClientTokenCall struct {
	hubRef
	userID          string
	roles           []string
	minutesToExpire int32
}

// GenerateClientToken issues a token a client uses to connect to hub.
func (c *Client) GenerateClientToken(hub string) *GenerateClientTokenCall {
	return &GenerateClientTokenCall{hubRef: hubRef{c, hub}}
}

// UserID sets the user the token is issued to.
func (call *GenerateClientTokenCall) UserID(id string) *GenerateClientTokenCall {
	call.userID = id
	return call
}

// Role adds roles to the token, e.g. "webpubsub.sendToGroup.chat".
func (call *GenerateClientTokenCall) Role(roles ...string) *GenerateClientTokenCall {
	call.roles = append(call.roles, roles...)
	return call
}

// MinutesToExpire sets the token lifetime. The service default is 60.
func (call *GenerateClientTokenCall) MinutesToExpire(minutes int32) *GenerateClientTokenCall {
	call.minutesToExpire = minutes
	return call
}

// Do sends the request.
func (call *GenerateClientTokenCall) Do(ctx context.Context) (*ClientTokenResponse, error) {
	req, err := call.request(http.MethodPost, "/:generateToken")
	if err != nil {
		return nil, err
	}
	req.SetQuery("userId", call.userID)
	for _, role := range call.roles {
		req.Query.Add("role", role)
	}
	if call.minutesToExpire > 0 {
		req.SetQuery("minutesToExpire", strconv.FormatInt(int64(call.minutesToExpire), 10))
	}
	return sdk.Do[ClientTokenResponse](ctx, call.c.pipeline, req, http.StatusOK)
}

// CloseCall closes connections, optionally sparing some and giving a reason.
// It serves the hub, group and user variants.
type CloseCall struct {
	hubRef
	suffix   string
	params   []string
	excluded []string
	reason   string
}

// Excluded spares the given connection IDs.
func (call *CloseCall) Excluded(connectionIDs ...string) *CloseCall {
	call.excluded = append(call.excluded, connectionIDs...)
	return call
}

// Reason is sent to the clients being closed.
func (call *CloseCall) Reason(reason string) *CloseCall {
	call.reason = reason
	return call
}

// Do sends the request.
func (call *CloseCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodPost, call.suffix, call.params...)
	if err != nil {
		return err
	}
	addExcluded(req, call.excluded)
	req.SetQuery("reason", call.reason)
	return call.invoke(ctx, req, http.StatusNoContent)
}

// CloseAllConnections closes every connection of hub.
func (c *Client) CloseAllConnections(hub string) *CloseCall {
	return &CloseCall{hubRef: hubRef{c, hub}, suffix: "/:closeConnections"}
}

// SendCall delivers a message. It serves the hub, group, user and
// connection variants.
type SendCall struct {
	hubRef
	suffix   string
	params   []string
	message  Message
	excluded []string
}

// Excluded skips the given connection IDs. Ignored for user and
// connection sends.
func (call *SendCall) Excluded(connectionIDs ...string) *SendCall {
	call.excluded = append(call.excluded, connectionIDs...)
	return call
}

// Do sends the request.
func (call *SendCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodPost, call.suffix, call.params...)
	if err != nil {
		return err
	}
	addExcluded(req, call.excluded)
	call.message.apply(req)
	return call.invoke(ctx, req, http.StatusAccepted)
}

// SendToAll broadcasts message to every connection of hub.
func (c *Client) SendToAll(hub string, message Message) *SendCall {
	return &SendCall{hubRef: hubRef{c, hub}, suffix: "/:send", message: message}
}

// ExistsCall is a HEAD existence check. Do returns nil when the target
// exists and an error matching sdk.IsNotFound when it does not.
type ExistsCall struct {
	hubRef
	suffix string
	params []string
}

// Do sends the request.
func (call *ExistsCall) Do(ctx context.Context) error {
	req, err := call.request(http.MethodHead, call.suffix, call.params...)
	if err != nil {
		return err
	}
	return call.invoke(ctx, req, http.StatusOK)
}

// UnitCall is an operation without a response body.
type UnitCall struct {
	hubRef
	method   string
	suffix   string
	params   []string
	query    map[string]string
	expected int
}

// Do sends the request.
func (call *UnitCall) Do(ctx context.Context) error {
	req, err := call.request(call.method, call.suffix, call.params...)
	if err != nil {
		return err
	}
	for key, value := range call.query {
		req.SetQuery(key, value)
	}
	return call.invoke(ctx, req, call.expected)
}
