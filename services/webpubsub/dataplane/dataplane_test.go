package dataplane

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/yaroslav/azrest/sdk"
)

type recorded struct {
	method      string
	path        string
	query       url.Values
	contentType string
	body        string
	calls       int
}

type scopeRecorder struct {
	scopes []string
}

func (s *scopeRecorder) GetToken(ctx context.Context, scopes []string) (sdk.AccessToken, error) {
	s.scopes = scopes
	return sdk.AccessToken{Token: "token", ExpiresOn: time.Now().Add(time.Hour)}, nil
}

func newTestClient(t *testing.T, status int, response string, got *recorded) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*got = recorded{
			method:      r.Method,
			path:        r.URL.EscapedPath(),
			query:       r.URL.Query(),
			contentType: r.Header.Get("Content-Type"),
			body:        string(body),
			calls:       got.calls + 1,
		}
		if r.URL.Query().Get("api-version") != DefaultAPIVersion {
			t.Errorf("api-version = %q", r.URL.Query().Get("api-version"))
		}
		if response != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		fmt.Fprint(w, response)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(sdk.ClientConfig{
		Endpoint:     server.URL,
		Credential:   sdk.NewStaticTokenCredential("token"),
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestNewClient_RequiresEndpoint(t *testing.T) {
	_, err := NewClient(sdk.ClientConfig{Credential: sdk.NewStaticTokenCredential("token")})
	if !errors.Is(err, sdk.ErrInvalidConfig) {
		t.Fatalf("NewClient() error = %v, want ErrInvalidConfig", err)
	}
}

func TestNewClient_DefaultScope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cred := &scopeRecorder{}
	client, err := NewClient(sdk.ClientConfig{Endpoint: server.URL, Credential: cred})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if err := client.HealthStatus().Do(context.Background()); err != nil {
		t.Fatalf("HealthStatus() error = %v", err)
	}
	if len(cred.scopes) != 1 || cred.scopes[0] != DefaultScope {
		t.Errorf("scopes = %v", cred.scopes)
	}
}

func TestValidHub(t *testing.T) {
	tests := []struct {
		hub  string
		want bool
	}{
		{hub: "chat", want: true},
		{hub: "Chat_2.[a],b`", want: true},
		{hub: "", want: false},
		{hub: "1chat", want: false},
		{hub: "chat-room", want: false},
		{hub: "chat room", want: false},
		{hub: "a" + strings.Repeat("b", 127), want: true},
		{hub: "a" + strings.Repeat("b", 128), want: false},
	}

	for _, tt := range tests {
		if got := ValidHub(tt.hub); got != tt.want {
			t.Errorf("ValidHub(%q) = %v, want %v", tt.hub, got, tt.want)
		}
	}
}

func TestOperations(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		status     int
		response   string
		wantMethod string
		wantPath   string
		wantQuery  url.Values
		call       func(c *Client) error
	}{
		{
			name:       "health",
			status:     http.StatusOK,
			wantMethod: http.MethodHead,
			wantPath:   "/api/health",
			call:       func(c *Client) error { return c.HealthStatus().Do(ctx) },
		},
		{
			name:       "generate client token",
			status:     http.StatusOK,
			response:   `{"token":"abc"}`,
			wantMethod: http.MethodPost,
			wantPath:   "/api/hubs/chat/:generateToken",
			wantQuery: url.Values{
				"userId":          {"alice"},
				"role":            {"webpubsub.joinLeaveGroup", "webpubsub.sendToGroup"},
				"minutesToExpire": {"30"},
			},
			call: func(c *Client) error {
				res, err := c.GenerateClientToken("chat").
					UserID("alice").
					Role("webpubsub.joinLeaveGroup", "webpubsub.sendToGroup").
					MinutesToExpire(30).
					Do(ctx)
				if err == nil && *res.Token != "abc" {
					return fmt.Errorf("token = %q", *res.Token)
				}
				return err
			},
		},
		{
			name:       "close all connections",
			status:     http.StatusNoContent,
			wantMethod: http.MethodPost,
			wantPath:   "/api/hubs/chat/:closeConnections",
			wantQuery:  url.Values{"excluded": {"c1", "c2"}, "reason": {"maintenance"}},
			call: func(c *Client) error {
				return c.CloseAllConnections("chat").Excluded("c1", "c2").Reason("maintenance").Do(ctx)
			},
		},
		{
			name:       "close connection",
			status:     http.StatusNoContent,
			wantMethod: http.MethodDelete,
			wantPath:   "/api/hubs/chat/connections/c%2F1",
			wantQuery:  url.Values{"reason": {"bye"}},
			call: func(c *Client) error {
				return c.Connections("chat").Close("c/1").Reason("bye").Do(ctx)
			},
		},
		{
			name:       "connection exists",
			status:     http.StatusOK,
			wantMethod: http.MethodHead,
			wantPath:   "/api/hubs/chat/connections/c1",
			call:       func(c *Client) error { return c.Connections("chat").Exists("c1").Do(ctx) },
		},
		{
			name:       "group exists",
			status:     http.StatusOK,
			wantMethod: http.MethodHead,
			wantPath:   "/api/hubs/chat/groups/g1",
			call:       func(c *Client) error { return c.Groups("chat").Exists("g1").Do(ctx) },
		},
		{
			name:       "close group connections",
			status:     http.StatusNoContent,
			wantMethod: http.MethodPost,
			wantPath:   "/api/hubs/chat/groups/g1/:closeConnections",
			call:       func(c *Client) error { return c.Groups("chat").CloseConnections("g1").Do(ctx) },
		},
		{
			name:       "add connection to group",
			status:     http.StatusOK,
			wantMethod: http.MethodPut,
			wantPath:   "/api/hubs/chat/groups/g1/connections/c1",
			call:       func(c *Client) error { return c.Groups("chat").AddConnection("g1", "c1").Do(ctx) },
		},
		{
			name:       "remove connection from group",
			status:     http.StatusNoContent,
			wantMethod: http.MethodDelete,
			wantPath:   "/api/hubs/chat/groups/g1/connections/c1",
			call:       func(c *Client) error { return c.Groups("chat").RemoveConnection("g1", "c1").Do(ctx) },
		},
		{
			name:       "user exists",
			status:     http.StatusOK,
			wantMethod: http.MethodHead,
			wantPath:   "/api/hubs/chat/users/alice",
			call:       func(c *Client) error { return c.Users("chat").Exists("alice").Do(ctx) },
		},
		{
			name:       "close user connections",
			status:     http.StatusNoContent,
			wantMethod: http.MethodPost,
			wantPath:   "/api/hubs/chat/users/alice/:closeConnections",
			wantQuery:  url.Values{"reason": {"kicked"}},
			call:       func(c *Client) error { return c.Users("chat").CloseConnections("alice").Reason("kicked").Do(ctx) },
		},
		{
			name:       "add user to group",
			status:     http.StatusOK,
			wantMethod: http.MethodPut,
			wantPath:   "/api/hubs/chat/users/alice/groups/g1",
			call:       func(c *Client) error { return c.Users("chat").AddToGroup("alice", "g1").Do(ctx) },
		},
		{
			name:       "remove user from group",
			status:     http.StatusNoContent,
			wantMethod: http.MethodDelete,
			wantPath:   "/api/hubs/chat/users/alice/groups/g1",
			call:       func(c *Client) error { return c.Users("chat").RemoveFromGroup("alice", "g1").Do(ctx) },
		},
		{
			name:       "remove user from all groups",
			status:     http.StatusNoContent,
			wantMethod: http.MethodDelete,
			wantPath:   "/api/hubs/chat/users/alice/groups",
			call:       func(c *Client) error { return c.Users("chat").RemoveFromAllGroups("alice").Do(ctx) },
		},
		{
			name:       "grant permission",
			status:     http.StatusOK,
			wantMethod: http.MethodPut,
			wantPath:   "/api/hubs/chat/permissions/sendToGroup/connections/c1",
			wantQuery:  url.Values{"targetName": {"g1"}},
			call: func(c *Client) error {
				return c.Permissions("chat").Grant(PermissionSendToGroup, "c1").TargetName("g1").Do(ctx)
			},
		},
		{
			name:       "revoke permission",
			status:     http.StatusNoContent,
			wantMethod: http.MethodDelete,
			wantPath:   "/api/hubs/chat/permissions/joinLeaveGroup/connections/c1",
			call: func(c *Client) error {
				return c.Permissions("chat").Revoke(PermissionJoinLeaveGroup, "c1").Do(ctx)
			},
		},
		{
			name:       "check permission",
			status:     http.StatusOK,
			wantMethod: http.MethodHead,
			wantPath:   "/api/hubs/chat/permissions/sendToGroup/connections/c1",
			call: func(c *Client) error {
				return c.Permissions("chat").Check(PermissionSendToGroup, "c1").Do(ctx)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got recorded
			client := newTestClient(t, tt.status, tt.response, &got)

			if err := tt.call(client); err != nil {
				t.Fatalf("call error = %v", err)
			}
			if got.method != tt.wantMethod {
				t.Errorf("method = %q, want %q", got.method, tt.wantMethod)
			}
			if got.path != tt.wantPath {
				t.Errorf("path = %q, want %q", got.path, tt.wantPath)
			}
			for key, want := range tt.wantQuery {
				if fmt.Sprint(got.query[key]) != fmt.Sprint(want) {
					t.Errorf("query %s = %v, want %v", key, got.query[key], want)
				}
			}
		})
	}
}

func TestSend_ContentTypes(t *testing.T) {
	ctx := context.Background()
	jsonMessage, err := JSONMessage(map[string]string{"text": "hi"})
	if err != nil {
		t.Fatalf("JSONMessage() error = %v", err)
	}

	tests := []struct {
		name            string
		call            func(c *Client) error
		wantPath        string
		wantContentType string
		wantBody        string
		wantExcluded    []string
	}{
		{
			name:            "json to all",
			call:            func(c *Client) error { return c.SendToAll("chat", jsonMessage).Excluded("c9").Do(ctx) },
			wantPath:        "/api/hubs/chat/:send",
			wantContentType: ContentTypeJSON,
			wantBody:        `{"text":"hi"}`,
			wantExcluded:    []string{"c9"},
		},
		{
			name:            "text to group",
			call:            func(c *Client) error { return c.Groups("chat").Send("g1", TextMessage("hello")).Do(ctx) },
			wantPath:        "/api/hubs/chat/groups/g1/:send",
			wantContentType: ContentTypeText,
			wantBody:        "hello",
		},
		{
			name:            "binary to user",
			call:            func(c *Client) error { return c.Users("chat").Send("alice", BinaryMessage([]byte{0x01, 0x02})).Do(ctx) },
			wantPath:        "/api/hubs/chat/users/alice/:send",
			wantContentType: ContentTypeBinary,
			wantBody:        "\x01\x02",
		},
		{
			name:            "untyped to connection",
			call:            func(c *Client) error { return c.Connections("chat").Send("c1", Message{Data: []byte(`"x"`)}).Do(ctx) },
			wantPath:        "/api/hubs/chat/connections/c1/:send",
			wantContentType: ContentTypeJSON,
			wantBody:        `"x"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got recorded
			client := newTestClient(t, http.StatusAccepted, "", &got)

			if err := tt.call(client); err != nil {
				t.Fatalf("call error = %v", err)
			}
			if got.method != http.MethodPost || got.path != tt.wantPath {
				t.Errorf("request = %s %s", got.method, got.path)
			}
			if got.contentType != tt.wantContentType {
				t.Errorf("content type = %q, want %q", got.contentType, tt.wantContentType)
			}
			if got.body != tt.wantBody {
				t.Errorf("body = %q, want %q", got.body, tt.wantBody)
			}
			if fmt.Sprint(got.query["excluded"]) != fmt.Sprint(tt.wantExcluded) {
				t.Errorf("excluded = %v, want %v", got.query["excluded"], tt.wantExcluded)
			}
		})
	}
}

func TestExists_NotFound(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusNotFound, "", &got)

	err := client.Users("chat").Exists("nobody").Do(context.Background())
	if !sdk.IsNotFound(err) {
		t.Fatalf("Exists() error = %v, want not found", err)
	}
}

func TestInvalidHub_NoRequest(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusAccepted, "", &got)

	err := client.SendToAll("9chat", TextMessage("x")).Do(context.Background())
	if !errors.Is(err, ErrInvalidHub) {
		t.Fatalf("SendToAll() error = %v, want ErrInvalidHub", err)
	}
	if got.calls != 0 {
		t.Errorf("server called %d times", got.calls)
	}
}

func TestMissingConnectionID(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusOK, "", &got)

	err := client.Groups("chat").AddConnection("g1", "").Do(context.Background())
	if !errors.Is(err, sdk.ErrMissingParameter) {
		t.Fatalf("AddConnection() error = %v, want ErrMissingParameter", err)
	}
}
