package webpubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/sdk"
)

const testResource = "/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.SignalRService/webPubSub/wps1"

type recorded struct {
	method string
	path   string
	body   string
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("sub-1", sdk.ClientConfig{
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

func newTestClient(t *testing.T, status int, response string, got *recorded) *Client {
	t.Helper()

	return newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*got = recorded{method: r.Method, path: r.URL.Path, body: string(body)}
		if r.URL.Query().Get("api-version") != DefaultAPIVersion {
			t.Errorf("api-version = %q", r.URL.Query().Get("api-version"))
		}
		if status == http.StatusAccepted {
			w.Header().Set("Azure-AsyncOperation", "https://management.azure.com/op/1")
		}
		if response != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		fmt.Fprint(w, response)
	})
}

func TestWebPubSub_Operations(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		status     int
		response   string
		wantMethod string
		wantPath   string
		call       func(c *Client) error
	}{
		{
			name:       "check name availability",
			status:     http.StatusOK,
			response:   `{"nameAvailable":false,"reason":"AlreadyExists"}`,
			wantMethod: http.MethodPost,
			wantPath:   "/subscriptions/sub-1/providers/Microsoft.SignalRService/locations/eastus/checkNameAvailability",
			call: func(c *Client) error {
				res, err := c.WebPubSub().CheckNameAvailability("eastus", NameAvailabilityParameters{Name: "wps1"}).Do(ctx)
				if err == nil && *res.NameAvailable {
					return fmt.Errorf("name reported available")
				}
				return err
			},
		},
		{
			name:       "list by subscription",
			status:     http.StatusOK,
			response:   `{"value":[]}`,
			wantMethod: http.MethodGet,
			wantPath:   "/subscriptions/sub-1/providers/Microsoft.SignalRService/webPubSub",
			call: func(c *Client) error {
				_, err := c.WebPubSub().ListBySubscription().Do(ctx)
				return err
			},
		},
		{
			name:       "list by resource group",
			status:     http.StatusOK,
			response:   `{"value":[]}`,
			wantMethod: http.MethodGet,
			wantPath:   "/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.SignalRService/webPubSub",
			call: func(c *Client) error {
				_, err := c.WebPubSub().ListByResourceGroup("rg").Do(ctx)
				return err
			},
		},
		{
			name:       "get",
			status:     http.StatusOK,
			response:   `{"name":"wps1","location":"eastus","properties":{"provisioningState":"Succeeded","hostName":"wps1.webpubsub.azure.com"}}`,
			wantMethod: http.MethodGet,
			wantPath:   testResource,
			call: func(c *Client) error {
				res, err := c.WebPubSub().Get("rg", "wps1").Do(ctx)
				if err == nil && res.ProvisioningStateOf() != string(ProvisioningStateSucceeded) {
					return fmt.Errorf("state = %q", res.ProvisioningStateOf())
				}
				return err
			},
		},
		{
			name:       "delete accepted",
			status:     http.StatusAccepted,
			wantMethod: http.MethodDelete,
			wantPath:   testResource,
			call: func(c *Client) error {
				return c.WebPubSub().Delete("rg", "wps1").Do(ctx)
			},
		},
		{
			name:       "list keys",
			status:     http.StatusOK,
			response:   `{"primaryKey":"p","secondaryKey":"s"}`,
			wantMethod: http.MethodPost,
			wantPath:   testResource + "/listKeys",
			call: func(c *Client) error {
				res, err := c.WebPubSub().ListKeys("rg", "wps1").Do(ctx)
				if err == nil && *res.PrimaryKey != "p" {
					return fmt.Errorf("primary = %q", *res.PrimaryKey)
				}
				return err
			},
		},
		{
			name:       "restart",
			status:     http.StatusAccepted,
			wantMethod: http.MethodPost,
			wantPath:   testResource + "/restart",
			call: func(c *Client) error {
				op, err := c.WebPubSub().Restart("rg", "wps1").Do(ctx)
				if err == nil && op != "https://management.azure.com/op/1" {
					return fmt.Errorf("operation = %q", op)
				}
				return err
			},
		},
		{
			name:       "list skus",
			status:     http.StatusOK,
			response:   `{"value":[{"resourceType":"Microsoft.SignalRService/WebPubSub","capacity":{"maximum":100,"scaleType":"Manual"}}]}`,
			wantMethod: http.MethodGet,
			wantPath:   testResource + "/skus",
			call: func(c *Client) error {
				res, err := c.WebPubSub().ListSkus("rg", "wps1").Do(ctx)
				if err == nil && *res.Value[0].Capacity.ScaleType != ScaleTypeManual {
					return fmt.Errorf("scale type = %q", *res.Value[0].Capacity.ScaleType)
				}
				return err
			},
		},
		{
			name:       "hubs list",
			status:     http.StatusOK,
			response:   `{"value":[{"name":"chat","properties":{}}]}`,
			wantMethod: http.MethodGet,
			wantPath:   testResource + "/hubs",
			call: func(c *Client) error {
				_, err := c.Hubs().List("rg", "wps1").Do(ctx)
				return err
			},
		},
		{
			name:       "hubs get",
			status:     http.StatusOK,
			response:   `{"name":"chat","properties":{"anonymousConnectPolicy":"deny"}}`,
			wantMethod: http.MethodGet,
			wantPath:   testResource + "/hubs/chat",
			call: func(c *Client) error {
				_, err := c.Hubs().Get("rg", "wps1", "chat").Do(ctx)
				return err
			},
		},
		{
			name:       "hubs delete",
			status:     http.StatusNoContent,
			wantMethod: http.MethodDelete,
			wantPath:   testResource + "/hubs/chat",
			call: func(c *Client) error {
				return c.Hubs().Delete("rg", "wps1", "chat").Do(ctx)
			},
		},
		{
			name:       "usages",
			status:     http.StatusOK,
			response:   `{"value":[{"currentValue":1,"limit":5,"unit":"Count"}]}`,
			wantMethod: http.MethodGet,
			wantPath:   "/subscriptions/sub-1/providers/Microsoft.SignalRService/locations/eastus/usages",
			call: func(c *Client) error {
				_, err := c.Usages().List("eastus").Do(ctx)
				return err
			},
		},
		{
			name:       "operations",
			status:     http.StatusOK,
			response:   `{"value":[{"name":"Microsoft.SignalRService/WebPubSub/read"}]}`,
			wantMethod: http.MethodGet,
			wantPath:   "/providers/Microsoft.SignalRService/operations",
			call: func(c *Client) error {
				_, err := c.Operations().List().Do(ctx)
				return err
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
		})
	}
}

func TestCheckNameAvailability_DefaultsType(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusOK, `{"nameAvailable":true}`, &got)

	if _, err := client.WebPubSub().CheckNameAvailability("eastus", NameAvailabilityParameters{Name: "wps1"}).Do(context.Background()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	want := `{"type":"Microsoft.SignalRService/WebPubSub","name":"wps1"}`
	if got.body != want {
		t.Errorf("body = %s, want %s", got.body, want)
	}
}

func TestCreateOrUpdate_StatusCodes(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		wantCreated  bool
		wantAccepted bool
	}{
		{name: "replaced", status: http.StatusOK},
		{name: "created", status: http.StatusCreated, wantCreated: true},
		{name: "accepted", status: http.StatusAccepted, wantAccepted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got recorded
			client := newTestClient(t, tt.status, `{"name":"wps1","location":"eastus"}`, &got)

			parameters := Resource{
				TrackedResource: models.TrackedResource{Location: "eastus"},
				Sku:             &ResourceSku{Name: "Standard_S1", Capacity: models.Ptr(int32(1))},
			}
			res, err := client.WebPubSub().CreateOrUpdate("rg", "wps1", parameters).Do(context.Background())
			if err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			if res.Created() != tt.wantCreated || res.Accepted() != tt.wantAccepted {
				t.Errorf("created = %v, accepted = %v", res.Created(), res.Accepted())
			}
			if got.method != http.MethodPut || got.path != testResource {
				t.Errorf("request = %s %s", got.method, got.path)
			}
		})
	}
}

func TestCreateOrUpdate_RejectsNoContent(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusNoContent, "", &got)

	_, err := client.WebPubSub().CreateOrUpdate("rg", "wps1", Resource{}).Do(context.Background())
	if sdk.StatusCode(err) != http.StatusNoContent {
		t.Fatalf("StatusCode(err) = %d, err = %v", sdk.StatusCode(err), err)
	}
}

func TestRegenerateKey_Body(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusAccepted, "", &got)

	res, err := client.WebPubSub().RegenerateKey("rg", "wps1", RegenerateKeyParameters{KeyType: models.Ptr(KeyTypeSecondary)}).Do(context.Background())
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if !res.Accepted() {
		t.Errorf("status = %d", res.StatusCode)
	}
	if got.path != testResource+"/regenerateKey" || got.body != `{"keyType":"Secondary"}` {
		t.Errorf("request = %s %s", got.path, got.body)
	}
}

func TestHubs_CreateOrUpdateBody(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusCreated, `{"name":"chat","properties":{}}`, &got)

	hub := Hub{Properties: HubProperties{
		EventHandlers: []EventHandler{{
			URLTemplate:  "https://upstream.example.com/{hub}/{event}",
			SystemEvents: []string{"connect", "disconnected"},
		}},
		EventListeners: []EventListener{{
			Filter:   NewEventNameFilter([]string{"connected"}, "*"),
			Endpoint: NewEventHubEndpoint("ns.servicebus.windows.net", "events"),
		}},
	}}

	res, err := client.Hubs().CreateOrUpdate("rg", "wps1", "chat", hub).Do(context.Background())
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if !res.Created() {
		t.Errorf("status = %d", res.StatusCode)
	}

	var body struct {
		Properties struct {
			EventListeners []struct {
				Filter   map[string]any `json:"filter"`
				Endpoint map[string]any `json:"endpoint"`
			} `json:"eventListeners"`
		} `json:"properties"`
	}
	if err := json.Unmarshal([]byte(got.body), &body); err != nil {
		t.Fatalf("body %q: %v", got.body, err)
	}
	listener := body.Properties.EventListeners[0]
	if listener.Filter["type"] != FilterTypeEventName || listener.Endpoint["type"] != EndpointTypeEventHub {
		t.Errorf("listener = %+v", listener)
	}
	if listener.Endpoint["eventHubName"] != "events" {
		t.Errorf("endpoint = %+v", listener.Endpoint)
	}
}

func TestListBySubscription_Pager(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("$skipToken") == "" {
			fmt.Fprint(w, `{"value":[{"name":"a","location":"eastus"}],`+
				`"nextLink":"/subscriptions/sub-1/providers/Microsoft.SignalRService/webPubSub?api-version=2023-06-01-preview&$skipToken=x"}`)
			return
		}
		fmt.Fprint(w, `{"value":[{"name":"b","location":"westus"}]}`)
	})

	pages, err := client.WebPubSub().ListBySubscription().Pager().All(context.Background())
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(pages) != 2 || pages[1].Value[0].ResourceName() != "b" {
		t.Errorf("pages = %+v", pages)
	}
}

func TestEnums_UnknownValuesSurvive(t *testing.T) {
	var res Resource
	if err := json.Unmarshal([]byte(`{"location":"eastus","kind":"SocketIO2","properties":{"provisioningState":"Migrating"}}`), &res); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if *res.Kind != ServiceKind("SocketIO2") || models.IsKnown(*res.Kind, PossibleServiceKindValues()) {
		t.Errorf("kind = %q", *res.Kind)
	}
	if res.ProvisioningStateOf() != "Migrating" {
		t.Errorf("state = %q", res.ProvisioningStateOf())
	}
}
