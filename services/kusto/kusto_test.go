package kusto

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

const testCluster = "/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.Kusto/clusters/adx1"

type recorded struct {
	method string
	path   string
	body   string
}

func newTestClient(t *testing.T, status int, response string, got *recorded) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*got = recorded{method: r.Method, path: r.URL.Path, body: string(body)}
		if r.URL.Query().Get("api-version") != DefaultAPIVersion {
			t.Errorf("api-version = %q", r.URL.Query().Get("api-version"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, response)
	}))
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

func TestClusters_Operations(t *testing.T) {
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
			name:       "get",
			status:     http.StatusOK,
			response:   `{"name":"adx1","location":"westus","sku":{"name":"Standard_D13_v2","tier":"Standard"},"properties":{"state":"Running"}}`,
			wantMethod: http.MethodGet,
			wantPath:   testCluster,
			call: func(c *Client) error {
				cl, err := c.Clusters().Get("rg", "adx1").Do(ctx)
				if err == nil && *cl.Properties.State != ClusterStateRunning {
					return fmt.Errorf("state = %q", *cl.Properties.State)
				}
				return err
			},
		},
		{
			name:       "update accepted",
			status:     http.StatusAccepted,
			wantMethod: http.MethodPatch,
			wantPath:   testCluster,
			call: func(c *Client) error {
				res, err := c.Clusters().Update("rg", "adx1", ClusterUpdate{Tags: map[string]string{"a": "b"}}).Do(ctx)
				if err == nil && !res.Accepted() {
					return fmt.Errorf("status = %d", res.StatusCode)
				}
				return err
			},
		},
		{
			name:       "stop",
			status:     http.StatusAccepted,
			wantMethod: http.MethodPost,
			wantPath:   testCluster + "/stop",
			call:       func(c *Client) error { return c.Clusters().Stop("rg", "adx1").Do(ctx) },
		},
		{
			name:       "start",
			status:     http.StatusOK,
			wantMethod: http.MethodPost,
			wantPath:   testCluster + "/start",
			call:       func(c *Client) error { return c.Clusters().Start("rg", "adx1").Do(ctx) },
		},
		{
			name:       "delete",
			status:     http.StatusNoContent,
			wantMethod: http.MethodDelete,
			wantPath:   testCluster,
			call:       func(c *Client) error { return c.Clusters().Delete("rg", "adx1").Do(ctx) },
		},
		{
			name:       "list skus",
			status:     http.StatusOK,
			response:   `{"value":[{"name":"Standard_L8s","tier":"Standard","locations":["westus"]}]}`,
			wantMethod: http.MethodGet,
			wantPath:   "/subscriptions/sub-1/providers/Microsoft.Kusto/skus",
			call: func(c *Client) error {
				_, err := c.Clusters().ListSkus().Do(ctx)
				return err
			},
		},
		{
			name:       "list skus by resource",
			status:     http.StatusOK,
			response:   `{"value":[{"capacity":{"scaleType":"automatic","minimum":2,"maximum":100,"default":2}}]}`,
			wantMethod: http.MethodGet,
			wantPath:   testCluster + "/skus",
			call: func(c *Client) error {
				res, err := c.Clusters().ListSkusByResource("rg", "adx1").Do(ctx)
				if err == nil && res.Value[0].Capacity.ScaleType != AzureScaleTypeAutomatic {
					return fmt.Errorf("scale type = %q", res.Value[0].Capacity.ScaleType)
				}
				return err
			},
		},
		{
			name:       "list by resource group",
			status:     http.StatusOK,
			response:   `{"value":[]}`,
			wantMethod: http.MethodGet,
			wantPath:   "/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.Kusto/clusters",
			call: func(c *Client) error {
				_, err := c.Clusters().ListByResourceGroup("rg").Do(ctx)
				return err
			},
		},
		{
			name:       "database delete",
			status:     http.StatusOK,
			wantMethod: http.MethodDelete,
			wantPath:   testCluster + "/databases/db1",
			call:       func(c *Client) error { return c.Databases().Delete("rg", "adx1", "db1").Do(ctx) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got recorded
			client := newTestClient(t, tt.status, tt.response, &got)
			if err := tt.call(client); err != nil {
				t.Fatalf("call error = %v", err)
			}
			if got.method != tt.wantMethod || got.path != tt.wantPath {
				t.Errorf("request = %s %s, want %s %s", got.method, got.path, tt.wantMethod, tt.wantPath)
			}
		})
	}
}

func TestClusters_CheckNameAvailability(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusOK, `{"nameAvailable":false,"name":"adx1","reason":"AlreadyExists"}`, &got)

	res, err := client.Clusters().CheckNameAvailability("westus", ClusterCheckNameRequest{Name: "adx1"}).Do(context.Background())
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	if got.path != "/subscriptions/sub-1/providers/Microsoft.Kusto/locations/westus/checkNameAvailability" {
		t.Errorf("path = %q", got.path)
	}
	if got.body != `{"name":"adx1","type":"Microsoft.Kusto/clusters"}` {
		t.Errorf("body = %s", got.body)
	}
	if *res.NameAvailable || *res.Reason != CheckNameReasonAlreadyExists {
		t.Errorf("result = %+v", res)
	}
}

func TestDatabases_CreateOrUpdateKind(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusCreated,
		`{"name":"db1","kind":"ReadWrite","properties":{"provisioningState":"Creating","softDeletePeriod":"P365D"}}`, &got)

	res, err := client.Databases().CreateOrUpdate("rg", "adx1", "db1", Database{
		Location:   models.Ptr("westus"),
		Kind:       DatabaseKindReadWrite,
		Properties: &DatabaseProperties{SoftDeletePeriod: models.Ptr("P365D")},
	}).Do(context.Background())
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	var sent map[string]any
	if err := json.Unmarshal([]byte(got.body), &sent); err != nil {
		t.Fatalf("body decode error = %v", err)
	}
	if sent["kind"] != "ReadWrite" {
		t.Errorf("kind = %v", sent["kind"])
	}
	if !res.Created() || res.Value.Kind != DatabaseKindReadWrite {
		t.Errorf("result = %+v", res)
	}
}

func TestOperations_Pager(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusOK, `{"value":[{"name":"Microsoft.Kusto/clusters/read","origin":"user"}]}`, &got)

	pages, err := client.Operations().List().Pager().All(context.Background())
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(pages) != 1 || got.path != "/providers/Microsoft.Kusto/operations" {
		t.Errorf("pages = %d, path = %q", len(pages), got.path)
	}
}
