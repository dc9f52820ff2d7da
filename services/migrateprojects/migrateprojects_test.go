package migrateprojects

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/sdk"
)

const testProject = "/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.Migrate/migrateProjects/proj"

type recorded struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   string
}

func newTestClient(t *testing.T, status int, response string, got *recorded) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*got = recorded{method: r.Method, path: r.URL.Path, query: r.URL.Query(), header: r.Header.Clone(), body: string(body)}
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

func TestMigrateProjects_Paths(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		status     int
		response   string
		wantMethod string
		wantPath   string
		wantQuery  map[string]string
		wantLang   string
		call       func(c *Client) error
	}{
		{
			name:       "operations list",
			status:     http.StatusOK,
			response:   `{"value":[{"name":"Microsoft.Migrate/migrateProjects/read","origin":"user"}]}`,
			wantMethod: http.MethodGet,
			wantPath:   "/providers/Microsoft.Migrate/operations",
			call: func(c *Client) error {
				_, err := c.Operations().List().Do(ctx)
				return err
			},
		},
		{
			name:       "project get",
			status:     http.StatusOK,
			response:   `{"name":"proj","properties":{"registeredTools":["ServerMigration_Replication"],"summary":{"servers":{"instanceType":"Servers","discoveredCount":12}}}}`,
			wantMethod: http.MethodGet,
			wantPath:   testProject,
			wantQuery:  map[string]string{"api-version": DefaultAPIVersion},
			call: func(c *Client) error {
				p, err := c.MigrateProjects().Get("rg", "proj").Do(ctx)
				if err != nil {
					return err
				}
				if p.Properties.RegisteredTools[0] != ToolServerMigrationReplication {
					return fmt.Errorf("tool = %q", p.Properties.RegisteredTools[0])
				}
				if *p.Properties.Summary["servers"].DiscoveredCount != 12 {
					return fmt.Errorf("summary = %+v", p.Properties.Summary)
				}
				return nil
			},
		},
		{
			name:       "project patch",
			status:     http.StatusOK,
			response:   `{"name":"proj"}`,
			wantMethod: http.MethodPatch,
			wantPath:   testProject,
			wantLang:   "de-DE",
			call: func(c *Client) error {
				_, err := c.MigrateProjects().Patch("rg", "proj", MigrateProject{Tags: map[string]string{"env": "test"}}).AcceptLanguage("de-DE").Do(ctx)
				return err
			},
		},
		{
			name:       "project delete",
			status:     http.StatusOK,
			wantMethod: http.MethodDelete,
			wantPath:   testProject,
			call: func(c *Client) error {
				return c.MigrateProjects().Delete("rg", "proj").Do(ctx)
			},
		},
		{
			name:       "register tool",
			status:     http.StatusOK,
			response:   `{"isRegistered":true}`,
			wantMethod: http.MethodPost,
			wantPath:   testProject + "/registerTool",
			call: func(c *Client) error {
				res, err := c.MigrateProjects().RegisterTool("rg", "proj", RegisterToolInput{Tool: models.Ptr(ToolCarbonite)}).Do(ctx)
				if err == nil && !*res.IsRegistered {
					return fmt.Errorf("tool not registered")
				}
				return err
			},
		},
		{
			name:       "refresh summary",
			status:     http.StatusOK,
			response:   `{"isRefreshed":true}`,
			wantMethod: http.MethodPost,
			wantPath:   testProject + "/refreshSummary",
			call: func(c *Client) error {
				_, err := c.MigrateProjects().RefreshSummary("rg", "proj", RefreshSummaryInput{Goal: models.Ptr(GoalServers)}).Do(ctx)
				return err
			},
		},
		{
			name:       "solution get",
			status:     http.StatusOK,
			response:   `{"name":"sol","properties":{"tool":"ServerAssessment","goal":"Databases","summary":{"instanceType":"Databases","migrationReadyCount":4}}}`,
			wantMethod: http.MethodGet,
			wantPath:   testProject + "/solutions/sol",
			call: func(c *Client) error {
				s, err := c.Solutions().Get("rg", "proj", "sol").Do(ctx)
				if err == nil && *s.Properties.Summary.MigrationReadyCount != 4 {
					return fmt.Errorf("summary = %+v", s.Properties.Summary)
				}
				return err
			},
		},
		{
			name:       "solution put",
			status:     http.StatusCreated,
			response:   `{"name":"sol"}`,
			wantMethod: http.MethodPut,
			wantPath:   testProject + "/solutions/sol",
			call: func(c *Client) error {
				res, err := c.Solutions().Put("rg", "proj", "sol", Solution{
					Properties: &SolutionProperties{Tool: models.Ptr(ToolServerDiscovery), Purpose: models.Ptr(PurposeDiscovery)},
				}).Do(ctx)
				if err == nil && !res.Created() {
					return fmt.Errorf("status = %d", res.StatusCode)
				}
				return err
			},
		},
		{
			name:       "solution patch",
			status:     http.StatusOK,
			response:   `{"name":"sol"}`,
			wantMethod: http.MethodPatch,
			wantPath:   testProject + "/solutions/sol",
			call: func(c *Client) error {
				_, err := c.Solutions().Patch("rg", "proj", "sol", Solution{Properties: &SolutionProperties{Status: models.Ptr(SolutionStatusActive)}}).Do(ctx)
				return err
			},
		},
		{
			name:       "solution delete",
			status:     http.StatusNoContent,
			wantMethod: http.MethodDelete,
			wantPath:   testProject + "/solutions/sol",
			wantLang:   "en-US",
			call: func(c *Client) error {
				return c.Solutions().Delete("rg", "proj", "sol").AcceptLanguage("en-US").Do(ctx)
			},
		},
		{
			name:       "solutions list",
			status:     http.StatusOK,
			response:   `{"value":[]}`,
			wantMethod: http.MethodGet,
			wantPath:   testProject + "/solutions",
			call: func(c *Client) error {
				_, err := c.Solutions().List("rg", "proj").Do(ctx)
				return err
			},
		},
		{
			name:       "solution get config",
			status:     http.StatusOK,
			response:   `{"publisherSasUri":"https://store.example/sas"}`,
			wantMethod: http.MethodPost,
			wantPath:   testProject + "/solutions/sol/getConfig",
			call: func(c *Client) error {
				cfg, err := c.Solutions().GetConfig("rg", "proj", "sol").Do(ctx)
				if err == nil && *cfg.PublisherSasURI == "" {
					return fmt.Errorf("empty sas uri")
				}
				return err
			},
		},
		{
			name:       "solution cleanup",
			status:     http.StatusOK,
			wantMethod: http.MethodPost,
			wantPath:   testProject + "/solutions/sol/cleanupData",
			call: func(c *Client) error {
				return c.Solutions().CleanupData("rg", "proj", "sol").Do(ctx)
			},
		},
		{
			name:       "machines list",
			status:     http.StatusOK,
			response:   `{"value":[{"name":"m1","properties":{"discoveryData":[{"osType":"linux","machineName":"web-01","ipAddresses":["10.0.0.4"]}]}}]}`,
			wantMethod: http.MethodGet,
			wantPath:   testProject + "/machines",
			wantQuery:  map[string]string{"continuationToken": "ct", "pageSize": "50"},
			call: func(c *Client) error {
				res, err := c.Machines().List("rg", "proj").ContinuationToken("ct").PageSize(50).Do(ctx)
				if err == nil && *res.Value[0].Properties.DiscoveryData[0].MachineName != "web-01" {
					return fmt.Errorf("machine name not decoded")
				}
				return err
			},
		},
		{
			name:       "machine get",
			status:     http.StatusOK,
			response:   `{"name":"m1"}`,
			wantMethod: http.MethodGet,
			wantPath:   testProject + "/machines/m1",
			call: func(c *Client) error {
				_, err := c.Machines().Get("rg", "proj", "m1").Do(ctx)
				return err
			},
		},
		{
			name:       "databases list",
			status:     http.StatusOK,
			response:   `{"value":[]}`,
			wantMethod: http.MethodGet,
			wantPath:   testProject + "/databases",
			wantLang:   "fr-FR",
			call: func(c *Client) error {
				_, err := c.Databases().List("rg", "proj").AcceptLanguage("fr-FR").Do(ctx)
				return err
			},
		},
		{
			name:       "database get",
			status:     http.StatusOK,
			response:   `{"name":"db1","properties":{"assessmentData":[{"isReadyForMigration":true}]}}`,
			wantMethod: http.MethodGet,
			wantPath:   testProject + "/databases/db1",
			call: func(c *Client) error {
				_, err := c.Databases().Get("rg", "proj", "db1").Do(ctx)
				return err
			},
		},
		{
			name:       "database instances list",
			status:     http.StatusOK,
			response:   `{"value":[]}`,
			wantMethod: http.MethodGet,
			wantPath:   testProject + "/databaseInstances",
			call: func(c *Client) error {
				_, err := c.DatabaseInstances().List("rg", "proj").Do(ctx)
				return err
			},
		},
		{
			name:       "database instance get",
			status:     http.StatusOK,
			response:   `{"name":"i1","properties":{"summary":{"DataMigrationAssistant":{"databasesAssessedCount":3}}}}`,
			wantMethod: http.MethodGet,
			wantPath:   testProject + "/databaseInstances/i1",
			call: func(c *Client) error {
				inst, err := c.DatabaseInstances().Get("rg", "proj", "i1").Do(ctx)
				if err == nil && *inst.Properties.Summary["DataMigrationAssistant"].DatabasesAssessedCount != 3 {
					return fmt.Errorf("summary = %+v", inst.Properties.Summary)
				}
				return err
			},
		},
		{
			name:       "events list",
			status:     http.StatusOK,
			response:   `{"value":[{"name":"e1","properties":{"instanceType":"Machines","machine":"m1","errorCode":"E42"}}]}`,
			wantMethod: http.MethodGet,
			wantPath:   testProject + "/migrateEvents",
			call: func(c *Client) error {
				res, err := c.Events().List("rg", "proj").Do(ctx)
				if err == nil && *res.Value[0].Properties.Machine != "m1" {
					return fmt.Errorf("event subject not decoded")
				}
				return err
			},
		},
		{
			name:       "event get",
			status:     http.StatusOK,
			response:   `{"name":"e1"}`,
			wantMethod: http.MethodGet,
			wantPath:   testProject + "/migrateEvents/e1",
			call: func(c *Client) error {
				_, err := c.Events().Get("rg", "proj", "e1").Do(ctx)
				return err
			},
		},
		{
			name:       "event delete",
			status:     http.StatusOK,
			wantMethod: http.MethodDelete,
			wantPath:   testProject + "/migrateEvents/e1",
			call: func(c *Client) error {
				return c.Events().Delete("rg", "proj", "e1").Do(ctx)
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
			if got.method != tt.wantMethod || got.path != tt.wantPath {
				t.Errorf("request = %s %s, want %s %s", got.method, got.path, tt.wantMethod, tt.wantPath)
			}
			for key, want := range tt.wantQuery {
				if got.query.Get(key) != want {
					t.Errorf("query %s = %q, want %q", key, got.query.Get(key), want)
				}
			}
			if got.header.Get("Accept-Language") != tt.wantLang {
				t.Errorf("Accept-Language = %q, want %q", got.header.Get("Accept-Language"), tt.wantLang)
			}
		})
	}
}

func TestMigrateProjects_Put(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusOK, `{"name":"proj","eTag":"\"1\"","properties":{"provisioningState":"Succeeded"}}`, &got)

	res, err := client.MigrateProjects().Put("rg", "proj", MigrateProject{
		Location: models.Ptr("westus"),
		Tags:     map[string]string{"team": "infra"},
	}).AcceptLanguage("en-US").Do(context.Background())
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if res.Created() {
		t.Error("Created() = true for 200")
	}
	if *res.Value.Properties.ProvisioningState != ProvisioningStateSucceeded {
		t.Errorf("state = %q", *res.Value.Properties.ProvisioningState)
	}
	if got.body != `{"location":"westus","tags":{"team":"infra"}}` {
		t.Errorf("body = %s", got.body)
	}
	if got.header.Get("Accept-Language") != "en-US" {
		t.Errorf("Accept-Language = %q", got.header.Get("Accept-Language"))
	}
}

func TestMachines_Pager(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("continuationToken") == "" {
			fmt.Fprintf(w, `{"value":[{"name":"m1"}],"nextLink":"%s?continuationToken=p2&api-version=%s"}`, testProject+"/machines", DefaultAPIVersion)
			return
		}
		fmt.Fprint(w, `{"value":[{"name":"m2"}]}`)
	}))
	defer server.Close()

	client, err := NewClient("sub-1", sdk.ClientConfig{Endpoint: server.URL, Credential: sdk.NewStaticTokenCredential("t")})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	pages, err := client.Machines().List("rg", "proj").Pager().All(context.Background())
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(pages) != 2 || calls != 2 || *pages[1].Value[0].Name != "m2" {
		t.Errorf("pages = %d, calls = %d", len(pages), calls)
	}
}
