package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/yaroslav/azrest/models"
)

const (
	testWebPubSub = testRG + "/providers/Microsoft.SignalRService/WebPubSub/wps1"
	testDatabase  = testRG + "/providers/Microsoft.Cache/redisEnterprise/cache1/databases/default"
)

func TestInvokeListKeysIsStable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustPut(t, svc, testRG+"/providers/Microsoft.Cache/redisEnterprise/cache1", `{}`)
	mustPut(t, svc, testDatabase, `{}`)

	first, err := svc.Invoke(ctx, mustParse(t, testDatabase+"/listKeys"), nil)
	if err != nil {
		t.Fatalf("listKeys failed: %v", err)
	}
	second, err := svc.Invoke(ctx, mustParse(t, testDatabase+"/listKeys"), nil)
	if err != nil {
		t.Fatalf("listKeys failed: %v", err)
	}

	a, b := first.Body.(keysBody), second.Body.(keysBody)
	if a.PrimaryKey == "" || a.SecondaryKey == "" || a.PrimaryKey == a.SecondaryKey {
		t.Fatalf("unexpected keys: %+v", a)
	}
	if a != b {
		t.Error("listKeys should return the persisted keys")
	}
	if a.PrimaryConnectionString != "" {
		t.Error("redis keys carry no connection string")
	}
}

func TestInvokeRegenerateKey(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustPut(t, svc, testWebPubSub, `{"location":"eastus"}`)

	listed, err := svc.Invoke(ctx, mustParse(t, testWebPubSub+"/listKeys"), nil)
	if err != nil {
		t.Fatalf("listKeys failed: %v", err)
	}
	before := listed.Body.(keysBody)
	if !strings.HasPrefix(before.PrimaryConnectionString, "Endpoint=https://wps1.webpubsub.azure.com;AccessKey=") {
		t.Errorf("unexpected connection string %q", before.PrimaryConnectionString)
	}

	tests := []struct {
		name          string
		body          string
		wantErr       error
		primaryChange bool
		secondChange  bool
	}{
		{name: "primary", body: `{"keyType":"Primary"}`, primaryChange: true},
		{name: "secondary", body: `{"keyType":"Secondary"}`, secondChange: true},
		{name: "salt", body: `{"keyType":"Salt"}`},
		{name: "unknown", body: `{"keyType":"Tertiary"}`, wantErr: models.ErrInvalidRequest},
		{name: "broken", body: `{`, wantErr: models.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Invoke(ctx, mustParse(t, testWebPubSub+"/regenerateKey"), []byte(tt.body))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("regenerateKey failed: %v", err)
			}
			if res.Status != http.StatusAccepted || res.OperationID == "" {
				t.Errorf("unexpected result %+v", res)
			}
			after := res.Body.(keysBody)
			if (after.PrimaryKey != before.PrimaryKey) != tt.primaryChange {
				t.Errorf("primary changed = %v, want %v", after.PrimaryKey != before.PrimaryKey, tt.primaryChange)
			}
			if (after.SecondaryKey != before.SecondaryKey) != tt.secondChange {
				t.Errorf("secondary changed = %v, want %v", after.SecondaryKey != before.SecondaryKey, tt.secondChange)
			}
			before = after
		})
	}
}

func TestInvokePowerState(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustPut(t, svc, testCluster, `{}`)

	tests := []struct {
		action string
		want   string
	}{
		{"stop", StateStopped},
		{"start", StateRunning},
		{"Stop", StateStopped},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			res, err := svc.Invoke(ctx, mustParse(t, testCluster+"/"+tt.action), nil)
			if err != nil {
				t.Fatalf("%s failed: %v", tt.action, err)
			}
			if res.Status != http.StatusAccepted || res.OperationID == "" {
				t.Errorf("unexpected result %+v", res)
			}
			got, err := svc.Get(ctx, mustParse(t, testCluster))
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if state := decode(t, got.Body)["properties"].(map[string]any)["state"]; state != tt.want {
				t.Errorf("state = %v, want %s", state, tt.want)
			}
		})
	}
}

func TestInvokeCheckName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustPut(t, svc, testCluster, `{}`)
	mustPut(t, svc, testCluster+"/databases/db1", `{}`)

	tests := []struct {
		name       string
		path       string
		body       string
		wantFree   bool
		wantReason string
	}{
		{
			name:     "location free",
			path:     "/subscriptions/sub1/providers/Microsoft.Kusto/locations/westus/checkNameAvailability",
			body:     `{"name":"kc2","type":"Microsoft.Kusto/clusters"}`,
			wantFree: true,
		},
		{
			name:       "location taken",
			path:       "/subscriptions/sub1/providers/Microsoft.Kusto/locations/westus/checkNameAvailability",
			body:       `{"name":"KC1","type":"Microsoft.Kusto/clusters"}`,
			wantReason: "AlreadyExists",
		},
		{
			name:     "other subscription",
			path:     "/subscriptions/sub2/providers/Microsoft.Kusto/locations/westus/checkNameAvailability",
			body:     `{"name":"kc1","type":"Microsoft.Kusto/clusters"}`,
			wantFree: true,
		},
		{
			name:       "child taken",
			path:       testCluster + "/checkNameAvailability",
			body:       `{"name":"db1","type":"Microsoft.Kusto/clusters/databases"}`,
			wantReason: "AlreadyExists",
		},
		{
			name:       "invalid name",
			path:       "/subscriptions/sub1/providers/Microsoft.Synapse/locations/westus/kustoPoolCheckNameAvailability",
			body:       `{"name":"bad/name","type":"Microsoft.Synapse/workspaces/kustoPools"}`,
			wantReason: "Invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Invoke(ctx, mustParse(t, tt.path), []byte(tt.body))
			if err != nil {
				t.Fatalf("check failed: %v", err)
			}
			got := res.Body.(checkNameResponse)
			if got.NameAvailable != tt.wantFree || got.Reason != tt.wantReason {
				t.Errorf("got %+v, want free=%v reason=%q", got, tt.wantFree, tt.wantReason)
			}
		})
	}
}

func TestInvokeErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	mustPut(t, svc, testCluster, `{}`)

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"unknown action", testCluster + "/detonate", models.ErrActionNotSupported},
		{"missing target", testRG + "/providers/Microsoft.Kusto/clusters/nope/start", models.ErrNotFound},
		{"item id", testCluster, models.ErrActionNotSupported},
		{"location action", "/subscriptions/sub1/providers/Microsoft.Kusto/locations/westus/start", models.ErrActionNotSupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Invoke(ctx, mustParse(t, tt.path), nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Invoke() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestInvokeGetConfig(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	project := testRG + "/providers/Microsoft.Migrate/migrateProjects/mp1"
	mustPut(t, svc, project, `{}`)
	mustPut(t, svc, project+"/solutions/sol1", `{}`)

	res, err := svc.Invoke(ctx, mustParse(t, project+"/solutions/sol1/getConfig"), nil)
	if err != nil {
		t.Fatalf("getConfig failed: %v", err)
	}
	body := res.Body.(map[string]string)
	if !strings.HasPrefix(body["publisherSasUri"], "https://sol1.blob.core.windows.net/") {
		t.Errorf("unexpected sas uri %q", body["publisherSasUri"])
	}
}

func TestInvokeRestartTroubleshooter(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	ts := testCluster + "/providers/Microsoft.Help/troubleshooters/ts1"
	mustPut(t, svc, ts, `{"properties":{"solutionId":"sol"}}`)

	res, err := svc.Invoke(ctx, mustParse(t, ts+"/restart"), nil)
	if err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	name := res.Body.(map[string]string)["troubleshooterResourceName"]
	if name == "" {
		t.Fatal("expected a new troubleshooter name")
	}

	got, err := svc.Get(ctx, mustParse(t, testCluster+"/providers/Microsoft.Help/troubleshooters/"+name))
	if err != nil {
		t.Fatalf("new troubleshooter not stored: %v", err)
	}
	if decode(t, got.Body)["properties"].(map[string]any)["solutionId"] != "sol" {
		t.Errorf("unexpected body %s", got.Body)
	}
}

func TestOperations(t *testing.T) {
	ops, err := Operations("microsoft.kusto")
	if err != nil {
		t.Fatalf("Operations failed: %v", err)
	}
	if len(ops.Value) == 0 {
		t.Fatal("expected operations")
	}
	for _, op := range ops.Value {
		if !strings.HasPrefix(*op.Name, "Microsoft.Kusto/") {
			t.Errorf("unexpected operation name %s", *op.Name)
		}
	}

	if _, err := Operations("Microsoft.Nope"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("unknown namespace: got %v", err)
	}
}
