package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/server/internal/armid"
	"github.com/yaroslav/azrest/server/internal/logging"
	"github.com/yaroslav/azrest/server/internal/store"
)

const (
	testRG      = "/subscriptions/sub1/resourceGroups/rg1"
	testCluster = testRG + "/providers/Microsoft.Kusto/clusters/kc1"
)

func newTestService(t *testing.T) (*ResourceService, *observer.ObservedLogs) {
	t.Helper()

	db, err := store.Open(store.MemoryPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	st := store.New(db, logger)
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewResourceService(st, logger), logs
}

func mustParse(t *testing.T, path string) *armid.ID {
	t.Helper()
	id, err := armid.Parse(path)
	if err != nil {
		t.Fatalf("parse %q: %v", path, err)
	}
	return id
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	return out
}

func mustPut(t *testing.T, svc *ResourceService, path, body string) *Resource {
	t.Helper()
	res, _, err := svc.Put(context.Background(), mustParse(t, path), []byte(body), Preconditions{})
	if err != nil {
		t.Fatalf("put %s: %v", path, err)
	}
	return res
}

func TestPutStampsEnvelope(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc, _ := newTestService(t)
	ctx := logging.WithLogger(context.Background(), zap.New(core))

	res, created, err := svc.Put(ctx, mustParse(t, testCluster), []byte(`{"location":"westus","sku":{"name":"Dev(No SLA)_Standard_D11_v2"}}`), Preconditions{})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if !created {
		t.Fatal("expected created on first put")
	}

	doc := decode(t, res.Body)
	if doc["id"] != testCluster {
		t.Errorf("id = %v, want %s", doc["id"], testCluster)
	}
	if doc["name"] != "kc1" || doc["type"] != "Microsoft.Kusto/clusters" {
		t.Errorf("unexpected name/type: %v %v", doc["name"], doc["type"])
	}
	if doc["etag"] != res.ETag || res.ETag == "" {
		t.Errorf("etag mismatch: body %v, header %q", doc["etag"], res.ETag)
	}
	props := doc["properties"].(map[string]any)
	if props["provisioningState"] != "Succeeded" {
		t.Errorf("provisioningState = %v", props["provisioningState"])
	}
	systemData := doc["systemData"].(map[string]any)
	if systemData["createdBy"] != DefaultIdentity || systemData["createdByType"] != "Application" {
		t.Errorf("unexpected systemData: %v", systemData)
	}
	if logs.FilterMessage("resource stored").Len() != 1 {
		t.Errorf("expected one stored log entry, got %d", logs.FilterMessage("resource stored").Len())
	}
}

func TestPutReplaceKeepsCreatedAt(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	id := mustParse(t, testCluster)

	first := mustPut(t, svc, testCluster, `{"location":"westus","properties":{"provisioningState":"Creating"}}`)
	second, created, err := svc.Put(ctx, id, []byte(`{"location":"eastus"}`), Preconditions{})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if created {
		t.Error("expected replace on second put")
	}
	if first.ETag == second.ETag {
		t.Error("etag should change on replace")
	}

	a := decode(t, first.Body)["systemData"].(map[string]any)
	b := decode(t, second.Body)["systemData"].(map[string]any)
	if a["createdAt"] != b["createdAt"] {
		t.Errorf("createdAt changed: %v -> %v", a["createdAt"], b["createdAt"])
	}
	if decode(t, first.Body)["properties"].(map[string]any)["provisioningState"] != "Creating" {
		t.Error("supplied provisioningState should be kept")
	}
	if decode(t, second.Body)["location"] != "eastus" {
		t.Error("replace should store the new body")
	}
}

func TestPutPreconditions(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	id := mustParse(t, testCluster)

	if _, _, err := svc.Put(ctx, id, []byte(`{}`), Preconditions{IfMatch: "*"}); !errors.Is(err, models.ErrPreconditionFailed) {
		t.Fatalf("If-Match on absent resource: got %v", err)
	}

	res := mustPut(t, svc, testCluster, `{}`)

	tests := []struct {
		name    string
		pre     Preconditions
		wantErr bool
	}{
		{"if-none-match star", Preconditions{IfNoneMatch: "*"}, true},
		{"stale if-match", Preconditions{IfMatch: `W/"stale"`}, true},
		{"matching if-match", Preconditions{IfMatch: res.ETag}, false},
		{"if-match star", Preconditions{IfMatch: "*"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Put(ctx, id, []byte(`{}`), tt.pre)
			if tt.wantErr != errors.Is(err, models.ErrPreconditionFailed) {
				t.Fatalf("Put() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPutValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		path    string
		body    string
		wantErr error
	}{
		{"collection", testRG + "/providers/Microsoft.Kusto/clusters", `{}`, models.ErrInvalidResourceID},
		{"bad name", testRG + "/providers/Microsoft.Kusto/clusters/bad.", `{}`, models.ErrInvalidResourceName},
		{"array body", testCluster, `[1,2]`, models.ErrInvalidRequest},
		{"broken json", testCluster, `{"a":`, models.ErrInvalidRequest},
		{"missing parent", testCluster + "/databases/db1", `{}`, models.ErrParentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Put(ctx, mustParse(t, tt.path), []byte(tt.body), Preconditions{})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Put() error = %v, want %v", err, tt.wantErr)
			}
			var svcErr *Error
			if !errors.As(err, &svcErr) || svcErr.Message == "" {
				t.Errorf("expected *Error with message, got %T", err)
			}
		})
	}
}

func TestPatchMergesBody(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	id := mustParse(t, testCluster)

	if _, err := svc.Patch(ctx, id, []byte(`{}`), Preconditions{}); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("patch absent: got %v", err)
	}

	mustPut(t, svc, testCluster, `{"location":"westus","tags":{"env":"dev","team":"data"},"properties":{"enableDiskEncryption":false}}`)

	res, err := svc.Patch(ctx, id, []byte(`{"tags":{"team":null,"owner":"me"},"properties":{"enableDiskEncryption":true},"name":"renamed"}`), Preconditions{})
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}

	doc := decode(t, res.Body)
	tags := doc["tags"].(map[string]any)
	if tags["env"] != "dev" || tags["owner"] != "me" {
		t.Errorf("unexpected tags: %v", tags)
	}
	if _, ok := tags["team"]; ok {
		t.Error("null in patch should remove the member")
	}
	props := doc["properties"].(map[string]any)
	if props["enableDiskEncryption"] != true || props["provisioningState"] != "Succeeded" {
		t.Errorf("unexpected properties: %v", props)
	}
	if doc["name"] != "kc1" || doc["location"] != "westus" {
		t.Errorf("envelope fields must not change: %v", doc)
	}
}

func TestGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, mustParse(t, testCluster))
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mustPut(t, svc, testCluster, `{}`)
	res, err := svc.Get(ctx, mustParse(t, "/subscriptions/SUB1/resourceGroups/RG1/providers/Microsoft.Kusto/clusters/KC1"))
	if err != nil {
		t.Fatalf("case-insensitive get failed: %v", err)
	}
	if res.ID != testCluster {
		t.Errorf("ID = %s", res.ID)
	}
}

func TestGetOperationStatus(t *testing.T) {
	svc, _ := newTestService(t)

	id := mustParse(t, OperationStatusID(mustParse(t, testCluster), "op1"))
	res, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if decode(t, res.Body)["status"] != "Succeeded" {
		t.Errorf("unexpected status body: %s", res.Body)
	}
}

func TestListPaging(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	mustPut(t, svc, testCluster, `{}`)
	for _, name := range []string{"db3", "db1", "db5", "db2", "db4"} {
		mustPut(t, svc, testCluster+"/databases/"+name, `{}`)
	}
	collection := mustParse(t, testCluster+"/databases")

	var names []string
	skip := ""
	for pages := 0; ; pages++ {
		if pages > 5 {
			t.Fatal("paging did not terminate")
		}
		page, err := svc.List(ctx, collection, 2, skip)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		for _, v := range page.Value {
			names = append(names, decode(t, v)["name"].(string))
		}
		if page.SkipToken == "" {
			break
		}
		skip = page.SkipToken
	}

	want := []string{"db1", "db2", "db3", "db4", "db5"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}

func TestListErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.List(ctx, mustParse(t, testCluster+"/databases"), 0, ""); !errors.Is(err, models.ErrParentNotFound) {
		t.Errorf("missing parent: got %v", err)
	}
	if _, err := svc.List(ctx, mustParse(t, testCluster), 0, ""); !errors.Is(err, models.ErrInvalidResourceID) {
		t.Errorf("item id: got %v", err)
	}
	if _, err := svc.List(ctx, mustParse(t, testRG+"/providers/Microsoft.Kusto/clusters"), 0, "!!"); !errors.Is(err, models.ErrInvalidRequest) {
		t.Errorf("bad skiptoken: got %v", err)
	}
}

func TestListBySubscription(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	mustPut(t, svc, testCluster, `{}`)
	mustPut(t, svc, "/subscriptions/sub1/resourceGroups/rg2/providers/Microsoft.Kusto/clusters/kc2", `{}`)
	mustPut(t, svc, "/subscriptions/sub2/resourceGroups/rg1/providers/Microsoft.Kusto/clusters/kc3", `{}`)

	page, err := svc.List(ctx, mustParse(t, "/subscriptions/sub1/providers/Microsoft.Kusto/clusters"), 0, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Value) != 2 {
		t.Errorf("expected 2 clusters in sub1, got %d", len(page.Value))
	}

	page, err = svc.List(ctx, mustParse(t, testRG+"/providers/Microsoft.Kusto/clusters"), 0, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Value) != 1 {
		t.Errorf("expected 1 cluster in rg1, got %d", len(page.Value))
	}
}

func TestListBySubscriptionPagesSameNames(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	mustPut(t, svc, "/subscriptions/sub1/resourceGroups/rg1/providers/Microsoft.Kusto/clusters/c1", `{}`)
	mustPut(t, svc, "/subscriptions/sub1/resourceGroups/rg2/providers/Microsoft.Kusto/clusters/c1", `{}`)
	collection := mustParse(t, "/subscriptions/sub1/providers/Microsoft.Kusto/clusters")

	var ids []string
	skip := ""
	for pages := 0; ; pages++ {
		if pages > 3 {
			t.Fatal("paging did not terminate")
		}
		page, err := svc.List(ctx, collection, 1, skip)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		for _, v := range page.Value {
			ids = append(ids, decode(t, v)["id"].(string))
		}
		if page.SkipToken == "" {
			break
		}
		skip = page.SkipToken
	}

	want := []string{
		"/subscriptions/sub1/resourceGroups/rg1/providers/Microsoft.Kusto/clusters/c1",
		"/subscriptions/sub1/resourceGroups/rg2/providers/Microsoft.Kusto/clusters/c1",
	}
	if len(ids) != len(want) || ids[0] != want[0] || ids[1] != want[1] {
		t.Fatalf("paged ids = %v, want %v", ids, want)
	}
}

func TestDeleteCascades(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	mustPut(t, svc, testCluster, `{}`)
	mustPut(t, svc, testCluster+"/databases/db1", `{}`)

	deleted, err := svc.Delete(ctx, mustParse(t, testCluster))
	if err != nil || !deleted {
		t.Fatalf("Delete() = %v, %v", deleted, err)
	}
	if _, err := svc.Get(ctx, mustParse(t, testCluster+"/databases/db1")); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("child should be gone, got %v", err)
	}

	deleted, err = svc.Delete(ctx, mustParse(t, testCluster))
	if err != nil || deleted {
		t.Fatalf("second Delete() = %v, %v", deleted, err)
	}
}
