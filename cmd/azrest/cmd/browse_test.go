package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaroslav/azrest/cmd/azrest/tui"
	"github.com/yaroslav/azrest/sdk"
)

func TestCollectionPath(t *testing.T) {
	assert.Equal(t,
		"/subscriptions/sub-1/providers/Microsoft.Cache/redisEnterprise",
		collectionPath("sub-1", "providers/Microsoft.Cache/redisEnterprise"))
	assert.Equal(t,
		"/subscriptions/other/resourceGroups/rg/providers/Microsoft.Kusto/clusters",
		collectionPath("sub-1", "/subscriptions/other/resourceGroups/rg/providers/Microsoft.Kusto/clusters"))
}

func TestGenericResourceItem(t *testing.T) {
	var r genericResource
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "kc1",
		"type": "Microsoft.Kusto/clusters",
		"location": "westeurope",
		"properties": {"provisioningState": "Succeeded", "state": "Stopped"}
	}`), &r))
	assert.Equal(t, tui.Item{Name: "kc1", Type: "Microsoft.Kusto/clusters", Location: "westeurope", State: "Stopped"}, r.item())

	r.Properties.State = ""
	assert.Equal(t, "Succeeded", r.item().State)
}

func TestCollectionLoaderPages(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2023-08-15", r.URL.Query().Get("api-version"))
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "" {
			fmt.Fprintf(w, `{"value":[{"name":"a"},{"name":"b"}],"nextLink":"%s/collection?api-version=2023-08-15&page=2"}`, srv.URL)
			return
		}
		fmt.Fprint(w, `{"value":[{"name":"c","properties":{"state":"Running"}}]}`)
	}))
	defer srv.Close()

	c, err := sdk.NewClient(sdk.ClientConfig{
		Endpoint:      srv.URL,
		Credential:    sdk.NewStaticTokenCredential(testToken),
		APIVersion:    "2023-08-15",
		RetryAttempts: 1,
	})
	require.NoError(t, err)

	load := newCollectionLoader(c, "/collection")

	items, more, err := load(context.Background())
	require.NoError(t, err)
	assert.True(t, more)
	assert.Len(t, items, 2)

	items, more, err = load(context.Background())
	require.NoError(t, err)
	assert.False(t, more)
	assert.Equal(t, []tui.Item{{Name: "c", State: "Running"}}, items)
}
