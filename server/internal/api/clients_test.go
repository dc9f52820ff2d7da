package api

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/sdk"
	"github.com/yaroslav/azrest/services/kusto"
	"github.com/yaroslav/azrest/services/redisenterprise"
	"github.com/yaroslav/azrest/services/webpubsub"
)

const clientToken = "emulator-client-token"

// newEmulator serves the router over a real listener and returns a client
// configuration pointed at it.
func newEmulator(t *testing.T) sdk.ClientConfig {
	t.Helper()

	router := newTestRouter(t, func(c *RouterConfig) { c.Token = clientToken })
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return sdk.ClientConfig{
		Endpoint:      srv.URL,
		Credential:    sdk.NewStaticTokenCredential(clientToken),
		RetryAttempts: 1,
		RetryWaitMin:  time.Millisecond,
		RetryWaitMax:  time.Millisecond,
	}
}

func TestRedisEnterpriseAgainstEmulator(t *testing.T) {
	ctx := context.Background()
	client, err := redisenterprise.NewClient("sub1", newEmulator(t))
	require.NoError(t, err)

	for _, name := range []string{"cache1", "cache2"} {
		res, err := client.Clusters().Create("rg1", name, redisenterprise.Cluster{
			TrackedResource: models.TrackedResource{Location: "westus"},
			Sku:             redisenterprise.Sku{Name: redisenterprise.SkuNameEnterpriseE10, Capacity: models.Ptr[int32](2)},
		}).Do(ctx)
		require.NoError(t, err)
		assert.True(t, res.Created())
	}

	cluster, err := client.Clusters().Get("rg1", "cache1").Do(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cache1", cluster.ResourceName())
	assert.Equal(t, "/subscriptions/sub1/resourceGroups/rg1/providers/Microsoft.Cache/redisEnterprise/cache1", cluster.ResourceID())
	assert.Equal(t, redisenterprise.SkuNameEnterpriseE10, cluster.Sku.Name)
	require.NotNil(t, cluster.Properties)
	require.NotNil(t, cluster.Properties.ProvisioningState)
	assert.Equal(t, redisenterprise.ProvisioningStateSucceeded, *cluster.Properties.ProvisioningState)

	pages, err := client.Clusters().ListByResourceGroup("rg1").Pager().All(ctx)
	require.NoError(t, err)
	var names []string
	for _, page := range pages {
		for _, c := range page.Value {
			names = append(names, c.ResourceName())
		}
	}
	assert.ElementsMatch(t, []string{"cache1", "cache2"}, names)

	_, err = client.Databases().Create("rg1", "cache1", "default", redisenterprise.Database{}).Do(ctx)
	require.NoError(t, err)

	keys, err := client.Databases().ListKeys("rg1", "cache1", "default").Do(ctx)
	require.NoError(t, err)
	require.NotNil(t, keys.PrimaryKey)
	require.NotNil(t, keys.SecondaryKey)

	regenerated, err := client.Databases().RegenerateKey("rg1", "cache1", "default",
		redisenterprise.RegenerateKeyParameters{KeyType: redisenterprise.AccessKeyTypePrimary}).Do(ctx)
	require.NoError(t, err)
	require.NotNil(t, regenerated.Value.PrimaryKey)
	assert.NotEqual(t, *keys.PrimaryKey, *regenerated.Value.PrimaryKey)
	assert.Equal(t, *keys.SecondaryKey, *regenerated.Value.SecondaryKey)

	require.NoError(t, client.Clusters().Delete("rg1", "cache1").Do(ctx))

	_, err = client.Databases().Get("rg1", "cache1", "default").Do(ctx)
	require.Error(t, err)
	assert.True(t, sdk.IsNotFound(err), "got %v", err)

	_, err = client.Clusters().Get("rg1", "cache1").Do(ctx)
	assert.True(t, sdk.IsNotFound(err), "got %v", err)
}

func TestKustoAgainstEmulator(t *testing.T) {
	ctx := context.Background()
	client, err := kusto.NewClient("sub1", newEmulator(t))
	require.NoError(t, err)

	free, err := client.Clusters().CheckNameAvailability("westus", kusto.ClusterCheckNameRequest{Name: "kc1"}).Do(ctx)
	require.NoError(t, err)
	require.NotNil(t, free.NameAvailable)
	assert.True(t, *free.NameAvailable)

	_, err = client.Clusters().CreateOrUpdate("rg1", "kc1", kusto.Cluster{
		TrackedResource: models.TrackedResource{Location: "westus"},
	}).Do(ctx)
	require.NoError(t, err)

	taken, err := client.Clusters().CheckNameAvailability("westus", kusto.ClusterCheckNameRequest{Name: "kc1"}).Do(ctx)
	require.NoError(t, err)
	assert.False(t, *taken.NameAvailable)
	require.NotNil(t, taken.Reason)
	assert.Equal(t, kusto.CheckNameReasonAlreadyExists, *taken.Reason)

	require.NoError(t, client.Clusters().Stop("rg1", "kc1").Do(ctx))

	cluster, err := client.Clusters().Get("rg1", "kc1").Do(ctx)
	require.NoError(t, err)
	require.NotNil(t, cluster.Properties)
	require.NotNil(t, cluster.Properties.State)
	assert.Equal(t, kusto.ClusterStateStopped, *cluster.Properties.State)

	ops, err := client.Operations().List().Do(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, ops.Value)
}

func TestWebPubSubAgainstEmulator(t *testing.T) {
	ctx := context.Background()
	client, err := webpubsub.NewClient("sub1", newEmulator(t))
	require.NoError(t, err)
	service := client.WebPubSub()

	_, err = service.CreateOrUpdate("rg1", "hub1", webpubsub.Resource{
		TrackedResource: models.TrackedResource{Location: "eastus"},
		Sku:             &webpubsub.ResourceSku{Name: "Standard_S1"},
	}).Do(ctx)
	require.NoError(t, err)

	keys, err := service.ListKeys("rg1", "hub1").Do(ctx)
	require.NoError(t, err)
	require.NotNil(t, keys.PrimaryConnectionString)
	assert.Contains(t, *keys.PrimaryConnectionString, "Endpoint=https://hub1.webpubsub.azure.com;AccessKey="+*keys.PrimaryKey)

	monitor, err := service.Restart("rg1", "hub1").Do(ctx)
	require.NoError(t, err)
	assert.Contains(t, monitor, "/providers/Microsoft.SignalRService/locations/global/operationStatuses/")

	availability, err := service.CheckNameAvailability("eastus", webpubsub.NameAvailabilityParameters{
		Type: "Microsoft.SignalRService/WebPubSub",
		Name: "hub1",
	}).Do(ctx)
	require.NoError(t, err)
	require.NotNil(t, availability.NameAvailable)
	assert.False(t, *availability.NameAvailable)
}

func TestClientRejectedWithoutToken(t *testing.T) {
	config := newEmulator(t)
	config.Credential = sdk.NewStaticTokenCredential("wrong-token")

	client, err := redisenterprise.NewClient("sub1", config)
	require.NoError(t, err)

	_, err = client.Clusters().Get("rg1", "cache1").Do(context.Background())
	require.Error(t, err)
	assert.Equal(t, 401, sdk.StatusCode(err))
}
