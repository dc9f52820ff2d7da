package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/yaroslav/azrest/sdk"
)

var (
	// errNoSubscription is returned by ARM commands without a subscription.
	errNoSubscription = errors.New("no subscription: set subscription_id in the profile or pass --subscription")

	// errNoEndpoint is returned by data-plane commands without an endpoint.
	errNoEndpoint = errors.New("no endpoint configured")
)

// credential picks the first available source: --token, the profile's
// token variable, a profile service principal, then AZURE_* variables.
func (o *options) credential() (sdk.TokenCredential, error) {
	if o.token != "" {
		return sdk.NewStaticTokenCredential(o.token), nil
	}
	if tok := os.Getenv(o.profile.TokenVariable()); tok != "" {
		return sdk.NewStaticTokenCredential(tok), nil
	}

	opts := &sdk.ClientSecretCredentialOptions{Logger: o.logger}
	if o.profile.TenantID != "" {
		return sdk.NewClientSecretCredential(o.profile.TenantID, o.profile.ClientID, os.Getenv(sdk.EnvClientSecret), opts)
	}
	cred, err := sdk.NewEnvironmentCredential(opts)
	if err != nil {
		return nil, fmt.Errorf("no credentials: pass --token, set %s, or set AZURE_TENANT_ID/AZURE_CLIENT_ID/AZURE_CLIENT_SECRET: %w",
			o.profile.TokenVariable(), err)
	}
	return cred, nil
}

// clientConfig returns the shared client settings for endpoint. An empty
// endpoint lets the service package apply its default.
func (o *options) clientConfig(endpoint string) (sdk.ClientConfig, error) {
	cred, err := o.credential()
	if err != nil {
		return sdk.ClientConfig{}, err
	}
	return sdk.ClientConfig{
		Endpoint:   endpoint,
		Credential: cred,
		ProxyURL:   o.profile.ProxyURL,
		UserAgent:  "azrest-cli/" + Version,
		Logger:     o.logger,
	}, nil
}

// armConfig returns the subscription and client settings for ARM commands.
func (o *options) armConfig() (string, sdk.ClientConfig, error) {
	if o.profile.SubscriptionID == "" {
		return "", sdk.ClientConfig{}, errNoSubscription
	}
	cfg, err := o.clientConfig(o.profile.Endpoint)
	return o.profile.SubscriptionID, cfg, err
}

// dataPlaneConfig returns client settings for a data-plane endpoint.
// --endpoint overrides the profile value.
func (o *options) dataPlaneConfig(profileEndpoint, what string) (sdk.ClientConfig, error) {
	endpoint := profileEndpoint
	if o.endpoint != "" {
		endpoint = o.endpoint
	}
	if endpoint == "" {
		return sdk.ClientConfig{}, fmt.Errorf("%w: set %s in the profile or pass --endpoint", errNoEndpoint, what)
	}
	return o.clientConfig(endpoint)
}
