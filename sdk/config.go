package sdk

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultEndpoint is the Azure Resource Manager endpoint in the public cloud.
const DefaultEndpoint = "https://management.azure.com"

// Version is reported in the default User-Agent header.
const Version = "0.4.0"

// ClientConfig contains the configuration for creating a new SDK client.
type ClientConfig struct {
	// Endpoint is the service base URL (e.g., "https://management.azure.com").
	// Service packages fill the ARM default; data-plane services require it.
	Endpoint string

	// Credential supplies bearer tokens for every request.
	Credential TokenCredential

	// Scopes are the token scopes requested from Credential.
	// Default: Endpoint + "/.default"
	Scopes []string

	// APIVersion is sent with every request. Service packages set it.
	APIVersion string

	// VersionHeader, when set, carries APIVersion as a request header
	// instead of the api-version query parameter (Queue Storage uses x-ms-version).
	VersionHeader string

	// UserAgent is sent in the User-Agent header.
	// Default: "azrest/<Version>"
	UserAgent string

	// HTTPClient is the HTTP client to use for requests.
	// Optional: if nil, a default client with reasonable timeouts will be created.
	HTTPClient *http.Client

	// RetryAttempts is the number of times to retry failed requests.
	// Zero means the default of 3; a negative value disables retries.
	RetryAttempts int

	// RetryWaitMin is the minimum wait time between retries.
	// Default: 1 second
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum wait time between retries.
	// Default: 30 seconds
	RetryWaitMax time.Duration

	// Timeout is the HTTP request timeout for the default client.
	// Default: 30 seconds
	Timeout time.Duration

	// RequestsPerSecond throttles requests on the client side. Zero disables it.
	RequestsPerSecond float64

	// Burst is the throttle bucket size. Default: 1 when RequestsPerSecond is set.
	Burst int

	// ProxyURL routes connections through an SSH jump host
	// (ssh+socks5://user@host:port?private-key=/path/to/key).
	ProxyURL string

	// Logger receives per-attempt request logs.
	// Default: zap.NewNop()
	Logger *zap.Logger
}

// Validate checks if the client configuration is valid and sets defaults.
func (c *ClientConfig) Validate() error {
	c.Endpoint = strings.TrimSuffix(strings.TrimSpace(c.Endpoint), "/")
	if c.Endpoint == "" {
		return fmt.Errorf("%w: endpoint is required", ErrInvalidConfig)
	}

	// Validate URL format (must start with http:// or https://)
	if !strings.HasPrefix(c.Endpoint, "http://") && !strings.HasPrefix(c.Endpoint, "https://") {
		return fmt.Errorf("%w: endpoint must start with http:// or https://", ErrInvalidConfig)
	}

	if c.Credential == nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrMissingCredential)
	}

	if len(c.Scopes) == 0 {
		c.Scopes = []string{c.Endpoint + "/.default"}
	}

	if c.UserAgent == "" {
		c.UserAgent = "azrest/" + Version
	}

	if c.RetryAttempts == 0 {
		c.RetryAttempts = 3
	}

	// Set default retry wait times if not provided
	if c.RetryWaitMin == 0 {
		c.RetryWaitMin = 1 * time.Second
	}
	if c.RetryWaitMax == 0 {
		c.RetryWaitMax = 30 * time.Second
	}
	if c.RetryWaitMax < c.RetryWaitMin {
		return fmt.Errorf("%w: retry wait max is below retry wait min", ErrInvalidConfig)
	}

	// Set default timeout if not provided
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}

	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: requests per second must not be negative", ErrInvalidConfig)
	}
	if c.RequestsPerSecond > 0 && c.Burst <= 0 {
		c.Burst = 1
	}

	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	// Create default HTTP client if not provided
	if c.HTTPClient == nil {
		transport := &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		}
		if c.ProxyURL != "" {
			dial, err := newSOCKS5DialContext(c.ProxyURL, c.Logger)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
			}
			transport.Proxy = nil
			transport.DialContext = dial
		}
		c.HTTPClient = &http.Client{
			Timeout:   c.Timeout,
			Transport: transport,
		}
	}

	return nil
}
