package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultAuthorityHost is the Microsoft Entra ID authority in the public cloud.
const DefaultAuthorityHost = "https://login.microsoftonline.com"

// tokenRefreshMargin is how long before expiry a cached token is replaced.
const tokenRefreshMargin = 60 * time.Second

// tokenRequestTimeout bounds a shared token request.
const tokenRequestTimeout = 30 * time.Second

// Environment variables read by EnvironmentCredential.
const (
	EnvTenantID      = "AZURE_TENANT_ID"
	EnvClientID      = "AZURE_CLIENT_ID"
	EnvClientSecret  = "AZURE_CLIENT_SECRET"
	EnvAuthorityHost = "AZURE_AUTHORITY_HOST"
)

// AccessToken is a bearer token and its expiry.
type AccessToken struct {
	Token     string
	ExpiresOn time.Time
}

// TokenCredential supplies bearer tokens for a set of scopes.
type TokenCredential interface {
	GetToken(ctx context.Context, scopes []string) (AccessToken, error)
}

// StaticTokenCredential always returns the same token.
// It is meant for tests, the local emulator and tokens obtained out of band.
type StaticTokenCredential struct {
	token string
}

// NewStaticTokenCredential returns a credential for a fixed token.
func NewStaticTokenCredential(token string) *StaticTokenCredential {
	return &StaticTokenCredential{token: token}
}

// GetToken implements TokenCredential.
func (s *StaticTokenCredential) GetToken(ctx context.Context, scopes []string) (AccessToken, error) {
	if s.token == "" {
		return AccessToken{}, ErrMissingCredential
	}
	return AccessToken{Token: s.token, ExpiresOn: time.Now().Add(24 * time.Hour)}, nil
}

// ClientSecretCredentialOptions configures a ClientSecretCredential.
type ClientSecretCredentialOptions struct {
	// AuthorityHost is the token authority. Default: DefaultAuthorityHost
	AuthorityHost string

	// HTTPClient sends token requests. Default: 30 second timeout client
	HTTPClient *http.Client

	// Logger records token refreshes. Default: zap.NewNop()
	Logger *zap.Logger
}

// ClientSecretCredential authenticates a service principal with the OAuth2
// client credentials grant (Microsoft identity platform v2 endpoint).
//
// Tokens are cached per scope set and refreshed one minute before they expire.
// Concurrent callers that miss the cache for the same scopes share one token request.
type ClientSecretCredential struct {
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *zap.Logger

	mu    sync.RWMutex
	cache map[string]AccessToken
	group singleflight.Group

	now func() time.Time
}

// tokenResponse is the token endpoint success body.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// tokenErrorResponse is the token endpoint error body.
type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// NewClientSecretCredential creates a credential for a tenant, client ID and secret.
func NewClientSecretCredential(tenantID, clientID, clientSecret string, opts *ClientSecretCredentialOptions) (*ClientSecretCredential, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, fmt.Errorf("%w: tenant ID is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(clientID) == "" {
		return nil, fmt.Errorf("%w: client ID is required", ErrInvalidConfig)
	}
	if clientSecret == "" {
		return nil, fmt.Errorf("%w: client secret is required", ErrInvalidConfig)
	}

	if opts == nil {
		opts = &ClientSecretCredentialOptions{}
	}

	authority := strings.TrimSuffix(strings.TrimSpace(opts.AuthorityHost), "/")
	if authority == "" {
		authority = DefaultAuthorityHost
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ClientSecretCredential{
		tokenURL:     fmt.Sprintf("%s/%s/oauth2/v2.0/token", authority, url.PathEscape(tenantID)),
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   httpClient,
		logger:       logger,
		cache:        make(map[string]AccessToken),
		now:          time.Now,
	}, nil
}

// NewEnvironmentCredential builds a ClientSecretCredential from AZURE_TENANT_ID,
// AZURE_CLIENT_ID, AZURE_CLIENT_SECRET and optionally AZURE_AUTHORITY_HOST.
func NewEnvironmentCredential(opts *ClientSecretCredentialOptions) (*ClientSecretCredential, error) {
	missing := []string{}
	for _, name := range []string{EnvTenantID, EnvClientID, EnvClientSecret} {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: environment variables not set: %s", ErrMissingCredential, strings.Join(missing, ", "))
	}

	if opts == nil {
		opts = &ClientSecretCredentialOptions{}
	}
	if opts.AuthorityHost == "" {
		opts.AuthorityHost = os.Getenv(EnvAuthorityHost)
	}

	return NewClientSecretCredential(os.Getenv(EnvTenantID), os.Getenv(EnvClientID), os.Getenv(EnvClientSecret), opts)
}

// GetToken implements TokenCredential.
func (c *ClientSecretCredential) GetToken(ctx context.Context, scopes []string) (AccessToken, error) {
	scopes = normalizeScopes(scopes)
	key := strings.Join(scopes, " ")

	if token, ok := c.cached(key); ok {
		return token, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		// Another caller may have refreshed while we waited for the group.
		if token, ok := c.cached(key); ok {
			return token, nil
		}

		// The request is shared, so it must outlive the caller that started it.
		reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), tokenRequestTimeout)
		defer cancel()

		token, err := c.requestToken(reqCtx, key)
		if err != nil {
			return AccessToken{}, err
		}

		c.mu.Lock()
		c.cache[key] = token
		c.mu.Unlock()

		return token, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return AccessToken{}, res.Err
		}
		return res.Val.(AccessToken), nil
	case <-ctx.Done():
		return AccessToken{}, ctx.Err()
	}
}

// cached returns a cached token that is not about to expire.
func (c *ClientSecretCredential) cached(key string) (AccessToken, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	token, ok := c.cache[key]
	if !ok || c.now().Add(tokenRefreshMargin).After(token.ExpiresOn) {
		return AccessToken{}, false
	}
	return token, true
}

// requestToken performs the client credentials grant.
func (c *ClientSecretCredential) requestToken(ctx context.Context, scope string) (AccessToken, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("scope", scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return AccessToken{}, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return AccessToken{}, fmt.Errorf("failed to request token: %w", err)
	}
	defer drainAndCloseBody(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return AccessToken{}, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var tokenErr tokenErrorResponse
		_ = json.Unmarshal(body, &tokenErr)
		c.logger.Warn("Token request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("error", tokenErr.Error),
		)
		return AccessToken{}, fmt.Errorf("%w: token endpoint returned %d: %s %s",
			ErrUnauthorized, resp.StatusCode, tokenErr.Error, tokenErr.ErrorDescription)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return AccessToken{}, fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return AccessToken{}, fmt.Errorf("%w: token endpoint returned no access token", ErrUnauthorized)
	}

	expires := c.now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	c.logger.Debug("Acquired access token",
		zap.String("scope", scope),
		zap.Time("expires_on", expires),
	)

	return AccessToken{Token: tokenResp.AccessToken, ExpiresOn: expires}, nil
}

// normalizeScopes turns resource-style scopes ("https://host/") into
// v2 scopes ("https://host/.default").
func normalizeScopes(scopes []string) []string {
	out := make([]string, 0, len(scopes))
	for _, s := range scopes {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if strings.HasSuffix(s, "/") {
			s += ".default"
		}
		out = append(out, s)
	}
	return out
}
