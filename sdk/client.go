package sdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client is the shared pipeline every service client sends requests through.
// It resolves URLs against the endpoint, attaches bearer auth and the API
// version, throttles and retries, and maps unexpected responses to errors.
type Client struct {
	endpoint      *url.URL
	credential    TokenCredential
	scopes        []string
	apiVersion    string
	versionHeader string
	userAgent     string

	httpClient    *http.Client
	retryAttempts int
	retryWaitMin  time.Duration
	retryWaitMax  time.Duration

	// limiter is nil when client-side throttling is disabled.
	limiter *rate.Limiter

	logger *zap.Logger
}

// NewClient creates a new SDK client with the given configuration.
// It validates the configuration and fills defaults before use.
func NewClient(config ClientConfig) (*Client, error) {
	// Validate and set defaults
	if err := config.Validate(); err != nil {
		return nil, err
	}

	endpoint, err := url.Parse(config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse endpoint: %w", ErrInvalidConfig, err)
	}

	client := &Client{
		endpoint:      endpoint,
		credential:    config.Credential,
		scopes:        config.Scopes,
		apiVersion:    config.APIVersion,
		versionHeader: config.VersionHeader,
		userAgent:     config.UserAgent,
		httpClient:    config.HTTPClient,
		retryAttempts: max(config.RetryAttempts, 0),
		retryWaitMin:  config.RetryWaitMin,
		retryWaitMax:  config.RetryWaitMax,
		logger:        config.Logger,
	}

	if config.RequestsPerSecond > 0 {
		client.limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst)
	}

	return client, nil
}

// Endpoint returns the base URL requests are resolved against.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// APIVersion returns the API version sent with every request.
func (c *Client) APIVersion() string {
	return c.apiVersion
}

// Logger returns the client logger.
func (c *Client) Logger() *zap.Logger {
	return c.logger
}

// ============================================================================
// Request Building
// ============================================================================

// NewRequest creates a request for a path relative to the endpoint or an absolute URL.
func (c *Client) NewRequest(method, path string) *Request {
	return &Request{
		Method: method,
		Path:   path,
		Query:  url.Values{},
		Header: http.Header{},
	}
}

// FormatPath renders a path template by replacing each {name} placeholder, in
// order, with the matching parameter.
//
// Parameters are escaped with url.PathEscape. A placeholder written {+name}
// is a resource ID path (an ARM scope): it is inserted unescaped after trimming
// its leading slash. An empty parameter fails with ErrMissingParameter before
// any request is made.
//
// Parameters:
//   - template: Path with placeholders, e.g. "/subscriptions/{subscriptionId}/providers/{ns}"
//   - params: One value per placeholder, in order
//
// Returns:
//   - string: The rendered path
//   - error: ErrMissingParameter or a placeholder count mismatch
func FormatPath(template string, params ...string) (string, error) {
	var b strings.Builder
	rest := template
	i := 0

	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			return "", fmt.Errorf("unterminated placeholder in path template %q", template)
		}
		closing += open

		name := rest[open+1 : closing]
		if i >= len(params) {
			return "", fmt.Errorf("path template %q needs more than %d parameters", template, len(params))
		}

		value := params[i]
		raw := strings.HasPrefix(name, "+")
		if raw {
			name = name[1:]
			value = strings.TrimPrefix(value, "/")
		}
		if strings.TrimSpace(value) == "" {
			return "", fmt.Errorf("%w: %s", ErrMissingParameter, name)
		}

		b.WriteString(rest[:open])
		if raw {
			b.WriteString(value)
		} else {
			b.WriteString(url.PathEscape(value))
		}

		rest = rest[closing+1:]
		i++
	}

	if i != len(params) {
		return "", fmt.Errorf("path template %q takes %d parameters, got %d", template, i, len(params))
	}

	return b.String(), nil
}

// resolveURL builds the final request URL and merges the query parameters.
// The API version is added only when the URL does not carry one already,
// so next links returned by the service are sent back unchanged.
func (c *Client) resolveURL(req *Request) (*url.URL, error) {
	ref, err := url.Parse(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse request path: %w", err)
	}

	var u *url.URL
	if ref.IsAbs() {
		u = ref
	} else {
		base := *c.endpoint
		u = &base
		u.Path = strings.TrimSuffix(c.endpoint.Path, "/") + ref.Path
		u.RawPath = ""
		if ref.RawPath != "" {
			u.RawPath = strings.TrimSuffix(c.endpoint.EscapedPath(), "/") + ref.RawPath
		}
		u.RawQuery = ref.RawQuery
	}

	query := u.Query()
	for key, values := range req.Query {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	if c.apiVersion != "" && c.versionHeader == "" && query.Get(APIVersionParam) == "" {
		query.Set(APIVersionParam, c.apiVersion)
	}
	u.RawQuery = query.Encode()

	return u, nil
}

// ============================================================================
// Invocation
// ============================================================================

// Invoke sends the request through the pipeline and reads the response.
//
// The call waits on the client-side throttle, acquires a bearer token, sets the
// standard headers and sends the request with retries. When the status code is
// one of expected, the body is decoded into out (JSON, or XML when the response
// is XML); out may be nil. Any other status code returns a *ResponseError along
// with the response.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - req: The request built by NewRequest
//   - out: Destination for the decoded body, or nil
//   - expected: Success status codes (default 200)
//
// Returns:
//   - *Response: The response, also returned with a *ResponseError
//   - error: Transport, authentication, status or decode error
func (c *Client) Invoke(ctx context.Context, req *Request, out any, expected ...int) (*Response, error) {
	if len(expected) == 0 {
		expected = []int{http.StatusOK}
	}

	u, err := c.resolveURL(req)
	if err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("client throttle: %w", err)
		}
	}

	token, err := c.credential.GetToken(ctx, c.scopes)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire token: %w", err)
	}

	requestID := uuid.NewString()
	build := func() (*http.Request, error) {
		var body io.Reader
		if req.Body != nil {
			body = bytes.NewReader(req.Body)
		}

		httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		for key, values := range req.Header {
			httpReq.Header[key] = values
		}
		httpReq.Header.Set(HeaderAuthorization, "Bearer "+token.Token)
		httpReq.Header.Set("User-Agent", c.userAgent)
		if httpReq.Header.Get(HeaderClientRequestID) == "" {
			httpReq.Header.Set(HeaderClientRequestID, requestID)
		}
		if httpReq.Header.Get("Accept") == "" {
			httpReq.Header.Set("Accept", "application/json")
		}
		if c.versionHeader != "" && c.apiVersion != "" {
			httpReq.Header.Set(c.versionHeader, c.apiVersion)
		}
		if req.ContentType != "" {
			httpReq.Header.Set("Content-Type", req.ContentType)
		}
		return httpReq, nil
	}

	httpResp, err := c.doRequestWithRetry(ctx, build)
	if err != nil {
		return nil, err
	}
	defer drainAndCloseBody(httpResp)

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
	}

	if !statusIn(resp.StatusCode, expected) {
		return resp, newResponseError(resp)
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if isXML(resp) {
			err = resp.DecodeXML(out)
		} else {
			err = resp.DecodeJSON(out)
		}
		if err != nil {
			return resp, err
		}
	}

	return resp, nil
}

// Do invokes the request and decodes the body into a new T.
func Do[T any](ctx context.Context, c *Client, req *Request, expected ...int) (*T, error) {
	var out T
	if _, err := c.Invoke(ctx, req, &out, expected...); err != nil {
		return nil, err
	}
	return &out, nil
}

// DoResult invokes the request and returns the decoded body with its status code.
func DoResult[T any](ctx context.Context, c *Client, req *Request, expected ...int) (*Result[T], error) {
	var out T
	resp, err := c.Invoke(ctx, req, &out, expected...)
	if err != nil {
		return nil, err
	}
	return &Result[T]{StatusCode: resp.StatusCode, Header: resp.Header, Value: out}, nil
}

// statusIn reports whether code is one of codes.
func statusIn(code int, codes []int) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// isXML reports whether a response body should be decoded as XML.
func isXML(resp *Response) bool {
	ct := resp.Header.Get("Content-Type")
	if ct != "" {
		return strings.Contains(ct, "xml")
	}
	return bytes.HasPrefix(bytes.TrimSpace(resp.Body), []byte("<"))
}
