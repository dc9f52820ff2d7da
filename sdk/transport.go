package sdk

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// retryableStatus lists the status codes the pipeline retries.
var retryableStatus = map[int]bool{
	http.StatusRequestTimeout:      true,
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// doRequestWithRetry performs an HTTP request with exponential backoff retry logic.
// It retries on network errors and on the status codes in retryableStatus.
// build is called once per attempt so the body is replayed from the start.
// The last retryable response is returned as-is for the caller to map.
func (c *Client) doRequestWithRetry(ctx context.Context, build func() (*http.Request, error)) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.retryAttempts; attempt++ {
		req, err := build()
		if err != nil {
			return nil, err
		}

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		fields := []zap.Field{
			zap.String("method", req.Method),
			zap.String("url", redactURL(req)),
			zap.Int("attempt", attempt+1),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_request_id", req.Header.Get(HeaderClientRequestID)),
		}

		if err != nil {
			// A cancelled context is final.
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			c.logger.Warn("Request failed", append(fields, zap.Error(err))...)
		} else {
			c.logger.Debug("Request completed", append(fields,
				zap.Int("status", resp.StatusCode),
				zap.String("request_id", resp.Header.Get(HeaderRequestID)),
			)...)

			if !retryableStatus[resp.StatusCode] || attempt == c.retryAttempts {
				return resp, nil
			}
			c.logger.Warn("Retryable response", append(fields, zap.Int("status", resp.StatusCode))...)
		}

		// If this was the last attempt, stop here
		if attempt == c.retryAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		if resp != nil {
			if wait, ok := retryAfter(resp); ok {
				backoff = wait
			}
			drainAndCloseBody(resp)
		}

		// Wait for backoff duration or until context is cancelled
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", c.retryAttempts+1, lastErr)
}

// calculateBackoff calculates the backoff duration for a retry attempt.
// It uses exponential backoff with jitter to avoid thundering herd.
func (c *Client) calculateBackoff(attempt int) time.Duration {
	// Exponential backoff: min * (2 ^ attempt)
	backoff := float64(c.retryWaitMin) * math.Pow(2, float64(attempt))

	// Cap at maximum wait time
	if backoff > float64(c.retryWaitMax) {
		backoff = float64(c.retryWaitMax)
	}

	// Jitter in [backoff/2, backoff)
	return time.Duration(backoff/2 + rand.Float64()*backoff/2)
}

// retryAfter reads a Retry-After header given in seconds.
func retryAfter(resp *http.Response) (time.Duration, bool) {
	v := resp.Header.Get(HeaderRetryAfter)
	if v == "" {
		return 0, false
	}
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds < 0 {
		return 0, false
	}
	return time.Duration(seconds) * time.Second, true
}

// redactURL returns the request URL without its query string, which may carry
// shared access signatures.
func redactURL(req *http.Request) string {
	u := *req.URL
	u.RawQuery = ""
	return u.String()
}

// drainAndCloseBody reads and closes the response body to ensure connection reuse.
func drainAndCloseBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}
