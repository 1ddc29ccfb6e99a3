package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mbbx6spp/straitjacket/internal/platform/httpclient"
)

// requester centralizes the HTTP request lifecycle for the relay adapter:
// request creation, JSON marshaling, execution via httpclient.Client,
// response body cleanup, status code validation, error translation, and
// JSON decoding.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

func newRequester(client *httpclient.Client, logger *slog.Logger) *requester {
	return &requester{client: client, logger: logger}
}

// do executes an HTTP request against the configured base URL.
//
// It marshals reqBody to JSON (if non-nil), sends the request, validates
// the status code against wantStatus, and decodes the response body into
// respBody (if non-nil). Pass nil respBody for calls with no response
// body, such as DELETE.
//
// Non-matching status codes are passed to TranslateHTTPError.
func (r *requester) do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	url := r.client.BaseURL() + path

	var body *bytes.Reader
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, url, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, url, http.NoBody)
	}
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return r.execute(req, wantStatus, respBody)
}

// circuitBreakerHealth reports the underlying client's breaker health.
func (r *requester) circuitBreakerHealth(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

// closeBody closes an HTTP response body and logs on failure.
func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally
// decodes the response body. It ensures resp.Body is always closed.
func (r *requester) execute(req *http.Request, wantStatus int, respBody any) error {
	resp, err := r.client.Do(req.Context(), req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are
		// exhausted on a retryable status. Translate the HTTP response
		// into a domain error rather than returning the raw retry error.
		if resp != nil {
			defer r.closeBody(req.Context(), resp)
			if resp.StatusCode != wantStatus {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(req.Context(), "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(req.Context(), resp)

	if resp.StatusCode != wantStatus {
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(req.Context(), "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return translateErr
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}
