package relay

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/mbbx6spp/straitjacket/internal/domain"
	"github.com/mbbx6spp/straitjacket/internal/platform/httpclient"
	"github.com/mbbx6spp/straitjacket/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.RelayClient   = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client is the outbound adapter for the downstream relay API. It
// implements [ports.RelayClient]: publishing creates a dispatch,
// retracting revokes one.
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry with exponential backoff, and OpenTelemetry tracing
// for every outbound call. Relay HTTP errors are mapped to domain errors
// by [TranslateHTTPError].
type Client struct {
	req    *requester
	logger *slog.Logger
}

// NewClient creates a relay Client that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point at the relay
// API root (e.g. "https://relay.example.com").
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{
		req:    newRequester(client, logger),
		logger: logger,
	}
}

// Dispatch sends a published entry to POST /api/v1/dispatches and
// returns the relay's acknowledgement. Returns domain.ErrUnavailable
// when the relay is failing and straitjacket.ErrValidation when the
// relay rejects the payload.
func (c *Client) Dispatch(ctx context.Context, entry domain.Entry) (*domain.Dispatch, error) {
	reqDTO := toDispatchRequest(entry)

	var respDTO dispatchDTO
	if err := c.req.do(ctx, http.MethodPost, "/api/v1/dispatches", http.StatusCreated, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	return toDomainDispatch(respDTO), nil
}

// Revoke withdraws a dispatch via DELETE /api/v1/dispatches/{id}.
// Returns domain.ErrNotFound if the relay no longer knows the dispatch.
func (c *Client) Revoke(ctx context.Context, dispatchID string) error {
	path := fmt.Sprintf("/api/v1/dispatches/%s", url.PathEscape(dispatchID))
	return c.req.do(ctx, http.MethodDelete, path, http.StatusNoContent, nil, nil)
}

// Name returns the identifier used when this component is registered
// with a [ports.HealthRegistry]. The value matches the service name used
// by the underlying [httpclient.Client] for tracing and metrics.
func (c *Client) Name() string {
	return "relay-api"
}

// HealthCheck reports the relay's availability based on the circuit
// breaker state; no network call is made. This reports downstream
// status, not service readiness: the service keeps serving journal reads
// and writes while the relay is down, only publishing degrades.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.req.circuitBreakerHealth(ctx)
}
