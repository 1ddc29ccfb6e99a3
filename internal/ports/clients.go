package ports

import (
	"context"

	"github.com/mbbx6spp/straitjacket/internal/domain"
)

// RelayClient defines the client port for the downstream relay API, which
// receives published entries and fans them out to subscribers. Implemented
// by the relay ACL adapter; called from action bodies in the application
// layer. The ACL translates between our "dispatch" concept and the
// downstream wire representation.
type RelayClient interface {
	// Dispatch submits a published entry to the relay and returns the
	// relay's acknowledgement.
	// Returns domain.ErrUnavailable if the relay is down or shedding load.
	// Returns straitjacket.ErrValidation if the relay rejects the payload.
	Dispatch(ctx context.Context, entry domain.Entry) (*domain.Dispatch, error)

	// Revoke withdraws a previous dispatch, unpublishing the entry
	// downstream. Used as compensation when a multi-step publish fails.
	// Returns domain.ErrNotFound if the dispatch does not exist.
	Revoke(ctx context.Context, dispatchID string) error
}
