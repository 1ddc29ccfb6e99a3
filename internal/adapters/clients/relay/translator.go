package relay

import (
	"time"

	"github.com/mbbx6spp/straitjacket/internal/domain"
)

// toDispatchRequest converts a published domain entry to the relay's
// CreateDispatchRequest representation.
func toDispatchRequest(entry domain.Entry) dispatchRequestDTO {
	var publishedAt string
	if entry.PublishedAt != nil {
		publishedAt = entry.PublishedAt.UTC().Format(time.RFC3339)
	}

	return dispatchRequestDTO{
		EntryID:     entry.ID,
		Title:       entry.Title,
		Body:        entry.Body,
		Tags:        entry.Tags,
		PublishedAt: publishedAt,
	}
}

// toDomainDispatch converts the relay's Dispatch representation to a
// domain Dispatch. Unknown states are preserved verbatim; timestamps
// that fail to parse are left zero.
func toDomainDispatch(dto dispatchDTO) *domain.Dispatch {
	sentAt, _ := time.Parse(time.RFC3339, dto.SentAt)

	return &domain.Dispatch{
		ID:      dto.ID,
		EntryID: dto.EntryID,
		State:   domain.DispatchState(dto.State),
		SentAt:  sentAt,
	}
}
