package relay

// dispatchRequestDTO matches the relay's CreateDispatchRequest schema.
// PublishedAt is RFC 3339.
type dispatchRequestDTO struct {
	EntryID     int64    `json:"entry_id"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags,omitempty"`
	PublishedAt string   `json:"published_at"`
}

// dispatchDTO matches the relay's Dispatch schema. SentAt is RFC 3339.
type dispatchDTO struct {
	ID      string `json:"id"`
	EntryID int64  `json:"entry_id"`
	State   string `json:"state"`
	SentAt  string `json:"sent_at"`
}
