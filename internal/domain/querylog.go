package domain

import "time"

// QueryLogEntry records one completed turn: the raw query, the response it
// produced, and when it happened. The log is append-only.
type QueryLogEntry struct {
	ID        string
	Query     string
	Response  string
	CreatedAt time.Time
}
