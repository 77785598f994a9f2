package domain

import "time"

// ConversationSummary is the denormalized per-participant view of a
// conversation. Both participants hold one copy each, describing the
// same log but showing the other party as counterpart. The copies
// converge but are not atomically linked.
type ConversationSummary struct {
	ConversationID  string    `json:"conversation_id"`
	CounterpartID   string    `json:"counterpart_id"`
	CounterpartName string    `json:"counterpart_name"`
	LatestPreview   string    `json:"latest_preview"`
	LatestAt        time.Time `json:"latest_at"`
	IsRead          bool      `json:"is_read"`
}
