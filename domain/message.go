// Package domain contains core concepts of the messenger.
// This file defines Message entities and the kind to preview mapping.
// Messages are immutable once appended to a conversation log.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Kind discriminates the payload of a message.
type Kind string

const (
	KindText  Kind = "text"
	KindPhoto Kind = "photo"
	KindVideo Kind = "video"
)

// Message represents an immutable chat event within one conversation.
// Payload holds literal text for KindText, an upload URL otherwise.
type Message struct {
	ID             uuid.UUID
	ConversationID string
	SenderID       string
	SenderName     string
	Kind           Kind
	Payload        string
	SentAt         time.Time
	IsRead         bool
}

// PreviewText is the single exhaustive mapping from a message kind to
// the denormalized preview string stored in conversation summaries.
// Every call site computing a preview must go through here.
func PreviewText(kind Kind, payload string) string {
	switch kind {
	case KindText:
		return payload
	case KindPhoto:
		return "[photo]"
	case KindVideo:
		return "[video]"
	default:
		return ""
	}
}
