//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=../mocks/mock_sync_engine.go -package=mocks

// Package engine orchestrates the multi-location writes behind every
// conversation mutation: the message log plus both participants'
// denormalized index documents.
//
// The substrate offers no multi-path atomicity, so the engine has a
// strict no-rollback policy: a failure surfaces the failing step's
// error and leaves earlier writes in place. The caller cannot tell
// "nothing happened" from "some writes landed". Step ordering is the
// only containment: the message log is always written before any index
// document, so an index entry never references a message absent from
// the log. The reverse window (a log with no index entry yet) is
// possible after a crash and is invisible to readers, who only
// discover conversations through their index.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"messenger-lab/domain"
	"messenger-lab/domain/identity"
	errs "messenger-lab/errors"
	"messenger-lab/repositories"
)

type ISyncEngine interface {
	CreateConversation(ctx context.Context, initiatorID, recipientEmail, recipientName string, first domain.Message) (string, error)
	AppendMessage(ctx context.Context, conversationID, otherUserID string, message domain.Message) error
	DeleteConversation(ctx context.Context, userID, conversationID string) error
}

type SyncEngine struct {
	log       *slog.Logger
	directory repositories.IUserDirectory
	messages  repositories.IMessageStore
	index     repositories.IConversationIndex
}

func NewSyncEngine(
	log *slog.Logger,
	directory repositories.IUserDirectory,
	messages repositories.IMessageStore,
	index repositories.IConversationIndex,
) *SyncEngine {
	return &SyncEngine{
		log:       log,
		directory: directory,
		messages:  messages,
		index:     index,
	}
}

// ConversationID derives the conversation identifier from the first
// message, avoiding a separate ID-allocation round trip.
func ConversationID(first domain.Message) string {
	return "conversation_" + first.ID.String()
}

// CreateConversation materializes a new conversation from its first
// message: one message-log partition plus one summary entry in each
// participant's index.
func (e *SyncEngine) CreateConversation(ctx context.Context, initiatorID, recipientEmail, recipientName string, first domain.Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	initiator, err := e.directory.Get(initiatorID)
	if err != nil {
		return "", fmt.Errorf("fetch initiator: %w", err)
	}
	recipientID := identity.Normalize(recipientEmail)

	conversationID := ConversationID(first)
	first.ConversationID = conversationID
	preview := domain.PreviewText(first.Kind, first.Payload)

	// Log first: a summary must never become visible before the
	// message it previews exists.
	if err := e.messages.Append(conversationID, first); err != nil {
		return "", fmt.Errorf("append first message: %w", err)
	}

	recipientSummary := domain.ConversationSummary{
		ConversationID:  conversationID,
		CounterpartID:   initiatorID,
		CounterpartName: initiator.Name,
		LatestPreview:   preview,
		LatestAt:        first.SentAt,
		IsRead:          false,
	}
	if err := e.appendSummary(recipientID, recipientSummary); err != nil {
		e.log.Warn("Conversation creation left a partial write",
			"conversation", conversationID, "stage", "recipient index", "error", err)
		return "", fmt.Errorf("update recipient index: %w", err)
	}

	initiatorSummary := domain.ConversationSummary{
		ConversationID:  conversationID,
		CounterpartID:   recipientID,
		CounterpartName: recipientName,
		LatestPreview:   preview,
		LatestAt:        first.SentAt,
		IsRead:          false,
	}
	if err := e.appendSummary(initiatorID, initiatorSummary); err != nil {
		e.log.Warn("Conversation creation left a partial write",
			"conversation", conversationID, "stage", "initiator index", "error", err)
		return "", fmt.Errorf("update initiator index: %w", err)
	}

	return conversationID, nil
}

// AppendMessage appends to an existing conversation and refreshes the
// latest-message denormalization of both participants. Each step can
// fail independently; the first failure is surfaced without undoing
// prior steps.
func (e *SyncEngine) AppendMessage(ctx context.Context, conversationID, otherUserID string, message domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message.ConversationID = conversationID
	if err := e.messages.Append(conversationID, message); err != nil {
		return fmt.Errorf("append message: %w", err)
	}

	preview := domain.PreviewText(message.Kind, message.Payload)
	if err := e.refreshSummary(message.SenderID, conversationID, preview, message.SentAt); err != nil {
		e.log.Warn("Message append left a partial write",
			"conversation", conversationID, "stage", "sender index", "error", err)
		return fmt.Errorf("update sender index: %w", err)
	}
	if err := e.refreshSummary(otherUserID, conversationID, preview, message.SentAt); err != nil {
		e.log.Warn("Message append left a partial write",
			"conversation", conversationID, "stage", "recipient index", "error", err)
		return fmt.Errorf("update recipient index: %w", err)
	}
	return nil
}

// DeleteConversation removes the first matching summary from the
// user's index. The message log is untouched: deletion is an index
// removal, not an entity lifecycle event.
func (e *SyncEngine) DeleteConversation(ctx context.Context, userID, conversationID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return e.index.Update(userID, func(summaries []domain.ConversationSummary) ([]domain.ConversationSummary, error) {
		for i, summary := range summaries {
			if summary.ConversationID == conversationID {
				return append(summaries[:i], summaries[i+1:]...), nil
			}
		}
		return nil, errs.ErrConversationNotFound
	})
}

// appendSummary adds a summary to a user's index, creating the
// document when the user has no conversations yet.
func (e *SyncEngine) appendSummary(userID string, summary domain.ConversationSummary) error {
	return e.index.Update(userID, func(summaries []domain.ConversationSummary) ([]domain.ConversationSummary, error) {
		return append(summaries, summary), nil
	})
}

// refreshSummary overwrites the latest-message fields of one summary,
// located by linear scan, and writes the whole array back.
func (e *SyncEngine) refreshSummary(userID, conversationID, preview string, at time.Time) error {
	return e.index.Update(userID, func(summaries []domain.ConversationSummary) ([]domain.ConversationSummary, error) {
		for i := range summaries {
			if summaries[i].ConversationID == conversationID {
				summaries[i].LatestPreview = preview
				summaries[i].LatestAt = at
				summaries[i].IsRead = false
				return summaries, nil
			}
		}
		return nil, errs.ErrConversationNotFound
	})
}
