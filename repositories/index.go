//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=../mocks/mock_conversation_index.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"messenger-lab/docstore"
	"messenger-lab/domain"
	errs "messenger-lab/errors"
)

type IConversationIndex interface {
	Summaries(userID string) ([]domain.ConversationSummary, error)
	Update(userID string, fn MutateFunc) error
	Watch(ctx context.Context, userID string) <-chan []domain.ConversationSummary
}

// MutateFunc rewrites a user's summary array. It receives the current
// array (nil when the document does not exist yet) and returns the
// replacement written back wholesale.
type MutateFunc func(summaries []domain.ConversationSummary) ([]domain.ConversationSummary, error)

// ConversationIndex stores one summary array document per user at
// "{userKey}/conversations". Mutations are whole-array rewrites under
// the document's writer lock; there are no field-level patches.
type ConversationIndex struct {
	store docstore.IStore
	log   *slog.Logger
}

func NewConversationIndex(store docstore.IStore, log *slog.Logger) *ConversationIndex {
	return &ConversationIndex{store: store, log: log}
}

func indexPath(userID string) string {
	return userID + "/conversations"
}

// Summaries returns the user's current summary array. A user with no
// conversations yet has no document, which reads as an empty list.
func (c *ConversationIndex) Summaries(userID string) ([]domain.ConversationSummary, error) {
	var summaries []domain.ConversationSummary
	err := c.store.Read(indexPath(userID), &summaries)
	if err == docstore.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// Update rewrites the user's summary array under the single-writer
// lock of its document, so concurrent sync operations against the same
// index cannot lose each other's changes.
func (c *ConversationIndex) Update(userID string, fn MutateFunc) error {
	return c.store.Update(indexPath(userID), func(raw []byte, found bool) (any, error) {
		var summaries []domain.ConversationSummary
		if found {
			if err := json.Unmarshal(raw, &summaries); err != nil {
				return nil, fmt.Errorf("%w: %v", errs.ErrStoreReadFailed, err)
			}
		}
		next, err := fn(summaries)
		if err != nil {
			return nil, err
		}
		if next == nil {
			next = []domain.ConversationSummary{}
		}
		return next, nil
	})
}

// Watch re-delivers the user's full summary collection on every
// backing change, never a delta. Closes when ctx is done.
func (c *ConversationIndex) Watch(ctx context.Context, userID string) <-chan []domain.ConversationSummary {
	out := make(chan []domain.ConversationSummary, 1)
	raw := c.store.Watch(ctx, indexPath(userID))

	go func() {
		defer close(out)
		for doc := range raw {
			var summaries []domain.ConversationSummary
			if err := json.Unmarshal(doc, &summaries); err != nil {
				c.log.Error("Corrupt index document observed", "user", userID, "error", err)
				continue
			}
			select {
			case <-out:
			default:
			}
			out <- summaries
		}
	}()

	return out
}
