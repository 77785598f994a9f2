//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_store.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"messenger-lab/domain"
	errs "messenger-lab/errors"
)

type IMessageStore interface {
	Append(conversationID string, message domain.Message) error
	ReadAll(conversationID string) ([]domain.Message, error)
	Watch(ctx context.Context, conversationID string) <-chan []domain.Message
}

// MessageStore owns the append-only message log of each conversation.
// The store is schemaless: the first append creates the partition, no
// separate create step exists to race against.
type MessageStore struct {
	db  *badger.DB
	log *slog.Logger

	// appendMu serializes sequence allocation: two concurrent appends
	// reading the same counter would otherwise abort on txn conflict.
	appendMu sync.Mutex

	mu       sync.Mutex
	watchers map[string][]chan []domain.Message
}

func NewMessageStore(db *badger.DB, log *slog.Logger) *MessageStore {
	return &MessageStore{
		db:       db,
		log:      log,
		watchers: make(map[string][]chan []domain.Message),
	}
}

type diskMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Kind       string    `json:"kind"`
	Payload    string    `json:"payload"`
	SentAt     time.Time `json:"sent_at"`
	IsRead     bool      `json:"is_read"`
}

// Append persists a message at the tail of the conversation's log.
// The key is formatted as "msg:{conversation}:{seq_padded}:{uuid}":
//  1. A per-conversation sequence, allocated in the same transaction,
//     makes append order explicit and lexicographically sortable
//     (19-digit zero padding).
//  2. The UUID disambiguates keys if a log is ever rebuilt from a
//     backup that reset the counter.
func (m *MessageStore) Append(conversationID string, message domain.Message) error {
	raw, err := json.Marshal(fromMessage(message))
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStoreWriteFailed, err)
	}

	m.appendMu.Lock()
	err = m.db.Update(func(txn *badger.Txn) error {
		seq, err := nextSeq(txn, conversationID)
		if err != nil {
			return err
		}
		key := fmt.Sprintf("msg:%s:%019d:%s", conversationID, seq, message.ID)
		return txn.Set([]byte(key), raw)
	})
	m.appendMu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStoreWriteFailed, err)
	}

	m.notify(conversationID)
	return nil
}

// ReadAll replays the entire current log in append order. Consumers
// always receive the whole log, never a delta: downstream state is
// replaced wholesale on every change.
func (m *MessageStore) ReadAll(conversationID string) ([]domain.Message, error) {
	var rawMessages [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte("msg:" + conversationID + ":")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				rawMessages = append(rawMessages, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrStoreReadFailed, err)
	}

	messages := make([]domain.Message, 0, len(rawMessages))
	for _, raw := range rawMessages {
		var dm diskMessage
		if err = json.Unmarshal(raw, &dm); err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrStoreReadFailed, err)
		}
		message, err := toMessage(conversationID, dm)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrStoreReadFailed, err)
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// Watch re-delivers the full log on subscription and after every
// append. Best effort: a slow consumer sees the latest log, skipped
// intermediate states are not replayed. Closes when ctx is done.
func (m *MessageStore) Watch(ctx context.Context, conversationID string) <-chan []domain.Message {
	ch := make(chan []domain.Message, 1)

	// Snapshot and registration share m.mu with notify: an append
	// racing the subscription either shows up in the snapshot or gets
	// delivered through notify afterwards, never silently dropped.
	m.mu.Lock()
	if messages, err := m.ReadAll(conversationID); err == nil && len(messages) > 0 {
		ch <- messages
	}
	m.watchers[conversationID] = append(m.watchers[conversationID], ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		chans := m.watchers[conversationID]
		for i, c := range chans {
			if c == ch {
				m.watchers[conversationID] = append(chans[:i], chans[i+1:]...)
				break
			}
		}
		if len(m.watchers[conversationID]) == 0 {
			delete(m.watchers, conversationID)
		}
		m.mu.Unlock()
		close(ch)
	}()

	return ch
}

func (m *MessageStore) notify(conversationID string) {
	m.mu.Lock()
	watching := len(m.watchers[conversationID]) > 0
	m.mu.Unlock()
	if !watching {
		return
	}

	messages, err := m.ReadAll(conversationID)
	if err != nil {
		m.log.Error("Log replay for watchers failed", "conversation", conversationID, "error", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.watchers[conversationID] {
		// Latest log wins, stale snapshots are dropped.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- messages:
		default:
			m.log.Debug("Watcher notification lost", "conversation", conversationID)
		}
	}
}

func nextSeq(txn *badger.Txn, conversationID string) (uint64, error) {
	key := []byte("seq:" + conversationID)
	var seq uint64
	item, err := txn.Get(key)
	switch err {
	case nil:
		err = item.Value(func(val []byte) error {
			parsed, err := strconv.ParseUint(string(val), 10, 64)
			if err != nil {
				return err
			}
			seq = parsed
			return nil
		})
		if err != nil {
			return 0, err
		}
	case badger.ErrKeyNotFound:
		// First append creates the partition.
	default:
		return 0, err
	}

	seq++
	if err := txn.Set(key, []byte(strconv.FormatUint(seq, 10))); err != nil {
		return 0, err
	}
	return seq, nil
}

func fromMessage(message domain.Message) diskMessage {
	return diskMessage{
		ID:         message.ID.String(),
		SenderID:   message.SenderID,
		SenderName: message.SenderName,
		Kind:       string(message.Kind),
		Payload:    message.Payload,
		SentAt:     message.SentAt.UTC(),
		IsRead:     message.IsRead,
	}
}

func toMessage(conversationID string, dm diskMessage) (domain.Message, error) {
	parsedID, err := uuid.Parse(dm.ID)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:             parsedID,
		ConversationID: conversationID,
		SenderID:       dm.SenderID,
		SenderName:     dm.SenderName,
		Kind:           domain.Kind(dm.Kind),
		Payload:        dm.Payload,
		SentAt:         dm.SentAt,
		IsRead:         dm.IsRead,
	}, nil
}
