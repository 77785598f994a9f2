//go:generate go run go.uber.org/mock/mockgen -source=messenger_service.go -destination=../mocks/mock_messenger_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"messenger-lab/auth"
	"messenger-lab/blob"
	"messenger-lab/domain"
	"messenger-lab/engine"
	errs "messenger-lab/errors"
	"messenger-lab/repositories"
)

// Draft is an outbound message before identity and ordering are
// assigned. Text carries the literal body for KindText; Data carries
// raw media bytes for photo and video kinds.
type Draft struct {
	Kind domain.Kind
	Text string
	Data []byte
}

type IMessengerService interface {
	StartConversation(ctx context.Context, recipientEmail, recipientName string, draft Draft) (string, error)
	Send(ctx context.Context, conversationID, otherUserID string, draft Draft) error
	Conversations(ctx context.Context) ([]domain.ConversationSummary, error)
	WatchConversations(ctx context.Context) (<-chan []domain.ConversationSummary, error)
	Messages(ctx context.Context, conversationID string) ([]domain.Message, error)
	WatchMessages(ctx context.Context, conversationID string) (<-chan []domain.Message, error)
	SearchContacts(ctx context.Context, prefix string) ([]repositories.Entry, error)
	Delete(ctx context.Context, conversationID string) error
}

// MessengerService is the surface UI glue calls into. It resolves the
// caller through the auth provider, uploads media payloads, and hands
// the multi-location writes to the sync engine.
type MessengerService struct {
	provider  auth.Provider
	directory repositories.IUserDirectory
	blobs     blob.IBlobStore
	engine    engine.ISyncEngine
	messages  repositories.IMessageStore
	index     repositories.IConversationIndex
}

func NewMessengerService(
	provider auth.Provider,
	directory repositories.IUserDirectory,
	blobs blob.IBlobStore,
	syncEngine engine.ISyncEngine,
	messages repositories.IMessageStore,
	index repositories.IConversationIndex,
) *MessengerService {
	return &MessengerService{
		provider:  provider,
		directory: directory,
		blobs:     blobs,
		engine:    syncEngine,
		messages:  messages,
		index:     index,
	}
}

func (s *MessengerService) StartConversation(ctx context.Context, recipientEmail, recipientName string, draft Draft) (string, error) {
	callerID, ok := s.provider.CurrentUserID(ctx)
	if !ok {
		return "", errs.ErrInvalidCredentials
	}
	first, err := s.compose(callerID, draft)
	if err != nil {
		return "", err
	}
	return s.engine.CreateConversation(ctx, callerID, recipientEmail, recipientName, first)
}

func (s *MessengerService) Send(ctx context.Context, conversationID, otherUserID string, draft Draft) error {
	callerID, ok := s.provider.CurrentUserID(ctx)
	if !ok {
		return errs.ErrInvalidCredentials
	}
	message, err := s.compose(callerID, draft)
	if err != nil {
		return err
	}
	return s.engine.AppendMessage(ctx, conversationID, otherUserID, message)
}

func (s *MessengerService) Conversations(ctx context.Context) ([]domain.ConversationSummary, error) {
	callerID, ok := s.provider.CurrentUserID(ctx)
	if !ok {
		return nil, errs.ErrInvalidCredentials
	}
	return s.index.Summaries(callerID)
}

func (s *MessengerService) WatchConversations(ctx context.Context) (<-chan []domain.ConversationSummary, error) {
	callerID, ok := s.provider.CurrentUserID(ctx)
	if !ok {
		return nil, errs.ErrInvalidCredentials
	}
	return s.index.Watch(ctx, callerID), nil
}

func (s *MessengerService) Messages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	if _, ok := s.provider.CurrentUserID(ctx); !ok {
		return nil, errs.ErrInvalidCredentials
	}
	return s.messages.ReadAll(conversationID)
}

func (s *MessengerService) WatchMessages(ctx context.Context, conversationID string) (<-chan []domain.Message, error) {
	if _, ok := s.provider.CurrentUserID(ctx); !ok {
		return nil, errs.ErrInvalidCredentials
	}
	return s.messages.Watch(ctx, conversationID), nil
}

func (s *MessengerService) SearchContacts(ctx context.Context, prefix string) ([]repositories.Entry, error) {
	callerID, ok := s.provider.CurrentUserID(ctx)
	if !ok {
		return nil, errs.ErrInvalidCredentials
	}
	return s.directory.SearchByPrefix(ctx, callerID, prefix)
}

func (s *MessengerService) Delete(ctx context.Context, conversationID string) error {
	callerID, ok := s.provider.CurrentUserID(ctx)
	if !ok {
		return errs.ErrInvalidCredentials
	}
	return s.engine.DeleteConversation(ctx, callerID, conversationID)
}

// compose turns a draft into an immutable message: media payloads are
// uploaded first and replaced by their URL, the message never carries
// raw bytes.
func (s *MessengerService) compose(senderID string, draft Draft) (domain.Message, error) {
	sender, err := s.directory.Get(senderID)
	if err != nil {
		return domain.Message{}, fmt.Errorf("fetch sender: %w", err)
	}

	id := uuid.New()
	payload := draft.Text
	if draft.Kind != domain.KindText {
		url, err := s.blobs.Upload(draft.Data, id.String())
		if err != nil {
			return domain.Message{}, err
		}
		payload = url
	}

	return domain.Message{
		ID:         id,
		SenderID:   senderID,
		SenderName: sender.Name,
		Kind:       draft.Kind,
		Payload:    payload,
		SentAt:     time.Now().UTC(),
		IsRead:     false,
	}, nil
}
