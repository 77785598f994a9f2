package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"messenger-lab/domain"
	errs "messenger-lab/errors"
	"messenger-lab/mocks"
	"messenger-lab/repositories"
	"messenger-lab/services"
)

type messengerFixture struct {
	svc       *services.MessengerService
	provider  *mocks.MockProvider
	directory *mocks.MockIUserDirectory
	blobs     *mocks.MockIBlobStore
	engine    *mocks.MockISyncEngine
	messages  *mocks.MockIMessageStore
	index     *mocks.MockIConversationIndex
}

func newMessengerFixture(t *testing.T) messengerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := messengerFixture{
		provider:  mocks.NewMockProvider(ctrl),
		directory: mocks.NewMockIUserDirectory(ctrl),
		blobs:     mocks.NewMockIBlobStore(ctrl),
		engine:    mocks.NewMockISyncEngine(ctrl),
		messages:  mocks.NewMockIMessageStore(ctrl),
		index:     mocks.NewMockIConversationIndex(ctrl),
	}
	f.svc = services.NewMessengerService(f.provider, f.directory, f.blobs, f.engine, f.messages, f.index)
	return f
}

const callerKey = "alice-example-com"

func (f messengerFixture) authenticated() {
	f.provider.EXPECT().CurrentUserID(gomock.Any()).Return(callerKey, true)
}

func (f messengerFixture) anonymous() {
	f.provider.EXPECT().CurrentUserID(gomock.Any()).Return("", false)
}

func TestMessengerService_StartConversation(t *testing.T) {
	t.Run("should compose the first message and delegate to the engine", func(t *testing.T) {
		req := require.New(t)
		f := newMessengerFixture(t)
		ctx := context.Background()

		f.authenticated()
		f.directory.EXPECT().Get(callerKey).
			Return(repositories.User{ID: callerKey, Name: "Alice"}, nil)
		f.engine.EXPECT().
			CreateConversation(ctx, callerKey, "bob@example.com", "Bob", gomock.Cond(func(m domain.Message) bool {
				return m.SenderID == callerKey &&
					m.SenderName == "Alice" &&
					m.Kind == domain.KindText &&
					m.Payload == "hi" &&
					!m.IsRead
			})).
			Return("conversation_abc", nil)

		conversationID, err := f.svc.StartConversation(ctx, "bob@example.com", "Bob", services.Draft{Kind: domain.KindText, Text: "hi"})

		req.NoError(err)
		req.Equal("conversation_abc", conversationID)
	})

	t.Run("should reject anonymous callers", func(t *testing.T) {
		req := require.New(t)
		f := newMessengerFixture(t)

		f.anonymous()

		_, err := f.svc.StartConversation(context.Background(), "bob@example.com", "Bob", services.Draft{Kind: domain.KindText, Text: "hi"})
		req.ErrorIs(err, errs.ErrInvalidCredentials)
	})
}

func TestMessengerService_Send(t *testing.T) {
	t.Run("should upload media and send its URL", func(t *testing.T) {
		req := require.New(t)
		f := newMessengerFixture(t)
		ctx := context.Background()
		data := []byte{0x89, 0x50, 0x4e, 0x47}

		f.authenticated()
		f.directory.EXPECT().Get(callerKey).
			Return(repositories.User{ID: callerKey, Name: "Alice"}, nil)
		f.blobs.EXPECT().Upload(data, gomock.Any()).
			Return("file:///blobs/p.png", nil)
		f.engine.EXPECT().
			AppendMessage(ctx, "conversation_abc", "bob-example-com", gomock.Cond(func(m domain.Message) bool {
				// The message carries the URL, never the raw bytes.
				return m.Kind == domain.KindPhoto && m.Payload == "file:///blobs/p.png"
			})).
			Return(nil)

		err := f.svc.Send(ctx, "conversation_abc", "bob-example-com", services.Draft{Kind: domain.KindPhoto, Data: data})
		req.NoError(err)
	})

	t.Run("should not append when the upload is rejected", func(t *testing.T) {
		req := require.New(t)
		f := newMessengerFixture(t)

		f.authenticated()
		f.directory.EXPECT().Get(callerKey).
			Return(repositories.User{ID: callerKey, Name: "Alice"}, nil)
		f.blobs.EXPECT().Upload(gomock.Any(), gomock.Any()).
			Return("", errs.ErrUnsupportedMedia)
		f.engine.EXPECT().AppendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := f.svc.Send(context.Background(), "conversation_abc", "bob-example-com", services.Draft{Kind: domain.KindVideo, Data: []byte("plain text")})
		req.ErrorIs(err, errs.ErrUnsupportedMedia)
	})
}

func TestMessengerService_Reads(t *testing.T) {
	t.Run("should list the caller's conversations", func(t *testing.T) {
		req := require.New(t)
		f := newMessengerFixture(t)

		expected := []domain.ConversationSummary{{ConversationID: "conversation_abc", LatestPreview: "hi", LatestAt: time.Now().UTC()}}
		f.authenticated()
		f.index.EXPECT().Summaries(callerKey).Return(expected, nil)

		summaries, err := f.svc.Conversations(context.Background())
		req.NoError(err)
		req.Equal(expected, summaries)
	})

	t.Run("should replay the conversation log", func(t *testing.T) {
		req := require.New(t)
		f := newMessengerFixture(t)

		expected := []domain.Message{{SenderID: callerKey, Kind: domain.KindText, Payload: "hi"}}
		f.authenticated()
		f.messages.EXPECT().ReadAll("conversation_abc").Return(expected, nil)

		log, err := f.svc.Messages(context.Background(), "conversation_abc")
		req.NoError(err)
		req.Equal(expected, log)
	})

	t.Run("should search contacts excluding the caller", func(t *testing.T) {
		req := require.New(t)
		f := newMessengerFixture(t)
		ctx := context.Background()

		expected := []repositories.Entry{{Name: "Bob", Key: "bob-example-com"}}
		f.authenticated()
		f.directory.EXPECT().SearchByPrefix(ctx, callerKey, "bo").Return(expected, nil)

		entries, err := f.svc.SearchContacts(ctx, "bo")
		req.NoError(err)
		req.Equal(expected, entries)
	})

	t.Run("should reject anonymous reads", func(t *testing.T) {
		req := require.New(t)
		f := newMessengerFixture(t)

		f.anonymous()
		_, err := f.svc.Conversations(context.Background())
		req.ErrorIs(err, errs.ErrInvalidCredentials)
	})
}

func TestMessengerService_Delete(t *testing.T) {
	req := require.New(t)
	f := newMessengerFixture(t)
	ctx := context.Background()

	f.authenticated()
	f.engine.EXPECT().DeleteConversation(ctx, callerKey, "conversation_abc").Return(nil)

	req.NoError(f.svc.Delete(ctx, "conversation_abc"))
}
