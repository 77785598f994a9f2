package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"messenger-lab/auth"
	"messenger-lab/blob"
	"messenger-lab/domain"
	"messenger-lab/domain/identity"
	"messenger-lab/engine"
	errs "messenger-lab/errors"
	"messenger-lab/projection"
	"messenger-lab/repositories"
	"messenger-lab/services"

	"messenger-lab/docstore"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

type Config struct {
	DataDir       string        `envconfig:"LAB_DATA_DIR" default:"./lab-data"`
	Colours       bool          `envconfig:"LAB_COLOURS" default:"true"`
	TokenDuration time.Duration `envconfig:"LAB_TOKEN_DURATION" default:"24h"`
	SearchLimit   int           `envconfig:"LAB_SEARCH_LIMIT" default:"20"`
	LogLevel      string        `envconfig:"LAB_LOG_LEVEL" default:"INFO"`
}

// pngPixel is a 1x1 transparent PNG, enough for the blob store to
// sniff a real image payload.
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Lab terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run walks one full conversation scenario through the sync core:
// two registrations, a contact search, a conversation with text and
// photo messages, and both participants' resulting inboxes.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(cfg.LogLevel)

	// 2. Databases (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(filepath.Join(cfg.DataDir, "badger")).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(filepath.Join(cfg.DataDir, "bluge")))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Wiring
	store := docstore.NewStore(db, logger)
	messages := repositories.NewMessageStore(db, logger)
	index := repositories.NewConversationIndex(store, logger)
	directory := repositories.NewUserDirectory(db, blugeWriter, logger, cfg.SearchLimit)
	syncEngine := engine.NewSyncEngine(logger, directory, messages, index)
	blobs := blob.NewDiskBlobStore(filepath.Join(cfg.DataDir, "blobs"), logger)
	provider := auth.NewTokenProvider()
	accounts := services.NewAccountService(directory, cfg.TokenDuration)
	messenger := services.NewMessengerService(provider, directory, blobs, syncEngine, messages, index)

	ctx := context.Background()

	// 4. Accounts
	aliceCtx, err := session(ctx, accounts, "alice@example.com", "Alice Martin", "ComplexPass123!")
	if err != nil {
		return exitRuntime, err
	}
	bobCtx, err := session(ctx, accounts, "bob@example.com", "Bob Dupont", "ComplexPass456!")
	if err != nil {
		return exitRuntime, err
	}
	aliceID := identity.Normalize("alice@example.com")
	bobID := identity.Normalize("bob@example.com")

	// 5. Contact search before the first message
	hits, err := messenger.SearchContacts(aliceCtx, "bo")
	if err != nil {
		return exitRuntime, fmt.Errorf("contact search failed: %w", err)
	}
	banner(cfg.Colours, "Alice searches \"bo\"")
	for _, hit := range hits {
		fmt.Printf("  %s (%s)\n", hit.Name, hit.Key)
	}

	// 6. Conversation
	conversationID, err := messenger.StartConversation(aliceCtx, "bob@example.com", "Bob Dupont",
		services.Draft{Kind: domain.KindText, Text: "hi"})
	if err != nil {
		return exitRuntime, fmt.Errorf("conversation creation failed: %w", err)
	}
	logger.Info("Conversation created", "id", conversationID)

	if err := messenger.Send(bobCtx, conversationID, aliceID,
		services.Draft{Kind: domain.KindText, Text: "hello Alice, how are you?"}); err != nil {
		return exitRuntime, fmt.Errorf("reply failed: %w", err)
	}
	if err := messenger.Send(aliceCtx, conversationID, bobID,
		services.Draft{Kind: domain.KindPhoto, Data: pngPixel}); err != nil {
		return exitRuntime, fmt.Errorf("photo send failed: %w", err)
	}

	// 7. Render both inboxes and the shared log
	if err := renderInbox(cfg.Colours, messenger, aliceCtx, "Alice"); err != nil {
		return exitRuntime, err
	}
	if err := renderInbox(cfg.Colours, messenger, bobCtx, "Bob"); err != nil {
		return exitRuntime, err
	}
	if err := renderLog(cfg.Colours, messenger, aliceCtx, conversationID); err != nil {
		return exitRuntime, err
	}

	logger.Info("Scenario finished cleanly")
	return exitOK, nil
}

// session registers the account, falling back to login when the key is
// already taken from a previous run against the same data dir.
func session(ctx context.Context, accounts services.IAccountService, email, name, password string) (context.Context, error) {
	token, err := accounts.Register(email, name, password)
	if errors.Is(err, errs.ErrUserAlreadyExists) {
		token, err = accounts.Login(email, password)
	}
	if err != nil {
		return nil, fmt.Errorf("session for %s failed: %w", email, err)
	}
	return auth.ContextWithToken(ctx, string(token)), nil
}

func renderInbox(colours bool, messenger services.IMessengerService, ctx context.Context, owner string) error {
	summaries, err := messenger.Conversations(ctx)
	if err != nil {
		return fmt.Errorf("inbox fetch for %s failed: %w", owner, err)
	}
	inbox := projection.BuildInbox(summaries)

	banner(colours, fmt.Sprintf("%s's inbox (%d unread)", owner, inbox.Unread))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Conversation", "Counterpart", "Latest", "At", "Read"})
	table.SetBorder(false)
	table.AppendBulk(lo.Map(inbox.Summaries, func(s domain.ConversationSummary, _ int) []string {
		return []string{
			s.ConversationID,
			s.CounterpartName,
			s.LatestPreview,
			s.LatestAt.Format(time.RFC822),
			fmt.Sprintf("%t", s.IsRead),
		}
	}))
	table.Render()
	return nil
}

func renderLog(colours bool, messenger services.IMessengerService, ctx context.Context, conversationID string) error {
	log, err := messenger.Messages(ctx, conversationID)
	if err != nil {
		return fmt.Errorf("log replay failed: %w", err)
	}

	banner(colours, fmt.Sprintf("Log of %s", conversationID))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Seq", "Sender", "Kind", "Payload"})
	table.SetBorder(false)
	table.AppendBulk(lo.Map(log, func(m domain.Message, i int) []string {
		return []string{fmt.Sprintf("%d", i+1), m.SenderName, string(m.Kind), m.Payload}
	}))
	table.Render()
	return nil
}

func banner(colours bool, text string) {
	if colours {
		text = color.New(color.BgBlack, color.FgGreen).Render(text)
	}
	fmt.Printf("\n%s\n", text)
}
