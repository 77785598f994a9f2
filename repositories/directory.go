//go:generate go run go.uber.org/mock/mockgen -source=directory.go -destination=../mocks/mock_user_directory.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"

	"messenger-lab/domain/identity"
	errs "messenger-lab/errors"
)

type IUserDirectory interface {
	Exists(email string) (bool, error)
	Insert(user User) error
	Get(id string) (User, error)
	SearchByPrefix(ctx context.Context, requesterID, prefix string) ([]Entry, error)
}

// User is the directory's on-disk representation of an account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Entry is one prefix-search hit from the roster.
type Entry struct {
	Name string
	Key  string
}

// UserDirectory keeps one keyed record per account under "user:{key}"
// plus a search index over display names. There is no shared roster
// array: inserting a user never rewrites another user's data, which
// removes the read-modify-write race a single roster document has.
type UserDirectory struct {
	db    *badger.DB
	index *bluge.Writer
	log   *slog.Logger
	limit int
}

func NewUserDirectory(db *badger.DB, index *bluge.Writer, log *slog.Logger, limit int) *UserDirectory {
	return &UserDirectory{db: db, index: index, log: log, limit: limit}
}

type diskUser struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Exists reports whether an account is registered under the email's
// normalized key.
func (d *UserDirectory) Exists(email string) (bool, error) {
	key := []byte("user:" + identity.Normalize(email))
	err := d.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		return err
	})
	switch err {
	case nil:
		return true, nil
	case badger.ErrKeyNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", errs.ErrStoreReadFailed, err)
	}
}

// Insert persists a new account. The existence check and the write
// share one transaction, so duplicate registrations cannot slip in
// between them.
func (d *UserDirectory) Insert(user User) error {
	raw, err := json.Marshal(diskUser{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStoreWriteFailed, err)
	}

	key := []byte("user:" + user.ID)
	err = d.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == nil {
			return errs.ErrUserAlreadyExists
		}
		return txn.Set(key, raw)
	})
	if err == errs.ErrUserAlreadyExists {
		return err
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStoreWriteFailed, err)
	}

	doc := bluge.NewDocument(user.ID).
		AddField(bluge.NewTextField("name", user.Name).StoreValue()).
		AddField(bluge.NewKeywordField("name_lc", strings.ToLower(user.Name)))
	if err := d.index.Update(doc.ID(), doc); err != nil {
		// The account record is already durable and reachable by key;
		// the user stays out of prefix search until a reindex.
		d.log.Error("Roster indexing failed", "user", user.ID, "error", err)
	}
	return nil
}

// Get retrieves an account by its canonical key.
func (d *UserDirectory) Get(id string) (User, error) {
	var du diskUser
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("user:" + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &du)
		})
	})
	if err == badger.ErrKeyNotFound {
		return User{}, errs.ErrUserNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("%w: %v", errs.ErrStoreReadFailed, err)
	}
	return User{
		ID:           id,
		Name:         du.Name,
		Email:        du.Email,
		PasswordHash: du.PasswordHash,
		CreatedAt:    du.CreatedAt,
	}, nil
}

// SearchByPrefix matches display names case-insensitively against the
// query prefix, excluding the requester. Results are computed fresh on
// every call; the slice is finite and not restartable.
func (d *UserDirectory) SearchByPrefix(ctx context.Context, requesterID, prefix string) ([]Entry, error) {
	reader, err := d.index.Reader()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrStoreReadFailed, err)
	}
	defer reader.Close()

	query := bluge.NewPrefixQuery(strings.ToLower(prefix))
	query.SetField("name_lc")
	request := bluge.NewTopNSearch(d.limit, query).SortBy([]string{"_id"})

	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrStoreReadFailed, err)
	}

	var entries []Entry
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrStoreReadFailed, err)
		}
		if match == nil {
			break
		}

		var entry Entry
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				entry.Key = string(value)
			case "name":
				entry.Name = string(value)
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrStoreReadFailed, err)
		}
		if entry.Key == requesterID {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
