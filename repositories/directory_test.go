package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/stretchr/testify/require"

	errs "messenger-lab/errors"
)

func newTestDirectory(t *testing.T) *UserDirectory {
	t.Helper()
	db := newTestDB(t)

	blugeCfg := bluge.DefaultConfig(t.TempDir())
	blugeWriter, err := bluge.OpenWriter(blugeCfg)
	require.NoError(t, err)
	t.Cleanup(func() { blugeWriter.Close() })

	return NewUserDirectory(db, blugeWriter, slog.Default(), 10)
}

func directoryUser(key, name, email string) User {
	return User{
		ID:           key,
		Name:         name,
		Email:        email,
		PasswordHash: "$argon2id$...",
		CreatedAt:    time.Now().UTC(),
	}
}

func Test_Insert_Then_Get(t *testing.T) {
	req := require.New(t)
	directory := newTestDirectory(t)

	user := directoryUser("alice-example-com", "Alice", "alice@example.com")
	req.NoError(directory.Insert(user))

	fetched, err := directory.Get("alice-example-com")
	req.NoError(err)
	req.Equal(user.Name, fetched.Name)
	req.Equal(user.Email, fetched.Email)
	req.Equal(user.PasswordHash, fetched.PasswordHash)
}

func Test_Get_Unknown_User(t *testing.T) {
	req := require.New(t)
	directory := newTestDirectory(t)

	_, err := directory.Get("ghost-example-com")
	req.ErrorIs(err, errs.ErrUserNotFound)
}

func Test_Duplicate_Insert_Is_Rejected(t *testing.T) {
	req := require.New(t)
	directory := newTestDirectory(t)

	req.NoError(directory.Insert(directoryUser("alice-example-com", "Alice", "alice@example.com")))

	err := directory.Insert(directoryUser("alice-example-com", "Imposter", "alice@example.com"))
	req.ErrorIs(err, errs.ErrUserAlreadyExists)

	// The original record must be untouched.
	fetched, err := directory.Get("alice-example-com")
	req.NoError(err)
	req.Equal("Alice", fetched.Name)
}

func Test_Exists(t *testing.T) {
	req := require.New(t)
	directory := newTestDirectory(t)

	exists, err := directory.Exists("alice@example.com")
	req.NoError(err)
	req.False(exists)

	req.NoError(directory.Insert(directoryUser("alice-example-com", "Alice", "alice@example.com")))

	exists, err = directory.Exists("alice@example.com")
	req.NoError(err)
	req.True(exists)
}

func Test_SearchByPrefix(t *testing.T) {
	req := require.New(t)
	directory := newTestDirectory(t)
	ctx := context.Background()

	req.NoError(directory.Insert(directoryUser("alice-example-com", "Alice", "alice@example.com")))
	req.NoError(directory.Insert(directoryUser("bob-example-com", "Bob", "bob@example.com")))
	req.NoError(directory.Insert(directoryUser("bonnie-example-com", "Bonnie", "bonnie@example.com")))

	t.Run("should match names by prefix", func(t *testing.T) {
		entries, err := directory.SearchByPrefix(ctx, "alice-example-com", "bo")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		keys := []string{entries[0].Key, entries[1].Key}
		require.Contains(t, keys, "bob-example-com")
		require.Contains(t, keys, "bonnie-example-com")
	})

	t.Run("should match case-insensitively", func(t *testing.T) {
		entries, err := directory.SearchByPrefix(ctx, "alice-example-com", "BO")
		require.NoError(t, err)
		require.Len(t, entries, 2)
	})

	t.Run("should exclude the requester", func(t *testing.T) {
		entries, err := directory.SearchByPrefix(ctx, "bob-example-com", "bo")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, "bonnie-example-com", entries[0].Key)
	})

	t.Run("should return nothing for a miss", func(t *testing.T) {
		entries, err := directory.SearchByPrefix(ctx, "alice-example-com", "zz")
		require.NoError(t, err)
		require.Empty(t, entries)
	})
}
