package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	errs "messenger-lab/errors"
)

func Test_Hash_And_Compare_Password(t *testing.T) {
	req := require.New(t)

	hash, err := HashPassword("Secret123456!")
	req.NoError(err)
	req.NotEqual("Secret123456!", hash)

	match, err := ComparePassword("Secret123456!", hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("WrongPassword1!", hash)
	req.NoError(err)
	req.False(match)
}

func Test_Hashes_Are_Salted(t *testing.T) {
	req := require.New(t)

	first, err := HashPassword("Secret123456!")
	req.NoError(err)
	second, err := HashPassword("Secret123456!")
	req.NoError(err)
	req.NotEqual(first, second)
}

func Test_ValidateRegister(t *testing.T) {
	valid := RegisterRequest{
		Email:       "alice@example.com",
		DisplayName: "Alice",
		Password:    "ComplexPass123!",
	}

	t.Run("should accept a well-formed request", func(t *testing.T) {
		require.NoError(t, ValidateRegister(valid))
	})

	t.Run("should reject a malformed email", func(t *testing.T) {
		request := valid
		request.Email = "not-an-email"
		require.Error(t, ValidateRegister(request))
	})

	t.Run("should reject an empty display name", func(t *testing.T) {
		request := valid
		request.DisplayName = ""
		require.Error(t, ValidateRegister(request))
	})

	t.Run("should reject a short password", func(t *testing.T) {
		request := valid
		request.Password = "Short1!"
		require.Error(t, ValidateRegister(request))
	})

	t.Run("should reject a long but simple password", func(t *testing.T) {
		request := valid
		request.Password = "alllowercasepassword"
		require.ErrorIs(t, ValidateRegister(request), errs.ErrInvalidPassword)
	})
}

func Test_Token_Round_Trip(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("alice-example-com", "Alice", time.Hour)
	req.NoError(err)

	claims, err := ValidateToken(token)
	req.NoError(err)
	req.Equal("alice-example-com", claims.UserID)
	req.Equal("Alice", claims.DisplayName)
	req.Equal("messenger-lab", claims.Issuer)
}

func Test_Expired_Token_Is_Rejected(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("alice-example-com", "Alice", -time.Minute)
	req.NoError(err)

	_, err = ValidateToken(token)
	req.Error(err)
}

func Test_TokenProvider(t *testing.T) {
	provider := NewTokenProvider()

	t.Run("should resolve the caller from a context token", func(t *testing.T) {
		req := require.New(t)
		token, err := GenerateToken("alice-example-com", "Alice", time.Hour)
		req.NoError(err)

		ctx := ContextWithToken(context.Background(), "Bearer "+token)
		userID, ok := provider.CurrentUserID(ctx)
		req.True(ok)
		req.Equal("alice-example-com", userID)
	})

	t.Run("should accept a bare token without the Bearer prefix", func(t *testing.T) {
		req := require.New(t)
		token, err := GenerateToken("alice-example-com", "Alice", time.Hour)
		req.NoError(err)

		ctx := ContextWithToken(context.Background(), token)
		_, ok := provider.CurrentUserID(ctx)
		req.True(ok)
	})

	t.Run("should report false for a bare context", func(t *testing.T) {
		_, ok := provider.CurrentUserID(context.Background())
		require.False(t, ok)
	})

	t.Run("should report false for a garbage token", func(t *testing.T) {
		ctx := ContextWithToken(context.Background(), "Bearer not.a.token")
		_, ok := provider.CurrentUserID(ctx)
		require.False(t, ok)
	})
}
