//go:generate go run go.uber.org/mock/mockgen -source=provider.go -destination=../mocks/mock_auth_provider.go -package=mocks
package auth

import (
	"context"
	"strings"
)

type contextKey string

const tokenKey contextKey = "bearer_token"

// Provider supplies the caller's identity for sync operations. The
// sync core never authenticates by itself; it only asks who is calling.
type Provider interface {
	CurrentUserID(ctx context.Context) (string, bool)
}

// TokenProvider resolves the caller from a bearer token carried in the
// context, the same "Bearer <token>" convention transport layers use.
type TokenProvider struct{}

func NewTokenProvider() TokenProvider {
	return TokenProvider{}
}

// ContextWithToken attaches a caller's bearer token to the context.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// CurrentUserID validates the context's token and returns the caller's
// canonical key. Reports false for absent, invalid or expired tokens.
func (TokenProvider) CurrentUserID(ctx context.Context) (string, bool) {
	raw, ok := ctx.Value(tokenKey).(string)
	if !ok || raw == "" {
		return "", false
	}
	claims, err := ValidateToken(strings.TrimPrefix(raw, "Bearer "))
	if err != nil {
		return "", false
	}
	return claims.UserID, true
}
