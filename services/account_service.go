//go:generate go run go.uber.org/mock/mockgen -source=account_service.go -destination=../mocks/mock_account_service.go -package=mocks
package services

import (
	"errors"
	"fmt"
	"time"

	"messenger-lab/auth"
	"messenger-lab/domain/identity"
	errs "messenger-lab/errors"
	"messenger-lab/repositories"
)

type IAccountService interface {
	Register(email, displayName, password string) (Token, error)
	Login(email, password string) (Token, error)
}

type Token string

type AccountService struct {
	directory     repositories.IUserDirectory
	tokenDuration time.Duration
}

func NewAccountService(directory repositories.IUserDirectory, tokenDuration time.Duration) IAccountService {
	return &AccountService{directory: directory, tokenDuration: tokenDuration}
}

func (s *AccountService) Register(email, displayName, password string) (Token, error) {
	valReq := auth.RegisterRequest{
		Email:       email,
		DisplayName: displayName,
		Password:    password,
	}

	// Business rules first (email format, password complexity),
	// before any expensive cryptographic operation.
	if err := auth.ValidateRegister(valReq); err != nil {
		if errors.Is(err, errs.ErrInvalidPassword) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", errs.ErrInvalidEmail, err)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	userID := identity.Normalize(email)
	err = s.directory.Insert(repositories.User{
		ID:           userID,
		Name:         displayName,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return "", err // Propagates ErrUserAlreadyExists when the key is taken.
	}

	token, err := auth.GenerateToken(userID, displayName, s.tokenDuration)
	if err != nil {
		return "", errs.ErrTokenGeneration
	}
	return Token(token), nil
}

func (s *AccountService) Login(email, password string) (Token, error) {
	user, err := s.directory.Get(identity.Normalize(email))
	if err != nil {
		// Generic error to prevent user enumeration attacks.
		return "", errs.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", errs.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Name, s.tokenDuration)
	if err != nil {
		return "", errs.ErrTokenGeneration
	}
	return Token(token), nil
}
