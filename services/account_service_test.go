package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"messenger-lab/auth"
	errs "messenger-lab/errors"
	"messenger-lab/mocks"
	"messenger-lab/repositories"
	"messenger-lab/services"
)

func TestAccountService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDirectory := mocks.NewMockIUserDirectory(ctrl)
	svc := services.NewAccountService(mockDirectory, 24*time.Hour)

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)
		email := "test@example.com"
		password := "ComplexPass123!" // Must satisfy the complexity rules

		// The inserted record carries the normalized key and a hashed
		// password, never the plain one.
		mockDirectory.EXPECT().
			Insert(gomock.Cond(func(user repositories.User) bool {
				return user.ID == "test-example-com" &&
					user.Email == email &&
					user.PasswordHash != password &&
					user.PasswordHash != ""
			})).
			Return(nil).
			Times(1)

		token, err := svc.Register(email, "Tester", password)

		req.NoError(err)
		req.NotEmpty(token)

		claims, err := auth.ValidateToken(string(token))
		req.NoError(err)
		req.Equal("test-example-com", claims.UserID)
		req.Equal("Tester", claims.DisplayName)
	})

	t.Run("should fail when email is malformed", func(t *testing.T) {
		req := require.New(t)

		// Directory should NEVER be called
		mockDirectory.EXPECT().Insert(gomock.Any()).Times(0)

		token, err := svc.Register("not-an-email", "Tester", "ComplexPass123!")

		req.ErrorIs(err, errs.ErrInvalidEmail)
		req.Empty(token)
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)

		mockDirectory.EXPECT().Insert(gomock.Any()).Times(0)

		token, err := svc.Register("test@example.com", "Tester", "simplesimplesimple")

		req.ErrorIs(err, errs.ErrInvalidPassword)
		req.Empty(token)
	})

	t.Run("should fail when user already exists in directory", func(t *testing.T) {
		req := require.New(t)

		mockDirectory.EXPECT().
			Insert(gomock.Any()).
			Return(errs.ErrUserAlreadyExists).
			Times(1)

		_, err := svc.Register("duplicate@example.com", "Tester", "ComplexPass123!")

		req.ErrorIs(err, errs.ErrUserAlreadyExists)
	})
}

func TestAccountService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDirectory := mocks.NewMockIUserDirectory(ctrl)
	svc := services.NewAccountService(mockDirectory, 24*time.Hour)

	t.Run("should login successfully with correct credentials", func(t *testing.T) {
		req := require.New(t)
		email := "user@example.com"
		password := "Secret123456!"

		hashedPassword, _ := auth.HashPassword(password)
		storedUser := repositories.User{
			ID:           "user-example-com",
			Name:         "User",
			Email:        email,
			PasswordHash: hashedPassword,
		}

		mockDirectory.EXPECT().
			Get("user-example-com").
			Return(storedUser, nil).
			Times(1)

		token, err := svc.Login(email, password)

		req.NoError(err)
		req.NotEmpty(token)

		claims, err := auth.ValidateToken(string(token))
		req.NoError(err)
		req.Equal(storedUser.ID, claims.UserID)
	})

	t.Run("should return invalid credentials when password is wrong", func(t *testing.T) {
		req := require.New(t)
		email := "user@example.com"

		hashedPassword, _ := auth.HashPassword("CorrectPassword123!")
		storedUser := repositories.User{
			ID:           "user-example-com",
			Email:        email,
			PasswordHash: hashedPassword,
		}

		mockDirectory.EXPECT().
			Get("user-example-com").
			Return(storedUser, nil).
			Times(1)

		_, err := svc.Login(email, "WrongPassword123!")

		req.ErrorIs(err, errs.ErrInvalidCredentials)
	})

	t.Run("should return invalid credentials when user is not found", func(t *testing.T) {
		req := require.New(t)

		mockDirectory.EXPECT().
			Get("unknown-example-com").
			Return(repositories.User{}, errs.ErrUserNotFound).
			Times(1)

		_, err := svc.Login("unknown@example.com", "anyPassword")

		// Never leaks whether the account exists.
		req.ErrorIs(err, errs.ErrInvalidCredentials)
	})
}
