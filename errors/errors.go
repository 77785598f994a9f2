package errors

import "fmt"

var (
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrConversationNotFound = fmt.Errorf("conversation not found")
	ErrUserAlreadyExists    = fmt.Errorf("user already exists")
	ErrStoreWriteFailed     = fmt.Errorf("store write failed")
	ErrStoreReadFailed      = fmt.Errorf("store read failed")

	ErrInvalidEmail       = fmt.Errorf("invalid email address")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrUploadFailed       = fmt.Errorf("upload failed")
	ErrUnsupportedMedia   = fmt.Errorf("unsupported media type")
)
