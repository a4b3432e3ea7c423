package models

import "errors"

// Domain errors. Handlers map these to HTTP status codes with errors.Is.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("wrong credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("you are not the author")
	ErrPostNotFound       = errors.New("post not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUploadFailed       = errors.New("cover upload failed")
)
