package domain

import "errors"

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
	ErrNoFile         = errors.New("no file uploaded")
	ErrFileTooLarge   = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed   = errors.New("file upload to storage failed")
	ErrMissingCID     = errors.New("object store returned no content identifier")
	ErrRegisterFailed = errors.New("user registration failed")
	ErrLookupFailed   = errors.New("upload record lookup failed")
	ErrImageNotFound  = errors.New("image not found")
)
