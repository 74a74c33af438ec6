package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound      = errors.New("resource not found")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotConfigured = errors.New("service not configured")

	// Post errors
	ErrPostNotFound = errors.New("post not found")

	// Comment errors
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidParent   = errors.New("parent comment does not belong to this post")

	// Newsletter errors
	ErrAlreadySubscribed = errors.New("already subscribed")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
)
