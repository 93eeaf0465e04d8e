package domain

import "errors"

var (
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidRequest indicates invalid request
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnauthorized indicates unauthorized access
	ErrUnauthorized = errors.New("unauthorized")
	// ErrEmptyMessage indicates a blank chat submission
	ErrEmptyMessage = errors.New("message is empty")
	// ErrConversationBusy indicates a submission while a reply is pending
	ErrConversationBusy = errors.New("a reply is already pending")
)
