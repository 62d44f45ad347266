package domain

import "errors"

// Sentinel errors shared by the store, services and adapters.
var (
	ErrDuplicateID       = errors.New("duplicate id")
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoSession         = errors.New("no active event session")
	ErrRemoteSync        = errors.New("remote sync failed")
	ErrAssistant         = errors.New("assistant request failed")
	ErrMissingCredential = errors.New("missing credential")
	ErrUnauthorized      = errors.New("unauthorized")
)
