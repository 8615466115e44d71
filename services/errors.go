package services

import "errors"

// Errors shared by the services and mapped to HTTP statuses by the handlers.
var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrPlayerNameRequired = errors.New("player name is required")
	ErrSelfMatch          = errors.New("a player cannot play against themselves")

	ErrPlayerNotFound     = errors.New("player not found")
	ErrPlayersHaveMatches = errors.New("players still have recorded matches; delete matches first")

	ErrInvalidCredentials = errors.New("invalid organizer password")
	ErrLoginDisabled      = errors.New("organizer login is not configured")

	ErrArchiveDisabled = errors.New("round archive is not configured")
)
