package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrValidation         = errors.New("validation failed")
	ErrMissingSecret      = errors.New("signing secret not configured")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	ErrGameNotFound   = errors.New("game not found")
	ErrAlreadyJoined  = errors.New("already joined this game")
	ErrGameFull       = errors.New("game is full")
	ErrNotParticipant = errors.New("not a participant of this game")

	ErrPostNotFound = errors.New("post not found")
)
