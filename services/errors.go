package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business-rule errors
	ErrValidationFailed     = errors.New("validation failed")
	ErrPasswordTooShort     = errors.New("password is too short")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPlayerIDRequired     = errors.New("player id is required")
	ErrPlayerNameRequired   = errors.New("player name is required")
	ErrMatchPlayersRequired = errors.New("both player ids are required")
	ErrMatchScoresInvalid   = errors.New("match scores must be numeric")
	ErrMatchSamePlayer      = errors.New("a player cannot play against themselves")
	ErrTeamIDsRequired      = errors.New("both team ids are required")
	ErrEventNameRequired    = errors.New("event name is required")
	ErrEventDateInvalid     = errors.New("event date is invalid")
	ErrEmblemContentType    = errors.New("unsupported emblem content type")

	// Conflict errors
	ErrUserEmailConflict = errors.New("email address is already in use")
	ErrPlayerConflict    = errors.New("player id already exists")
	ErrMatchDuplicate    = errors.New("match already recorded")

	// Authn/authz errors
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")

	// Entity-specific not-found errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrEventNotFound  = errors.New("event not found")
	ErrUserNotFound   = errors.New("user not found")
)
