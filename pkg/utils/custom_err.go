package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrCityNotFound       = errors.New("city not found")
	ErrLocationNotFound   = errors.New("location not found")
	ErrTripNotFound       = errors.New("trip plan not found")
	ErrForbidden          = errors.New("forbidden")

	// Quota exhaustion is an expected outcome, not a crash: the UI answers
	// it with an upgrade call-to-action rather than an error screen.
	ErrQuotaExceeded = errors.New("feature quota exceeded")

	// AI failure taxonomy. Key misconfiguration is a deployment problem,
	// upstream errors carry the provider's own message appended by the
	// service layer, unavailability is the generic retry-later case.
	ErrAIKeyNotConfigured  = errors.New("ai api key is not configured on the server")
	ErrAIUpstream          = errors.New("ai upstream error")
	ErrAIUnavailable       = errors.New("ai assistant unavailable, please try again later")
	ErrMalformedAIResponse = errors.New("malformed ai response")

	ErrWeatherUnavailable = errors.New("weather service unavailable")
)
