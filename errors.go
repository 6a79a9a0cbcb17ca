package dealership_review

import "errors"

// Error taxonomy shared by every layer. Lower layers wrap these with
// fmt.Errorf("...: %w", err); handlers classify with errors.Is.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthenticated     = errors.New("invalid credentials")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrConflict            = errors.New("already registered")
	ErrNotFound            = errors.New("not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
