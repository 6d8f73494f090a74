package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Session errors
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrGuestAccount     = fmt.Errorf("the guest account cannot be modified")
	ErrSessionStore     = fmt.Errorf("session store failure")

	// API and service errors
	ErrAPIRequest   = fmt.Errorf("API request failed")
	ErrMovieMissing = fmt.Errorf("movie not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
