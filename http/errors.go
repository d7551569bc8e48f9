package http

import "fmt"

// APIError describes a non-success HTTP response from a delivery target.
type APIError struct {
	Service    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s returned %d", e.Service, e.StatusCode)
}
