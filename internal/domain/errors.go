package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for catalog operations
var (
	// ErrTransport indicates the catalog could not be reached (connectivity, timeout, cancellation)
	ErrTransport = errors.New("catalog is unreachable")

	// ErrMalformed indicates a response body that could not be decoded
	ErrMalformed = errors.New("malformed catalog response")

	// ErrDerivation indicates a reference URL without a usable identifier segment
	ErrDerivation = errors.New("cannot derive identifier from reference url")
)

// BadStatusError reports a non-2xx HTTP response from the catalog
type BadStatusError struct {
	Code int
}

func (e *BadStatusError) Error() string {
	return fmt.Sprintf("catalog returned status %d", e.Code)
}

// IsNotFound reports whether err is a 404 from the catalog
func IsNotFound(err error) bool {
	var bs *BadStatusError
	return errors.As(err, &bs) && bs.Code == http.StatusNotFound
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	var bs *BadStatusError
	if errors.As(err, &bs) {
		return bs.Code
	}
	return 0
}

// Kind returns the taxonomy label of err for logs and the status bar
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrDerivation):
		return "derivation"
	case StatusCode(err) != 0:
		return "bad_status"
	default:
		return "unknown"
	}
}
