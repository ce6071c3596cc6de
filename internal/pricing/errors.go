package pricing

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindUnreachable ErrorKind = "unreachable"
	KindStatus      ErrorKind = "status"
	KindDecode      ErrorKind = "decode"
)

var ErrNoPairs = errors.New("no pairs found")

// APIError is returned by TokenPriceClient. Err is kept for logs and never shown to users.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("price api returned status %d", e.StatusCode)
	case KindDecode:
		return fmt.Sprintf("price api response could not be decoded: %v", e.Err)
	default:
		return fmt.Sprintf("price api cannot be reached: %v", e.Err)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// IsKind reports whether err is an APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Kind == kind
}
