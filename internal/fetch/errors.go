package fetch

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnexpectedStatus is the cause when the endpoint answers with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMissingResults is the cause when the body has no results field
	ErrMissingResults = errors.New("response has no results field")
)

// FetchFailure is the single error kind of the fetcher. The cause is kept
// for diagnostics and never shown to the user.
type FetchFailure struct {
	Endpoint string
	Cause    error
}

func (f *FetchFailure) Error() string {
	return fmt.Sprintf("fetch %s: %v", f.Endpoint, f.Cause)
}

func (f *FetchFailure) Unwrap() error {
	return f.Cause
}

// IsFetchFailure reports whether err is or wraps a *FetchFailure
func IsFetchFailure(err error) bool {
	var f *FetchFailure
	return errors.As(err, &f)
}
