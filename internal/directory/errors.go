package directory

import (
	"errors"
	"fmt"
	"os"
)

// FetchOp names the stage of a fetch that failed. It is diagnostic only:
// callers treat every FetchError the same way.
type FetchOp string

const (
	// OpRequest covers building the request and the network round trip
	OpRequest FetchOp = "request"
	// OpStatus covers a non-2xx HTTP status
	OpStatus FetchOp = "status"
	// OpDecode covers a body that does not match the directory envelope
	OpDecode FetchOp = "decode"
)

// FetchError is the single error kind returned by Client.FetchAll.
//
// Network failures, non-success statuses and malformed bodies all collapse to
// this type. Op, StatusCode and Err are kept for logs and verbose output.
type FetchError struct {
	Op         FetchOp // Stage that failed
	Endpoint   string  // URL that was requested
	Message    string  // Human-readable description
	StatusCode int     // HTTP status code (0 when no response was received)
	Err        error   // Underlying error (if any)
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s (caused by: %v)", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the fetch failed because a deadline expired.
func (e *FetchError) Timeout() bool {
	return e.Err != nil && os.IsTimeout(e.Err)
}

func newRequestError(endpoint, message string, err error) *FetchError {
	return &FetchError{
		Op:       OpRequest,
		Endpoint: endpoint,
		Message:  message,
		Err:      err,
	}
}

func newStatusError(endpoint string, statusCode int) *FetchError {
	return &FetchError{
		Op:         OpStatus,
		Endpoint:   endpoint,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
	}
}

func newDecodeError(endpoint string, statusCode int, message string, err error) *FetchError {
	return &FetchError{
		Op:         OpDecode,
		Endpoint:   endpoint,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
	}
}

// IsFetchError reports whether err is, or wraps, a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// UserMessage is the text shown to users for any fetch failure.
const UserMessage = "Error on fetching data... Check your network connection!"
