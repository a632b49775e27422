package directory

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"testing"
)

// timeoutError mimics a net.Error whose deadline expired
type timeoutError struct{}

func (e *timeoutError) Error() string   { return "i/o timeout" }
func (e *timeoutError) Timeout() bool   { return true }
func (e *timeoutError) Temporary() bool { return true }

func TestFetchError_Error(t *testing.T) {
	withCause := newRequestError("http://x", "GET request failed", errors.New("connection refused"))
	if got := withCause.Error(); !strings.Contains(got, "request") || !strings.Contains(got, "connection refused") {
		t.Errorf("Error() = %q, should mention op and cause", got)
	}

	status := newStatusError("http://x", 503)
	if got := status.Error(); got != "fetch status: unexpected status code: 503" {
		t.Errorf("Error() = %q", got)
	}
}

func TestFetchError_Unwrap(t *testing.T) {
	cause := ErrMissingData
	err := newDecodeError("http://x", 200, "unexpected response shape", cause)

	if !errors.Is(err, ErrMissingData) {
		t.Error("errors.Is should find the decode cause")
	}
}

func TestFetchError_Timeout(t *testing.T) {
	urlErr := &url.Error{
		Op:  "Get",
		URL: "http://x",
		Err: &net.OpError{Op: "dial", Net: "tcp", Err: &timeoutError{}},
	}

	if !newRequestError("http://x", "GET request failed", urlErr).Timeout() {
		t.Error("Timeout() should be true for a timed-out url.Error")
	}
	if newStatusError("http://x", 500).Timeout() {
		t.Error("Timeout() should be false for a status error")
	}
	if newRequestError("http://x", "GET request failed", errors.New("refused")).Timeout() {
		t.Error("Timeout() should be false for a plain error")
	}
}

func TestIsFetchError(t *testing.T) {
	fe := newStatusError("http://x", 404)

	if !IsFetchError(fe) {
		t.Error("IsFetchError should be true for *FetchError")
	}
	if !IsFetchError(fmt.Errorf("list: %w", fe)) {
		t.Error("IsFetchError should see through wrapping")
	}
	if IsFetchError(errors.New("other")) {
		t.Error("IsFetchError should be false for unrelated errors")
	}
	if IsFetchError(nil) {
		t.Error("IsFetchError(nil) should be false")
	}
}
