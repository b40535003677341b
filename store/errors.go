package store

import (
	"errors"
	"fmt"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
)

// Default statuses when the underlying failure carries none. The write
// path defaults to 500 and everything else to 501; kept as-is for
// compatibility.
const (
	defaultPutStatus  = 500
	defaultReadStatus = 501
)

// Error is a normalized store failure.
type Error struct {
	// Op names the failing operation ("put", "scan", ...).
	Op string

	// Status is the HTTP status of the underlying AWS response when
	// present, else the operation's default.
	Status int

	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrap normalizes an SDK error, passing the response status through
// unchanged when one is available.
func wrap(op string, err error, fallback int) error {
	status := fallback
	var re *awshttp.ResponseError
	if errors.As(err, &re) {
		if code := re.HTTPStatusCode(); code != 0 {
			status = code
		}
	}
	return &Error{Op: op, Status: status, Err: err}
}

// StatusOf extracts the status from a store error, or returns fallback
// for any other error.
func StatusOf(err error, fallback int) int {
	var se *Error
	if errors.As(err, &se) {
		return se.Status
	}
	return fallback
}
