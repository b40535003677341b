package store

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

func responseErr(status int) error {
	return &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{
				Response: &http.Response{StatusCode: status},
			},
			Err: errors.New("service error"),
		},
	}
}

func TestWrap_PassesStatusThrough(t *testing.T) {
	err := wrap("put", responseErr(409), defaultPutStatus)

	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if se.Status != 409 {
		t.Errorf("expected status 409 passed through, got %d", se.Status)
	}
	if se.Op != "put" {
		t.Errorf("expected op 'put', got %q", se.Op)
	}
}

func TestWrap_WrappedResponseError(t *testing.T) {
	// The SDK wraps response errors in operation errors; wrap must
	// still find the status.
	err := wrap("scan", fmt.Errorf("operation Scan: %w", responseErr(503)), defaultReadStatus)

	if got := StatusOf(err, 0); got != 503 {
		t.Errorf("expected status 503, got %d", got)
	}
}

func TestWrap_Fallbacks(t *testing.T) {
	tests := []struct {
		name     string
		fallback int
	}{
		{"write path", defaultPutStatus},
		{"read path", defaultReadStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrap("op", errors.New("no status here"), tt.fallback)
			if got := StatusOf(err, 0); got != tt.fallback {
				t.Errorf("expected fallback %d, got %d", tt.fallback, got)
			}
		})
	}
}

func TestStatusOf_NonStoreError(t *testing.T) {
	if got := StatusOf(errors.New("plain"), 418); got != 418 {
		t.Errorf("expected fallback 418, got %d", got)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := &Error{Op: "get", Status: 501, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
	if err.Error() == "" {
		t.Error("expected non-empty message")
	}
}
