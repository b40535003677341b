// Package handler contains the Lambda entry points, one per operation.
// Each invocation is a single pass: decode the payload, validate it,
// perform the store call, map the result to a response. The first
// failure terminates the pass; every path ends in a structured response
// and the returned error is always nil so the dispatcher never retries.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/jacentio/arbor/internal/ids"
	"github.com/jacentio/arbor/record"
	"github.com/jacentio/arbor/store"
	"github.com/jacentio/arbor/user"
)

// Store is the record persistence surface used directly by the todo
// operations.
type Store interface {
	Put(ctx context.Context, rec record.Record) error
	ScanAll(ctx context.Context) ([]record.Record, error)
	Update(ctx context.Context, id string, fields store.TodoFields, now time.Time) (*record.Record, error)
	Delete(ctx context.Context, id string) error
}

// Registrar owns user registration.
type Registrar interface {
	Register(ctx context.Context, p user.RegistrationParams) (record.Record, error)
}

// Finder serves the read-heavy lookups.
type Finder interface {
	FindByID(ctx context.Context, id string) (*record.Record, error)
	FindAll(ctx context.Context) ([]record.Record, error)
}

// Config wires a Handler's collaborators.
type Config struct {
	Store     Store
	IDs       ids.Source
	Registrar Registrar
	Finder    Finder

	// Logger defaults to slog.Default.
	Logger *slog.Logger

	// Now defaults to time.Now. Tests inject a fixed clock.
	Now func() time.Time
}

// Handler implements the per-operation Lambda handlers.
type Handler struct {
	store     Store
	ids       ids.Source
	registrar Registrar
	finder    Finder
	logger    *slog.Logger
	now       func() time.Time
}

// New creates a Handler.
func New(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Handler{
		store:     cfg.Store,
		ids:       cfg.IDs,
		registrar: cfg.Registrar,
		finder:    cfg.Finder,
		logger:    cfg.Logger,
		now:       cfg.Now,
	}
}

func textResponse(status int, msg string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "text/plain"},
		Body:       msg,
	}
}

func (h *Handler) jsonResponse(status int, v any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("response serialization failed", "error", err)
		return textResponse(500, "Internal server error.")
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
