package handler

import (
	"context"
	"errors"

	"github.com/aws/aws-lambda-go/events"

	"github.com/jacentio/arbor/store"
	"github.com/jacentio/arbor/user"
	"github.com/jacentio/arbor/validate"
)

// Register creates a user from a validated registration payload. The
// registration service owns duplicate-email detection and password
// hashing; this handler assembles its parameters and maps the outcome.
func (h *Handler) Register(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	p, err := validate.DecodeRegistration(req.Body)
	if err != nil {
		h.logger.Error("validation failed", "op", "register", "error", err)
		reason := err.Error()
		var verr *validate.Error
		if errors.As(err, &verr) {
			reason = verr.Reason
		}
		return textResponse(400, "Error message: "+reason), nil
	}

	rec, err := h.registrar.Register(ctx, user.RegistrationParams{
		ID:       h.ids.NewRandom(),
		Email:    p.Email,
		Password: p.Password,
		Name:     p.Name,
		Location: p.Location,
		Now:      h.now(),
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return textResponse(409, "Email is already registered."), nil
		}
		h.logger.Error("registration failed", "op", "register", "error", err)
		return textResponse(store.StatusOf(err, 500), "Couldn't register the user."), nil
	}

	return h.jsonResponse(201, rec), nil
}

// Get returns the record named by the path id.
func (h *Handler) Get(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	id := req.PathParameters["id"]
	if id == "" {
		return textResponse(400, "Missing record id."), nil
	}

	rec, err := h.finder.FindByID(ctx, id)
	if err != nil {
		h.logger.Error("lookup failed", "op", "get", "id", id, "error", err)
		return textResponse(store.StatusOf(err, 500), "Couldn't fetch the record."), nil
	}
	if rec == nil {
		return textResponse(404, "Record not found."), nil
	}

	return h.jsonResponse(200, rec), nil
}
