// Package validate checks decoded request payloads before anything
// touches the store. Decoding is schema-first: payloads land in typed
// structs with pointer fields, so a missing field and a wrong JSON type
// are both rejected before any field access.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Error is a validation failure with a human-readable reason. Handlers
// translate it to a 400 response.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "validate: " + e.Reason
}

func invalid(format string, args ...any) error {
	return &Error{Reason: fmt.Sprintf(format, args...)}
}

// TodoCreate is the create request body.
type TodoCreate struct {
	Text *string `json:"text"`
}

// TodoUpdate is the update request body.
type TodoUpdate struct {
	Text    *string `json:"text"`
	Checked *bool   `json:"checked"`
}

// Registration is the register request body.
type Registration struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
}

// DecodeTodoCreate decodes and validates a create body. The text field
// must be present and a JSON string.
func DecodeTodoCreate(body string) (*TodoCreate, error) {
	var p TodoCreate
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return nil, invalid("body is not valid JSON")
	}
	if p.Text == nil {
		return nil, invalid("text must be a string")
	}
	return &p, nil
}

// DecodeTodoUpdate decodes and validates an update body. Both text and
// checked must be present with their JSON types.
func DecodeTodoUpdate(body string) (*TodoUpdate, error) {
	var p TodoUpdate
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return nil, invalid("body is not valid JSON")
	}
	if p.Text == nil {
		return nil, invalid("text must be a string")
	}
	if p.Checked == nil {
		return nil, invalid("checked must be a boolean")
	}
	return &p, nil
}

// DecodeRegistration decodes and validates a registration body against
// the field rules: required well-formed email, password of at least 8
// characters, required name. Location is optional.
func DecodeRegistration(body string) (*Registration, error) {
	var p Registration
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return nil, invalid("body is not valid JSON")
	}
	if err := v.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return nil, invalid("%s", describe(fieldErrs))
		}
		return nil, invalid("invalid registration payload")
	}
	return &p, nil
}

// describe renders field errors as one readable reason.
func describe(errs validator.ValidationErrors) string {
	reasons := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			reasons = append(reasons, field+" is required")
		case "email":
			reasons = append(reasons, field+" must be a valid email address")
		case "min":
			reasons = append(reasons, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		default:
			reasons = append(reasons, field+" is invalid")
		}
	}
	return strings.Join(reasons, "; ")
}
