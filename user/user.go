// Package user implements the registration and read-side collaborators
// for user records.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jacentio/arbor/record"
)

// ErrEmailTaken is returned when registering an email that already
// belongs to a stored user.
var ErrEmailTaken = errors.New("user: email already registered")

// Store is the persistence surface the collaborators need.
type Store interface {
	Put(ctx context.Context, rec record.Record) error
	GetByID(ctx context.Context, id string) (*record.Record, error)
	ScanAll(ctx context.Context) ([]record.Record, error)
}

// RegistrationParams carries the assembled registration input: a fresh
// id, the validated payload fields and the creation timestamp.
type RegistrationParams struct {
	ID       string
	Email    string
	Password string
	Name     string
	Location string
	Now      time.Time
}

// RegistrationService owns user registration: duplicate-email detection,
// password hashing and persistence.
type RegistrationService struct {
	store  Store
	logger *slog.Logger
}

// NewRegistrationService creates a registration service.
func NewRegistrationService(store Store, logger *slog.Logger) *RegistrationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegistrationService{
		store:  store,
		logger: logger,
	}
}

// Register stores a new user. The plaintext password is bcrypt-hashed
// before it reaches the store; registering an email that is already
// taken (compared case-insensitively) returns ErrEmailTaken.
func (s *RegistrationService) Register(ctx context.Context, p RegistrationParams) (record.Record, error) {
	// No email index on the table, so the duplicate check rides on the
	// same single-page scan the list operation uses.
	existing, err := s.store.ScanAll(ctx)
	if err != nil {
		return record.Record{}, err
	}
	for _, rec := range existing {
		if rec.Email != "" && strings.EqualFold(rec.Email, p.Email) {
			return record.Record{}, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return record.Record{}, fmt.Errorf("hash password: %w", err)
	}

	rec := record.NewUser(p.ID, p.Email, string(hash), p.Name, p.Location, p.Now)
	if err := s.store.Put(ctx, rec); err != nil {
		return record.Record{}, err
	}

	s.logger.Info("user registered", "id", rec.ID)
	return rec, nil
}

// Repository serves the read-heavy queries over records.
type Repository struct {
	store Store
}

// NewRepository creates a repository over the given store.
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// FindByID returns the record with the given id, or (nil, nil) when no
// such record exists.
func (r *Repository) FindByID(ctx context.Context, id string) (*record.Record, error) {
	return r.store.GetByID(ctx, id)
}

// FindAll returns every record in the table.
func (r *Repository) FindAll(ctx context.Context) ([]record.Record, error) {
	return r.store.ScanAll(ctx)
}
