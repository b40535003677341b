// Package ids provides the unique-id source injected into the handlers.
package ids

import "github.com/google/uuid"

// Source produces fresh unique identifiers. Two forms are used: a
// time-ordered id for todo creation (keeps scans roughly insertion
// ordered) and a random id for user registration.
type Source interface {
	NewTimeOrdered() string
	NewRandom() string
}

// UUIDSource is the production Source, backed by UUID v1 and v4.
type UUIDSource struct{}

func (UUIDSource) NewTimeOrdered() string {
	return uuid.Must(uuid.NewUUID()).String()
}

func (UUIDSource) NewRandom() string {
	return uuid.New().String()
}
