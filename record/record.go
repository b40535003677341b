// Package record defines the persisted unit of data: a todo item or a
// registered user, both keyed by id and stored in the same table.
package record

import "time"

// Record is a single item in the records table. Todo items use Text and
// Checked; users use Email, Password, Name and Location. The zero fields
// of the other variant are omitted from both storage and responses.
//
// Password is never serialized into responses.
type Record struct {
	ID        string    `json:"id" dynamodbav:"id"`
	Text      string    `json:"text,omitempty" dynamodbav:"text,omitempty"`
	Checked   *bool     `json:"checked,omitempty" dynamodbav:"checked,omitempty"`
	Email     string    `json:"email,omitempty" dynamodbav:"email,omitempty"`
	Password  string    `json:"-" dynamodbav:"password,omitempty"`
	Name      string    `json:"name,omitempty" dynamodbav:"name,omitempty"`
	Location  string    `json:"location,omitempty" dynamodbav:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}

// NewTodo builds an unchecked todo item. CreatedAt and UpdatedAt start
// equal; only an update may advance UpdatedAt.
func NewTodo(id, text string, now time.Time) Record {
	checked := false
	return Record{
		ID:        id,
		Text:      text,
		Checked:   &checked,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewUser builds a user record. The password is expected to be hashed
// already; this package never sees the plaintext.
func NewUser(id, email, passwordHash, name, location string, now time.Time) Record {
	return Record{
		ID:        id,
		Email:     email,
		Password:  passwordHash,
		Name:      name,
		Location:  location,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsChecked reports the completion flag, treating an absent flag as false.
func (r Record) IsChecked() bool {
	return r.Checked != nil && *r.Checked
}
