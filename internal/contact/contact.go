// Package contact owns the in-memory contact list: the Contact value,
// the add-form Draft, the sample pools, and the observable Store.
package contact

import "github.com/google/uuid"

// Contact is a single person's display name, email, and phone number.
// It is immutable once built by New.
type Contact struct {
	ID       uuid.UUID `yaml:"id"`
	FullName string    `yaml:"full_name"`
	Email    string    `yaml:"email"`
	Phone    string    `yaml:"phone"`
}

// New builds a Contact with a fresh ID. FullName is first and last
// joined by a single space and is never re-derived.
func New(first, last, email, phone string) Contact {
	return Contact{
		ID:       uuid.New(),
		FullName: first + " " + last,
		Email:    email,
		Phone:    phone,
	}
}

// Draft holds the raw add-form fields before a Contact is built.
type Draft struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Complete reports whether every field is non-empty. No other
// validation is applied.
func (d Draft) Complete() bool {
	return d.FirstName != "" && d.LastName != "" && d.Email != "" && d.Phone != ""
}

// Contact builds the Contact for this draft.
func (d Draft) Contact() Contact {
	return New(d.FirstName, d.LastName, d.Email, d.Phone)
}
