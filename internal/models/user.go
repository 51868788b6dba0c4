package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// User is a registered account.
//
// Password is kept and compared in plaintext. That matches the behaviour
// this store has always had and is not safe for production use.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that every field is present.
func (u User) Validate() error {
	switch {
	case strings.TrimSpace(u.ID) == "":
		return required("id")
	case strings.TrimSpace(u.Name) == "":
		return required("name")
	case strings.TrimSpace(u.Email) == "":
		return required("email")
	case strings.TrimSpace(u.Password) == "":
		return required("password")
	}
	return nil
}

// HasEmail reports whether the user's email equals email, ignoring case.
func (u User) HasEmail(email string) bool {
	return strings.EqualFold(u.Email, strings.TrimSpace(email))
}

// DecodeUsers parses a stored user collection. Empty input is an empty
// collection.
func DecodeUsers(data []byte) ([]User, error) {
	if len(data) == 0 {
		return []User{}, nil
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: users: %w", ErrMalformed, err)
	}
	if users == nil {
		return []User{}, nil
	}
	for i, u := range users {
		if err := u.Validate(); err != nil {
			return nil, fmt.Errorf("%w: users[%d]: %w", ErrMalformed, i, err)
		}
	}
	return users, nil
}

// EncodeUsers serializes a user collection; nil encodes as an empty array.
func EncodeUsers(users []User) ([]byte, error) {
	if users == nil {
		users = []User{}
	}
	return json.Marshal(users)
}
