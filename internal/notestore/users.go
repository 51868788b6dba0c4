package notestore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/dmitrijs2005/notekeeper/internal/storage/kv"
)

// ListUsers returns every registered user; none is an empty slice.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.view(ctx, func(ctx context.Context, r kv.Repository) error {
		var err error
		users, err = s.loadUsers(ctx, r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers replaces the stored user collection. Each record must be
// complete; keeping emails unique is the caller's job.
func (s *Store) SaveUsers(ctx context.Context, users []models.User) error {
	for i, u := range users {
		var fe *models.FieldError
		if err := u.Validate(); errors.As(err, &fe) {
			return invalid(fmt.Sprintf("users[%d].%s", i, fe.Field), fe.Message)
		}
	}

	return s.mutate(ctx, func(ctx context.Context, r kv.Repository) error {
		return s.writeUsers(ctx, r, users)
	})
}

// RegisterUser creates an account and logs it in. The user list and the
// session marker are written together.
func (s *Store) RegisterUser(ctx context.Context, name, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	switch {
	case blank(name):
		return models.User{}, required("name")
	case email == "":
		return models.User{}, required("email")
	case blank(password):
		return models.User{}, required("password")
	}

	user := models.User{Name: name, Email: email, Password: password}
	err := s.mutate(ctx, func(ctx context.Context, r kv.Repository) error {
		users, err := s.loadUsers(ctx, r)
		if err != nil {
			return err
		}
		if findUser(users, email) >= 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
		}

		user.ID = s.newUserID()
		if err := s.writeUsers(ctx, r, append(users, user)); err != nil {
			return err
		}
		return s.setSession(ctx, r, user.Email)
	})
	if err != nil {
		return models.User{}, err
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login checks credentials and marks the matching user as logged in. The
// email is compared ignoring case, the password exactly.
func (s *Store) Login(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.User{}, required("email")
	}
	if blank(password) {
		return models.User{}, required("password")
	}

	var user models.User
	err := s.mutate(ctx, func(ctx context.Context, r kv.Repository) error {
		users, err := s.loadUsers(ctx, r)
		if err != nil {
			return err
		}
		i := slices.IndexFunc(users, func(u models.User) bool {
			return u.HasEmail(email) && u.Password == password
		})
		if i < 0 {
			return ErrInvalidCredentials
		}
		user = users[i]
		return s.setSession(ctx, r, user.Email)
	})
	if err != nil {
		return models.User{}, err
	}

	s.log.Info(ctx, "user logged in", "user_id", user.ID)
	return user, nil
}

// Logout clears the session marker. Calling it when nobody is logged in is fine.
func (s *Store) Logout(ctx context.Context) error {
	err := s.mutate(ctx, func(ctx context.Context, r kv.Repository) error {
		if err := r.Delete(ctx, s.keys.Session); err != nil {
			return storageError("clear session", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info(ctx, "logged out")
	return nil
}

// LoggedInUser returns the user named by the session marker. ok is false when
// there is no session, or when the marker names a user that no longer exists.
func (s *Store) LoggedInUser(ctx context.Context) (user models.User, ok bool, err error) {
	err = s.view(ctx, func(ctx context.Context, r kv.Repository) error {
		marker, err := r.Get(ctx, s.keys.Session)
		if err != nil {
			return storageError("read session", err)
		}
		email := strings.TrimSpace(string(marker))
		if email == "" {
			return nil
		}

		users, err := s.loadUsers(ctx, r)
		if err != nil {
			return err
		}
		i := findUser(users, email)
		if i < 0 {
			s.log.Warn(ctx, "session refers to unknown user")
			return nil
		}
		user, ok = users[i], true
		return nil
	})
	if err != nil {
		return models.User{}, false, err
	}
	return user, ok, nil
}

// DeleteUser removes an account and ends its session if it is the logged-in
// one. The user's notes stay under their owner key.
func (s *Store) DeleteUser(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return required("email")
	}

	err := s.mutate(ctx, func(ctx context.Context, r kv.Repository) error {
		users, err := s.loadUsers(ctx, r)
		if err != nil {
			return err
		}
		i := findUser(users, email)
		if i < 0 {
			return fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		if err := s.writeUsers(ctx, r, slices.Delete(users, i, i+1)); err != nil {
			return err
		}

		marker, err := r.Get(ctx, s.keys.Session)
		if err != nil {
			return storageError("read session", err)
		}
		if strings.EqualFold(strings.TrimSpace(string(marker)), email) {
			if err := r.Delete(ctx, s.keys.Session); err != nil {
				return storageError("clear session", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "user deleted; notes kept")
	return nil
}

func (s *Store) setSession(ctx context.Context, r kv.Repository, email string) error {
	if err := r.Set(ctx, s.keys.Session, []byte(email)); err != nil {
		return storageError("write session", err)
	}
	return nil
}
