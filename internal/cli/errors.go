package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/dmitrijs2005/notekeeper/internal/notestore"
)

var (
	errNotLoggedIn = errors.New("not logged in")
	errCancelled   = errors.New("cancelled")
)

// describeError turns an error into the short message shown to the user.
func describeError(err error) string {
	var (
		ve *notestore.ValidationError
		fe *models.FieldError
	)
	switch {
	case errors.As(err, &ve):
		return fmt.Sprintf("Invalid input: %s %s.", ve.Field, ve.Message)
	case errors.As(err, &fe):
		return fmt.Sprintf("Invalid input: %s %s.", fe.Field, fe.Message)
	case errors.Is(err, notestore.ErrDuplicateEmail):
		return "An account with this email already exists."
	case errors.Is(err, notestore.ErrInvalidCredentials):
		return "Incorrect email or password."
	case errors.Is(err, notestore.ErrNotFound):
		return "Not found."
	case errors.Is(err, notestore.ErrCorruptData):
		return "Stored data is damaged and was left untouched."
	case errors.Is(err, notestore.ErrStorage):
		return "Could not access storage, please try again."
	case errors.Is(err, errNotLoggedIn):
		return "Please log in first (type 'login' or 'register')."
	case errors.Is(err, errCancelled):
		return "Cancelled."
	default:
		return "Error: " + err.Error()
	}
}

// handleError prints the user-facing message; failures the user cannot fix
// are logged as well.
func (a *App) handleError(ctx context.Context, err error) {
	if errors.Is(err, notestore.ErrStorage) || errors.Is(err, notestore.ErrCorruptData) {
		a.log.Error(ctx, "command failed", "error", err)
	}
	printlnFn(describeError(err))
}
