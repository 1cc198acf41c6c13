package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/infocomm/inventory-backend/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin creates an administrator with the given credentials unless a
// user with that email already exists. It reports whether a user was created.
func EnsureAdmin(ctx context.Context, users repo.UserRepository, email, password string) (bool, error) {
	_, err := users.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repo.ErrUserNotFound) {
		return false, fmt.Errorf("looking up %s: %w", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = users.CreateUser(ctx, models.User{Email: email, PasswordHash: string(hash), RoleID: models.RoleAdmin})
	if err != nil && !errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return false, fmt.Errorf("creating admin %s: %w", email, err)
	}
	return err == nil, nil
}
