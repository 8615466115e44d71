package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Login checks the organizer password. Only organizers may change the
	// roster or report results.
	Login(ctx context.Context, password string) error
}

type authService struct {
	passwordHash []byte
}

// NewAuthService takes the bcrypt hash of the organizer password. An empty
// hash disables login.
func NewAuthService(passwordHash string) AuthService {
	return &authService{passwordHash: []byte(passwordHash)}
}

func (s *authService) Login(ctx context.Context, password string) error {
	if len(s.passwordHash) == 0 {
		return ErrLoginDisabled
	}
	err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to compare password hash: %w", err)
	}
	return nil
}

const BcryptCost = 12

// HashPassword produces the value expected in ORGANIZER_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", fmt.Errorf("%w: password must be at least 8 characters", ErrValidationFailed)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
