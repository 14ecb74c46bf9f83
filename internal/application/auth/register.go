package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/varis/taskboard/internal/domain"
)

func (s *Service) Register(ctx context.Context, name, email, password, roleFlag string) (RegisterResult, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return RegisterResult{}, domain.ErrMissingField("name")
	}
	if email == "" {
		return RegisterResult{}, domain.ErrMissingField("email")
	}
	if err := validPassword(password); err != nil {
		return RegisterResult{}, err
	}

	role, err := domain.ParseRole(roleFlag)
	if err != nil {
		return RegisterResult{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return RegisterResult{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	// Email uniqueness is enforced at the store boundary; the repo maps a
	// duplicate to ErrEmailAlreadyExists.
	created, err := s.users.Create(ctx, u)
	if err != nil {
		return RegisterResult{}, err
	}

	return RegisterResult{User: created}, nil
}
