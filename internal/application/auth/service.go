package auth

import (
	"github.com/varis/taskboard/internal/domain"
)

// MinPasswordLen is the minimum accepted password length, inherited from the
// original user schema.
const MinPasswordLen = 6

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		signer: signer,
	}
}

// RegisterResult carries the stored user; the caller must sanitize before
// returning it over a transport.
type RegisterResult struct {
	User domain.User
}

// LoginResult carries the authenticated user plus the issued bearer token.
type LoginResult struct {
	User  domain.User
	Token string
}

func validPassword(pw string) error {
	if pw == "" {
		return domain.ErrMissingField("password")
	}
	if len(pw) < MinPasswordLen {
		return domain.ErrWeakPassword()
	}
	return nil
}
