package auth

import (
	"context"
	"time"

	"github.com/varis/taskboard/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the auth layer needs, not HOW it's stored.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies the stateless bearer credential (JWT).
Used by the service and the auth middleware.
*/
type TokenClaims struct {
	UserID string
	Exp    time.Time // zero when the token carries no expiry
}

type TokenSigner interface {
	SignAccessToken(userID string) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}
