package auth

import (
	"context"

	"github.com/varis/taskboard/internal/domain"
)

// PasswordChange changes the password for an authenticated user. The old
// password must verify before the new one is accepted.
func (s *Service) PasswordChange(ctx context.Context, userID, oldPassword, newPassword string) error {
	if userID == "" {
		return domain.ErrTokenMissing()
	}
	if oldPassword == "" {
		return domain.ErrMissingField("oldPassword")
	}
	if err := validPassword(newPassword); err != nil {
		return err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(u.PasswordHash, oldPassword); err != nil {
		return domain.ErrOldPasswordMismatch()
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return domain.ErrHashFailed(err)
	}

	return s.users.UpdatePasswordHash(ctx, userID, newHash)
}
