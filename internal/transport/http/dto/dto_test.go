package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varis/taskboard/internal/domain"
)

func TestRegisterRequest_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		req  RegisterRequest
		code string
	}{
		{"ok", RegisterRequest{Name: "A", Email: "a@b.co", Password: "secret1", Role: "1"}, ""},
		{"missing name", RegisterRequest{Email: "a@b.co", Password: "secret1", Role: "1"}, "missing_field"},
		{"missing email", RegisterRequest{Name: "A", Password: "secret1", Role: "1"}, "missing_field"},
		{"bad email", RegisterRequest{Name: "A", Email: "not-an-email", Password: "secret1", Role: "1"}, "invalid_field"},
		{"short password", RegisterRequest{Name: "A", Email: "a@b.co", Password: "abc", Role: "1"}, "weak_password"},
		{"bad role", RegisterRequest{Name: "A", Email: "a@b.co", Password: "secret1", Role: "9"}, "invalid_role"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, domain.Is(err, tc.code), "expected %s, got %v", tc.code, err)
		})
	}
}

func TestRegisterRequest_Validate_NormalizesEmail(t *testing.T) {
	t.Parallel()

	req := RegisterRequest{Name: " A ", Email: "  User@Example.COM ", Password: "secret1", Role: "0"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "user@example.com", req.Email)
	assert.Equal(t, "A", req.Name)
}

func TestPasswordChangeRequest_Validate(t *testing.T) {
	t.Parallel()

	err := (&PasswordChangeRequest{NewPassword: "secret1"}).Validate()
	assert.True(t, domain.Is(err, "missing_field"), "got %v", err)

	err = (&PasswordChangeRequest{OldPassword: "x", NewPassword: "abc"}).Validate()
	assert.True(t, domain.Is(err, "weak_password"), "got %v", err)

	assert.NoError(t, (&PasswordChangeRequest{OldPassword: "x", NewPassword: "secret1"}).Validate())
}

func TestNewTaskListView_OwnerGating(t *testing.T) {
	t.Parallel()

	now := time.Now()
	in := []domain.TaskWithOwner{
		{
			Task:  domain.Task{ID: "t1", UserID: "u1", Title: "with owner", CreatedAt: now},
			Owner: domain.TaskOwner{ID: "u1", Name: "Alice", Email: "a@b.co"},
		},
		{
			Task: domain.Task{ID: "t2", UserID: "u1", Title: "without owner", CreatedAt: now},
		},
	}

	out := NewTaskListView(in)
	require.Len(t, out, 2)
	require.NotNil(t, out[0].CreatedBy)
	assert.Equal(t, "Alice", out[0].CreatedBy.Name)
	assert.Nil(t, out[1].CreatedBy, "zero owner must not produce a createdBy payload")
}

func TestNewUserView_NeverCarriesHash(t *testing.T) {
	t.Parallel()

	u := domain.User{ID: "u1", Name: "A", Email: "a@b.co", PasswordHash: "hash", Role: domain.RoleMember}
	v := NewUserView(u.Sanitized())
	assert.Equal(t, "u1", v.ID)
	assert.Equal(t, "1", v.Role)
}
