package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/varis/taskboard/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("role_flag", func(fl validator.FieldLevel) bool {
		return domain.Role(fl.Field().String()).Valid()
	})
}

// translate maps the first validator failure onto the domain taxonomy so
// transports never see raw validator errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return domain.ErrInternal(err)
	}

	fe := errs[0]
	field := jsonFieldName(fe)
	switch fe.Tag() {
	case "required":
		return domain.ErrMissingField(field)
	case "min":
		if field == "password" || field == "newPassword" {
			return domain.ErrWeakPassword()
		}
		return domain.ErrInvalidField(field, "minimum length "+fe.Param())
	case "email":
		return domain.ErrInvalidField(field, "invalid format")
	case "role_flag":
		return domain.ErrInvalidRole(fe.Value().(string))
	default:
		return domain.ErrInvalidField(field, fe.Tag())
	}
}

func jsonFieldName(fe validator.FieldError) string {
	// struct field names line up with the json tags apart from casing
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,role_flag"`
}

func (r *RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	return translate(validate.Struct(r))
}

// LoginRequest carries credentials as-is; the service folds every failure
// into invalid_credentials, so there is nothing useful to pre-validate.
// Key is the login key, the account email.
type LoginRequest struct {
	Key      string `json:"key"`
	Password string `json:"password"`
}

type PasswordChangeRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

func (r *PasswordChangeRequest) Validate() error {
	return translate(validate.Struct(r))
}
