package auth

import (
	"strings"

	"github.com/tillyhacks/registration-backend/internal/domain"
)

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	Name            string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < 6 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	}

	if i.Password != "" && i.ConfirmPassword != i.Password {
		errs = append(errs, domain.FieldError{Field: "confirm_password", Message: "passwords do not match"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginPasswordInput holds parameters for password login.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Validate validates the password login input.
func (i LoginPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for OAuth login.
type LoginInput struct {
	Provider string
	Code     string
}

// Validate validates the OAuth login input. Only GitHub is wired today.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Provider == "" {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "required"})
	} else if i.Provider != "github" {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "unsupported provider"})
	}

	if i.Code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	} else if len(i.Code) > 4096 {
		errs = append(errs, domain.FieldError{Field: "code", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
