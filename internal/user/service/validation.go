package service

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/AlibekovAA/users-api/internal/common/constants"
	commonerrors "github.com/AlibekovAA/users-api/internal/common/errors"
	"github.com/AlibekovAA/users-api/internal/user/domain"
)

// CreateUserInput holds the decoded JSON values as received, so type
// mismatches can be reported per field in a fixed order.
type CreateUserInput struct {
	ID       any
	Name     any
	Email    any
	Password any
}

type CreateUserValidator struct {
	validate *validator.Validate
}

const passwordTag = "password_policy"

func NewCreateUserValidator() *CreateUserValidator {
	v := validator.New()
	if err := v.RegisterValidation(passwordTag, func(fl validator.FieldLevel) bool {
		return isValidPassword(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", passwordTag, err))
	}
	return &CreateUserValidator{validate: v}
}

// Validate checks the fields in order and returns the first failure.
func (cv *CreateUserValidator) Validate(in CreateUserInput) (domain.User, error) {
	id, ok := in.ID.(string)
	if !ok {
		return domain.User{}, ErrIDNotString
	}
	if cv.validate.Var(id, fmt.Sprintf("min=%d", constants.UserIDMinLength)) != nil {
		return domain.User{}, ErrIDTooShort
	}

	name, ok := in.Name.(string)
	if !ok {
		return domain.User{}, ErrNameNotString
	}
	if cv.validate.Var(name, fmt.Sprintf("min=%d", constants.UserNameMinLength)) != nil {
		return domain.User{}, ErrNameTooShort
	}

	email, ok := in.Email.(string)
	if !ok {
		return domain.User{}, ErrEmailNotString
	}

	password, ok := in.Password.(string)
	if !ok {
		return domain.User{}, ErrPasswordPolicy
	}
	if err := cv.validate.Var(password, passwordTag); err != nil {
		return domain.User{}, asPolicyError(err)
	}

	return domain.User{
		ID:       domain.ID(id),
		Name:     name,
		Email:    email,
		Password: password,
	}, nil
}

func asPolicyError(err error) commonerrors.DomainError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return ErrPasswordPolicy
	}
	return commonerrors.NewInternalError("PASSWORD_RULE_FAILED", commonerrors.FallbackMessage, err)
}

// isValidPassword requires 8-12 characters on a single line with at least one
// lowercase ASCII letter, one uppercase ASCII letter, one ASCII digit and one
// character outside [0-9A-Za-z].
func isValidPassword(value string) bool {
	n := utf8.RuneCountInString(value)
	if n < constants.PasswordMinLength || n > constants.PasswordMaxLength {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range value {
		switch {
		case r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029':
			return false
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	return hasLower && hasUpper && hasDigit && hasSpecial
}
