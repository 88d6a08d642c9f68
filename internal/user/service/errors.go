package service

import (
	commonerrors "github.com/AlibekovAA/users-api/internal/common/errors"
)

var (
	ErrIDNotString = commonerrors.NewValidationError(
		"ID_NOT_STRING",
		"id",
		"id deve ser string",
	)

	ErrIDTooShort = commonerrors.NewValidationError(
		"ID_TOO_SHORT",
		"id",
		"id deve possuir pelo menos 4 caracteres",
	)

	ErrNameNotString = commonerrors.NewValidationError(
		"NAME_NOT_STRING",
		"name",
		"name deve ser string",
	)

	ErrNameTooShort = commonerrors.NewValidationError(
		"NAME_TOO_SHORT",
		"name",
		"name deve possuir pelo menos 2 caracteres",
	)

	ErrEmailNotString = commonerrors.NewValidationError(
		"EMAIL_NOT_STRING",
		"email",
		"email deve ser string",
	)

	ErrPasswordPolicy = commonerrors.NewValidationError(
		"PASSWORD_POLICY",
		"password",
		"'password' deve possuir entre 8 e 12 caracteres, com letras maiúsculas e minúsculas e no mínimo um número e um caractere especial",
	)

	ErrIDAlreadyExists = commonerrors.NewValidationError(
		"ID_ALREADY_EXISTS",
		"id",
		"id já existe",
	)

	ErrEmailAlreadyExists = commonerrors.NewValidationError(
		"EMAIL_ALREADY_EXISTS",
		"email",
		"email já existe",
	)

	ErrUserNotFound = commonerrors.NewNotFoundError(
		"USER_NOT_FOUND",
		"id não encontrado",
	)
)
