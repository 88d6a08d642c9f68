package http

import "github.com/AlibekovAA/users-api/internal/common/dto"

// createUserRequest keeps raw JSON values so the service can tell a missing
// or non-string field apart from a short one.
type createUserRequest struct {
	ID       any `json:"id"`
	Name     any `json:"name"`
	Email    any `json:"email"`
	Password any `json:"password"`
}

type createUserResponse struct {
	Message string   `json:"message"`
	User    dto.User `json:"user"`
}
