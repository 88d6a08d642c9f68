package mapper

import (
	"github.com/AlibekovAA/users-api/internal/common/dto"
	userdomain "github.com/AlibekovAA/users-api/internal/user/domain"
)

func UserToDTO(user userdomain.User) dto.User {
	return dto.User{
		ID:       string(user.ID),
		Name:     user.Name,
		Email:    user.Email,
		Password: user.Password,
	}
}

// UsersToDTO never returns nil so an empty result encodes as [].
func UsersToDTO(users []userdomain.User) []dto.User {
	result := make([]dto.User, len(users))
	for i, u := range users {
		result[i] = UserToDTO(u)
	}
	return result
}
