package mapper

import (
	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{ID: user.ID, Name: user.Name, Email: user.Email}
}

func ToLoginResponse(result domain.AuthResult) dto.LoginResponse {
	return dto.LoginResponse{
		ID:    result.ID,
		Name:  result.Name,
		Email: result.Email,
		Token: result.Token,
	}
}
