package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/adapter/http/mapper"
	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
	"taskflow/pkg/apierrors"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if _, ok := decodeBody(c, &req); !ok {
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		respondError(c, err, apierrors.MsgFailRegisterUser)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}
