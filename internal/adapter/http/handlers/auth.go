package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/adapter/http/mapper"
	"taskflow/internal/core/ports"
	"taskflow/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if _, ok := decodeBody(c, &req); !ok {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, apierrors.MsgFailLogin)
		return
	}

	c.JSON(http.StatusOK, mapper.ToLoginResponse(result))
}
