package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/core/domain"
	"taskflow/pkg/apierrors"
)

type errorMapping struct {
	err    error
	status int
	msgKey string
}

var domainErrors = []errorMapping{
	{domain.ErrMissingFields, http.StatusBadRequest, apierrors.MsgMissingFields},
	{domain.ErrInvalidEmail, http.StatusBadRequest, apierrors.MsgInvalidEmail},
	{domain.ErrPasswordMismatch, http.StatusBadRequest, apierrors.MsgPasswordMismatch},
	{domain.ErrWeakPassword, http.StatusBadRequest, apierrors.MsgWeakPassword},
	{domain.ErrEmailTaken, http.StatusBadRequest, apierrors.MsgEmailTaken},
	{domain.ErrInvalidCredentials, http.StatusBadRequest, apierrors.MsgInvalidCredentials},
	{domain.ErrWrongPassword, http.StatusUnauthorized, apierrors.MsgWrongPassword},
	{domain.ErrUnauthorized, http.StatusUnauthorized, apierrors.MsgUnauthorized},
	{domain.ErrEmptyTitle, http.StatusBadRequest, apierrors.MsgEmptyTitle},
	{domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrInvalidStatus, http.StatusBadRequest, apierrors.MsgInvalidStatus},
}

// respondError writes the translated body for a domain error. Any other
// error is logged and answered with 500 and failKey.
func respondError(c *gin.Context, err error, failKey string) {
	lang := middleware.GetLang(c)
	for _, m := range domainErrors {
		if errors.Is(err, m.err) {
			c.JSON(m.status, apierrors.CreateError(m.status, m.msgKey, lang))
			return
		}
	}

	_ = c.Error(err)
	zap.L().Error("request failed",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
	)
}

func respondBadRequest(c *gin.Context, msgKey string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)),
	)
}

// parseTaskID reads the :id path parameter, answering 400 when it is not a
// positive integer.
func parseTaskID(c *gin.Context) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		respondBadRequest(c, apierrors.MsgInvalidTaskID)
		return 0, false
	}
	return taskID, true
}
