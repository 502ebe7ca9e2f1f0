package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskflow-api/internal/apperr"
	"taskflow-api/internal/response"
)

// HandleError maps service layer errors to HTTP responses. Typed errors
// carry their own status and code; a raw record-not-found becomes a 404;
// anything else is a 500 without a code.
func HandleError(c *gin.Context, logger *zap.Logger, err error) {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("path", c.Request.URL.Path),
				zap.String("code", appErr.Code),
				zap.Error(err))
		} else {
			logger.Warn("request rejected",
				zap.String("path", c.Request.URL.Path),
				zap.String("code", appErr.Code),
				zap.String("error", appErr.Message))
		}
		response.SendAppError(c, appErr)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Warn("request rejected",
			zap.String("path", c.Request.URL.Path),
			zap.String("code", apperr.CodeNotFound))
		response.SendError(c, http.StatusNotFound, apperr.CodeNotFound, "Resource not found", nil)
		return
	}

	logger.Error("unhandled error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	response.SendError(c, http.StatusInternalServerError, "", err.Error(), nil)
}
