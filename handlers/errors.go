package handlers

import (
	"errors"
	"net/http"

	"carelink/services/booking"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps the service error taxonomy onto HTTP responses.
// Authorization failures are deliberately generic and not-found answers do
// not reveal whether the entity exists.
func respondServiceError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": verr.Fields})
		return
	}

	var aerr *booking.AuthorizationError
	if errors.As(err, &aerr) {
		utils.GetLogger().Warn("authorization denied", zap.String("reason", aerr.Message))
		c.JSON(http.StatusForbidden, gin.H{"message": "not authorized"})
		return
	}

	var cerr *booking.ConflictError
	if errors.As(err, &cerr) {
		c.JSON(http.StatusConflict, gin.H{
			"message": cerr.Message,
			"code":    cerr.Code,
			"details": "please refresh availability and try again",
		})
		return
	}

	var nerr *booking.NotFoundError
	if errors.As(err, &nerr) {
		c.JSON(http.StatusNotFound, gin.H{"message": nerr.Error()})
		return
	}

	var derr *booking.DependencyError
	if errors.As(err, &derr) {
		utils.GetLogger().Error("dependency failure", zap.Error(derr))
		c.JSON(http.StatusBadGateway, gin.H{"message": "a downstream service is unavailable"})
		return
	}

	utils.GetLogger().Error("unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}
