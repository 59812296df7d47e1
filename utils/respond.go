package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/logger"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
)

// RespondError logs err and writes the matching error envelope. Upstream
// details stay in the logs; unclassified errors carry their text in "error".
func RespondError(c *gin.Context, log *logger.Logger, op string, err error) {
	status := apperr.Status(err)
	msg := apperr.Message(err)

	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindNotFound, apperr.KindConflict:
		log.Warn(op+" rejected", "status", status, "error", err)
		c.JSON(status, models.ErrorResponse(c, msg))
	case apperr.KindUpstream:
		log.Error(op+" upstream failure", "error", err)
		c.JSON(status, models.ErrorResponse(c, msg))
	default:
		log.Error(op+" failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ServerErrorResponse(c, msg, err))
	}
}

// ParseIDParam reads a uuid path parameter. A malformed id cannot match any
// record, so it is reported as notFound.
func ParseIDParam(c *gin.Context, name, notFound string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperr.NotFound(notFound)
	}
	return id, nil
}

const userIDKey = "userID"

// CurrentUserID returns the authenticated user id set by AuthMiddleware.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func CurrentUserEmail(c *gin.Context) string {
	return c.GetString("userEmail")
}
