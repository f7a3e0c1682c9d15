package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agent360/internal/core/apperror"
	"agent360/internal/infrastructure/http/v1/dto"
	"agent360/pkg/logger"
)

// ErrorHandler middleware transforms errors into the uniform response
// envelope. Hides internal errors from clients while logging full details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			// Log internal cause if present
			if appErr.Err != nil {
				logger.Error(c.Request.Context(), "request error",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			}

			c.JSON(appErr.HTTPStatus, dto.NewErrorResponse(appErr))
			return
		}

		// Unknown error, log and return generic message
		logger.Error(c.Request.Context(), "unhandled error",
			"error", err,
		)

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Success:   false,
			Message:   "Internal server error",
			ErrorCode: apperror.CodeInternal,
		})
	}
}
