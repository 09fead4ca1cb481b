package responses

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"jan-server/services/vision-chat-api/internal/utils/platformerrors"
)

// HandleError writes err as an HTTP error response.
// Platform errors keep their type; anything else is an internal error.
func HandleError(c *gin.Context, err error, message string) {
	logger := log.With().Str("path", c.Request.URL.Path).Str("operation", message).Logger()
	platformerrors.WriteError(c, err, logger)
}

// HandleNewError creates and writes a new typed error response.
// Use this for route-level errors like validation failures.
func HandleNewError(c *gin.Context, errorType platformerrors.ErrorType, message string) {
	err := platformerrors.NewError(c.Request.Context(), platformerrors.LayerRoute, errorType, message, nil)
	platformerrors.WriteError(c, err, log.With().Str("path", c.Request.URL.Path).Logger())
}
