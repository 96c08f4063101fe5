package middleware

import (
	"net/http"

	"bookcatalog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery turns panics into the canonical 500 payload. The panic value is
// logged; the client only ever sees the generic message.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("Panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorBody{
					Success: false,
					Status:  http.StatusInternalServerError,
					Message: "something went wrong",
				})
			}
		}()

		c.Next()
	}
}
