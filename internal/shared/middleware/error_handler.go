package middleware

import (
	"errors"
	"net/http"
	"strings"

	"bookcatalog-backend/internal/shared/apperror"
	"bookcatalog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

const pgUniqueViolation = "23505"

var quoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// ErrorHandler is the single choke point for every error the handlers
// collect via c.Error. It translates heterogeneous failure shapes into the
// one client-facing error payload; nothing else in the system writes error
// responses.
//
// Mapping priority:
//  1. apperror.Error          -> its own status/message (quotes stripped)
//  2. ozzo validation.Errors  -> 400 ValidationError with details
//  3. pg unique violation     -> 400 canonical duplicate-key message
//  4. malformed identifier    -> 400 canonical format message
//  5. anything else           -> 500 generic, internal detail logged only
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		body := normalize(err)

		if body.Status >= http.StatusInternalServerError {
			log.Error().
				Str("request_id", c.GetString("request_id")).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Err(err).
				Msg("Unhandled error")
		} else {
			log.Warn().
				Str("request_id", c.GetString("request_id")).
				Str("path", c.Request.URL.Path).
				Int("status", body.Status).
				Str("message", body.Message).
				Msg("Request failed")
		}

		c.JSON(body.Status, body)
	}
}

func normalize(err error) response.ErrorBody {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		body := response.ErrorBody{
			Success: false,
			Status:  appErr.Status,
			Message: quoteStripper.Replace(appErr.Message),
			Details: appErr.Details,
		}
		if appErr.Code == apperror.ValidationErrorCode {
			body.Type = "ValidationError"
		}
		return body
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		details := apperror.Flatten(verrs)
		message := "Validation Error"
		if len(details) > 0 {
			message = details[0]
		}
		return response.ErrorBody{
			Success: false,
			Status:  http.StatusBadRequest,
			Type:    "ValidationError",
			Message: quoteStripper.Replace(message),
			Details: details,
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return response.ErrorBody{
			Success: false,
			Status:  http.StatusBadRequest,
			Message: "Duplicate value for a unique field",
		}
	}

	if isMalformedIDError(err) {
		return response.ErrorBody{
			Success: false,
			Status:  http.StatusBadRequest,
			Message: "Invalid identifier format",
		}
	}

	return response.ErrorBody{
		Success: false,
		Status:  http.StatusInternalServerError,
		Message: "something went wrong",
	}
}

// uuid.Parse failures surface as plain errors with a stable prefix. The
// service normally maps these itself; this is the safety net for identifiers
// parsed elsewhere.
func isMalformedIDError(err error) bool {
	return strings.HasPrefix(err.Error(), "invalid UUID")
}
