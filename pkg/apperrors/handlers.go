package apperrors

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError is the single HTTP error boundary. Unknown errors become a
// generic 500; a missing-table error from a fresh database is the one internal
// failure translated into an actionable message.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		if isUndefinedTableError(err) {
			appErr = New(CodeDatabaseError, "system",
				"Database not initialized. Please run the migration step.",
				http.StatusInternalServerError)
		} else {
			appErr = InternalError(err)
			appErr.Message = "Internal server error"
			appErr.Details = nil
		}
	}

	if appErr.HTTPCode >= 500 {
		log.Printf("Server error: %v", err)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// isUndefinedTableError matches the postgres "relation does not exist" class
// of failures (SQLSTATE 42P01) and the sqlite equivalent.
func isUndefinedTableError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "42P01") ||
		(strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist")) ||
		strings.Contains(msg, "no such table")
}
