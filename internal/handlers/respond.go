package handlers

import (
	"errors"
	"net/http"

	dr "dealership_review"

	"github.com/gin-gonic/gin"
)

const (
	statusOK            = "ok"
	statusAuthenticated = "Authenticated"
	statusLoggedOut     = "Logged out"

	msgBadRequest    = "Bad Request"
	msgNotFound      = "Not Found"
	msgUnauthorized  = "Unauthorized"
	msgInvalidJSON   = "Invalid JSON"
	msgPostingReview = "Error posting review"

	errPostRequired       = "POST required"
	errInvalidJSON        = "Invalid JSON"
	errMissingCredentials = "Missing credentials"
	errMissingUserOrPass  = "Missing username or password"
	errAlreadyRegistered  = "Already Registered"
	errInvalidCredentials = "Invalid credentials"
	errInternal           = "internal server error"
)

// envelope writes {"status": code, "message": msg} with the same HTTP status.
func envelope(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"status": code, "message": msg})
}

// logAndAbort logs err under logKey and ends the request with a bare 500.
func (h *Handler) logAndAbort(c *gin.Context, logKey string, err error, kv ...interface{}) {
	fields := append([]interface{}{"err", err, "path", c.Request.URL.Path}, kv...)
	h.log.Errorw(logKey, fields...)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": errInternal})
}

// respondUpstreamError maps a gateway error on a read path. Bad input and
// missing records get envelopes; everything else is an internal error.
func (h *Handler) respondUpstreamError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, dr.ErrInvalidInput):
		envelope(c, http.StatusBadRequest, msgBadRequest)
	case errors.Is(err, dr.ErrNotFound):
		envelope(c, http.StatusNotFound, msgNotFound)
	default:
		h.logAndAbort(c, logKey, err, kv...)
	}
}
