package handlers

import (
	"errors"
	"net/http"
	"time"

	dr "dealership_review"
	"dealership_review/internal/models"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type registerRequest struct {
	UserName  string `json:"userName"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// authResponse is the body of a successful login or registration.
type authResponse struct {
	UserName string `json:"userName" example:"bob"`
	Status   string `json:"status" example:"Authenticated"`
}

// bindJSONOrBadRequest decodes the body into dst and writes
// 400 {"error":"Invalid JSON"} on failure. Returns false if the request was
// already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow("auth_bad_request_body", "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidJSON})
		return false
	}
	return true
}

func (h *Handler) setSessionCookie(c *gin.Context, session *models.Session, token string) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.opts.CookieName, token, maxAge, "/", "", h.opts.CookieSecure, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.opts.CookieName, "", -1, "/", "", h.opts.CookieSecure, true)
}

// endPrevious drops a session the client already holds before a new one is
// issued to it.
func (h *Handler) endPrevious(c *gin.Context) {
	prev := sessionFrom(c)
	if prev == nil {
		return
	}
	if err := h.services.Logout(c.Request.Context(), prev); err != nil {
		h.log.Errorw("auth_end_previous_session_failed", "session_id", prev.ID, "err", err)
	}
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	session, token, err := h.services.Login(c.Request.Context(), input.UserName, input.Password)
	switch {
	case err == nil:
	case errors.Is(err, dr.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingCredentials})
		return
	case errors.Is(err, dr.ErrUnauthenticated):
		h.log.Infow("auth_login_failed", "username", input.UserName, "err", err)
		c.JSON(http.StatusUnauthorized, gin.H{"status": errInvalidCredentials})
		return
	default:
		h.logAndAbort(c, "auth_login_error", err, "username", input.UserName)
		return
	}

	h.endPrevious(c)
	h.setSessionCookie(c, session, token)
	c.JSON(http.StatusOK, authResponse{UserName: session.Username, Status: statusAuthenticated})
}

// @Summary      Log out
// @Description  Always succeeds, with or without an active session.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /logout [post]
func (h *Handler) logout(c *gin.Context) {
	if session := sessionFrom(c); session != nil {
		if err := h.services.Logout(c.Request.Context(), session); err != nil {
			h.log.Errorw("auth_logout_failed", "session_id", session.ID, "err", err)
		}
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"status": statusLoggedOut})
}

// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	session, token, err := h.services.Register(c.Request.Context(), models.Registration{
		Username:  input.UserName,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	})
	switch {
	case err == nil:
	case errors.Is(err, dr.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingUserOrPass})
		return
	case errors.Is(err, dr.ErrConflict):
		h.log.Infow("auth_register_conflict", "username", input.UserName)
		c.JSON(http.StatusConflict, gin.H{"error": errAlreadyRegistered})
		return
	default:
		h.logAndAbort(c, "auth_register_error", err, "username", input.UserName)
		return
	}

	h.endPrevious(c)
	h.setSessionCookie(c, session, token)
	c.JSON(http.StatusOK, authResponse{UserName: session.Username, Status: statusAuthenticated})
}
