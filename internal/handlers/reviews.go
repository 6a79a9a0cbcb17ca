package handlers

import (
	"net/http"

	"dealership_review/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Submit a review
// @Description  Requires a session. Malformed or incomplete payloads are rejected as invalid JSON.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      models.ReviewSubmission  true  "Review"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      403   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]interface{}
// @Router       /review [post]
func (h *Handler) addReview(c *gin.Context) {
	session := sessionFrom(c)
	if session == nil {
		envelope(c, http.StatusForbidden, msgUnauthorized)
		return
	}

	var input models.ReviewSubmission
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Infow("review_bad_request_body", "username", session.Username, "err", err)
		envelope(c, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if err := h.services.PostReview(c.Request.Context(), session, input); err != nil {
		h.log.Errorw("review_post_failed", "username", session.Username, "dealership", input.Dealership, "err", err)
		envelope(c, http.StatusInternalServerError, msgPostingReview)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK})
}
