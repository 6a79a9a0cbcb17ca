package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// @Summary      List dealerships
// @Description  Without a state (or with "All") every dealership is returned.
// @Tags         dealers
// @Produce      json
// @Param        state  path      string  false  "US state"  example(Kansas)
// @Success      200    {object}  map[string]interface{}  "status, dealers"
// @Failure      500    {object}  map[string]string
// @Router       /dealerships/{state} [get]
func (h *Handler) getDealerships(c *gin.Context) {
	state := c.Param("state")
	dealers, err := h.services.FetchDealers(c.Request.Context(), state)
	if err != nil {
		h.respondUpstreamError(c, "dealers_fetch_failed", err, "state", state)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "dealers": dealers})
}

// @Summary      Dealer details
// @Tags         dealers
// @Produce      json
// @Param        dealerId  path      string  true  "Dealer id"
// @Success      200       {object}  map[string]interface{}  "status, dealer"
// @Failure      400       {object}  map[string]interface{}
// @Failure      404       {object}  map[string]interface{}
// @Failure      500       {object}  map[string]string
// @Router       /dealer/{dealerId} [get]
func (h *Handler) getDealerDetails(c *gin.Context) {
	id := strings.TrimSpace(c.Param("dealerId"))
	if id == "" {
		envelope(c, http.StatusBadRequest, msgBadRequest)
		return
	}
	dealer, err := h.services.FetchDealer(c.Request.Context(), id)
	if err != nil {
		h.respondUpstreamError(c, "dealer_fetch_failed", err, "dealer_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "dealer": dealer})
}

// @Summary      Dealer reviews with sentiment
// @Description  Each review gains a "sentiment" field. A sentiment failure fails the whole list.
// @Tags         reviews
// @Produce      json
// @Param        dealerId  path      string  true  "Dealer id"
// @Success      200       {object}  map[string]interface{}  "status, reviews"
// @Failure      400       {object}  map[string]interface{}
// @Failure      500       {object}  map[string]string
// @Router       /reviews/dealer/{dealerId} [get]
func (h *Handler) getDealerReviews(c *gin.Context) {
	id := strings.TrimSpace(c.Param("dealerId"))
	if id == "" {
		envelope(c, http.StatusBadRequest, msgBadRequest)
		return
	}
	reviews, err := h.services.FetchReviews(c.Request.Context(), id)
	if err != nil {
		h.respondUpstreamError(c, "reviews_fetch_failed", err, "dealer_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "reviews": reviews})
}
