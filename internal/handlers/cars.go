package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Car catalog
// @Description  Seeds the catalog on first use.
// @Tags         cars
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "CarModels"
// @Failure      500  {object}  map[string]string
// @Router       /cars [get]
func (h *Handler) getCars(c *gin.Context) {
	cars, err := h.services.ListCars(c.Request.Context())
	if err != nil {
		h.logAndAbort(c, "cars_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"CarModels": cars})
}
