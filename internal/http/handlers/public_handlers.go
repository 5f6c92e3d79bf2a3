package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/scandine/domain"
)

// PublicHandlers handles the unauthenticated customer-facing endpoints
type PublicHandlers struct {
	publicSvc domain.PublicService
}

// NewPublicHandlers creates new public handlers
func NewPublicHandlers(publicSvc domain.PublicService) *PublicHandlers {
	return &PublicHandlers{publicSvc: publicSvc}
}

// Cafes returns the cached public cafe listing
func (h *PublicHandlers) Cafes(c *gin.Context) {
	listing, err := h.publicSvc.ListCafes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// Menu returns the cached public menu for one cafe
func (h *PublicHandlers) Menu(c *gin.Context) {
	cafeID := c.Param("cafeId")

	menu, err := h.publicSvc.Menu(c.Request.Context(), cafeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, menu)
}
