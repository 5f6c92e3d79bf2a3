package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/scandine/domain"
	"github.com/you/scandine/internal/http/middleware"
)

// CafeHandlers handles cafe profile HTTP requests
type CafeHandlers struct {
	cafeSvc domain.CafeService
}

// NewCafeHandlers creates new cafe handlers
func NewCafeHandlers(cafeSvc domain.CafeService) *CafeHandlers {
	return &CafeHandlers{cafeSvc: cafeSvc}
}

// CreateCafeRequest represents cafe creation request
type CreateCafeRequest struct {
	CafeName    string `json:"cafename" binding:"required,min=2"`
	Address     string `json:"address" binding:"required"`
	PhoneNo     string `json:"phoneNo" binding:"required,min=10"`
	Description string `json:"description"`
}

// Create handles cafe profile creation
func (h *CafeHandlers) Create(c *gin.Context) {
	var req CreateCafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
		return
	}

	cafe, err := h.cafeSvc.CreateCafe(c.Request.Context(), user, req.CafeName, req.Address, req.PhoneNo, req.Description)
	if err != nil {
		if err == domain.ErrCafeAlreadyExists {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already owns a cafe"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Cafe information added successfully",
		"cafe":    cafeView(cafe),
	})
}

// Show returns the caller's cafe profile; the cafe is null when none exists.
func (h *CafeHandlers) Show(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
		return
	}

	cafe, err := h.cafeSvc.MyCafe(c.Request.Context(), user.ID)
	if err != nil {
		if err == domain.ErrCafeNotFound {
			c.JSON(http.StatusOK, gin.H{"message": "Cafe info fetched", "cafe": nil})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cafe info fetched", "cafe": cafeView(cafe)})
}

// QRCode returns the cafe's QR code, generating and storing it on first use
func (h *CafeHandlers) QRCode(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
		return
	}

	cafe, err := h.cafeSvc.EnsureQRCode(c.Request.Context(), user.ID)
	if err != nil {
		if err == domain.ErrCafeNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cafe not found for user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate QR"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "QR code ready",
		"qrCode":  cafe.QRCode,
		"cafeId":  cafe.ID,
	})
}

// cafeView shapes a cafe for JSON responses.
func cafeView(cafe *domain.Cafe) gin.H {
	return gin.H{
		"id":          cafe.ID,
		"cafename":    cafe.Name,
		"address":     cafe.Address,
		"phoneNo":     cafe.PhoneNo,
		"description": cafe.Description,
		"createdAt":   cafe.CreatedAt,
	}
}
