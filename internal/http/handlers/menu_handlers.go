package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/scandine/domain"
	"github.com/you/scandine/internal/http/middleware"
)

// MenuHandlers handles menu management HTTP requests for cafe owners
type MenuHandlers struct {
	menuSvc domain.MenuService
}

// NewMenuHandlers creates new menu handlers
func NewMenuHandlers(menuSvc domain.MenuService) *MenuHandlers {
	return &MenuHandlers{menuSvc: menuSvc}
}

// AddMenuItemRequest represents a new menu item
type AddMenuItemRequest struct {
	DishName      string   `json:"dishName" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	HalfPrice     *float64 `json:"halfPrice"`
	FullPrice     *float64 `json:"fullPrice"`
	Description   string   `json:"description"`
	IsChefSpecial bool     `json:"isChefSpecial"`
}

// UpdateMenuItemRequest represents a partial menu item update
type UpdateMenuItemRequest struct {
	DishName      *string  `json:"dishName"`
	Category      *string  `json:"category"`
	HalfPrice     *float64 `json:"halfPrice"`
	FullPrice     *float64 `json:"fullPrice"`
	Description   *string  `json:"description"`
	IsChefSpecial *bool    `json:"isChefSpecial"`
}

// Add handles menu item creation
func (h *MenuHandlers) Add(c *gin.Context) {
	var req AddMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	if req.HalfPrice == nil && req.FullPrice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dish name, category, and at least one price (half or full) are required"})
		return
	}

	cafe, ok := middleware.CurrentCafe(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "User does not own a cafe"})
		return
	}

	item := &domain.MenuItem{
		DishName:      req.DishName,
		Category:      req.Category,
		HalfPrice:     req.HalfPrice,
		FullPrice:     req.FullPrice,
		Description:   req.Description,
		IsChefSpecial: req.IsChefSpecial,
	}

	created, err := h.menuSvc.AddItem(c.Request.Context(), cafe.ID, item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Menu item added successfully",
		"menu":    created,
	})
}

// List returns all of the cafe's own items, including unavailable ones
func (h *MenuHandlers) List(c *gin.Context) {
	cafe, ok := middleware.CurrentCafe(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "User does not own a cafe"})
		return
	}

	items, err := h.menuSvc.ItemsForCafe(c.Request.Context(), cafe.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"menuItems": items})
}

// Update handles a partial menu item update
func (h *MenuHandlers) Update(c *gin.Context) {
	itemID := c.Param("menuItemId")

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	cafe, ok := middleware.CurrentCafe(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "User does not own a cafe"})
		return
	}

	update := domain.MenuItemUpdate{
		DishName:      req.DishName,
		Category:      req.Category,
		HalfPrice:     req.HalfPrice,
		FullPrice:     req.FullPrice,
		Description:   req.Description,
		IsChefSpecial: req.IsChefSpecial,
	}

	item, err := h.menuSvc.UpdateItem(c.Request.Context(), cafe.ID, itemID, update)
	if err != nil {
		switch err {
		case domain.ErrNoFieldsToUpdate:
			c.JSON(http.StatusBadRequest, gin.H{"message": "At least one field is required to update"})
		case domain.ErrMenuItemNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu item updated successfully",
		"menu":    item,
	})
}

// Delete handles menu item deletion
func (h *MenuHandlers) Delete(c *gin.Context) {
	itemID := c.Param("menuItemId")

	cafe, ok := middleware.CurrentCafe(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "User does not own a cafe"})
		return
	}

	if err := h.menuSvc.DeleteItem(c.Request.Context(), cafe.ID, itemID); err != nil {
		if err == domain.ErrMenuItemNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}

// ToggleAvailability flips an item's availability flag
func (h *MenuHandlers) ToggleAvailability(c *gin.Context) {
	itemID := c.Param("menuItemId")

	cafe, ok := middleware.CurrentCafe(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "User does not own a cafe"})
		return
	}

	item, err := h.menuSvc.ToggleAvailability(c.Request.Context(), cafe.ID, itemID)
	if err != nil {
		if err == domain.ErrMenuItemNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Availability updated successfully",
		"menuItemId":  item.ID,
		"isAvailable": item.IsAvailable,
	})
}
