package services

// categoryImages maps menu categories to stock illustration URLs shown on the
// public menu when an item has no photo of its own.
var categoryImages = map[string]string{
	"Starters":    "/uploads/categories/starters.jpg",
	"Main Course": "/uploads/categories/main-course.jpg",
	"Breads":      "/uploads/categories/breads.jpg",
	"Rice":        "/uploads/categories/rice.jpg",
	"Desserts":    "/uploads/categories/desserts.jpg",
	"Beverages":   "/uploads/categories/beverages.jpg",
	"Snacks":      "/uploads/categories/snacks.jpg",
}

// CategoryImage returns the stock image for a category, or a placeholder when
// the category has none.
func CategoryImage(category string) string {
	if img, ok := categoryImages[category]; ok {
		return img
	}
	return "No Image Available"
}
