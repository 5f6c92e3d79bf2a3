package cache

// Key namespaces: one per resource shape, so invalidating a cafe's menu never
// touches the aggregate listing and vice versa.

// CafeListKey is the cache key for the public cafe listing.
func CafeListKey() string {
	return "public:cafes"
}

// MenuKey is the cache key for one cafe's public menu.
func MenuKey(cafeID string) string {
	return "public:menu:" + cafeID
}
