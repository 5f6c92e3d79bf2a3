package httpx

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/you/scandine/internal/http/handlers"
	"github.com/you/scandine/internal/http/middleware"
)

// RouterConfig carries the router-level settings.
type RouterConfig struct {
	AllowedOrigins []string
}

// BuildRouter wires the three route tiers: public, identity-gated, and
// ownership-gated.
func BuildRouter(
	cfg RouterConfig,
	uh *handlers.UserHandlers,
	ch *handlers.CafeHandlers,
	mh *handlers.MenuHandlers,
	ph *handlers.PublicHandlers,
	authMW *middleware.AuthMW,
	cafeMW *middleware.CafeAuthMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) { c.JSON(200, gin.H{"message": "Welcome to ScanDine"}) })
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	public := r.Group("/api/public")
	public.GET("/cafes", ph.Cafes)
	public.GET("/menu/:cafeId", ph.Menu)

	users := r.Group("/api/users")
	users.POST("/register", uh.Register)
	users.POST("/verify-otp", uh.VerifyOTP)
	users.POST("/login", uh.Login)

	authed := users.Group("").Use(authMW.RequireIdentity())
	authed.GET("/me", uh.Me)
	authed.GET("/profile", uh.Profile)
	authed.POST("/logout", uh.Logout)
	authed.DELETE("", uh.Delete)

	dash := r.Group("/api/dashboard").Use(authMW.RequireIdentity())
	dash.POST("/cafe", ch.Create)
	dash.GET("/cafe", ch.Show)
	dash.GET("/qrcode", ch.QRCode)

	menu := r.Group("/api/dashboard/menu").Use(authMW.RequireIdentity(), cafeMW.RequireCafe())
	menu.POST("", mh.Add)
	menu.GET("", mh.List)
	menu.PUT("/:menuItemId", mh.Update)
	menu.DELETE("/:menuItemId", mh.Delete)
	menu.PATCH("/:menuItemId/availability", mh.ToggleAvailability)

	return r
}
