package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/http/handlers"
	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/http/middleware"
)

// BuildRouter wires the storefront auth routes. Paths mirror the public API
// contract: /api/signup, /api/signin and /api/forgot-password are open, the
// rest sit behind the bearer gate and role check.
func BuildRouter(ah *handlers.AuthHandlers, ph *handlers.PolicyHandlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")
	api.POST("/signup", ah.SignUp)
	api.POST("/signin", ah.SignIn)
	api.POST("/forgot-password", ah.ForgotPassword)

	priv := r.Group("/api").Use(jwtmw.WithJWT(), cb.Enforce())
	priv.POST("/logout", ah.Logout)
	priv.POST("/change-password", ah.ChangePassword)
	priv.GET("/profile", ah.Profile)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}
