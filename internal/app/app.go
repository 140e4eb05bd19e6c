package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/config"
	httpx "github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/http"
	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/http/handlers"
	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/http/middleware"
	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/infrastructure/auth"
	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/infrastructure/database"
	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/infrastructure/notifications"
	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/infrastructure/repositories"
	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/services"
)

// Run constructs the whole service from config and blocks serving HTTP.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL)
	mailSvc := notifications.NewSMTPService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)

	userRepo := repositories.NewUserRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(rdb, cfg.SessionTTL)

	authSvc := services.NewAuthService(userRepo, sessionRepo, passwordSvc, tokenSvc, mailSvc, cfg.SessionTTL)
	policySvc := services.NewPolicyService(cas.E)

	authH := handlers.NewAuthHandlers(authSvc)
	polH := &handlers.PolicyHandlers{PolicySvc: policySvc}

	jwtMW := middleware.NewAuthMW(tokenSvc, sessionRepo)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(authH, polH, jwtMW, casbinMW)

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy("role_admin", "/admin/*", "(GET|POST|DELETE)")
		cas.E.AddPolicy("role_admin", "/api/*", "(GET|POST)")
		cas.E.AddPolicy("role_customer", "/api/logout", "POST")
		cas.E.AddPolicy("role_customer", "/api/change-password", "POST")
		cas.E.AddPolicy("role_customer", "/api/profile", "GET")
		_ = cas.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
