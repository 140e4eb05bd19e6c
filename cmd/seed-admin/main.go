package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/domain"
	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/config"
	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/infrastructure/auth"
	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/infrastructure/database"
	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/infrastructure/repositories"
)

// Seeds the initial admin account. Safe to re-run: an existing admin username
// is reported, not overwritten.
func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	email := flag.String("email", "admin@koifarmshop.local", "admin email")
	phone := flag.String("phone", "0000000000", "admin phone")
	fullName := flag.String("fullname", "Shop Administrator", "admin full name")
	flag.Parse()

	if *password == "" {
		log.Fatal("missing required -password flag")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repositories.NewUserRepository(db)

	if existing, err := userRepo.FindByUsername(ctx, *username); err == nil {
		fmt.Printf("admin %q already exists (id=%d), nothing to do\n", existing.Username, existing.ID)
		return
	}

	passwordSvc := auth.NewPasswordService()
	hash, err := passwordSvc.Hash(*password)
	if err != nil {
		log.Fatalf("hash: %v", err)
	}

	admin := &domain.User{
		Username:     *username,
		Email:        *email,
		Phone:        *phone,
		FullName:     *fullName,
		PasswordHash: hash,
		Role:         "admin",
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}

	fmt.Printf("created admin %q (id=%d)\n", admin.Username, admin.ID)
}
