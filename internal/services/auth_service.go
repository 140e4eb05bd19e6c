package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/domain"
)

// generatedPasswordLength is the length of passwords issued by the
// forgot-password flow.
const generatedPasswordLength = 16

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	mailSvc     domain.MailService
	sessionTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	mailSvc domain.MailService,
	sessionTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		mailSvc:     mailSvc,
		sessionTTL:  sessionTTL,
	}
}

// SignUp implements domain.AuthService. Pre-checks give precise duplicate
// errors; the unique indexes in Postgres remain the atomic authority, and a
// concurrent duplicate surfaces from Create as the same DuplicateFieldError.
func (s *AuthServiceImpl) SignUp(ctx context.Context, username, password, fullName, phone, email string) (*domain.User, error) {
	checks := []struct {
		field  string
		lookup func() (*domain.User, error)
	}{
		{"username", func() (*domain.User, error) { return s.userRepo.FindByUsername(ctx, username) }},
		{"email", func() (*domain.User, error) { return s.userRepo.FindByEmail(ctx, email) }},
		{"phone", func() (*domain.User, error) { return s.userRepo.FindByPhone(ctx, phone) }},
	}
	for _, c := range checks {
		_, err := c.lookup()
		if err == nil {
			return nil, &domain.DuplicateFieldError{Field: c.field}
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to check %s uniqueness: %w", c.field, err)
		}
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		Phone:        phone,
		FullName:     fullName,
		PasswordHash: hashedPassword,
		Role:         "customer",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		var dup *domain.DuplicateFieldError
		if errors.As(err, &dup) {
			return nil, dup
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// SignIn implements domain.AuthService. Unknown username and wrong password
// return the same error so callers cannot probe which one failed.
func (s *AuthServiceImpl) SignIn(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := s.tokenSvc.GenerateSessionToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &domain.AuthResult{
		User:        user,
		AccessToken: accessToken,
		SessionID:   session.ID,
		ExpiresIn:   int64(s.sessionTTL.Seconds()),
	}, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// ChangePassword implements domain.AuthService
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, oldPassword) {
		return domain.ErrInvalidCredentials
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword)
}

// ForgotPassword implements domain.AuthService. The new hash is stored before
// the mail is dispatched; a delivery failure is reported but does not roll the
// password back.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email, username string) error {
	user, err := s.userRepo.FindByEmailAndUsername(ctx, email, username)
	if err != nil {
		return err
	}

	newPassword, err := s.passwordSvc.Generate(generatedPasswordLength)
	if err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}

	log.Printf("PASSWORD_RESET: user_id=%d email=%s timestamp=%s",
		user.ID, user.Email, time.Now().UTC().Format(time.RFC3339))

	if err := s.mailSvc.SendPasswordReset(user.Email, user.Username, newPassword); err != nil {
		log.Printf("PASSWORD_RESET_MAIL_FAILED: user_id=%d email=%s error=%v timestamp=%s",
			user.ID, user.Email, err, time.Now().UTC().Format(time.RFC3339))
		if errors.Is(err, domain.ErrMailDelivery) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	return nil
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
