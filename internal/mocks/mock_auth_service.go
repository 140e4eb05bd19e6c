package mocks

import (
	"context"

	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	SignUpFunc         func(ctx context.Context, username, password, fullName, phone, email string) (*domain.User, error)
	SignInFunc         func(ctx context.Context, username, password string) (*domain.AuthResult, error)
	LogoutFunc         func(ctx context.Context, sessionID string) error
	ChangePasswordFunc func(ctx context.Context, userID uint, oldPassword, newPassword string) error
	ForgotPasswordFunc func(ctx context.Context, email, username string) error
	GetProfileFunc     func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// SignUp registers a user
func (m *MockAuthService) SignUp(ctx context.Context, username, password, fullName, phone, email string) (*domain.User, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, username, password, fullName, phone, email)
	}
	return nil, domain.ErrUserNotFound
}

// SignIn authenticates a user
func (m *MockAuthService) SignIn(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, username, password)
	}
	return nil, domain.ErrInvalidCredentials
}

// Logout revokes a session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

// ChangePassword replaces a user's password
func (m *MockAuthService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, userID, oldPassword, newPassword)
	}
	return nil
}

// ForgotPassword resets a user's password and mails the new one
func (m *MockAuthService) ForgotPassword(ctx context.Context, email, username string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email, username)
	}
	return nil
}

// GetProfile fetches a user's account
func (m *MockAuthService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
