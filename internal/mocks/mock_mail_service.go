package mocks

import "github.com/hoanghh2003/SWP391-Koi-Farm-Shop/domain"

// MockMailService implements domain.MailService interface for testing
type MockMailService struct {
	SendPasswordResetFunc func(to, username, newPassword string) error
}

// NewMockMailService creates a new MockMailService with default behaviors
func NewMockMailService() *MockMailService {
	return &MockMailService{}
}

// SendPasswordReset dispatches a password-reset message
func (m *MockMailService) SendPasswordReset(to, username, newPassword string) error {
	if m.SendPasswordResetFunc != nil {
		return m.SendPasswordResetFunc(to, username, newPassword)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.MailService = (*MockMailService)(nil)
