package mocks

import "github.com/hoanghh2003/SWP391-Koi-Farm-Shop/domain"

// MockPasswordService implements domain.PasswordService interface for testing
type MockPasswordService struct {
	HashFunc     func(password string) (string, error)
	VerifyFunc   func(hashedPassword, password string) bool
	GenerateFunc func(length int) (string, error)
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed_" + password, nil
}

// Verify checks a password against a stored hash
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed_"+password
}

// Generate produces a random password
func (m *MockPasswordService) Generate(length int) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(length)
	}
	return "generated_password", nil
}

// Compile-time interface compliance verification
var _ domain.PasswordService = (*MockPasswordService)(nil)
