package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/domain"
	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func liveSession(userID uint, sessionID string) *domain.Session {
	return &domain.Session{
		ID:        sessionID,
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
}

func protectedRouter(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokenSvc, sessionRepo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":    c.GetString("user_id"),
			"user_role":  c.GetString("user_role"),
			"session_id": c.GetString("session_id"),
		})
	})
	return r
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "no bearer prefix", header: "some-token"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := protectedRouter(mocks.NewMockTokenService(), mocks.NewMockSessionRepository())

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
			if body := w.Body.String(); !strings.Contains(body, domain.ErrMissingToken.Error()) {
				t.Errorf("expected missing-token message, got %s", body)
			}
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateSessionTokenFunc = func(token string) (*domain.TokenClaims, error) {
		return nil, domain.ErrTokenInvalid
	}
	router := protectedRouter(tokenSvc, mocks.NewMockSessionRepository())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer forged")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "invalid session") {
		t.Errorf("expected invalid session message, got %s", body)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateSessionTokenFunc = func(token string) (*domain.TokenClaims, error) {
		return nil, domain.ErrTokenExpired
	}
	router := protectedRouter(tokenSvc, mocks.NewMockSessionRepository())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer stale")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "session expired") {
		t.Errorf("expected session expired message, got %s", body)
	}
}

func TestAuthMiddleware_RevokedSession(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateSessionTokenFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{UserID: 42, Role: "customer", SessionID: "sess-gone"}, nil
	}
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		return nil, domain.ErrSessionNotFound
	}
	router := protectedRouter(tokenSvc, sessionRepo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer revoked")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for revoked session, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "invalid session") {
		t.Errorf("expected invalid session message, got %s", body)
	}
}

func TestAuthMiddleware_ExpiredSession(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateSessionTokenFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{UserID: 42, Role: "customer", SessionID: "sess-old"}, nil
	}
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		return nil, domain.ErrSessionExpired
	}
	router := protectedRouter(tokenSvc, sessionRepo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer old")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired session, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "session expired") {
		t.Errorf("expected session expired message, got %s", body)
	}
}

func TestAuthMiddleware_SessionUserMismatch(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateSessionTokenFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{UserID: 42, Role: "customer", SessionID: "sess-1"}, nil
	}
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		return liveSession(99, sessionID), nil
	}
	router := protectedRouter(tokenSvc, sessionRepo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer crossed")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for user mismatch, got %d", w.Code)
	}
}

func TestAuthMiddleware_Success(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateSessionTokenFunc = func(token string) (*domain.TokenClaims, error) {
		if token != "good-token" {
			t.Errorf("expected middleware to pass the raw token, got %q", token)
		}
		return &domain.TokenClaims{UserID: 42, Role: "customer", SessionID: "sess-1"}, nil
	}
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		return liveSession(42, sessionID), nil
	}
	router := protectedRouter(tokenSvc, sessionRepo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{`"user_id":"42"`, `"user_role":"customer"`, `"session_id":"sess-1"`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %s in response, got %s", want, body)
		}
	}
}
