package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubValidator accepts exactly one token and returns a fixed user ID.
type stubValidator struct {
	token  string
	userID uuid.UUID
}

type stubClaims struct{ userID uuid.UUID }

func (c *stubClaims) GetUserID() uuid.UUID { return c.userID }

func (v *stubValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	if tokenString != v.token {
		return nil, fmt.Errorf("invalid token")
	}
	return &stubClaims{userID: v.userID}, nil
}

func echoUserHandler(t *testing.T, wantID uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := GetUserID(r)
		require.NoError(t, err)
		assert.Equal(t, wantID, userID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	validator := &stubValidator{token: "good-token", userID: userID}

	handler := AuthMiddleware(validator)(echoUserHandler(t, userID))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	validator := &stubValidator{token: "good-token", userID: uuid.New()}
	handler := AuthMiddleware(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest("GET", "/protected", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	validator := &stubValidator{token: "good-token", userID: uuid.New()}
	handler := AuthMiddleware(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	for _, header := range []string{"good-token", "Basic good-token", "Bearer"} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthMiddleware_CaseInsensitiveBearer(t *testing.T) {
	userID := uuid.New()
	validator := &stubValidator{token: "good-token", userID: userID}
	handler := AuthMiddleware(validator)(echoUserHandler(t, userID))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	validator := &stubValidator{token: "good-token", userID: uuid.New()}
	handler := OptionalAuth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := GetUserID(r)
		assert.Error(t, err, "anonymous request must carry no user ID")
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/simulations", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	validator := &stubValidator{token: "good-token", userID: userID}
	handler := OptionalAuth(validator)(echoUserHandler(t, userID))

	req := httptest.NewRequest("POST", "/simulations", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuth_BadTokenRejected(t *testing.T) {
	validator := &stubValidator{token: "good-token", userID: uuid.New()}
	handler := OptionalAuth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest("POST", "/simulations", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserID_NotInContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, err := GetUserID(req)
	assert.Error(t, err)
}

func TestWithUserID(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(WithUserID(req.Context(), userID))

	got, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}
