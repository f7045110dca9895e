package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, userID, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func authProtected(t *testing.T) (http.Handler, *string, *string) {
	t.Helper()
	var gotUserID, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value(UserIDCtxKey).(string)
		gotRole, _ = r.Context().Value(UserRoleCtxKey).(string)
		w.WriteHeader(http.StatusOK)
	})
	return JWTAuth(testSecret, zap.NewNop())(next), &gotUserID, &gotRole
}

func TestJWTAuth_ValidToken(t *testing.T) {
	handler, userID, role := authProtected(t)

	req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-1", "user", time.Hour))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", *userID)
	assert.Equal(t, "user", *role)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	handler, _, _ := authProtected(t)

	req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	handler, _, _ := authProtected(t)

	req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	handler, _, _ := authProtected(t)

	req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "user-1", "user", time.Hour))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	handler, _, _ := authProtected(t)

	req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-1", "user", -time.Hour))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	chain := JWTAuth(testSecret, zap.NewNop())(RequireRole("admin")(next))

	adminReq := httptest.NewRequest(http.MethodGet, "/api/admin/garages", nil)
	adminReq.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "admin-1", "admin", time.Hour))
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, adminReq)
	assert.Equal(t, http.StatusOK, rec.Code)

	userReq := httptest.NewRequest(http.MethodGet, "/api/admin/garages", nil)
	userReq.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-1", "user", time.Hour))
	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, userReq)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
