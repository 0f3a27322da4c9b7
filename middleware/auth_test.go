package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"project-bazaar/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityProbe(t *testing.T, build func(r *http.Request)) (*utils.Claims, bool) {
	t.Helper()
	var claims *utils.Claims
	var ok bool
	handler := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok = ClaimsFrom(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	build(req)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return claims, ok
}

func TestIdentityFromBearerHeader(t *testing.T) {
	utils.JwtKey = []byte("test-secret")
	token, err := utils.GenerateJWT("user-1", "alice@example.com")
	require.NoError(t, err)

	claims, ok := identityProbe(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	require.True(t, ok)
	assert.Equal(t, "user-1", claims.ID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestIdentityFromCookie(t *testing.T) {
	utils.JwtKey = []byte("test-secret")
	token, err := utils.GenerateJWT("user-2", "bob@example.com")
	require.NoError(t, err)

	claims, ok := identityProbe(t, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "token", Value: token})
	})
	require.True(t, ok)
	assert.Equal(t, "user-2", claims.ID)
}

func TestIdentityAbsentWithoutToken(t *testing.T) {
	_, ok := identityProbe(t, func(r *http.Request) {})
	assert.False(t, ok)
}

func TestIdentityAbsentWithInvalidToken(t *testing.T) {
	utils.JwtKey = []byte("test-secret")

	// A bad token is treated as anonymous, not as an error
	_, ok := identityProbe(t, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer not.a.token")
	})
	assert.False(t, ok)
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	utils.JwtKey = []byte("test-secret")
	token, err := utils.GenerateJWT("user-3", "carol@example.com")
	require.NoError(t, err)

	handler := Identity(RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
