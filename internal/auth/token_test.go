package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"expo-ticketing/internal/auth"
)

func TestIssueAndParseToken(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour)

	token, err := issuer.IssueToken(auth.Identity{Name: "Asha Rao", Email: "asha@example.com"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := issuer.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "asha@example.com", identity.Email)
	assert.Equal(t, "Asha Rao", identity.Name)
}

func TestIssueToken_RequiresEmail(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour)
	_, err := issuer.IssueToken(auth.Identity{Name: "No Email"})
	assert.Error(t, err)
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour)
	other := auth.NewIssuer("other-secret", time.Hour)

	token, err := issuer.IssueToken(auth.Identity{Email: "asha@example.com"})
	assert.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_RejectsExpired(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", -time.Minute)

	token, err := issuer.IssueToken(auth.Identity{Email: "asha@example.com"})
	assert.NoError(t, err)

	_, err = issuer.ParseToken(token)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour)
	token, _ := issuer.IssueToken(auth.Identity{Name: "Asha Rao", Email: "asha@example.com"})

	var gotEmail string
	handler := auth.Middleware(issuer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.FromContext(r.Context())
		assert.True(t, ok)
		gotEmail = identity.Email
	}))

	// Valid token reaches the handler with the identity in context.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "asha@example.com", gotEmail)

	// Missing header is rejected.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token is rejected.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
