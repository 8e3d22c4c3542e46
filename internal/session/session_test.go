package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/store"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/store/memstore"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/types"
)

func TestStoreBacked_AccountRecord(t *testing.T) {
	s := memstore.New()
	s.Put("accounts", "user-1", map[string]any{"naam": "Anna"})

	provider := &StoreBacked{
		Principal: &types.Principal{ID: "user-1"},
		Client:    s,
	}

	rec, err := provider.AccountRecord(context.Background(), "user-1")
	require.NoError(t, err)
	name, ok := rec.String("naam")
	require.True(t, ok)
	assert.Equal(t, "Anna", name)
}

func TestStoreBacked_MissingRecordIsNotAnError(t *testing.T) {
	provider := &StoreBacked{
		Principal: &types.Principal{ID: "ghost"},
		Client:    memstore.New(),
	}

	rec, err := provider.AccountRecord(context.Background(), "ghost")
	require.NoError(t, err)
	assert.True(t, rec.IsZero())
}

func TestStoreBacked_UnavailablePropagates(t *testing.T) {
	s := memstore.New()
	for _, collection := range []string{"users", "accounts", "gebruikers"} {
		s.FailCollection(collection, store.KindUnavailable)
	}
	provider := &StoreBacked{
		Principal: &types.Principal{ID: "user-1"},
		Client:    s,
	}

	_, err := provider.AccountRecord(context.Background(), "user-1")
	require.Error(t, err)
	assert.Equal(t, store.KindUnavailable, store.KindOf(err))
}

func signToken(t *testing.T, secret string, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestFromToken(t *testing.T) {
	const secret = "test-secret"
	signed := signToken(t, secret, &Claims{
		Email: "anna@example.nl",
		Name:  "Anna",
		Role:  "werkzoekende",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	provider, err := FromToken(signed, secret, memstore.New())
	require.NoError(t, err)

	principal := provider.CurrentPrincipal()
	require.NotNil(t, principal)
	assert.Equal(t, "user-1", principal.ID)
	assert.Equal(t, "anna@example.nl", principal.Email)
	assert.Equal(t, "Anna", principal.DisplayName)
	assert.Equal(t, "werkzoekende", provider.RoleHint())
}

func TestFromToken_Rejections(t *testing.T) {
	const secret = "test-secret"

	t.Run("empty token", func(t *testing.T) {
		_, err := FromToken("", secret, memstore.New())
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		signed := signToken(t, "other-secret", &Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		})
		_, err := FromToken(signed, secret, memstore.New())
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		signed := signToken(t, secret, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		_, err := FromToken(signed, secret, memstore.New())
		assert.Error(t, err)
	})

	t.Run("no subject", func(t *testing.T) {
		signed := signToken(t, secret, &Claims{Role: "recruiter"})
		_, err := FromToken(signed, secret, memstore.New())
		assert.Error(t, err)
	})
}
