package utils

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealer(t *testing.T) {
	sealer, err := NewSealer("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	sealed, err := sealer.Seal([]byte(`{"password":"secret1"}`))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "secret1")

	opened, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, `{"password":"secret1"}`, string(opened))

	t.Run("Tampered blob is rejected", func(t *testing.T) {
		tampered := append([]byte(nil), sealed...)
		tampered[len(tampered)-1] ^= 0xff

		_, err := sealer.Open(tampered)
		assert.ErrorIs(t, err, ErrSealedDataInvalid)
	})

	t.Run("Other key cannot open", func(t *testing.T) {
		other, err := NewSealer("another-secret-of-enough-length")
		require.NoError(t, err)

		_, err = other.Open(sealed)
		assert.ErrorIs(t, err, ErrSealedDataInvalid)
	})

	t.Run("Short secret is refused", func(t *testing.T) {
		_, err := NewSealer("short")
		assert.Error(t, err)
	})
}

func TestTokenVerifier(t *testing.T) {
	verifier, err := NewTokenVerifier("HS256", "upstream-secret")
	require.NoError(t, err)

	sign := func(claims jwt.MapClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-secret"))
		require.NoError(t, err)
		return token
	}

	t.Run("Reads sub claim", func(t *testing.T) {
		subject, err := verifier.Subject(sign(jwt.MapClaims{"sub": "admin-1", "exp": time.Now().Add(time.Hour).Unix()}))
		require.NoError(t, err)
		assert.Equal(t, "admin-1", subject)
	})

	t.Run("Falls back to id claim", func(t *testing.T) {
		subject, err := verifier.Subject(sign(jwt.MapClaims{"id": "65f0c0ffee"}))
		require.NoError(t, err)
		assert.Equal(t, "65f0c0ffee", subject)
	})

	t.Run("Expired token", func(t *testing.T) {
		_, err := verifier.Subject(sign(jwt.MapClaims{"sub": "admin-1", "exp": time.Now().Add(-time.Minute).Unix()}))
		assert.Error(t, err)
	})

	t.Run("No subject", func(t *testing.T) {
		_, err := verifier.Subject(sign(jwt.MapClaims{"role": "superadmin"}))
		assert.Error(t, err)
	})

	t.Run("Not a token", func(t *testing.T) {
		_, err := verifier.Subject("not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("Unsigned token is refused", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "victim-admin"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.Subject(token)
		assert.Error(t, err)
	})

	t.Run("Token signed with another key is refused", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "victim-admin"}).
			SignedString([]byte("attacker-secret"))
		require.NoError(t, err)

		_, err = verifier.Subject(token)
		assert.Error(t, err)
	})

	t.Run("Token signed with another algorithm is refused", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"sub": "admin-1"}).
			SignedString([]byte("upstream-secret"))
		require.NoError(t, err)

		_, err = verifier.Subject(token)
		assert.Error(t, err)
	})
}

func TestNewTokenVerifier(t *testing.T) {
	t.Run("Public key algorithms", func(t *testing.T) {
		privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		require.NoError(t, err)
		der, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
		require.NoError(t, err)
		publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

		verifier, err := NewTokenVerifier("es256", string(publicPEM))
		require.NoError(t, err)

		token, err := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.MapClaims{"sub": "admin-1"}).SignedString(privateKey)
		require.NoError(t, err)
		subject, err := verifier.Subject(token)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", subject)
	})

	t.Run("Rejects bad configuration", func(t *testing.T) {
		_, err := NewTokenVerifier("HS256", " ")
		assert.Error(t, err)

		_, err = NewTokenVerifier("none", "secret")
		assert.Error(t, err)

		_, err = NewTokenVerifier("RS256", "not a pem")
		assert.Error(t, err)
	})
}
