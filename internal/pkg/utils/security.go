package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/nacl/secretbox"
)

const sealNonceSize = 24

var ErrSealedDataInvalid = errors.New("sealed data is invalid")

// Sealer encrypts and authenticates small blobs with NaCl secretbox.
type Sealer struct {
	key [32]byte
}

// NewSealer derives the box key from secret.
func NewSealer(secret string) (*Sealer, error) {
	if len(secret) < 16 {
		return nil, errors.New("sealing secret must be at least 16 characters")
	}
	return &Sealer{key: sha256.Sum256([]byte(secret))}, nil
}

func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	var nonce [sealNonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return secretbox.Seal(nonce[:], plaintext, &nonce, &s.key), nil
}

func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < sealNonceSize+secretbox.Overhead {
		return nil, ErrSealedDataInvalid
	}
	var nonce [sealNonceSize]byte
	copy(nonce[:], sealed[:sealNonceSize])
	plaintext, ok := secretbox.Open(nil, sealed[sealNonceSize:], &nonce, &s.key)
	if !ok {
		return nil, ErrSealedDataInvalid
	}
	return plaintext, nil
}

var subjectClaims = []string{"sub", "id", "userId", "_id", "email"}

// TokenVerifier checks superadmin API bearer tokens against the API's signing
// key. Only the configured algorithm is accepted, so "none" never is.
type TokenVerifier struct {
	method jwt.SigningMethod
	key    interface{}
}

// NewTokenVerifier takes a shared secret for HS* algorithms and a PEM public
// key for RS256 and ES256.
func NewTokenVerifier(algorithm, key string) (*TokenVerifier, error) {
	algorithm = strings.ToUpper(strings.TrimSpace(algorithm))
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errors.New("token verification key is empty")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported token algorithm %q", algorithm)
	}

	var (
		verifyKey interface{}
		err       error
	)
	switch method.(type) {
	case *jwt.SigningMethodHMAC:
		verifyKey = []byte(key)
	case *jwt.SigningMethodRSA:
		verifyKey, err = jwt.ParseRSAPublicKeyFromPEM([]byte(key))
	case *jwt.SigningMethodECDSA:
		verifyKey, err = jwt.ParseECPublicKeyFromPEM([]byte(key))
	default:
		return nil, fmt.Errorf("unsupported token algorithm %q", algorithm)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s verification key: %w", algorithm, err)
	}
	return &TokenVerifier{method: method, key: verifyKey}, nil
}

// Subject verifies the signature and time claims of tokenString and returns
// the admin identity it names.
func (v *TokenVerifier) Subject(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{v.method.Alg()}))
	if _, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return v.key, nil
	}); err != nil {
		return "", err
	}

	for _, key := range subjectClaims {
		if subject, ok := claims[key].(string); ok && subject != "" {
			return subject, nil
		}
	}
	return "", errors.New("token carries no subject")
}
