package utils

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/pbkdf2"
)

// JWT Secret Key
var JwtKey = []byte("your_secret_key") // This will be loaded from .env

// Claims represents the JWT claims
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.StandardClaims
}

// GenerateJWT generates a JWT token for a user, valid for 7 days
func GenerateJWT(id, email string) (string, error) {
	expirationTime := time.Now().Add(7 * 24 * time.Hour)
	claims := &Claims{
		ID:    id,
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ParseToken verifies a JWT and returns its claims
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.NewValidationError("invalid token", jwt.ValidationErrorSignatureInvalid)
	}
	return claims, nil
}

// Password hashing parameters. Changing these invalidates stored credentials.
const (
	saltBytes     = 16
	kdfIterations = 1000
	kdfKeyLen     = 64
)

// GenerateSalt returns a fresh random salt, hex-encoded
func GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword derives a PBKDF2-HMAC-SHA512 hash of the password keyed by
// the hex-encoded salt, returned hex-encoded.
func HashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), kdfIterations, kdfKeyLen, sha512.New)
	return hex.EncodeToString(key)
}

// VerifyPassword re-derives the hash with the stored salt and compares it
// byte-for-byte in constant time.
func VerifyPassword(password, salt, hash string) bool {
	derived := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(hash)) == 1
}
