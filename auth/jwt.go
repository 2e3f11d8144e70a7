// Package auth issues and validates the signed bearer credentials
// used by the storefront. Tokens are stateless, with a fixed lifetime
// from issuance and no revocation; logout only discards the client copy.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/models"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is what a validated token resolves to.
type Identity struct {
	UserID string
	Role   string
}

func jwtSecret() []byte { return []byte(os.Getenv("JWT_SECRET")) }

// IssueUserToken signs a session token for a registered user.
func IssueUserToken(user *models.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// IssueGuestToken signs a short-lived token for a guest session.
func IssueGuestToken(guestID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": guestID,
		"role":    "guest",
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// NewGuestID generates an opaque guest identifier.
func NewGuestID() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "guest_rand"
	}
	return "guest_" + hex.EncodeToString(bytes)
}

// ParseToken validates a bearer token and extracts the identity.
func ParseToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: userID, Role: role}, nil
}
