package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Admin tokens: HS256, 7-day lifetime, issuer pinned so storefront customer
// tokens (different issuer) can never pass the admin middleware.
const (
	adminTokenIssuer = "petrocino-store-admin"
	adminTokenTTL    = 7 * 24 * time.Hour
)

var adminTokenSecret []byte

// AdminJWTClaims are the claims carried by an admin token.
type AdminJWTClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// InitJWTService sets the signing secret for admin tokens. Called once at
// startup.
func InitJWTService(secretKey string) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	adminTokenSecret = []byte(secretKey)
	return nil
}

func signingSecret() []byte {
	if adminTokenSecret == nil {
		// Fallback to environment variable if not initialized
		secretKey := os.Getenv("JWT_SECRET")
		if secretKey == "" {
			secretKey = "dev-secret-key-change-in-production"
		}
		adminTokenSecret = []byte(secretKey)
	}
	return adminTokenSecret
}

// GenerateAdminJWT issues a signed admin token.
func GenerateAdminJWT(adminID, email string) (string, error) {
	if adminID == "" || email == "" {
		return "", errors.New("adminID and email cannot be empty")
	}

	now := time.Now()
	claims := AdminJWTClaims{
		AdminID: adminID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(adminTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    adminTokenIssuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingSecret())
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// adminTokenParser enforces algorithm and issuer before the claims are even
// looked at.
var adminTokenParser = jwt.NewParser(
	jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	jwt.WithIssuer(adminTokenIssuer),
	jwt.WithExpirationRequired(),
)

// VerifyAdminJWT validates an admin token and returns its claims.
func VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	claims := &AdminJWTClaims{}

	token, err := adminTokenParser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return signingSecret(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.AdminID == "" || claims.Email == "" {
		return nil, errors.New("token missing required claims")
	}

	return claims, nil
}
