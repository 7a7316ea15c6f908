package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateJWT(user string, fullAccess bool, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("clanledger-dev-secret")

// SetSecret replaces the signing key; called once during startup.
func SetSecret(secret string) {
	if secret != "" {
		secretKey = []byte(secret)
	}
}

type Claims struct {
	User       string `json:"user"`
	FullAccess bool   `json:"full_access"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(user string, fullAccess bool, expirationTime time.Time) (string, error) {
	claims := Claims{
		User:       user,
		FullAccess: fullAccess,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "clanledger",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.User == "" || claims.Issuer != "clanledger" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
