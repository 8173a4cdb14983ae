package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"artspace_backend/internals/configs"
	repository "artspace_backend/internals/features/users/auth/repository"
)

// CreateToken signs an HS256 session token for the credential. The returned
// expiry also drives the cookie lifetime so both die together.
func CreateToken(cred *repository.Credential) (string, time.Time, error) {
	if configs.JWTSecret == "" {
		return "", time.Time{}, fmt.Errorf("JWT secret not configured")
	}
	now := time.Now()
	exp := now.Add(configs.JWTExpiry)
	claims := jwt.MapClaims{
		"sub":     cred.Login,
		"user_id": cred.UserID,
		"role":    cred.Role,
		"iat":     now.Unix(),
		"exp":     exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}
