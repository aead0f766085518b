package utils

import (
	"errors"

	"github.com/golang-jwt/jwt"

	"dreamydestiny/config"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "dreamydestiny"
	}
	return []byte(secret)
}

// GenerateToken signs the given claims with HS256. The claims are whatever
// object the client submitted for issuance; no expiry claim is added, the
// token lives as long as the session cookie carrying it.
func GenerateToken(claims map[string]interface{}) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(claims))
	return token.SignedString(secretKey())
}

// VerifyToken parses and validates a token string and returns its claims.
func VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
