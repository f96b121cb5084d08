package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"

	"tripway/config"
)

// signingKey resolves the HMAC secret on every use, so tokens signed
// after LoadConfig runs pick up the configured value rather than a
// snapshot taken at init. Fallback to a default (not recommended in
// production).
func signingKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		secret = "tripway-dev"
	}
	return []byte(secret)
}

// GenerateSessionToken creates a signed JWT whose subject is the server-side
// session ID. The token expires after the specified duration.
func GenerateSessionToken(sessionID, email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   sessionID,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return signingKey(), nil
	})
}

// ExtractSessionIDFromToken extracts the session ID (subject) from a valid
// token string. It returns the extracted ID or an error if validation fails.
func ExtractSessionIDFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}

	return sub, nil
}
