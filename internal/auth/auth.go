// Package auth provides functions for handling password hashing and JWT authentication
package auth

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v5"
)

func HashPassword(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, &argon2id.Params{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches hash. A malformed
// hash string yields (false, err); callers treat both outcomes as the
// same failed-credentials condition.
func CheckPasswordHash(password, hash string) (bool, error) {
	match, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		return false, err
	}
	return match, nil
}

func MakeJWT(userID int64, method *jwt.SigningMethodHMAC, tokenSecret string, expiresIn time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    "spendtrack",
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn).UTC()),
		Subject:   strconv.FormatInt(userID, 10),
	}

	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString([]byte(tokenSecret))
	if err != nil {
		return "", err
	}

	return signed, nil
}

// ValidateJWT verifies the signature and expiry of tokenString and
// returns the user id carried in the subject claim. Signature
// mismatch, a foreign signing method, expiry, and a missing or
// non-numeric subject all reject alike.
func ValidateJWT(tokenString, tokenSecret, algorithm string) (int64, error) {
	jwtClaims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method: " + token.Method.Alg())
		}
		if algorithm != token.Method.Alg() {
			return nil, errors.New("unexpected signing method: " + token.Method.Alg())
		}
		return []byte(tokenSecret), nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, errors.New("unknown claims type, cannot proceed")
	}
	if claims.Subject == "" {
		return 0, errors.New("token carries no subject")
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func GetBearerToken(headers http.Header) (tokenString string, returnErr error) {
	authSlice, ok := headers["Authorization"]
	if !ok || len(authSlice) == 0 {
		return "", errors.New("authorization header missing or empty")
	}
	authHeaderVal := authSlice[0]
	if !strings.HasPrefix(strings.ToLower(authHeaderVal), "bearer ") {
		return "", errors.New("no token string found")
	}
	tokenElements := strings.SplitN(authHeaderVal, " ", 2)
	if len(tokenElements) != 2 || strings.TrimSpace(tokenElements[1]) == "" {
		return "", errors.New("bearer presented without token")
	}
	return tokenElements[1], nil
}
