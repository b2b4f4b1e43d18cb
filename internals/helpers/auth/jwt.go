// Package helper menerbitkan dan membaca access token JWT (HS256).
package helper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"officer_duty_backend/internals/configs"
	"officer_duty_backend/internals/constants"
)

const (
	accessTTLDefault = 7 * 24 * time.Hour
	ClockSkew        = 30 * time.Second
)

var (
	ErrMissingSecret = errors.New("JWT_SECRET is not set")
	ErrNoExpiry      = errors.New("token has no exp")
	ErrNoUserID      = errors.New("token has no user id")
)

// Secret: configs.JWTSecret, fallback ke env langsung (test / CLI).
func Secret() (string, error) {
	s := strings.TrimSpace(configs.JWTSecret)
	if s == "" {
		s = strings.TrimSpace(configs.GetEnv("JWT_SECRET"))
	}
	if s == "" {
		return "", ErrMissingSecret
	}
	return s, nil
}

func accessTTL() time.Duration {
	if configs.JWTExpire > 0 {
		return configs.JWTExpire
	}
	return accessTTLDefault
}

func BuildAccessClaims(userID uuid.UUID, username string, role constants.Role, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":      "access",
		"sub":      userID.String(),
		"id":       userID.String(),
		"username": username,
		"role":     role.String(),
		"iat":      now.Unix(),
		"exp":      now.Add(accessTTL()).Unix(),
	}
}

// IssueAccessToken menandatangani claims akses dengan JWT_SECRET.
func IssueAccessToken(userID uuid.UUID, username string, role constants.Role, now time.Time) (string, error) {
	secret, err := Secret()
	if err != nil {
		return "", err
	}
	claims := BuildAccessClaims(userID, username, role, now)
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAccessToken memverifikasi signature saja; exp dicek terpisah
// lewat ValidateExpiry supaya toleransi skew konsisten.
func ParseAccessToken(raw string) (jwt.MapClaims, error) {
	secret, err := Secret()
	if err != nil {
		return nil, err
	}
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, err = parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// ExpiresAt membaca claim exp (float64 dari JSON, int64, atau string angka).
func ExpiresAt(claims jwt.MapClaims) (time.Time, error) {
	raw, ok := claims["exp"]
	if !ok {
		return time.Time{}, ErrNoExpiry
	}
	var unix int64
	switch v := raw.(type) {
	case float64:
		unix = int64(v)
	case int64:
		unix = v
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid exp format")
		}
		unix = n
	default:
		return time.Time{}, fmt.Errorf("invalid exp type %T", raw)
	}
	return time.Unix(unix, 0).UTC(), nil
}

func ValidateExpiry(claims jwt.MapClaims, now time.Time, skew time.Duration) error {
	exp, err := ExpiresAt(claims)
	if err != nil {
		return err
	}
	if now.After(exp.Add(skew)) {
		return fmt.Errorf("token expired at %v", exp)
	}
	return nil
}

// UserID: claim "id" (fallback "sub") sebagai UUID.
func UserID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"id", "sub"} {
		if s, ok := claims[key].(string); ok && strings.TrimSpace(s) != "" {
			return uuid.Parse(strings.TrimSpace(s))
		}
	}
	return uuid.Nil, ErrNoUserID
}
