package helpers

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrMissingCredentials = errors.New("Please provide username and password")

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidateLoginInput: username & password wajib ada.
func ValidateLoginInput(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return ErrMissingCredentials
	}
	return nil
}
