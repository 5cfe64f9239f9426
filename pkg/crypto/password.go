package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12
	// MaxPasswordBytes is the longest input bcrypt accepts
	MaxPasswordBytes = 72
)

// ErrPasswordTooLong is returned by HashPassword for inputs over MaxPasswordBytes
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

var (
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompare              = bcrypt.CompareHashAndPassword
)

// HashPassword hashes a password using bcrypt. Every call draws a fresh salt,
// so hashing the same password twice yields different strings.
func HashPassword(password string) (string, error) {
	bytes, err := bcryptGenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword compares a password with a hash. A malformed hash is reported
// as a mismatch.
func CheckPassword(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcryptCompare([]byte(hash), []byte(password)) == nil
}
