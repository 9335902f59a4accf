// Package password provides one-way credential hashing and verification.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for new hashes. Stored hashes
// embed their own cost, so raising it only affects freshly created ones.
const DefaultCost = 10

// Hash derives a salted bcrypt hash from the given password. The output
// embeds algorithm, cost and salt and is safe to store as-is.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored hash. A malformed hash
// is a mismatch, not an error.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
