// Package password implements the salted SHA-256 credential scheme used by
// the users collection, including verification of records created before
// hashing was introduced.
package password

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash returns the hex SHA-256 digest of the password alone. Only used to
// compare against legacy values that were hashed without a salt.
func Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// HashWithSalt digests password+salt (plain concatenation) and returns the
// stored form "salt:hex". The salt is conventionally the user's own id.
func HashWithSalt(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return salt + ":" + hex.EncodeToString(sum[:])
}

// Hashed reports whether a stored password field is already in salted form.
func Hashed(stored string) bool {
	return strings.Contains(stored, ":")
}

// Verify compares a candidate password against a stored field in either
// format. Legacy fields (no colon) match as plain text or as an unsalted
// digest; both are accepted so no account is locked out mid-migration.
func Verify(password, stored string) bool {
	if !Hashed(stored) {
		return Hash(password) == stored || password == stored
	}

	salt, _, _ := strings.Cut(stored, ":")

	return HashWithSalt(password, salt) == stored
}
