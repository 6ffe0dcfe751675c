package crypto

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor used for all stored password hashes.
const HashCost = 10

// HashPassword hashes a password with bcrypt using a random salt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether a password matches the given bcrypt hash.
// bcrypt's comparison is constant-time with respect to the hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
