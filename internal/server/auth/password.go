package auth

import "golang.org/x/crypto/bcrypt"

// BcryptCost matches the cost the original deployment used when hashing
// existing accounts; raising it would invalidate none of them but slow
// verification uniformly.
const BcryptCost = 10

// HashPassword returns a salted bcrypt digest of the plaintext password.
// bcrypt embeds a random per-call salt, so equal passwords produce
// different hashes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// hash. Malformed hashes yield false rather than an error, so callers
// cannot distinguish a broken record from a wrong password.
func CheckPassword(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
