package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost gives sub-second verification on commodity hardware.
const DefaultCost = 10

// HashPassword creates a bcrypt hash from the given plaintext password.
func HashPassword(password string, cost int) (string, error) {
	// the cost determines the computational complexity of the hashing process
	// higher cost means more security but also more processing time
	if cost <= 0 {
		cost = DefaultCost
	}
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword checks if the provided plaintext password matches the stored
// bcrypt hash. bcrypt compares in constant time regardless of where the
// mismatch occurs.
func VerifyPassword(hashedPassword, providedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(providedPassword))
}

// DummyHash is a valid bcrypt digest used for a wasted compare when a login
// names an unknown email, so response time does not reveal account existence.
const DummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e"
