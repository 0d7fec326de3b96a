// Package service declares the domain services implemented in infra: token
// issuing, password hashing, mail, QR codes and event publishing.
package service

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Matches reports whether password hashes to hash. A malformed hash never matches.
	Matches(password, hash string) bool
	// CheckStrength returns ErrPasswordStrength listing every unmet rule.
	CheckStrength(password string) error
}
