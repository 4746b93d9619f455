// Package service declares the domain-facing contracts of infrastructure
// services: hashing, tokens, push delivery, change fan-out and identity.
package service

// PasswordHasher hashes and verifies email account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
