package ports

// PasswordHasher is a one-way credential digest: salted, adaptive-cost, and
// verify-only. Digests are never reversible.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
