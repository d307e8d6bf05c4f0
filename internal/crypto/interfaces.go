package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher is the one-way salted hashing primitive guarding stored
// credentials. It knows nothing about users, storage, or transport; its
// single job is turning plaintext passwords into irreversible digests and
// checking candidates against them.
type PasswordHasher interface {
	// Hash produces a salted digest of the plaintext password.
	// The output embeds its own salt and cost parameters, so two calls
	// with the same input never produce the same digest. The digest is
	// never reversible and never equals the plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext re-hashes to digest under the
	// salt and parameters embedded in digest.
	Verify(plaintext string, digest string) bool
}
