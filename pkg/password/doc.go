// Package password hashes user passwords for storage and verifies login
// attempts against stored hashes.
//
// Hashes are derived with PBKDF2 using HMAC-SHA-256, a 16-byte random salt,
// 100,000 iterations and a 32-byte key. The stored form is
//
//	base64(salt) + "$" + base64(derivedKey)
//
// using standard base64 with padding. The format carries no algorithm or
// parameter tag, so changing Iterations, SaltLength or KeyLength invalidates
// every previously stored hash.
//
// # Usage
//
//	stored, err := password.Hash("correcthorse123")
//	if err != nil {
//		return err
//	}
//
//	if !password.Verify(input, stored) {
//		return ErrInvalidCredentials
//	}
//
// Verify never returns an error: a malformed stored value is reported as a
// mismatch, so callers cannot leak storage corruption to clients.
package password
