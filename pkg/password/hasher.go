package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Derivation parameters shared by Hash and Verify.
const (
	Iterations = 100_000
	SaltLength = 16
	KeyLength  = 32

	separator = "$"
)

// Hasher turns plaintext passwords into storable hashes and checks them later.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, stored string) bool
}

// PBKDF2Hasher implements Hasher with PBKDF2-HMAC-SHA256.
type PBKDF2Hasher struct {
	rand io.Reader
}

// Option configures a PBKDF2Hasher.
type Option func(*PBKDF2Hasher)

// WithRandReader replaces the salt source. Nil readers are ignored.
func WithRandReader(r io.Reader) Option {
	return func(h *PBKDF2Hasher) {
		if r != nil {
			h.rand = r
		}
	}
}

// NewHasher returns a PBKDF2Hasher reading salts from crypto/rand.
func NewHasher(opts ...Option) *PBKDF2Hasher {
	h := &PBKDF2Hasher{rand: rand.Reader}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash derives a key from password with a fresh random salt and returns
// base64(salt) + "$" + base64(key).
func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", errors.Join(ErrGenerateSalt, err)
	}

	key := derive(password, salt, KeyLength)

	return base64.StdEncoding.EncodeToString(salt) + separator +
		base64.StdEncoding.EncodeToString(key), nil
}

// Verify reports whether password matches the stored hash.
// Malformed stored values yield false.
func (h *PBKDF2Hasher) Verify(password, stored string) bool {
	salt, want, err := decodeStored(stored)
	if err != nil {
		return false
	}

	got := derive(password, salt, len(want))
	return subtle.ConstantTimeCompare(got, want) == 1
}

func derive(password string, salt []byte, keyLen int) []byte {
	return pbkdf2.Key([]byte(password), salt, Iterations, keyLen, sha256.New)
}

// decodeStored splits a stored hash into salt and derived key.
func decodeStored(stored string) (salt, key []byte, err error) {
	saltPart, keyPart, ok := strings.Cut(stored, separator)
	if !ok || saltPart == "" || keyPart == "" || strings.Contains(keyPart, separator) {
		return nil, nil, ErrInvalidHashFmt
	}

	salt, err = base64.StdEncoding.DecodeString(saltPart)
	if err != nil || len(salt) == 0 {
		return nil, nil, ErrInvalidHashFmt
	}

	key, err = base64.StdEncoding.DecodeString(keyPart)
	if err != nil || len(key) == 0 {
		return nil, nil, ErrInvalidHashFmt
	}

	return salt, key, nil
}

var defaultHasher = NewHasher()

// Hash hashes password with the default hasher.
func Hash(password string) (string, error) {
	return defaultHasher.Hash(password)
}

// Verify checks password against stored with the default hasher.
func Verify(password, stored string) bool {
	return defaultHasher.Verify(password, stored)
}
