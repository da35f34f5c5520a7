package password

import "errors"

var (
	ErrEmptyPassword  = errors.New("password: empty password")
	ErrGenerateSalt   = errors.New("password: failed to generate salt")
	ErrInvalidHashFmt = errors.New("password: invalid stored hash format")
)
