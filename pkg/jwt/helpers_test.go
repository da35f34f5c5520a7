package jwt_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
)

// signRaw builds a correctly signed token from already encoded segments.
func signRaw(header, payload string) string {
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(header + "." + payload))
	return header + "." + payload + "." + base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
