// Package jwt encodes and verifies the signed bearer tokens that identify
// callers of the brew-log API.
//
// Tokens use the compact JWS layout with HS256 (HMAC-SHA256):
//
//	base64url(header) "." base64url(claims) "." base64url(mac)
//
// where mac = HMAC-SHA256(secret, header_b64 + "." + claims_b64), all segments
// base64url without padding. The MAC is computed over the received raw
// segments, never over re-encoded claims.
//
// # Decoding order
//
// Decode checks, in order:
//
//  1. three non-empty segments, else ErrMalformedToken;
//  2. signature, compared in constant time, else ErrInvalidSignature;
//  3. header algorithm is HS256, else ErrMalformedToken;
//  4. payload is a JSON object with an exp claim, else ErrInvalidPayload;
//  5. exp is after now, else ErrTokenExpired.
//
// Expiry is only looked at once the signature is known to be good, so an
// expired forgery reports ErrInvalidSignature and never ErrTokenExpired.
//
// # Usage
//
//	codec, err := jwt.NewCodec(secret, jwt.WithTTL(7*24*time.Hour))
//	if err != nil {
//		return err
//	}
//
//	token, claims, err := codec.Issue(user.ID.String(), map[string]string{"email": user.Email})
//
//	claims, err = codec.Decode(token)
//	switch {
//	case errors.Is(err, jwt.ErrTokenExpired):
//		// ask the client to log in again
//	case err != nil:
//		// discard the token
//	}
//
// The package level Encode and Decode functions take the secret explicitly and
// use the wall clock.
package jwt
