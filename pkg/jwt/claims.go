package jwt

// Claims is the payload carried inside a token.
//
// ExpiresAt is mandatory: Encode refuses claims without it and Decode rejects
// payloads that omit it. Context holds non-sensitive scalar metadata such as
// the subject's email at issue time; values are strings so a decoded token
// compares equal to the claims it was encoded from.
type Claims struct {
	Subject   string         `json:"sub,omitempty"`
	Context   map[string]string `json:"ctx,omitempty"`
	ExpiresAt int64          `json:"exp"`
	IssuedAt  int64          `json:"iat,omitempty"`
}

// ContextString returns a string value from Context.
func (c Claims) ContextString(key string) (string, bool) {
	v, ok := c.Context[key]
	return v, ok
}

// payload mirrors Claims for decoding so a missing exp can be told apart
// from a zero one.
type payload struct {
	Subject   *string        `json:"sub"`
	Context   map[string]string `json:"ctx"`
	ExpiresAt *int64         `json:"exp"`
	IssuedAt  int64          `json:"iat"`
}
