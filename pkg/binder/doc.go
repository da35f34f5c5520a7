// Package binder decodes HTTP request bodies into typed request structs.
//
//	type loginRequest struct {
//		Email    string `json:"email"`
//		Password string `json:"password"`
//	}
//
//	var req loginRequest
//	if err := binder.JSON()(r, &req); err != nil {
//		// errors.Is(err, binder.ErrFailedToParseJSON) etc.
//	}
//
// String fields are left untouched; normalization of identities is the
// caller's job, and passwords must reach the hasher byte for byte.
package binder
