// Package handler adapts typed request handlers to net/http for a JSON API.
//
// A HandlerFunc receives a Context and a request value decoded by binders
// from pkg/binder, and returns a Response. Wrap turns it into an
// http.HandlerFunc. Errors from binding or rendering go through an
// ErrorHandler, which classifies them (HTTPError, binder failures, anything
// else as 500), logs them with the request id and writes
//
//	{"message": "<human readable text>"}
//
// with the matching status. Handlers can return handler.Error(err) to use the
// same mapping for domain errors converted to HTTPError.
package handler
