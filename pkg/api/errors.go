package api

import "errors"

// Run-level errors. Any of these aborts the whole export.
var (
	// ErrAuthFailed indicates a transport failure or non-2xx response from the
	// authentication endpoint.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrMalformedResponse indicates the authentication response body is not JSON.
	ErrMalformedResponse = errors.New("malformed authentication response")

	// ErrTokenMissing indicates the authentication response parsed but carried no
	// access token.
	ErrTokenMissing = errors.New("no access token in authentication response")

	// ErrFetchFailed indicates a transport failure or non-2xx response from the
	// character list endpoint.
	ErrFetchFailed = errors.New("character list fetch failed")

	// ErrUnexpectedFormat indicates the character list response is not a JSON array.
	ErrUnexpectedFormat = errors.New("unexpected character list format")
)

// Per-item errors. The caller skips the affected character and continues.
var (
	ErrDetailFetch  = errors.New("character detail fetch failed")
	ErrDetailDecode = errors.New("character detail decode failed")
)
