package llm

import (
	"errors"
	"fmt"
	"strings"
)

// AuthError reports a provider with no credential configured. It is returned
// before any network call is attempted.
type AuthError struct {
	Provider string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: no API key configured", e.Provider)
}

// RequestError reports a failed vendor call: transport error, timeout,
// non-2xx status or an empty response.
type RequestError struct {
	Provider string
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ParseError reports vendor output that could not be turned into a JSON object.
type ParseError struct {
	Provider string
	Snippet  string
	Err      error
}

func (e *ParseError) Error() string {
	prefix := "parse"
	if e.Provider != "" {
		prefix = e.Provider + " parse"
	}
	return fmt.Sprintf("%s failed: %v (input %q)", prefix, e.Err, e.Snippet)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownProviderError reports a provider name missing from the registry.
type UnknownProviderError struct {
	Name  string
	Valid []string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider %q (valid: %s)", e.Name, strings.Join(e.Valid, ", "))
}

// ErrorKind returns a short label for logging.
func ErrorKind(err error) string {
	var (
		authErr    *AuthError
		reqErr     *RequestError
		parseErr   *ParseError
		unknownErr *UnknownProviderError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &authErr):
		return "auth"
	case errors.As(err, &reqErr):
		return "request"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &unknownErr):
		return "unknown_provider"
	default:
		return "other"
	}
}
