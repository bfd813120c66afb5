package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrManifestNotLoaded indicates generation was requested before a
	// root manifest was fetched
	ErrManifestNotLoaded = errors.New("no manifest loaded")

	// ErrProfileCorrupted indicates a saved configuration file contains
	// invalid JSON
	ErrProfileCorrupted = errors.New("profile file is corrupted")

	// ErrProfileNotFound indicates the saved configuration file does not exist
	ErrProfileNotFound = errors.New("profile file not found")

	// ErrInvalidDocument indicates the fetched manifest is not valid YAML
	ErrInvalidDocument = errors.New("invalid manifest document")
)

// FetchError represents a failure fetching the root manifest document
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(url string, statusCode int, err error) *FetchError {
	return &FetchError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// InvalidURLError represents a malformed manifest reference
type InvalidURLError struct {
	URL string
	Err error
}

func (e *InvalidURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid manifest URL %q: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("invalid manifest URL %q", e.URL)
}

func (e *InvalidURLError) Unwrap() error {
	return e.Err
}

// NewInvalidURLError creates a new InvalidURLError
func NewInvalidURLError(url string, err error) *InvalidURLError {
	return &InvalidURLError{URL: url, Err: err}
}
