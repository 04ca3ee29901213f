package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers any missing record: note, schedule or summary.
	ErrNotFound = errors.New("record not found")
	// ErrMalformedDocument means uploaded bytes could not be parsed as a document.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrUnavailable means the online summarizer has no credential configured.
	// Expected condition in offline deployments, not a bug.
	ErrUnavailable = errors.New("online summarizer unavailable")
	// ErrSummarizationFailed means the online call was made and failed.
	ErrSummarizationFailed = errors.New("summarization failed")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrTemporary           = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
