// Package usecase implements the business logic for the generate feature.
package usecase

import "errors"

var (
	// ErrEmptyPrompt is returned when the prompt is empty or whitespace only.
	// The check happens before any network activity.
	ErrEmptyPrompt = errors.New("prompt is empty")

	// ErrPromptTooLong is returned when the prompt exceeds MaxPromptLength.
	ErrPromptTooLong = errors.New("prompt is too long")

	// ErrCompletionUnavailable is returned when the external completion API
	// fails (network error, API error, malformed or empty response).
	// The call is never retried automatically; the user may resubmit.
	ErrCompletionUnavailable = errors.New("completion service unavailable")

	// ErrCompletionTimeout is returned when the completion call exceeds the
	// configured deadline.
	ErrCompletionTimeout = errors.New("completion request timed out")
)
