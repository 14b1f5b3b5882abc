// Package entity defines the domain entities for the generate feature.
package entity

// Page is a generated landing page: the prompt that produced it and the
// cleaned HTML document returned by the completion API. Pages are never
// persisted; they exist only for the duration of the request.
type Page struct {
	Prompt string
	HTML   string
}
