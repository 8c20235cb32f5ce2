package domain

import "errors"

// Sentinel errors surfaced to the transport layer. The transport maps them
// onto the portal's response envelope; anything unrecognized becomes a
// generic internal error without leaking details.
var (
	// ErrEmptyQuery is returned when a search query is empty or whitespace.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrNoResults marks a search that matched nothing. Soft failure: the
	// UI distinguishes "no results" from "system broke".
	ErrNoResults = errors.New("no results found")
)
