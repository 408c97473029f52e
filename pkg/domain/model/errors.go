package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for categorization
var (
	// ErrTagMalformedRecord marks a record whose publication date cannot be bucketed
	ErrTagMalformedRecord = goerr.NewTag("malformed_record")
	// ErrTagInvertedRange marks a bound or date range whose lower end is after its upper end
	ErrTagInvertedRange = goerr.NewTag("inverted_range")
	// ErrTagEmptyInput marks an aggregation over zero records where no bound can be derived
	ErrTagEmptyInput = goerr.NewTag("empty_input")
	// ErrTagInvalidMonth marks a month key outside 1-12
	ErrTagInvalidMonth = goerr.NewTag("invalid_month")
	// ErrTagInvalidQuery marks a query that cannot be sent to the registry
	ErrTagInvalidQuery = goerr.NewTag("invalid_query")
	// ErrTagRegistry marks a failed or unreadable registry response
	ErrTagRegistry = goerr.NewTag("registry")
)

// Sentinel errors for domain operations
var (
	ErrPullNotFound = goerr.New("pull not found")
)
