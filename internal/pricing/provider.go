package pricing

import "context"

// Filter is a single TERM_MATCH constraint in a price list query.
type Filter struct {
	Field string
	Value string
}

// Query describes one price list lookup against a pricing provider.
type Query struct {
	ServiceCode string
	Filters     []Filter
}

// Provider performs live unit price lookups. Implementations must return an
// error for absent or malformed responses; the resolver converts any error
// into a fallback value plus a warning, it never retries.
type Provider interface {
	// UnitPrice returns the first on-demand USD unit price matching the
	// query.
	UnitPrice(ctx context.Context, q Query) (float64, error)
}
