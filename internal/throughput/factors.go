// Package throughput models the effective transfer rate and duration of each
// migration mechanism (DataSync, DMS, Snowball) from instance, network, file
// and database characteristics. All computations are pure given the catalog.
package throughput

// Factor is one named multiplier in an efficiency chain. Keeping the chain
// explicit lets callers and tests inspect individual contributions instead
// of a single opaque product.
type Factor struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Chain is an ordered list of factors applied multiplicatively.
type Chain []Factor

// Product returns the product of all factor values; an empty chain is 1.
func (c Chain) Product() float64 {
	product := 1.0
	for _, f := range c {
		product *= f.Value
	}
	return product
}
