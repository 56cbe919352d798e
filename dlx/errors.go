// Package dlx implements Knuth's Algorithm X over a four-way circular
// doubly-linked sparse matrix ("dancing links"), producing exact covers of
// a universe given a family of option subsets.
package dlx

import "github.com/pkg/errors"

// newItemIndexError builds the invalid-argument error raised by New when an
// option names an out-of-range item.
func newItemIndexError(option, item, nItems int) error {
	return errors.Errorf(
		"dlx: option %d references item %d, want item in [0, %d)",
		option, item, nItems,
	)
}

// newNegativeSizeError builds the invalid-argument error raised by New when
// nItems is negative.
func newNegativeSizeError(nItems int) error {
	return errors.Errorf("dlx: nItems must be non-negative, got %d", nItems)
}
