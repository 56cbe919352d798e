package hashlife

import "github.com/pkg/errors"

// newLevelMismatchError builds the invalid-argument error raised by Node
// when its four children are not all the same level.
func newLevelMismatchError(nw, ne, sw, se int) error {
	return errors.Errorf(
		"hashlife: node children at mismatched levels nw=%d ne=%d sw=%d se=%d",
		nw, ne, sw, se,
	)
}

// newNilChildError builds the invalid-argument error raised by Node when
// one of its children is nil.
func newNilChildError() error {
	return errors.New("hashlife: node child must not be nil")
}

// newShortASCIIError builds the invalid-argument error raised by
// TileFromASCII when fewer than 64 cell characters are present.
func newShortASCIIError(got int) error {
	return errors.Errorf("hashlife: tile ASCII has %d cell characters, want 64", got)
}
