package rmicrobit

import (
	"github.com/mattheww/rmicrobit/buttons"
)

// NewButtons configures the two button pins and returns a Button for
// each, with no debouncing.
//
// At the intended 6ms polling interval the built-in buttons need no
// debouncing; pass buttons.Opts to buttons.New directly to choose a
// different algorithm.
func NewButtons(pins ButtonPins) (a, b *buttons.Button, err error) {
	a, err = buttons.New(pins.A, nil)
	if err != nil {
		return nil, nil, err
	}
	b, err = buttons.New(pins.B, nil)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
