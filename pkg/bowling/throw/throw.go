// Package throw represents the pinfall of a single roll.
package throw

import (
	"errors"
	"fmt"
	"strconv"
)

// MaxPins is the number of pins in a full rack.
const MaxPins = 10

// ErrOutOfRange is returned when a pin count falls outside [0, MaxPins].
var ErrOutOfRange = errors.New("throw: pin count out of range")

// Throw is an immutable pin count for one roll.
type Throw struct {
	pins int
}

// New validates pins and returns the Throw.
func New(pins int) (Throw, error) {
	if pins < 0 || pins > MaxPins {
		return Throw{}, fmt.Errorf("%w: %d (must be between 0 and %d)", ErrOutOfRange, pins, MaxPins)
	}

	return Throw{pins: pins}, nil
}

// Pins returns the number of pins knocked down.
func (t Throw) Pins() int { return t.pins }

// IsStrike reports whether all pins fell.
func (t Throw) IsStrike() bool { return t.pins == MaxPins }

func (t Throw) String() string {
	if t.IsStrike() {
		return "X"
	}

	return strconv.Itoa(t.pins)
}
