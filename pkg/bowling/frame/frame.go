// Package frame groups throws into bowling frames. A frame is one of two
// kinds: a standard frame (positions 1-9) holding at most two throws, or the
// final frame (position 10) holding up to three. Both kinds share throw
// accumulation and differ in completion, validation and scoring rules.
package frame

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/germanamz/tenpin/pkg/bowling/throw"
)

var (
	// ErrComplete is returned when a throw is added to a complete frame.
	ErrComplete = errors.New("frame: frame is already complete")
	// ErrOverflow is returned when throws sharing one rack exceed ten pins.
	ErrOverflow = errors.New("frame: frame adds up to more than 10 pins")
)

// Kind identifies the frame variant.
type Kind int

const (
	KindStandard Kind = iota
	KindFinal
)

func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindFinal:
		return "final"
	default:
		return "unknown"
	}
}

// View is a read-only view of a frame for reporting.
type View interface {
	Kind() Kind
	Throws() []throw.Throw
	Marks() []string
	IsComplete() bool
	IsStrike() bool
	IsSpare() bool
}

// Snapshot is an immutable copy of a frame taken at one point in the game.
// It exposes the View methods only.
type Snapshot struct {
	f *Frame
}

func (s Snapshot) Kind() Kind { return s.f.Kind() }
func (s Snapshot) Throws() []throw.Throw { return s.f.Throws() }
func (s Snapshot) Marks() []string { return s.f.Marks() }
func (s Snapshot) IsComplete() bool { return s.f.IsComplete() }
func (s Snapshot) IsStrike() bool { return s.f.IsStrike() }
func (s Snapshot) IsSpare() bool { return s.f.IsSpare() }

// Frame holds the throws of one frame. Construct it with NewStandard or
// NewFinal; a frame always has at least one throw.
type Frame struct {
	kind   Kind
	throws []throw.Throw
}

// NewStandard opens a standard frame with its first throw.
func NewStandard(first throw.Throw) *Frame {
	return newFrame(KindStandard, first)
}

// NewFinal opens the final frame with its first throw.
func NewFinal(first throw.Throw) *Frame {
	return newFrame(KindFinal, first)
}

func newFrame(kind Kind, first throw.Throw) *Frame {
	throws := make([]throw.Throw, 1, 3)
	throws[0] = first

	return &Frame{kind: kind, throws: throws}
}

// Kind returns the frame variant.
func (f *Frame) Kind() Kind { return f.kind }

// Throws returns a copy of the recorded throws in order.
func (f *Frame) Throws() []throw.Throw {
	cp := make([]throw.Throw, len(f.throws))
	copy(cp, f.throws)

	return cp
}

// IsStrike reports whether the first throw knocked down every pin.
func (f *Frame) IsStrike() bool { return f.throws[0].IsStrike() }

// IsSpare reports whether the first two throws cleared the rack without a
// strike on the first.
func (f *Frame) IsSpare() bool {
	if len(f.throws) < 2 || f.IsStrike() {
		return false
	}

	return f.throws[0].Pins()+f.throws[1].Pins() == throw.MaxPins
}

// IsComplete reports whether the frame accepts no more throws.
func (f *Frame) IsComplete() bool {
	n := len(f.throws)

	if f.kind == KindStandard {
		return n == 2 || f.IsStrike()
	}

	// Only a strike on the first throw extends the final frame to three.
	return n == 3 || (n == 2 && !f.IsStrike())
}

// AddThrow records the next throw. It returns ErrComplete when the frame is
// closed and, for a standard frame, ErrOverflow when both throws together
// exceed ten pins. The final frame accepts any valid pin count. The frame is
// unchanged on error.
func (f *Frame) AddThrow(t throw.Throw) error {
	if f.IsComplete() {
		return ErrComplete
	}

	if f.kind == KindStandard {
		if standing := throw.MaxPins - f.throws[0].Pins(); t.Pins() > standing {
			return fmt.Errorf("%w: %d pins thrown, %d standing", ErrOverflow, t.Pins(), standing)
		}
	}

	f.throws = append(f.throws, t)

	return nil
}

// Snapshot returns a detached read-only copy of the frame.
func (f *Frame) Snapshot() Snapshot {
	return Snapshot{f: &Frame{kind: f.kind, throws: f.Throws()}}
}

// Score returns the frame's points given the pin counts of the next two
// throws after the frame. Pass 0 for throws that have not happened yet. The
// final frame never depends on throws outside itself and ignores both
// arguments.
func (f *Frame) Score(throwAfter, throwAfterThat int) int {
	if f.kind == KindFinal {
		return f.pinSum()
	}

	switch {
	case f.IsStrike():
		return throw.MaxPins + throwAfter + throwAfterThat
	case f.IsSpare():
		return throw.MaxPins + throwAfter
	default:
		return f.pinSum()
	}
}

// IsScoreResolved reports whether futureThrows recorded after this frame are
// enough for Score to be final.
func (f *Frame) IsScoreResolved(futureThrows int) bool {
	if !f.IsComplete() {
		return false
	}

	if f.kind == KindFinal {
		return true
	}

	return futureThrows >= f.bonusThrows()
}

// bonusThrows is how many throws after the frame its score depends on.
func (f *Frame) bonusThrows() int {
	switch {
	case f.kind == KindFinal:
		return 0
	case f.IsStrike():
		return 2
	case f.IsSpare():
		return 1
	default:
		return 0
	}
}

// Marks returns the conventional scoresheet symbol for each recorded throw:
// "X" for a strike, "/" for the throw that converts a spare, "-" for a miss
// and the pin count otherwise.
func (f *Frame) Marks() []string {
	marks := make([]string, 0, len(f.throws))
	open := false
	prev := 0

	for _, t := range f.throws {
		switch {
		case open && prev+t.Pins() == throw.MaxPins:
			marks = append(marks, "/")
			open = false
		case open:
			marks = append(marks, pinMark(t.Pins()))
			open = false
		case t.IsStrike():
			marks = append(marks, "X")
		default:
			marks = append(marks, pinMark(t.Pins()))
			open = true
			prev = t.Pins()
		}
	}

	return marks
}

func (f *Frame) pinSum() int {
	sum := 0
	for _, t := range f.throws {
		sum += t.Pins()
	}

	return sum
}

func pinMark(pins int) string {
	if pins == 0 {
		return "-"
	}

	return strconv.Itoa(pins)
}
