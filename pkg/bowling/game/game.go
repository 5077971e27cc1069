// Package game tracks one bowler's frames and resolves the scoresheet.
//
// Throws are routed to the open frame, or to a new one once the previous
// frame is complete. Scores are computed on demand by walking the frames in
// reverse and feeding each one the pin counts of the throws that follow it,
// so a best-effort scoresheet is available at any point in the game.
package game

import (
	"errors"
	"fmt"

	"github.com/germanamz/tenpin/pkg/bowling/frame"
	"github.com/germanamz/tenpin/pkg/bowling/throw"
)

// MaxFrames is the number of frames in a game.
const MaxFrames = 10

// ErrFrameLimitExceeded is returned when a throw would open an eleventh frame.
var ErrFrameLimitExceeded = errors.New("game: frame limit reached")

// State is the lifecycle position of a game.
type State int

const (
	StateEmpty State = iota
	StateInProgress
	StateFull
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateInProgress:
		return "in_progress"
	case StateFull:
		return "full"
	default:
		return "unknown"
	}
}

// Game is the ordered frame sequence of one bowler. The zero value is an
// empty game ready to use. A Game is not safe for concurrent use.
type Game struct {
	frames []*frame.Frame
}

// New creates an empty Game.
func New() *Game {
	return &Game{frames: make([]*frame.Frame, 0, MaxFrames)}
}

// AddThrow records a throw of pins. It fails with throw.ErrOutOfRange,
// frame.ErrComplete, frame.ErrOverflow or ErrFrameLimitExceeded and leaves
// the game unchanged when it does.
func (g *Game) AddThrow(pins int) error {
	t, err := throw.New(pins)
	if err != nil {
		return err
	}

	last := g.last()
	if last != nil && !last.IsComplete() {
		return last.AddThrow(t)
	}

	switch n := len(g.frames); {
	case n < MaxFrames-1:
		g.frames = append(g.frames, frame.NewStandard(t))
	case n == MaxFrames-1:
		g.frames = append(g.frames, frame.NewFinal(t))
	default:
		return fmt.Errorf("%w: already have %d frames", ErrFrameLimitExceeded, n)
	}

	return nil
}

// CurrentFrameNumber returns the 1-based frame the next throw belongs to,
// never more than MaxFrames.
func (g *Game) CurrentFrameNumber() int {
	last := g.last()
	if last == nil {
		return 1
	}

	n := len(g.frames)
	if last.IsComplete() {
		n++
	}

	return min(n, MaxFrames)
}

// CalculateScores returns the points of each frame in play order. Frames
// waiting on throws that have not happened yet are scored as if those
// throws knocked down no pins; see ResolvedScores.
func (g *Game) CalculateScores() []int {
	scores := make([]int, len(g.frames))
	// Pin counts of the throws after the current frame, nearest first.
	lookahead := make([]int, 0, 2)

	for i := len(g.frames) - 1; i >= 0; i-- {
		f := g.frames[i]
		scores[i] = f.Score(at(lookahead, 0), at(lookahead, 1))

		throws := f.Throws()
		for j := len(throws) - 1; j >= 0; j-- {
			lookahead = prepend(lookahead, throws[j].Pins())
		}
	}

	return scores
}

// ResolvedScores reports, for each frame in play order, whether enough
// throws follow it for its CalculateScores value to be final.
func (g *Game) ResolvedScores() []bool {
	resolved := make([]bool, len(g.frames))
	future := 0

	for i := len(g.frames) - 1; i >= 0; i-- {
		f := g.frames[i]
		resolved[i] = f.IsScoreResolved(future)
		future += len(f.Throws())
	}

	return resolved
}

// Total returns the sum of all frame scores.
func (g *Game) Total() int {
	total := 0
	for _, s := range g.CalculateScores() {
		total += s
	}

	return total
}

// Frames returns read-only snapshots of the frames in play order. Later
// throws do not change a snapshot already returned.
func (g *Game) Frames() []frame.View {
	views := make([]frame.View, len(g.frames))
	for i, f := range g.frames {
		views[i] = f.Snapshot()
	}

	return views
}

// State reports where the game is in its lifecycle.
func (g *Game) State() State {
	last := g.last()

	switch {
	case last == nil:
		return StateEmpty
	case len(g.frames) == MaxFrames && last.IsComplete():
		return StateFull
	default:
		return StateInProgress
	}
}

// IsFull reports whether the tenth frame is complete.
func (g *Game) IsFull() bool { return g.State() == StateFull }

// Reset clears every frame so a new game can start.
func (g *Game) Reset() {
	clear(g.frames)
	g.frames = g.frames[:0]
}

func (g *Game) last() *frame.Frame {
	if len(g.frames) == 0 {
		return nil
	}

	return g.frames[len(g.frames)-1]
}

func at(s []int, i int) int {
	if i < len(s) {
		return s[i]
	}

	return 0
}

// prepend pushes v to the front of a buffer that only ever needs to hold the
// two nearest throws.
func prepend(s []int, v int) []int {
	if len(s) < 2 {
		s = append(s, 0)
	}

	copy(s[1:], s)
	s[0] = v

	return s
}
