package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germanamz/tenpin/pkg/bowling/throw"
)

func mustThrow(t *testing.T, pins int) throw.Throw {
	t.Helper()

	th, err := throw.New(pins)
	require.NoError(t, err)

	return th
}

// build opens a frame of the given kind and adds the remaining pins.
func build(t *testing.T, kind Kind, pins ...int) *Frame {
	t.Helper()

	var f *Frame
	if kind == KindFinal {
		f = NewFinal(mustThrow(t, pins[0]))
	} else {
		f = NewStandard(mustThrow(t, pins[0]))
	}

	for _, p := range pins[1:] {
		require.NoError(t, f.AddThrow(mustThrow(t, p)))
	}

	return f
}

func TestStandard_StrikeCompletesAfterOneThrow(t *testing.T) {
	f := build(t, KindStandard, 10)

	assert.True(t, f.IsStrike())
	assert.True(t, f.IsComplete())
	assert.Len(t, f.Throws(), 1)

	err := f.AddThrow(mustThrow(t, 0))
	require.ErrorIs(t, err, ErrComplete)
	assert.Len(t, f.Throws(), 1)
}

func TestStandard_NeedsTwoThrowsWithoutStrike(t *testing.T) {
	for first := 0; first < throw.MaxPins; first++ {
		f := build(t, KindStandard, first)
		assert.False(t, f.IsComplete(), "first=%d", first)

		require.NoError(t, f.AddThrow(mustThrow(t, 0)))
		assert.True(t, f.IsComplete(), "first=%d", first)

		require.ErrorIs(t, f.AddThrow(mustThrow(t, 0)), ErrComplete)
	}
}

func TestStandard_Overflow(t *testing.T) {
	f := build(t, KindStandard, 6)

	err := f.AddThrow(mustThrow(t, 5))
	require.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, []throw.Throw{mustThrow(t, 6)}, f.Throws())
	assert.False(t, f.IsComplete())

	require.NoError(t, f.AddThrow(mustThrow(t, 4)))
	assert.True(t, f.IsSpare())
}

func TestStandard_Score(t *testing.T) {
	tests := []struct {
		name           string
		pins           []int
		after, afterAt int
		want           int
	}{
		{name: "strike", pins: []int{10}, after: 7, afterAt: 3, want: 20},
		{name: "strike without lookahead", pins: []int{10}, want: 10},
		{name: "spare", pins: []int{6, 4}, after: 5, afterAt: 9, want: 15},
		{name: "open", pins: []int{3, 4}, after: 10, afterAt: 10, want: 7},
		{name: "pending second throw", pins: []int{8}, after: 10, want: 8},
		{name: "gutter", pins: []int{0, 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := build(t, KindStandard, tt.pins...)
			assert.Equal(t, tt.want, f.Score(tt.after, tt.afterAt))
		})
	}
}

func TestStandard_IsScoreResolved(t *testing.T) {
	tests := []struct {
		name   string
		pins   []int
		future int
		want   bool
	}{
		{name: "open needs nothing", pins: []int{3, 4}, future: 0, want: true},
		{name: "incomplete never resolved", pins: []int{3}, future: 5, want: false},
		{name: "spare waiting", pins: []int{5, 5}, future: 0, want: false},
		{name: "spare resolved", pins: []int{5, 5}, future: 1, want: true},
		{name: "strike waiting", pins: []int{10}, future: 1, want: false},
		{name: "strike resolved", pins: []int{10}, future: 2, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := build(t, KindStandard, tt.pins...)
			assert.Equal(t, tt.want, f.IsScoreResolved(tt.future))
		})
	}
}

func TestFinal_Completion(t *testing.T) {
	tests := []struct {
		name     string
		pins     []int
		complete bool
	}{
		{name: "single throw", pins: []int{7}, complete: false},
		{name: "open tenth", pins: []int{7, 2}, complete: true},
		{name: "spare closes tenth", pins: []int{7, 3}, complete: true},
		{name: "strike earns two", pins: []int{10}, complete: false},
		{name: "strike then one", pins: []int{10, 4}, complete: false},
		{name: "strike then spare", pins: []int{10, 4, 6}, complete: true},
		{name: "three strikes", pins: []int{10, 10, 10}, complete: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := build(t, KindFinal, tt.pins...)
			assert.Equal(t, tt.complete, f.IsComplete())
			assert.Equal(t, tt.complete, f.IsScoreResolved(0))
		})
	}
}

func TestFinal_RejectsFourthThrow(t *testing.T) {
	f := build(t, KindFinal, 10, 10, 10)

	require.ErrorIs(t, f.AddThrow(mustThrow(t, 1)), ErrComplete)
	assert.Len(t, f.Throws(), 3)
}

func TestFinal_SpareGetsNoBonusThrow(t *testing.T) {
	f := build(t, KindFinal, 6, 4)

	require.ErrorIs(t, f.AddThrow(mustThrow(t, 5)), ErrComplete)
	assert.Len(t, f.Throws(), 2)
	assert.Equal(t, 10, f.Score(0, 0))
}

func TestFinal_AcceptsAnyPinCount(t *testing.T) {
	tests := []struct {
		name string
		pins []int
		want int
	}{
		{name: "two throws over ten", pins: []int{6, 5}, want: 11},
		{name: "bonus throws over ten", pins: []int{10, 7, 4}, want: 21},
		{name: "strike then nine then strike", pins: []int{10, 9, 10}, want: 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := build(t, KindFinal, tt.pins...)
			assert.True(t, f.IsComplete())
			assert.Equal(t, tt.want, f.Score(0, 0))
		})
	}
}

func TestFinal_ScoreIgnoresLookahead(t *testing.T) {
	assert.Equal(t, 30, build(t, KindFinal, 10, 10, 10).Score(10, 10))
	assert.Equal(t, 19, build(t, KindFinal, 10, 8, 1).Score(5, 5))
	assert.Equal(t, 9, build(t, KindFinal, 9, 0).Score(10, 10))
}

func TestMarks(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		pins []int
		want []string
	}{
		{name: "strike", kind: KindStandard, pins: []int{10}, want: []string{"X"}},
		{name: "spare", kind: KindStandard, pins: []int{7, 3}, want: []string{"7", "/"}},
		{name: "gutter spare", kind: KindStandard, pins: []int{0, 10}, want: []string{"-", "/"}},
		{name: "open", kind: KindStandard, pins: []int{0, 6}, want: []string{"-", "6"}},
		{name: "pending", kind: KindStandard, pins: []int{4}, want: []string{"4"}},
		{name: "final turkey", kind: KindFinal, pins: []int{10, 10, 10}, want: []string{"X", "X", "X"}},
		{name: "final strike spare", kind: KindFinal, pins: []int{10, 8, 2}, want: []string{"X", "8", "/"}},
		{name: "final spare", kind: KindFinal, pins: []int{9, 1}, want: []string{"9", "/"}},
		{name: "final strike open", kind: KindFinal, pins: []int{10, 7, 4}, want: []string{"X", "7", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, build(t, tt.kind, tt.pins...).Marks())
		})
	}
}

func TestThrows_ReturnsCopy(t *testing.T) {
	f := build(t, KindStandard, 3, 4)

	throws := f.Throws()
	throws[0] = mustThrow(t, 9)

	assert.Equal(t, 3, f.Throws()[0].Pins())
}

func TestSnapshot_IsDetached(t *testing.T) {
	f := build(t, KindStandard, 4)
	snap := f.Snapshot()

	require.NoError(t, f.AddThrow(mustThrow(t, 6)))

	assert.Equal(t, []string{"4"}, snap.Marks())
	assert.False(t, snap.IsComplete())
	assert.Equal(t, KindStandard, snap.Kind())
	assert.True(t, f.IsSpare())

	var v View = snap
	_, ok := v.(*Frame)
	assert.False(t, ok)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "standard", KindStandard.String())
	assert.Equal(t, "final", KindFinal.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
