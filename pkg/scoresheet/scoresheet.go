// Package scoresheet turns a game into the rows of a bowling scoresheet and
// renders them as text: the marks of each frame, the points of each frame,
// the running total and the game status.
package scoresheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/germanamz/tenpin/pkg/bowling/frame"
	"github.com/germanamz/tenpin/pkg/bowling/game"
)

// FieldWidth is the width of every score field.
const FieldWidth = 3

const labelWidth = 21

// PendingMode selects how frames whose score still waits on future throws
// are displayed.
type PendingMode string

const (
	// PendingProvisional shows the score computed with missing throws
	// counted as zero.
	PendingProvisional PendingMode = "provisional"
	// PendingPlaceholder leaves the score and running total blank until the
	// frame is resolved.
	PendingPlaceholder PendingMode = "placeholder"
)

// Valid reports whether m is a known mode.
func (m PendingMode) Valid() bool {
	return m == PendingProvisional || m == PendingPlaceholder
}

// Row is one frame of the sheet.
type Row struct {
	Number   int
	Kind     frame.Kind
	Marks    []string
	Score    int
	Total    int
	Resolved bool
	Complete bool
}

// Sheet is a snapshot of a game ready for display.
type Sheet struct {
	Bowler       string
	Rows         []Row
	CurrentFrame int
	Total        int
	State        game.State
}

// Options controls rendering.
type Options struct {
	Pending PendingMode
}

// Build snapshots g for bowler.
func Build(bowler string, g *game.Game) Sheet {
	frames := g.Frames()
	scores := g.CalculateScores()
	resolved := g.ResolvedScores()

	rows := make([]Row, len(frames))
	total := 0
	for i, f := range frames {
		total += scores[i]
		rows[i] = Row{
			Number:   i + 1,
			Kind:     f.Kind(),
			Marks:    f.Marks(),
			Score:    scores[i],
			Total:    total,
			Resolved: resolved[i],
			Complete: f.IsComplete(),
		}
	}

	return Sheet{
		Bowler:       bowler,
		Rows:         rows,
		CurrentFrame: g.CurrentFrameNumber(),
		Total:        total,
		State:        g.State(),
	}
}

// Scores returns the per-frame points in play order.
func (s Sheet) Scores() []int {
	out := make([]int, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.Score
	}

	return out
}

// Cumulative returns the running total after each frame.
func (s Sheet) Cumulative() []int {
	out := make([]int, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.Total
	}

	return out
}

// SettledTotal returns the running total up to the last frame before the
// first unresolved one, and whether every frame is resolved.
func (s Sheet) SettledTotal() (int, bool) {
	total := 0
	for _, r := range s.Rows {
		if !r.Resolved {
			return total, false
		}
		total = r.Total
	}

	return total, true
}

// Render formats the sheet as four lines: status, frame marks, frame scores
// and running totals.
func Render(s Sheet, opts Options) string {
	if opts.Pending == "" {
		opts.Pending = PendingProvisional
	}

	var sb strings.Builder

	sb.WriteString(label("Stats:"))
	sb.WriteString(Status(s, opts))
	sb.WriteString("\n")

	cells := make([]string, len(s.Rows))
	for i, r := range s.Rows {
		cells[i] = frameCell(r)
	}
	sb.WriteString(label("Frames:"))
	sb.WriteString(strings.Join(cells, "|"))
	if n := len(s.Rows); n > 0 && s.Rows[n-1].Complete {
		sb.WriteString("|")
	}
	sb.WriteString("\n")

	scores := make([]string, len(s.Rows))
	totals := make([]string, len(s.Rows))
	// Once a frame is pending every later running total is pending too.
	settled := true
	for i, r := range s.Rows {
		settled = settled && r.Resolved
		if opts.Pending == PendingPlaceholder {
			scores[i] = field(r.Score, r.Resolved)
			totals[i] = field(r.Total, settled)
			continue
		}
		scores[i] = field(r.Score, true)
		totals[i] = field(r.Total, true)
	}
	sb.WriteString(label("Score per Frame:"))
	sb.WriteString(strings.Join(scores, "|"))
	sb.WriteString("\n")
	sb.WriteString(label("Score Running Total:"))
	sb.WriteString(strings.Join(totals, "|"))
	sb.WriteString("\n")

	return sb.String()
}

// Status summarises the bowler, frame and total on one line. In placeholder
// mode the total is the last settled running total, marked pending while any
// frame still waits on future throws.
func Status(s Sheet, opts Options) string {
	var parts []string
	if s.Bowler != "" {
		parts = append(parts, s.Bowler)
	}

	if s.State == game.StateFull {
		parts = append(parts, "Game over")
	} else {
		parts = append(parts, fmt.Sprintf("Frame %d", s.CurrentFrame))
	}

	total, settled := s.SettledTotal()
	switch {
	case opts.Pending != PendingPlaceholder:
		parts = append(parts, fmt.Sprintf("Total %d", s.Total))
	case settled:
		parts = append(parts, fmt.Sprintf("Total %d", total))
	default:
		parts = append(parts, fmt.Sprintf("Total %d (pending)", total))
	}

	return strings.Join(parts, "; ") + ";"
}

// frameCell renders the marks of one frame. A strike in a standard frame is
// centred, a pending second throw is left blank.
func frameCell(r Row) string {
	if r.Kind == frame.KindFinal {
		return runewidth.FillRight(strings.Join(r.Marks, ","), FieldWidth)
	}

	switch {
	case len(r.Marks) == 1 && r.Marks[0] == "X":
		return " X "
	case len(r.Marks) == 1:
		return runewidth.FillRight(r.Marks[0], FieldWidth)
	default:
		return strings.Join(r.Marks, ",")
	}
}

func field(v int, show bool) string {
	if !show {
		return strings.Repeat(" ", FieldWidth)
	}

	return runewidth.FillLeft(strconv.Itoa(v), FieldWidth)
}

func label(s string) string {
	return runewidth.FillRight(s, labelWidth)
}
