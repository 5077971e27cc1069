package lane

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/germanamz/tenpin/pkg/bowling/game"
	"github.com/germanamz/tenpin/pkg/scoresheet"
)

// ErrInvalidInput is returned by ParseThrow for text that is not an integer.
var ErrInvalidInput = errors.New("lane: invalid input")

// ParseThrow converts a line of user input into a pin count. It only checks
// that the text is an integer; the pin range is validated by the game.
func ParseThrow(input string) (int, error) {
	pins, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, strings.TrimSpace(input))
	}

	return pins, nil
}

// Lane is one bowler's game together with its configuration and logger.
// It is not safe for concurrent use.
type Lane struct {
	cfg  Config
	log  *slog.Logger
	game *game.Game
	// games counts the games started on this lane, including the current one.
	games int
}

// New creates a Lane with an empty game. A nil logger discards output.
func New(cfg Config, log *slog.Logger) (*Lane, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Lane{
		cfg:   cfg,
		log:   log.With("bowler", cfg.Bowler),
		game:  game.New(),
		games: 1,
	}, nil
}

// Bowler returns the configured bowler name.
func (l *Lane) Bowler() string { return l.cfg.Bowler }

// Game exposes the underlying game for read-only inspection.
func (l *Lane) Game() *game.Game { return l.game }

// GameNumber returns the 1-based number of the current game on this lane.
func (l *Lane) GameNumber() int { return l.games }

// Roll records a throw and returns the updated sheet. Errors from the game
// are returned unwrapped so callers can match them with errors.Is; a
// game.ErrFrameLimitExceeded means the game is over and NewGame is needed.
func (l *Lane) Roll(pins int) (scoresheet.Sheet, error) {
	frameNo := l.game.CurrentFrameNumber()

	if err := l.game.AddThrow(pins); err != nil {
		l.log.Warn("throw rejected",
			"game", l.games,
			"frame", frameNo,
			"pins", pins,
			"error", err,
		)
		return l.Sheet(), err
	}

	sheet := l.Sheet()
	l.log.Debug("throw recorded", "game", l.games, "frame", frameNo, "pins", pins)

	if row := sheet.Rows[len(sheet.Rows)-1]; row.Complete && row.Number == frameNo {
		l.log.Info("frame complete",
			"game", l.games,
			"frame", frameNo,
			"marks", strings.Join(row.Marks, ","),
			"running_total", row.Total,
		)
	}

	if sheet.State == game.StateFull {
		l.log.Info("game complete", "game", l.games, "total", sheet.Total)
	}

	return sheet, nil
}

// RollInput parses input and rolls it.
func (l *Lane) RollInput(input string) (scoresheet.Sheet, error) {
	pins, err := ParseThrow(input)
	if err != nil {
		l.log.Debug("input rejected", "input", input)
		return l.Sheet(), err
	}

	return l.Roll(pins)
}

// Sheet snapshots the current game.
func (l *Lane) Sheet() scoresheet.Sheet {
	return scoresheet.Build(l.cfg.Bowler, l.game)
}

// Render formats the current sheet with the configured pending mode.
func (l *Lane) Render() string {
	return scoresheet.Render(l.Sheet(), l.RenderOptions())
}

// RenderOptions returns the scoresheet options derived from the config.
func (l *Lane) RenderOptions() scoresheet.Options {
	return scoresheet.Options{Pending: l.cfg.PendingScores}
}

// NewGame discards the current game and starts an empty one.
func (l *Lane) NewGame() {
	l.log.Info("game reset",
		"game", l.games,
		"state", l.game.State().String(),
		"total", l.game.Total(),
	)

	l.game.Reset()
	l.games++
}
