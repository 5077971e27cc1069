// Package lane is the composition root of tenpin. It loads configuration,
// owns the logger and one bowler's game, and exposes the operations a
// frontend needs: parse and roll a throw, snapshot and render the
// scoresheet, and start a new game. Frontends (the plain console loop and
// the TUI) talk to a Lane and never drive the scoring packages directly.
package lane
