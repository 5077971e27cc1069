// Package bowling groups the ten-pin scoring engine. Subpackages build on
// each other leaves first: throw validates a single roll, frame groups rolls
// into standard and final frames and scores them from lookahead values, and
// game routes rolls into frames and resolves the whole scoresheet with a
// single backward pass.
//
// None of the types are safe for concurrent use. Callers serialize access to
// a game, typically one game per bowler.
package bowling
