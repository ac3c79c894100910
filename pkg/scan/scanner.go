// Package scan implements the multi-mode maximal-munch scanner that drives
// manual-page generation. An ordered rule list is evaluated at the current
// position; among the rules eligible in the active mode, the one matching
// the longest lexeme wins, with the earlier rule breaking ties. A rule may
// push its whole lexeme back so the new mode re-evaluates it fresh.
package scan

import (
	"errors"
	"fmt"
)

// ErrNoMatch indicates no eligible rule matched at the current position.
// The input document does not have the structure the grammar expects.
var ErrNoMatch = errors.New("no rule matches input")

// errStalled guards against a rule set that pushes back without making
// progress, which is a grammar bug rather than an input problem.
var errStalled = errors.New("scanner stalled")

// Matcher reports the length of the lexeme a rule matches at the start of
// rest, or 0 for no match.
type Matcher func(rest []byte) int

// Rule pairs a pattern with the action it triggers. Rule order is
// significant: earlier rules win length ties.
type Rule struct {
	// Name identifies the rule in diagnostics.
	Name string

	// Modes is the set of modes in which the rule is eligible.
	Modes ModeSet

	// Match reports the matched lexeme length, 0 for no match.
	Match Matcher

	// Action consumes the matched lexeme. Nil discards it.
	Action func(lexeme []byte) error

	// Next is the mode entered after the action, or ModeSame to keep the
	// current mode.
	Next Mode

	// Pushback returns the whole lexeme to the stream after the action so
	// the next mode re-evaluates it. A pushback rule must change mode.
	Pushback bool
}

// Finalizer runs when end of input is reached in one of its modes,
// flushing whatever block was still accumulating.
type Finalizer struct {
	Name   string
	Modes  ModeSet
	Action func() error
	Next   Mode
}

// Scanner consumes an input document one matched lexeme at a time.
type Scanner struct {
	input  []byte
	pos    int
	mode   Mode
	rules  []Rule
	finals []Finalizer
}

// New creates a Scanner over input starting in ModeDefault.
func New(input []byte, rules []Rule, finals []Finalizer) *Scanner {
	return &Scanner{input: input, rules: rules, finals: finals}
}

// Mode returns the active mode, for tests and diagnostics.
func (s *Scanner) Mode() Mode {
	return s.mode
}

// Pos returns the current byte offset into the input.
func (s *Scanner) Pos() int {
	return s.pos
}

// Run scans the whole input. Every byte is consumed by exactly one rule;
// any malformation aborts the run with an error identifying the offending
// fragment.
func (s *Scanner) Run() error {
	stalls := 0
	for s.pos < len(s.input) {
		rest := s.input[s.pos:]

		best := -1
		bestLen := 0
		for i := range s.rules {
			r := &s.rules[i]
			if !r.Modes.Has(s.mode) {
				continue
			}
			if n := r.Match(rest); n > bestLen {
				best = i
				bestLen = n
			}
		}
		if best < 0 {
			return fmt.Errorf("%w at offset %d (mode %s): %q",
				ErrNoMatch, s.pos, s.mode, excerpt(rest))
		}

		r := &s.rules[best]
		lexeme := rest[:bestLen]
		if r.Action != nil {
			if err := r.Action(lexeme); err != nil {
				return fmt.Errorf("rule %s at offset %d: %w", r.Name, s.pos, err)
			}
		}
		if r.Pushback {
			stalls++
			if stalls > len(s.rules) {
				return fmt.Errorf("%w at offset %d (rule %s)", errStalled, s.pos, r.Name)
			}
		} else {
			s.pos += bestLen
			stalls = 0
		}
		if r.Next != ModeSame {
			s.mode = r.Next
		}
	}

	return s.finish()
}

// finish runs finalizers until none applies to the active mode, so a block
// still accumulating at end of input is flushed.
func (s *Scanner) finish() error {
	for range len(s.finals) + 1 {
		ran := false
		for i := range s.finals {
			f := &s.finals[i]
			if !f.Modes.Has(s.mode) {
				continue
			}
			if err := f.Action(); err != nil {
				return fmt.Errorf("finalizer %s: %w", f.Name, err)
			}
			s.mode = f.Next
			ran = true
			break
		}
		if !ran {
			return nil
		}
	}
	return fmt.Errorf("%w: finalizers loop in mode %s", errStalled, s.mode)
}

func excerpt(s []byte) string {
	const n = 40
	if len(s) <= n {
		return string(s)
	}
	return string(s[:n]) + "..."
}
