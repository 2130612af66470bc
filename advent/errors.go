package main

import (
	"fmt"
	"math"
	"math/bits"
)

// A ParseError reports an input line that does not match its day's grammar.
type ParseError struct {
	Line   int    // 0-based index into the input
	Text   string // the offending line
	Field  string // which part of the line the failure is in
	Reason string
	Err    error // underlying grammar or strconv error, if any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: bad %s: %s (line is %q)", e.Line+1, e.Field, e.Reason, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// An OverflowError reports a number that doesn't fit in an int, either
// as written in the input or as the result of scoring.
type OverflowError struct {
	Line int // -1 if the overflow isn't attributable to one line
	Text string
	Op   string
}

func (e *OverflowError) Error() string {
	msg := "integer overflow in " + e.Op
	if e.Line >= 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line+1, msg)
	}
	if e.Text != "" {
		msg += fmt.Sprintf(" (line is %q)", e.Text)
	}
	return msg
}

func addChecked(a, b int) (int, bool) {
	if b > 0 && a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// mulChecked multiplies two non-negative ints.
func mulChecked(a, b int) (int, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

// sumChecked adds up ns, reporting op on overflow.
func sumChecked(ns []int, op string) (int, error) {
	var total int
	for _, n := range ns {
		var ok bool
		if total, ok = addChecked(total, n); !ok {
			return 0, &OverflowError{Line: -1, Op: op}
		}
	}
	return total, nil
}
