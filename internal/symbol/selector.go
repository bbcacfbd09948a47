// Package symbol implements symbol selection (spec §4.1): scanning a sample
// corpus to produce a frequency-weighted, budget-bounded symbol table,
// handed off to the code assigner.
package symbol

import "sort"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "symbol: " + string(e) }

// Kind tags which selector a Selector factory should build, matching the
// kind-tagged constructor of spec §6 ("a kind-tagged constructor taking
// {1: single-byte, 2: double-byte, 3..: variable-length}").
type Kind int

const (
	Single Kind = 1
	Double Kind = 2
	VarLen Kind = 3
)

// Freq pairs a symbol with its estimated occurrence count, as produced by a
// greedy longest-match parse of the sample corpus (spec §3).
type Freq struct {
	Symbol []byte
	Count  int64
}

// Selector produces a frequency table from a sample corpus under a byte
// budget for the resulting dictionary.
type Selector interface {
	// Select scans keys and returns symbol/frequency pairs sorted by
	// symbol lexicographic order, subject to budget (interpreted as a
	// dictionary byte-size budget for the variable-length selector, and
	// ignored by the fixed-arity selectors, which always cover their full
	// index space per the coverage invariant).
	Select(keys [][]byte, budget int64) ([]Freq, error)
}

// New returns the selector for the given kind.
func New(kind Kind) Selector {
	switch {
	case kind == Single:
		return &singleByte{}
	case kind == Double:
		return &doubleByte{}
	default:
		return &varLen{maxSymLen: 8}
	}
}

func sortFreqs(fs []Freq) {
	sort.Slice(fs, func(i, j int) bool {
		return string(fs[i].Symbol) < string(fs[j].Symbol)
	})
}
