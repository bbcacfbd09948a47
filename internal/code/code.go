// Package code implements order-preserving, prefix-free code assignment
// (spec §4.2): turning a sorted (symbol, frequency) list into a
// (symbol, Code) list in the same order.
package code

import "github.com/ngaut/hope/internal/symbol"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "code: " + string(e) }

// MaxLen is the packer's hard limit on a single code's bit length (spec §3
// invariant 4, "the packer requires len ≤ 63").
const MaxLen = 63

// Code is a prefix-free bit pattern: the low Len bits of Value, MSB-first.
type Code struct {
	Value uint64
	Len   uint8
}

// SymbolCode pairs a symbol with its assigned code.
type SymbolCode struct {
	Symbol []byte
	Code   Code
}

// Kind tags which assigner a factory should build. The spec's code
// assigner factory is tagged the same way as the selector factory (spec
// §6); this module implements only the order-preserving Huffman-like
// assigner (kind 0, kCaType in the original), which is the only kind the
// encoders ever request, but the tagged constructor shape is kept so a
// second assignment strategy could be added later without touching call
// sites.
type Kind int

const OrderPreserving Kind = 0

// Assigner turns a sorted frequency list into a sorted code list.
type Assigner interface {
	Assign(freqs []symbol.Freq) ([]SymbolCode, error)
}

// New returns the assigner for the given kind.
func New(kind Kind) Assigner {
	return &splitAssigner{}
}
