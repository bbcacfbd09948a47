// Package hope implements HOPE (High-speed Order-Preserving Encoder): a
// family of encoders that turn byte-string keys into bit-packed codes whose
// unsigned lexicographic order matches the order of the original keys.
//
// The package is a thin façade (spec §9: "a tagged variant dispatched by a
// thin façade") over three concrete encoders that share the same interface
// but differ in how they derive symbols from input bytes:
//
//	Single: internal/symbol.Single  — one symbol per byte (256-entry dict)
//	Double: internal/symbol.Double  — one symbol per byte pair (65536-entry dict)
//	VarLen: internal/symbol.VarLen  — one symbol per longest trie match
//
// Build a dictionary once from a sample corpus with New(kind).Build, then
// call Encode/EncodePair/EncodeBatch/Decode freely and concurrently: once
// built, an Encoder is read-only (spec §5).
package hope

import (
	"github.com/ngaut/hope/alm"
	"github.com/ngaut/hope/doublebyte"
	"github.com/ngaut/hope/singlebyte"
)

// Kind selects which concrete encoder New constructs.
type Kind int

const (
	// Single indexes the dictionary by a single byte.
	Single Kind = iota
	// Double indexes the dictionary by a pair of consecutive bytes.
	Double
	// VarLen indexes the dictionary by the longest registered substring
	// match (the "ALM" variant).
	VarLen
)

// Encoder is the operation set common to every HOPE encoder variant (spec
// §6, "External interfaces").
type Encoder interface {
	// Build trains the dictionary from keys under a dictionary byte
	// budget (ignored by the fixed-arity Single/Double encoders) and
	// reports whether the build succeeded.
	Build(keys [][]byte, budget int64) (bool, error)

	// Encode packs key's codes into dst (grown or reused as needed),
	// returning the encoded bytes and the bit length they represent.
	Encode(key []byte, dst []byte) (encoded []byte, bitLen int)

	// EncodePair encodes l and r together, sharing their common prefix's
	// packed bits instead of re-packing it twice.
	EncodePair(l, r []byte, lDst, rDst []byte) (lEnc []byte, lBits int, rEnc []byte, rBits int)

	// EncodeBatch encodes every key in keys, reusing dsts as scratch
	// buffers where provided, and reports the combined bit length.
	EncodeBatch(keys [][]byte, dsts [][]byte) (encoded [][]byte, totalBits int64)

	// Decode reconstructs the original key from an encoded bitstring of
	// bitLen significant bits. ok is false on a truncated/corrupt stream.
	Decode(enc []byte, bitLen int, dst []byte) (decoded []byte, ok bool)

	// NumEntries reports the number of entries in the built dictionary.
	NumEntries() int

	// MemoryUse estimates the built encoder's resident byte footprint.
	MemoryUse() int64
}

// New returns an unbuilt Encoder of the requested kind. Call Build before
// using any other method.
func New(kind Kind) Encoder {
	switch kind {
	case Single:
		return singlebyte.New()
	case Double:
		return doublebyte.New()
	default:
		return alm.New()
	}
}
