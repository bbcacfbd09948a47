// Package alm implements the variable-length (ALM — "adaptive longest
// match") encoder (spec §4.3.3): symbols are 1..K-byte substrings looked up
// via the longest-registered-prefix match of internal/dict.Tree, rather
// than a fixed 1- or 2-byte stride.
package alm

import (
	"github.com/ngaut/hope/internal/bitpack"
	"github.com/ngaut/hope/internal/code"
	"github.com/ngaut/hope/internal/dict"
	"github.com/ngaut/hope/internal/sbt"
	"github.com/ngaut/hope/internal/symbol"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "alm: " + string(e) }

// Encoder is a built variable-length order-preserving encoder. The zero
// value is not ready for use; call Build first.
type Encoder struct {
	tree    *dict.Tree
	decode  *sbt.SBT
	symbols [][]byte // index i is the symbol whose code decode.Lookup returns as index i
}

// New returns an unbuilt Encoder.
func New() *Encoder { return &Encoder{} }

// Build trains the encoder against keys under a dictionary byte budget
// (spec §4.1: the variable-length selector is the one selector kind that
// actually consumes budget, since its alphabet size is not fixed). Build's
// only failure mode is an empty corpus, since the selector always seeds a
// full single-byte fallback alphabet regardless of what training finds
// beyond that (guaranteeing dict.Build never sees too few symbols).
func (e *Encoder) Build(keys [][]byte, budget int64) (ok bool, err error) {
	if len(keys) == 0 {
		return false, nil
	}

	freqs, err := symbol.New(symbol.VarLen).Select(keys, budget)
	if err != nil {
		return false, err
	}
	scs, err := code.New(code.OrderPreserving).Assign(freqs)
	if err != nil {
		return false, err
	}
	tree, err := dict.Build(scs)
	if err != nil {
		return false, err
	}
	codes := make([]code.Code, len(scs))
	symbols := make([][]byte, len(scs))
	for i, sc := range scs {
		codes[i] = sc.Code
		symbols[i] = sc.Symbol
	}
	dec, err := sbt.Build(codes)
	if err != nil {
		return false, err
	}

	e.tree = tree
	e.decode = dec
	e.symbols = symbols
	return true, nil
}

// Encode greedily parses key into the longest registered symbols and packs
// their codes MSB-first into dst.
func (e *Encoder) Encode(key []byte, dst []byte) ([]byte, int) {
	var p bitpack.Packer
	p.Reset()
	for off := 0; off < len(key); {
		c, matchLen, ok := e.tree.Lookup(key[off:])
		if !ok {
			// The single-byte fallback alphabet guarantees every byte value
			// is a registered 1-byte symbol, so this is unreachable for a
			// correctly built tree.
			panic(Error("no registered symbol matches a remaining byte"))
		}
		p.Append(c.Value, c.Len)
		off += matchLen
	}
	return p.Bytes(dst)
}

// sharedPrefixBytes returns the number of leading bytes that l and r both
// parse into the same whole number of greedily-parsed symbols, all lying
// within their first commonLen shared bytes. Symbols that would straddle
// the commonLen boundary in either key are excluded, since whether they
// match depends on bytes beyond the shared region.
func (e *Encoder) sharedPrefixBytes(l, r []byte, commonLen int) int {
	off := 0
	for off < commonLen {
		_, matchLen, ok := e.tree.Lookup(l[off:])
		_, rMatchLen, rOK := e.tree.Lookup(r[off:])
		if !ok || !rOK || matchLen != rMatchLen || off+matchLen > commonLen {
			break
		}
		off += matchLen
	}
	return off
}

// EncodePair encodes l and r, packing the whole-symbol prefix they share
// once via Packer.Fork before diverging (spec §4.3, "pair encoder").
func (e *Encoder) EncodePair(l, r []byte, lDst, rDst []byte) (lEnc []byte, lBits int, rEnc []byte, rBits int) {
	commonLen := bitpack.CommonPrefixLen(l, r)
	sharedOff := e.sharedPrefixBytes(l, r, commonLen)

	var shared bitpack.Packer
	shared.Reset()
	for off := 0; off < sharedOff; {
		c, matchLen, _ := e.tree.Lookup(l[off:])
		shared.Append(c.Value, c.Len)
		off += matchLen
	}

	var lp, rp bitpack.Packer
	shared.Fork(&lp)
	shared.Fork(&rp)
	for off := sharedOff; off < len(l); {
		c, matchLen, _ := e.tree.Lookup(l[off:])
		lp.Append(c.Value, c.Len)
		off += matchLen
	}
	for off := sharedOff; off < len(r); {
		c, matchLen, _ := e.tree.Lookup(r[off:])
		rp.Append(c.Value, c.Len)
		off += matchLen
	}

	lEnc, lBits = lp.Bytes(lDst)
	rEnc, rBits = rp.Bytes(rDst)
	return
}

// EncodeBatch encodes every key in keys. Unlike the fixed-stride encoders,
// a variable-length symbol boundary is data-dependent, so chaining
// Packer.Fork checkpoints across an entire batch the way singlebyte and
// doublebyte do would need one checkpoint per distinct parse position
// rather than per fixed-width step; EncodeBatch instead encodes each key
// independently, which is exactly what the shared-prefix machinery in
// EncodePair already shows is the fallback when no such boundary exists.
func (e *Encoder) EncodeBatch(keys [][]byte, dsts [][]byte) (encoded [][]byte, totalBits int64) {
	if len(keys) == 0 {
		return nil, 0
	}
	out := make([][]byte, len(keys))
	for i, k := range keys {
		var dst []byte
		if i < len(dsts) {
			dst = dsts[i]
		}
		enc, bits := e.Encode(k, dst)
		out[i] = enc
		totalBits += int64(bits)
	}
	return out, totalBits
}

// Decode reconstructs the original key from an encoded bitstring.
func (e *Encoder) Decode(enc []byte, bitLen int, dst []byte) (decoded []byte, ok bool) {
	if e.decode == nil {
		return nil, false
	}
	out := dst[:0]
	off := 0
	for off < bitLen {
		idx, newOff, found := e.decode.Lookup(enc, off)
		if !found {
			return nil, false
		}
		out = append(out, e.symbols[idx]...)
		off = newOff
	}
	return out, true
}

// NumEntries reports the number of symbols in the trained dictionary.
func (e *Encoder) NumEntries() int { return len(e.symbols) }

// MemoryUse estimates the resident byte footprint of the dictionary trie
// and the decode trie combined.
func (e *Encoder) MemoryUse() int64 {
	var mem int64
	if e.tree != nil {
		mem += e.tree.MemoryUse()
	}
	if e.decode != nil {
		mem += e.decode.Memory()
	}
	return mem
}
