// Package singlebyte implements the single-byte encoder (spec §4.3.1): a
// fixed 256-entry dictionary indexed directly by byte value, sharing the
// bit-packing, symbol-selection, code-assignment and decode-trie machinery
// with the other two encoder variants.
package singlebyte

import (
	"github.com/ngaut/hope/internal/bitpack"
	"github.com/ngaut/hope/internal/code"
	"github.com/ngaut/hope/internal/sbt"
	"github.com/ngaut/hope/internal/symbol"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "singlebyte: " + string(e) }

// NumEntries is the fixed dictionary size: one entry per possible byte value.
const NumEntries = 256

// Encoder is a built single-byte order-preserving encoder. The zero value
// is not ready for use; call Build first.
type Encoder struct {
	codes   []code.Code // len 256, indexed by byte value
	decode  *sbt.SBT
	entries []code.SymbolCode
}

// New returns an unbuilt Encoder.
func New() *Encoder { return &Encoder{} }

// Build trains the encoder against keys. The dictionary is fixed arity, so
// budget (per spec §4.1) is accepted but ignored by the selector; Build's
// only failure mode is an empty corpus, which leaves every frequency at
// zero and nothing meaningful to train on (spec §7's "insufficient corpus"
// case — see DESIGN.md for why a hardened code assigner otherwise always
// achieves full coverage, unlike the source this is ported from).
func (e *Encoder) Build(keys [][]byte, budget int64) (ok bool, err error) {
	if len(keys) == 0 {
		return false, nil
	}

	freqs, err := symbol.New(symbol.Single).Select(keys, budget)
	if err != nil {
		return false, err
	}
	scs, err := code.New(code.OrderPreserving).Assign(freqs)
	if err != nil {
		return false, err
	}
	codes := make([]code.Code, len(scs))
	for i, sc := range scs {
		codes[i] = sc.Code
	}
	dec, err := sbt.Build(codes)
	if err != nil {
		return false, err
	}

	e.codes = codes
	e.decode = dec
	e.entries = scs
	return true, nil
}

// Encode packs key's codes MSB-first into dst (grown or reused as needed),
// returning the encoded bytes and the bit length actually used.
func (e *Encoder) Encode(key []byte, dst []byte) ([]byte, int) {
	var p bitpack.Packer
	p.Reset()
	for _, b := range key {
		p.Append(e.codes[b].Value, e.codes[b].Len)
	}
	return p.Bytes(dst)
}

// EncodePair encodes l and r, packing their shared byte prefix once via
// internal/bitpack.Packer.Fork before diverging at the first mismatched
// byte (spec §4.3, "pair encoder"; see SPEC_FULL.md item 1 on the original
// encoder's whole-word memcpy of the shared prefix).
func (e *Encoder) EncodePair(l, r []byte, lDst, rDst []byte) (lEnc []byte, lBits int, rEnc []byte, rBits int) {
	cp := bitpack.CommonPrefixLen(l, r)

	var shared bitpack.Packer
	shared.Reset()
	for i := 0; i < cp; i++ {
		shared.Append(e.codes[l[i]].Value, e.codes[l[i]].Len)
	}

	var lp, rp bitpack.Packer
	shared.Fork(&lp)
	shared.Fork(&rp)
	for i := cp; i < len(l); i++ {
		lp.Append(e.codes[l[i]].Value, e.codes[l[i]].Len)
	}
	for i := cp; i < len(r); i++ {
		rp.Append(e.codes[r[i]].Value, e.codes[r[i]].Len)
	}

	lEnc, lBits = lp.Bytes(lDst)
	rEnc, rBits = rp.Bytes(rDst)
	return
}

// EncodeBatch encodes every key in keys, reusing each key's common byte
// prefix with its immediate predecessor via Packer.Fork checkpoints taken
// after every byte, so a run of keys sharing a long prefix pays for packing
// it only once (spec §4.3, "batched-with-common-prefix variant"). dsts, if
// non-nil, supplies a reusable destination buffer per key; entries beyond
// len(dsts) get a fresh allocation.
func (e *Encoder) EncodeBatch(keys [][]byte, dsts [][]byte) (encoded [][]byte, totalBits int64) {
	if len(keys) == 0 {
		return nil, 0
	}
	out := make([][]byte, len(keys))
	var prevKey []byte
	var checkpoints []bitpack.Packer

	for ki, k := range keys {
		cp := 0
		if ki > 0 {
			cp = bitpack.CommonPrefixLen(prevKey, k)
			if cp > len(checkpoints) {
				cp = len(checkpoints)
			}
		}

		var cur bitpack.Packer
		if cp > 0 {
			checkpoints[cp-1].Fork(&cur)
		} else {
			cur.Reset()
		}

		newCheckpoints := make([]bitpack.Packer, cp, len(k))
		copy(newCheckpoints, checkpoints[:cp])
		for i := cp; i < len(k); i++ {
			cur.Append(e.codes[k[i]].Value, e.codes[k[i]].Len)
			var snap bitpack.Packer
			cur.Fork(&snap)
			newCheckpoints = append(newCheckpoints, snap)
		}

		var dst []byte
		if ki < len(dsts) {
			dst = dsts[ki]
		}
		enc, bits := cur.Bytes(dst)
		out[ki] = enc
		totalBits += int64(bits)

		prevKey = k
		checkpoints = newCheckpoints
	}
	return out, totalBits
}

// Decode reconstructs the original key from an encoded bitstring of bitLen
// significant bits. ok is false if a code prefix fails to match before
// bitLen bits are consumed (spec §4.4, truncation).
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
		out = append(out, byte(idx))
		off = newOff
	}
	return out, true
}

// NumEntries reports the dictionary size (always 256 once built).
func (e *Encoder) NumEntries() int { return len(e.codes) }

// MemoryUse estimates the resident byte footprint of the code table and the
// decode trie combined.
func (e *Encoder) MemoryUse() int64 {
	const codeBytes = 8 + 1 // Value + Len, ignoring struct padding
	mem := int64(len(e.codes)) * codeBytes
	if e.decode != nil {
		mem += e.decode.Memory()
	}
	return mem
}
