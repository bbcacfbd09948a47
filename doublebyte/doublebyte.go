// Package doublebyte implements the double-byte encoder (spec §4.3.2): a
// fixed 65536-entry dictionary indexed by consecutive byte pairs, with a
// trailing odd byte at the end of an odd-length key represented as the pair
// (b, 0).
package doublebyte

import (
	"github.com/ngaut/hope/internal/bitpack"
	"github.com/ngaut/hope/internal/code"
	"github.com/ngaut/hope/internal/sbt"
	"github.com/ngaut/hope/internal/symbol"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "doublebyte: " + string(e) }

// NumEntries is the fixed dictionary size: one entry per possible byte pair.
const NumEntries = 65536

// Encoder is a built double-byte order-preserving encoder. The zero value
// is not ready for use; call Build first.
type Encoder struct {
	codes  []code.Code // len 65536, indexed 256*high+low
	decode *sbt.SBT
}

// New returns an unbuilt Encoder.
func New() *Encoder { return &Encoder{} }

func pairIndex(key []byte, i int) int {
	idx := 256 * int(key[i])
	if i+1 < len(key) {
		idx += int(key[i+1])
	}
	return idx
}

// Build trains the encoder against keys. As with the single-byte encoder,
// budget is accepted but ignored by this fixed-arity dictionary's selector
// (spec §4.1); Build's only failure mode is an empty corpus (spec §7's
// "insufficient corpus" case — see DESIGN.md).
func (e *Encoder) Build(keys [][]byte, budget int64) (ok bool, err error) {
	if len(keys) == 0 {
		return false, nil
	}

	freqs, err := symbol.New(symbol.Double).Select(keys, budget)
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
	return true, nil
}

// Encode packs key's pair-codes MSB-first into dst, two bytes of key per
// dictionary lookup with the final odd byte (if any) looked up as (b, 0).
func (e *Encoder) Encode(key []byte, dst []byte) ([]byte, int) {
	var p bitpack.Packer
	p.Reset()
	for i := 0; i < len(key); i += 2 {
		c := e.codes[pairIndex(key, i)]
		p.Append(c.Value, c.Len)
	}
	return p.Bytes(dst)
}

// EncodePair encodes l and r, packing their shared leading byte pairs once
// via Packer.Fork and diverging at the first mismatched pair.
func (e *Encoder) EncodePair(l, r []byte, lDst, rDst []byte) (lEnc []byte, lBits int, rEnc []byte, rBits int) {
	cpBytes := bitpack.CommonPrefixLen(l, r)
	cpPairs := cpBytes / 2 // only whole shared pairs are safe to pre-pack

	var shared bitpack.Packer
	shared.Reset()
	for i := 0; i < cpPairs*2; i += 2 {
		c := e.codes[pairIndex(l, i)]
		shared.Append(c.Value, c.Len)
	}

	var lp, rp bitpack.Packer
	shared.Fork(&lp)
	shared.Fork(&rp)
	for i := cpPairs * 2; i < len(l); i += 2 {
		c := e.codes[pairIndex(l, i)]
		lp.Append(c.Value, c.Len)
	}
	for i := cpPairs * 2; i < len(r); i += 2 {
		c := e.codes[pairIndex(r, i)]
		rp.Append(c.Value, c.Len)
	}

	lEnc, lBits = lp.Bytes(lDst)
	rEnc, rBits = rp.Bytes(rDst)
	return
}

// EncodeBatch encodes every key in keys, reusing each key's common leading
// byte pairs with its immediate predecessor the same way EncodePair does,
// via Packer.Fork checkpoints taken after every pair.
func (e *Encoder) EncodeBatch(keys [][]byte, dsts [][]byte) (encoded [][]byte, totalBits int64) {
	if len(keys) == 0 {
		return nil, 0
	}
	out := make([][]byte, len(keys))
	var prevKey []byte
	var checkpoints []bitpack.Packer // checkpoints[j] = state after j+1 pairs

	for ki, k := range keys {
		cpPairs := 0
		if ki > 0 {
			cpBytes := bitpack.CommonPrefixLen(prevKey, k)
			cpPairs = cpBytes / 2
			if cpPairs > len(checkpoints) {
				cpPairs = len(checkpoints)
			}
		}

		var cur bitpack.Packer
		if cpPairs > 0 {
			checkpoints[cpPairs-1].Fork(&cur)
		} else {
			cur.Reset()
		}

		newCheckpoints := make([]bitpack.Packer, cpPairs, (len(k)+1)/2)
		copy(newCheckpoints, checkpoints[:cpPairs])
		for i := cpPairs * 2; i < len(k); i += 2 {
			c := e.codes[pairIndex(k, i)]
			cur.Append(c.Value, c.Len)
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

// Decode reconstructs the original key from an encoded bitstring, dropping
// the trailing zero byte left by an odd-length key's (b, 0) pair (spec §4.4
// / P2: "modulo a possibly-dropped trailing zero byte").
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
		out = append(out, byte(idx>>8), byte(idx))
		off = newOff
	}
	if n := len(out); n > 0 && out[n-1] == 0 {
		out = out[:n-1]
	}
	return out, true
}

// NumEntries reports the dictionary size (always 65536 once built).
func (e *Encoder) NumEntries() int { return len(e.codes) }

// MemoryUse estimates the resident byte footprint of the code table and the
// decode trie combined.
func (e *Encoder) MemoryUse() int64 {
	const codeBytes = 8 + 1
	mem := int64(len(e.codes)) * codeBytes
	if e.decode != nil {
		mem += e.decode.Memory()
	}
	return mem
}
