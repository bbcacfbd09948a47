// Package testutil is a collection of testing helper methods shared by the
// hope packages: a deterministic byte-stream generator, a corpus loader,
// a hex decoder and a successor-string helper.
package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"sort"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from math/rand in that the exact output is consistent
// across Go versions, which matters for tests that bake in golden sizes.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	x := r.Int() % n
	if x < 0 {
		x += n
	}
	return x
}

func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

func (r *Rand) Perm(n int) []int {
	m := make([]int, n)
	for i := 0; i < n; i++ {
		j := r.Intn(i + 1)
		m[i] = m[j]
		m[j] = i
	}
	return m
}

// Key returns a random byte string of length [minLen, maxLen] drawn from an
// alphabet of the first alphaSize byte values. Used to synthesize corpora
// for the order-preservation and round-trip property tests.
func (r *Rand) Key(minLen, maxLen, alphaSize int) []byte {
	if alphaSize <= 0 || alphaSize > 256 {
		alphaSize = 256
	}
	n := minLen + r.Intn(maxLen-minLen+1)
	k := r.Bytes(n)
	for i := range k {
		k[i] = byte(int(k[i]) % alphaSize)
	}
	return k
}

// Keys returns n random keys, deduplicated and sorted ascending.
func (r *Rand) Keys(n, minLen, maxLen, alphaSize int) [][]byte {
	seen := make(map[string]bool, n)
	keys := make([][]byte, 0, n)
	for len(keys) < n {
		k := r.Key(minLen, maxLen, alphaSize)
		if seen[string(k)] {
			continue
		}
		seen[string(k)] = true
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return string(keys[i]) < string(keys[j]) })
	return keys
}

// NextString returns a successor of s: the string formed by incrementing the
// last byte not already at 0x7f and truncating the remainder. For keys whose
// bytes are at most 0x7f the result is greater than s and than every key
// that has s as a prefix. Ported from the
// successor-string convention used by the original ART dictionary test
// suite (ARTDICTest::getNextString).
func NextString(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != 0x7f {
			return s[:i] + string([]byte{s[i] + 1})
		}
	}
	panic("testutil: no successor string exists for an all-0x7f key")
}
