// Package bitdump renders Code tables and encoded bitstrings as
// human-readable text for tests and debug tooling. It is deliberately kept
// separate from internal/bitpack's hot encode path: where bitpack packs
// words directly for speed, this package goes through
// github.com/dsnet/golib/bits' Buffer, trading a little overhead for the
// bit-level accessors (WriteBits, BitsWritten) a pretty-printer wants.
package bitdump

import (
	"fmt"
	"strings"

	"github.com/dsnet/golib/bits"

	"github.com/ngaut/hope/internal/code"
)

// Bits renders value's low ln bits as a string of '0'/'1' characters,
// MSB-first.
func Bits(value uint64, ln uint8) string {
	if ln == 0 {
		return ""
	}
	var bb bits.Buffer
	bb.WriteBits(uint(value), int(ln))
	var sb strings.Builder
	sb.Grow(int(ln))
	buf := bb.Bytes()
	for i := uint8(0); i < ln; i++ {
		bit := (buf[i/8] >> (7 - i%8)) & 1
		if bit == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Code renders a single symbol/code pair as "symbol -> bits (len)".
func Code(sc code.SymbolCode) string {
	return fmt.Sprintf("%q -> %s (%d)", sc.Symbol, Bits(sc.Code.Value, sc.Code.Len), sc.Code.Len)
}

// Table renders an entire sorted symbol/code table, one entry per line, for
// use in test failure messages.
func Table(scs []code.SymbolCode) string {
	var sb strings.Builder
	for _, sc := range scs {
		sb.WriteString(Code(sc))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Stream renders an encoded byte buffer as a run of bitLen '0'/'1'
// characters, ignoring any trailing padding bits beyond bitLen.
func Stream(enc []byte, bitLen int) string {
	var sb strings.Builder
	sb.Grow(bitLen)
	for i := 0; i < bitLen; i++ {
		bit := (enc[i/8] >> (7 - uint(i%8))) & 1
		if bit == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
