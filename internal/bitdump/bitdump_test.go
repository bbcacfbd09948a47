package bitdump

import (
	"testing"

	"github.com/ngaut/hope/internal/code"
)

func TestBits(t *testing.T) {
	cases := []struct {
		value uint64
		ln    uint8
		want  string
	}{
		{0, 0, ""},
		{0, 1, "0"},
		{1, 1, "1"},
		{0b101, 3, "101"},
		{0b00000101, 8, "00000101"},
	}
	for _, c := range cases {
		if got := Bits(c.value, c.ln); got != c.want {
			t.Errorf("Bits(%#b, %d) = %q, want %q", c.value, c.ln, got, c.want)
		}
	}
}

func TestCodeAndTable(t *testing.T) {
	scs := []code.SymbolCode{
		{Symbol: []byte("a"), Code: code.Code{Value: 0b10, Len: 2}},
		{Symbol: []byte("b"), Code: code.Code{Value: 0b11, Len: 2}},
	}
	if got := Code(scs[0]); got != `"a" -> 10 (2)` {
		t.Errorf("Code() = %q", got)
	}
	table := Table(scs)
	if table != "\"a\" -> 10 (2)\n\"b\" -> 11 (2)\n" {
		t.Errorf("Table() = %q", table)
	}
}

func TestStream(t *testing.T) {
	enc := []byte{0b10110000}
	if got := Stream(enc, 4); got != "1011" {
		t.Errorf("Stream() = %q, want %q", got, "1011")
	}
}
