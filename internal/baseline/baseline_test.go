package baseline

import (
	"bytes"
	"testing"
)

func TestAllCodecsCompress(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\n"), 200)
	for _, codec := range All() {
		out, err := codec.Compress(data)
		if err != nil {
			t.Fatalf("%s: %v", codec.Name(), err)
		}
		if len(out) == 0 {
			t.Fatalf("%s: empty compressed output", codec.Name())
		}
		if codec.Name() == "" {
			t.Fatal("codec returned an empty name")
		}
	}
}
