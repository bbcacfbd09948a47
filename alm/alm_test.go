package alm

import (
	"bytes"
	"testing"

	"github.com/ngaut/hope/internal/testutil"
)

func buildEncoder(t *testing.T, keys [][]byte, budget int64) *Encoder {
	t.Helper()
	e := New()
	ok, err := e.Build(keys, budget)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("Build returned false")
	}
	return e
}

func TestOrderPreservation(t *testing.T) {
	rnd := testutil.NewRand(20)
	keys := rnd.Keys(1000, 1, 32, 64)
	e := buildEncoder(t, keys, 4096)

	for i := 1; i < len(keys); i++ {
		a, _ := e.Encode(keys[i-1], nil)
		b, _ := e.Encode(keys[i], nil)
		if bytes.Compare(a, b) >= 0 {
			t.Fatalf("order violated at %d: enc(%q)=%x >= enc(%q)=%x", i, keys[i-1], a, keys[i], b)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rnd := testutil.NewRand(21)
	keys := rnd.Keys(500, 1, 24, 64)
	e := buildEncoder(t, keys, 4096)

	for _, k := range keys {
		enc, bitLen := e.Encode(k, nil)
		got, ok := e.Decode(enc, bitLen, nil)
		if !ok {
			t.Fatalf("Decode(%q) failed", k)
		}
		if !bytes.Equal(got, k) {
			t.Fatalf("round trip: got %q, want %q", got, k)
		}
	}
}

func TestPairEquivalence(t *testing.T) {
	keys := [][]byte{[]byte("apple"), []byte("application"), []byte("banana")}
	e := buildEncoder(t, keys, 4096)

	l, r := []byte("apple"), []byte("application")
	lEnc, lBits, rEnc, rBits := e.EncodePair(l, r, nil, nil)
	wantL, wantLBits := e.Encode(l, nil)
	wantR, wantRBits := e.Encode(r, nil)
	if !bytes.Equal(lEnc, wantL) || lBits != wantLBits {
		t.Fatalf("EncodePair left = (%x,%d), want (%x,%d)", lEnc, lBits, wantL, wantLBits)
	}
	if !bytes.Equal(rEnc, wantR) || rBits != wantRBits {
		t.Fatalf("EncodePair right = (%x,%d), want (%x,%d)", rEnc, rBits, wantR, wantRBits)
	}
}

func TestBatchEquivalence(t *testing.T) {
	keys := [][]byte{[]byte("aaaa"), []byte("aaab"), []byte("aaac"), []byte("zzz")}
	e := buildEncoder(t, keys, 4096)

	batch, totalBits := e.EncodeBatch(keys, nil)
	var wantTotal int64
	for i, k := range keys {
		want, bits := e.Encode(k, nil)
		if !bytes.Equal(batch[i], want) {
			t.Fatalf("EncodeBatch[%d] = %x, want %x", i, batch[i], want)
		}
		wantTotal += int64(bits)
	}
	if totalBits != wantTotal {
		t.Fatalf("totalBits = %d, want %d", totalBits, wantTotal)
	}
}

func TestPrefixFreedomAndCoverage(t *testing.T) {
	e := buildEncoder(t, [][]byte{[]byte("hello"), []byte("world")}, 4096)
	if e.NumEntries() < 256 {
		t.Fatalf("NumEntries() = %d, want at least the 256-entry fallback alphabet", e.NumEntries())
	}
	if e.MemoryUse() <= 0 {
		t.Fatal("MemoryUse() should be positive")
	}
}

func TestBuildFailsOnEmptyCorpus(t *testing.T) {
	e := New()
	ok, err := e.Build(nil, 4096)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("Build succeeded on an empty corpus")
	}
}
