package doublebyte

import (
	"bytes"
	"sort"
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
	rnd := testutil.NewRand(10)
	keys := rnd.Keys(2000, 1, 24, 256)
	e := buildEncoder(t, keys, 0)

	for i := 1; i < len(keys); i++ {
		a, _ := e.Encode(keys[i-1], nil)
		b, _ := e.Encode(keys[i], nil)
		if bytes.Compare(a, b) >= 0 {
			t.Fatalf("order violated at %d: enc(%q)=%x >= enc(%q)=%x", i, keys[i-1], a, keys[i], b)
		}
	}
}

func TestRoundTripEvenAndOddLength(t *testing.T) {
	keys := [][]byte{[]byte("aaaa"), []byte("aaab"), []byte("aaac"), []byte("bb"), []byte("c")}
	e := buildEncoder(t, keys, 0)

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

func TestSeedScenarioOne(t *testing.T) {
	keys := [][]byte{[]byte("aaaa"), []byte("aaab"), []byte("aaac")}
	e := buildEncoder(t, keys, 1000)

	batch, _ := e.EncodeBatch(keys, nil)
	for i, k := range keys {
		_, bitLen := e.Encode(k, nil)
		got, ok := e.Decode(batch[i], bitLen, nil)
		if !ok || !bytes.Equal(got, k) {
			t.Fatalf("batch[%d] round trip = (%q,%v), want %q", i, got, ok, k)
		}
	}
	for i := 1; i < len(batch); i++ {
		if bytes.Compare(batch[i-1], batch[i]) >= 0 {
			t.Fatalf("order violated between batch[%d] and batch[%d]", i-1, i)
		}
	}
}

func TestPairEquivalence(t *testing.T) {
	keys := [][]byte{[]byte("abcd"), []byte("abce"), []byte("xyz")}
	e := buildEncoder(t, keys, 0)

	l, r := []byte("abcd"), []byte("abce")
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

func TestBuildFailsOnEmptyCorpus(t *testing.T) {
	e := New()
	ok, err := e.Build(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("Build succeeded on an empty corpus")
	}
}

func TestBuildSucceedsOnDegenerateCorpus(t *testing.T) {
	// Five identical strings give every pair's frequency mass to just two
	// symbols ("sa" and "me"). The source this is ported from fails this
	// case (its build rejects a symbol list short of full coverage); this
	// encoder's code assigner gives every one of the 65536 entries a
	// genuine, prefix-free code by construction, so build still succeeds.
	// See DESIGN.md's resolution of the "synthesised coverage codes" open
	// question.
	keys := make([][]byte, 5)
	for i := range keys {
		keys[i] = []byte("same")
	}
	buildEncoder(t, keys, 0)
}

func TestEmailCorpusOrderPreservation(t *testing.T) {
	rnd := testutil.NewRand(11)
	emails := rnd.Keys(5000, 5, 12, 26)
	for i, local := range emails {
		for j, b := range local {
			local[j] = 'a' + b
		}
		emails[i] = append(local, []byte("@example.com")...)
	}
	sort.Slice(emails, func(i, j int) bool { return bytes.Compare(emails[i], emails[j]) < 0 })
	e := buildEncoder(t, emails, 0)

	for i := 1; i < len(emails); i++ {
		a, _ := e.Encode(emails[i-1], nil)
		b, _ := e.Encode(emails[i], nil)
		if bytes.Compare(a, b) >= 0 {
			t.Fatalf("order violated at %d", i)
		}
	}
}
