package corpus

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPlain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.txt")
	writeFile(t, path, []byte("banana\napple\n\ncherry\n"))

	lines, err := Load(path, true)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]byte{[]byte("apple"), []byte("banana"), []byte("cherry")}
	if len(lines) != len(want) {
		t.Fatalf("len(lines) = %d, want %d", len(lines), len(want))
	}
	for i := range want {
		if !bytes.Equal(lines[i], want[i]) {
			t.Fatalf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestLoadGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.txt.gz")

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write([]byte("one\ntwo\nthree\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	writeFile(t, path, buf.Bytes())

	lines, err := Load(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 3 || string(lines[0]) != "one" {
		t.Fatalf("lines = %q", lines)
	}
}

func TestLoadRejectsEmptyCorpus(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	writeFile(t, path, []byte("\n\n"))

	if _, err := Load(path, false); err == nil {
		t.Fatal("expected error for a corpus file with no keys")
	}
}
