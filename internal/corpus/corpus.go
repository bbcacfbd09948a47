// Package corpus loads sample key corpora from disk for cmd/hopebench and
// for integration tests that want real-looking fixture data rather than
// synthetic random keys (spec.md §6: "external collaborators load
// line-delimited byte strings from disk"; the core itself does no I/O).
package corpus

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ulikunitz/xz"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "corpus: " + string(e) }

// Load reads a newline-delimited sample corpus from path, transparently
// decompressing a ".xz" or ".gz" suffix, and returns the non-empty lines.
// If sorted is true the result is sorted ascending by unsigned byte order,
// which every property test and benchmark scenario in spec.md §8 assumes
// of its input corpus.
func Load(path string, sorted bool) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := decompressor(path, f)
	if err != nil {
		return nil, err
	}

	var lines [][]byte
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		line := make([]byte, len(sc.Bytes()))
		copy(line, sc.Bytes())
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, Error("corpus file contains no keys")
	}
	if sorted {
		sort.Slice(lines, func(i, j int) bool { return string(lines[i]) < string(lines[j]) })
	}
	return lines, nil
}

func decompressor(path string, f *os.File) (io.Reader, error) {
	switch {
	case strings.HasSuffix(path, ".xz"):
		return xz.NewReader(f)
	case strings.HasSuffix(path, ".gz"):
		return gzip.NewReader(f)
	default:
		return f, nil
	}
}
