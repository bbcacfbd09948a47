package testutil

import (
	"bufio"
	"encoding/hex"
	"os"
)

// LoadLines reads a newline-delimited sample corpus file into memory,
// dropping empty lines. It is the synchronous, test-oriented counterpart of
// internal/corpus.Load, for unit tests that want real-looking fixture
// data (e.g. a list of email addresses) without the compressed-input
// handling that the production loader carries.
func LoadLines(file string) ([][]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines [][]byte
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		line := make([]byte, len(sc.Bytes()))
		copy(line, sc.Bytes())
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

// MustDecodeHex must decode a hexadecimal string or else panics.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
