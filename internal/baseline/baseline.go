// Package baseline provides general-purpose compression codecs that
// cmd/hopebench compares HOPE's order-preserving encoding against, to make
// visible the ratio HOPE deliberately gives up in exchange for order
// preservation (spec.md explicitly scopes general-purpose compression out
// of the core; this package exists only for the bench CLI).
package baseline

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"
)

// Codec is a general-purpose byte-stream compressor used only for
// comparison; it is never imported by the core encoder packages.
type Codec interface {
	Name() string
	Compress(data []byte) ([]byte, error)
}

// Flate compresses with DEFLATE at the given level (1-9, or
// flate.DefaultCompression).
type Flate struct{ Level int }

func (f Flate) Name() string { return "flate" }

func (f Flate) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	level := f.Level
	if level == 0 {
		level = flate.DefaultCompression
	}
	w, err := flate.NewWriter(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// XZ compresses with the LZMA2-based xz container format.
type XZ struct{}

func (XZ) Name() string { return "xz" }

func (XZ) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// All returns every baseline codec cmd/hopebench reports against.
func All() []Codec {
	return []Codec{Flate{Level: flate.DefaultCompression}, XZ{}}
}
