// Command hopebench runs a HOPE encoder against a sample corpus and reports
// build/encode timing, dictionary memory use, and, for comparison, the
// output size a couple of general-purpose compressors would produce on the
// same corpus. Modelled on the flag-driven shape of
// github.com/dsnet/compress's internal/tool/bench/main.go, trimmed to a
// single process (no external benchmark-runner forking) since HOPE has no
// competing third-party implementation to shell out to.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/dsnet/golib/strconv"

	"github.com/ngaut/hope"
	"github.com/ngaut/hope/internal/baseline"
	"github.com/ngaut/hope/internal/corpus"
)

var (
	encoderFlag = flag.String("encoder", "single", "encoder kind: single, double, or alm")
	budgetFlag  = flag.String("budget", "1Mi", "dictionary byte budget (human-readable, e.g. 64Ki, 1e6)")
	corpusFlag  = flag.String("corpus", "", "path to a newline-delimited sample corpus (.xz/.gz supported)")
	verifyFlag  = flag.Bool("verify", true, "verify order preservation (P1) and round-trip (P2) after build")
	baselineFl  = flag.Bool("baseline", true, "also report size under general-purpose compressors")
)

func main() {
	flag.Parse()
	if *corpusFlag == "" {
		log.Fatal("hopebench: -corpus is required")
	}

	budget, err := strconv.ParsePrefix(*budgetFlag, strconv.AutoParse)
	if err != nil {
		log.Fatalf("hopebench: invalid -budget %q: %v", *budgetFlag, err)
	}

	keys, err := corpus.Load(*corpusFlag, true)
	if err != nil {
		log.Fatalf("hopebench: %v", err)
	}
	log.Printf("loaded %d keys from %s", len(keys), *corpusFlag)

	kind, err := parseKind(*encoderFlag)
	if err != nil {
		log.Fatal(err)
	}

	enc := hope.New(kind)
	start := time.Now()
	ok, err := enc.Build(keys, int64(budget))
	buildDur := time.Since(start)
	if err != nil {
		log.Fatalf("hopebench: build: %v", err)
	}
	if !ok {
		log.Fatal("hopebench: build reported infeasible input")
	}
	fmt.Printf("build: %v, entries=%d, memory=%s\n", buildDur, enc.NumEntries(), strconv.FormatPrefix(float64(enc.MemoryUse()), strconv.Base1024, 2))

	start = time.Now()
	var totalBits int64
	encoded := make([][]byte, len(keys))
	for i, k := range keys {
		var bits int
		encoded[i], bits = enc.Encode(k, nil)
		totalBits += int64(bits)
	}
	encDur := time.Since(start)
	fmt.Printf("encode: %v for %d keys, %s total\n", encDur, len(keys), strconv.FormatPrefix(float64(totalBits/8), strconv.Base1024, 2))

	if *verifyFlag {
		verify(keys, encoded, enc)
	}
	if *baselineFl {
		reportBaseline(keys)
	}
}

func parseKind(s string) (hope.Kind, error) {
	switch s {
	case "single":
		return hope.Single, nil
	case "double":
		return hope.Double, nil
	case "alm":
		return hope.VarLen, nil
	default:
		return 0, fmt.Errorf("hopebench: unknown -encoder %q", s)
	}
}

func verify(keys [][]byte, encoded [][]byte, enc hope.Encoder) {
	for i := 1; i < len(encoded); i++ {
		if bytes.Equal(keys[i-1], keys[i]) {
			continue
		}
		if bytes.Compare(encoded[i-1], encoded[i]) >= 0 {
			log.Fatalf("hopebench: order preservation violated at index %d (%q, %q)", i, keys[i-1], keys[i])
		}
	}
	log.Printf("order preservation (P1) verified over %d keys", len(keys))

	for i, k := range keys {
		_, bitLen := enc.Encode(k, nil)
		got, ok := enc.Decode(encoded[i], bitLen, nil)
		if !ok || !bytes.Equal(got, k) {
			log.Fatalf("hopebench: round trip failed for key %d (%q)", i, k)
		}
	}
	log.Printf("round trip (P2) verified over %d keys", len(keys))
}

func reportBaseline(keys [][]byte) {
	var joined bytes.Buffer
	for _, k := range keys {
		joined.Write(k)
		joined.WriteByte('\n')
	}
	for _, codec := range baseline.All() {
		out, err := codec.Compress(joined.Bytes())
		if err != nil {
			log.Printf("baseline %s: %v", codec.Name(), err)
			continue
		}
		fmt.Printf("baseline %s: %s -> %s\n",
			codec.Name(),
			strconv.FormatPrefix(float64(joined.Len()), strconv.Base1024, 2),
			strconv.FormatPrefix(float64(len(out)), strconv.Base1024, 2))
	}
}
