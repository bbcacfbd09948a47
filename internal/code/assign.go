package code

import "github.com/ngaut/hope/internal/symbol"

// splitAssigner implements the order-preserving Huffman-like tree of spec
// §4.2: recursively split the (already symbol-sorted) frequency mass at the
// contiguous boundary minimizing the imbalance between the two halves,
// assigning bit 0 to the left half and bit 1 to the right, until each
// partition is a single symbol. Because every split is contiguous in
// symbol order, the resulting code table is automatically order-preserving:
// every symbol in the left partition sorts before every symbol in the right
// partition, and its code is lexicographically smaller once both are
// zero-padded to a common length.
type splitAssigner struct{}

func (a *splitAssigner) Assign(freqs []symbol.Freq) ([]SymbolCode, error) {
	n := len(freqs)
	if n == 0 {
		return nil, Error("no symbols to assign codes to")
	}

	// Add-one smoothing: every symbol, including ones with a genuine
	// frequency of zero (padding entries a fixed-arity selector emits for
	// coverage), contributes positive weight to the split so that the
	// recursion always terminates in a balanced binary tree regardless of
	// how sparse the real frequency distribution is.
	prefix := make([]int64, n+1)
	for i, f := range freqs {
		prefix[i+1] = prefix[i] + f.Count + 1
	}

	out := make([]SymbolCode, n)
	var assign func(lo, hi int, value uint64, ln uint8) error
	assign = func(lo, hi int, value uint64, ln uint8) error {
		if hi-lo == 1 {
			if ln > MaxLen {
				return Error("code length exceeds packer limit")
			}
			out[lo] = SymbolCode{Symbol: freqs[lo].Symbol, Code: Code{Value: value, Len: ln}}
			return nil
		}
		m := bestSplit(prefix, lo, hi)
		if err := assign(lo, m, value<<1, ln+1); err != nil {
			return err
		}
		return assign(m, hi, value<<1|1, ln+1)
	}
	if err := assign(0, n, 0, 0); err != nil {
		return nil, err
	}
	return out, nil
}

// bestSplit returns the contiguous split point in (lo, hi) minimizing the
// absolute imbalance between the two halves' weight, per the
// prefix-summed weights in prefix. Ties favor the earliest position,
// which produces the shorter left-hand code (spec §4.2's tie-break rule).
func bestSplit(prefix []int64, lo, hi int) int {
	total := prefix[hi] - prefix[lo]
	best := lo + 1
	bestDiff := absInt64(2*(prefix[best]-prefix[lo]) - total)
	for m := lo + 2; m < hi; m++ {
		diff := absInt64(2*(prefix[m]-prefix[lo]) - total)
		if diff < bestDiff {
			bestDiff = diff
			best = m
		}
	}
	return best
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
