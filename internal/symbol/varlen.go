package symbol

import (
	"math"
	"sort"
)

// varLen implements the variable-length (ALM) selector: it seeds a fallback
// single-byte alphabet for full coverage, then iteratively merges adjacent
// symbols whose combined frequency is high enough to plausibly shrink the
// expected encoded size, stopping once the predicted size stops improving
// or the budget is exhausted (spec §4.1). The merge/adopt loop is a
// simplified relative of the greedy BPE-style training loop used by
// FSST-family symbol tables (github.com/axiomhq/fsst's Train), adapted to
// the order-preserving encoder's needs: unlike FSST there is no code-space
// limit of 255 symbols, and ties are broken purely by frequency since the
// code assigner (not the selector) is responsible for order preservation.
type varLen struct {
	maxSymLen int
}

// greedyParse splits key into the longest-match sequence of symbols present
// in the dictionary, matching the greedy left-to-right parse spec §4.1 and
// §3 both describe as the frequency-counting convention.
func greedyParse(key []byte, symbols map[string]bool, maxLen int) []string {
	var out []string
	for i := 0; i < len(key); {
		end := i + maxLen
		if end > len(key) {
			end = len(key)
		}
		matched := false
		for l := end; l > i; l-- {
			if symbols[string(key[i:l])] {
				out = append(out, string(key[i:l]))
				i = l
				matched = true
				break
			}
		}
		if !matched {
			// Single-byte fallback is always seeded, so this cannot happen
			// for a byte that occurred in the training corpus; guard anyway.
			out = append(out, string(key[i:i+1]))
			i++
		}
	}
	return out
}

func estimateBits(counts map[string]int64) float64 {
	var total int64
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	var bits float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		bits += float64(c) * -math.Log2(p)
	}
	return bits
}

func (v *varLen) Select(keys [][]byte, budget int64) ([]Freq, error) {
	maxSymLen := v.maxSymLen
	if maxSymLen <= 0 {
		maxSymLen = 8
	}
	maxEntries := int(budget)
	if maxEntries < 256 {
		maxEntries = 256 // always room for the single-byte fallback alphabet
	}

	counts := map[string]int64{}
	for i := 0; i < 256; i++ {
		counts[string([]byte{byte(i)})] = 0
	}
	for _, k := range keys {
		for _, b := range k {
			counts[string([]byte{b})]++
		}
	}
	symbols := make(map[string]bool, len(counts))
	for s := range counts {
		symbols[s] = true
	}

	prevBits := estimateBits(counts)
	for len(symbols) < maxEntries {
		pairCounts := map[string]int64{}
		for _, k := range keys {
			parsed := greedyParse(k, symbols, maxSymLen)
			for i := 0; i+1 < len(parsed); i++ {
				merged := parsed[i] + parsed[i+1]
				if len(merged) > maxSymLen {
					continue
				}
				pairCounts[merged]++
			}
		}
		if len(pairCounts) == 0 {
			break
		}

		var total int64
		for _, c := range counts {
			total += c
		}
		threshold := total / int64(len(symbols)+1)

		cands := make([]string, 0, len(pairCounts))
		for sym := range pairCounts {
			cands = append(cands, sym)
		}
		sort.Slice(cands, func(i, j int) bool {
			if ci, cj := pairCounts[cands[i]], pairCounts[cands[j]]; ci != cj {
				return ci > cj
			}
			return cands[i] < cands[j]
		})

		added := 0
		for _, sym := range cands {
			cnt := pairCounts[sym]
			if len(symbols) >= maxEntries {
				break
			}
			if symbols[sym] || cnt <= threshold {
				continue
			}
			symbols[sym] = true
			counts[sym] = cnt
			added++
		}
		if added == 0 {
			break
		}
		newBits := estimateBits(counts)
		if newBits >= prevBits {
			break
		}
		prevBits = newBits
	}

	// Final pass: recompute exact frequencies for the chosen alphabet with
	// one more greedy parse, so merge-candidate bookkeeping above need not
	// track totals precisely.
	final := make(map[string]int64, len(symbols))
	for s := range symbols {
		final[s] = 0
	}
	for _, k := range keys {
		for _, s := range greedyParse(k, symbols, maxSymLen) {
			final[s]++
		}
	}

	out := make([]Freq, 0, len(final))
	for s, c := range final {
		out = append(out, Freq{Symbol: []byte(s), Count: c})
	}
	sortFreqs(out)
	return out, nil
}
