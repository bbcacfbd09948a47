package symbol

// singleByte selects the trivial 256-entry alphabet: one symbol per byte
// value, with frequencies tallied directly over the corpus (spec §4.1).
type singleByte struct{}

func (s *singleByte) Select(keys [][]byte, budget int64) ([]Freq, error) {
	var counts [256]int64
	for _, k := range keys {
		for _, b := range k {
			counts[b]++
		}
	}
	out := make([]Freq, 256)
	for i := range out {
		out[i] = Freq{Symbol: []byte{byte(i)}, Count: counts[i]}
	}
	return out, nil // already sorted: symbol i == byte value i
}
