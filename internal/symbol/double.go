package symbol

// doubleByte selects the 65536-entry alphabet of consecutive byte pairs.
// A trailing odd byte at encode time is represented by the pair (b, 0),
// which already has an entry here — see spec §4.3.2.
type doubleByte struct{}

func (s *doubleByte) Select(keys [][]byte, budget int64) ([]Freq, error) {
	var counts [65536]int64
	for _, k := range keys {
		n := len(k)
		for i := 0; i+1 < n; i += 2 {
			idx := 256*int(k[i]) + int(k[i+1])
			counts[idx]++
		}
		if n%2 == 1 {
			idx := 256 * int(k[n-1])
			counts[idx]++
		}
	}
	out := make([]Freq, 65536)
	for i := range out {
		out[i] = Freq{Symbol: []byte{byte(i >> 8), byte(i)}, Count: counts[i]}
	}
	return out, nil // already sorted: symbol i == big-endian pair i
}
