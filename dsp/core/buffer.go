package core

// Linspace returns n evenly spaced values over [start, stop], both ends
// inclusive. A single point is start; n <= 0 yields an empty slice.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	// Pin the endpoint so accumulated rounding never overshoots stop.
	out[n-1] = stop
	return out
}

// Join returns a new slice holding a followed by b. Neither input is aliased.
func Join(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b))
	n := copy(out, a)
	copy(out[n:], b)
	return out
}

// Tile returns a new slice holding src repeated count times end-to-end.
// count <= 0 yields an empty slice.
func Tile(src []float64, count int) []float64 {
	if count <= 0 {
		return []float64{}
	}
	out := make([]float64, len(src)*count)
	for off := 0; off < len(out); off += len(src) {
		copy(out[off:], src)
	}
	return out
}

// Clone returns a copy of buf, preserving nil.
func Clone(buf []float64) []float64 {
	if buf == nil {
		return nil
	}
	out := make([]float64, len(buf))
	copy(out, buf)
	return out
}
