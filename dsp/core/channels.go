package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// CloneChannels deep-copies a planar multi-channel buffer.
func CloneChannels(channels [][]float64) [][]float64 {
	out := make([][]float64, len(channels))
	for i, ch := range channels {
		out[i] = append([]float64(nil), ch...)
	}
	return out
}

// FrameCount returns the common channel length, or -1 when channel
// lengths differ. An empty channel set has zero frames.
func FrameCount(channels [][]float64) int {
	if len(channels) == 0 {
		return 0
	}
	n := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != n {
			return -1
		}
	}
	return n
}
