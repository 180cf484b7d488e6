package display

// DefaultHistorySize is the number of levels kept for the sparkline.
const DefaultHistorySize = 40

// history is a fixed-size circular buffer of fill levels.
type history struct {
	data  []float64
	head  int
	count int
}

func newHistory(size int) *history {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &history{data: make([]float64, size)}
}

func (h *history) push(v float64) {
	h.data[h.head] = v
	h.head = (h.head + 1) % len(h.data)
	if h.count < len(h.data) {
		h.count++
	}
}

// values returns the stored levels, oldest first.
func (h *history) values() []float64 {
	out := make([]float64, h.count)
	start := (h.head - h.count + len(h.data)) % len(h.data)
	for i := range out {
		out[i] = h.data[(start+i)%len(h.data)]
	}
	return out
}

func (h *history) len() int {
	return h.count
}
