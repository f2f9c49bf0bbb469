package timescale

import (
	"testing"

	"github.com/cwbudde/algo-mods/internal/testutil"
)

func BenchmarkStretcherProcess(b *testing.B) {
	s, err := NewStretcher(48000)
	if err != nil {
		b.Fatalf("NewStretcher() error = %v", err)
	}

	input := testutil.DeterministicSine(440, 48000, 0.8, 8192)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.Process(input, 1.25)
	}
}
