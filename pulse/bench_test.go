package pulse_test

import (
	"testing"

	"github.com/katalvlaran/snowops/pulse"
)

func BenchmarkPress(b *testing.B) {
	n, err := pulse.Parse(withOutput)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.Press()
	}
}
