package regression

import (
	"math/rand"
	"testing"
)

func benchObservations(n int) []Observation {
	rng := rand.New(rand.NewSource(1))
	obs := make([]Observation, n)
	for i := range obs {
		area := 30 + rng.Float64()*270
		noise := rng.NormFloat64() * 5000
		obs[i] = Observation{X: area, Y: 1800*area + 25000 + noise}
	}

	return obs
}

func BenchmarkFit(b *testing.B) {
	sizes := []struct {
		name string
		n    int
	}{
		{"10", 10},
		{"100", 100},
		{"10000", 10000},
	}

	for _, size := range sizes {
		obs := benchObservations(size.n)
		b.Run(size.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Fit(obs); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPredict(b *testing.B) {
	line := FittedLine{Slope: 1800, Intercept: 25000}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Predict(float64(i%300), line)
	}
}
