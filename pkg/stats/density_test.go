package stats

import (
	"math"
	"testing"
)

func TestKernelDensityEstimate_IntegratesToOne(t *testing.T) {
	values := []float64{1, 2, 2.5, 3, 3.2, 4, 6, 7.5}
	curve := KernelDensityEstimateN(values, 0, 400)
	if len(curve) != 400 {
		t.Fatalf("len = %d, want 400", len(curve))
	}

	var area float64
	for i := 1; i < len(curve); i++ {
		dx := curve[i].Value - curve[i-1].Value
		area += dx * (curve[i].Density + curve[i-1].Density) / 2
	}
	if math.Abs(area-1) > 0.01 {
		t.Errorf("integrated density = %v, want ~1", area)
	}
	for _, p := range curve {
		if p.Density < 0 {
			t.Fatalf("negative density %v at %v", p.Density, p.Value)
		}
	}
}

func TestKernelDensityEstimate_Grid(t *testing.T) {
	values := []float64{0, 10}
	h := 2.0
	curve := KernelDensityEstimate(values, h)
	if len(curve) != DefaultDensitySamples {
		t.Fatalf("len = %d, want %d", len(curve), DefaultDensitySamples)
	}
	if got := curve[0].Value; math.Abs(got-(-6)) > 1e-9 {
		t.Errorf("first sample = %v, want -6", got)
	}
	if got := curve[len(curve)-1].Value; math.Abs(got-16) > 1e-9 {
		t.Errorf("last sample = %v, want 16", got)
	}
}

func TestKernelDensityEstimate_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"empty", nil},
		{"single value", []float64{4}},
		{"constant", []float64{4, 4, 4}},
		{"non-finite only", []float64{math.NaN(), math.Inf(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KernelDensityEstimate(tt.values, 0); len(got) != 0 {
				t.Errorf("KernelDensityEstimate() len = %d, want 0", len(got))
			}
		})
	}
}

func TestKernelDensityEstimate_ExplicitBandwidthOnConstant(t *testing.T) {
	curve := KernelDensityEstimateN([]float64{4, 4}, 1, 11)
	if len(curve) != 11 {
		t.Fatalf("len = %d, want 11", len(curve))
	}
	peak := curve[5]
	if math.Abs(peak.Value-4) > 1e-9 {
		t.Errorf("center sample = %v, want 4", peak.Value)
	}
	for _, p := range curve {
		if p.Density > peak.Density {
			t.Errorf("density at %v exceeds center", p.Value)
		}
	}
}

func TestSilvermanBandwidth(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	sd := StdDev(values)
	iqr := InterquartileRange(values) / 1.34
	want := 0.9 * math.Min(sd, iqr) * math.Pow(8, -0.2)
	if got := SilvermanBandwidth(values); math.Abs(got-want) > 1e-12 {
		t.Errorf("SilvermanBandwidth() = %v, want %v", got, want)
	}
	if got := SilvermanBandwidth([]float64{1}); got != 0 {
		t.Errorf("SilvermanBandwidth(single) = %v, want 0", got)
	}
}
