package aggregate

import (
	"testing"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 {
		t.Errorf("count = %d, want 0", s.Count)
	}
	if s.Mean != nil || s.Median != nil || s.Min != nil || s.Max != nil {
		t.Error("empty summary should have null statistics")
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		amounts []float64
		count   int
		mean    float64
		median  float64
		min     float64
		max     float64
	}{
		{
			name:    "single value",
			amounts: []float64{5000},
			count:   1, mean: 5000, median: 5000, min: 5000, max: 5000,
		},
		{
			name:    "odd count",
			amounts: []float64{10000, 15000, 12000},
			count:   3, mean: 12333.33, median: 12000, min: 10000, max: 15000,
		},
		{
			name:    "even count median is middle average",
			amounts: []float64{1000, 2000, 3000, 4000},
			count:   4, mean: 2500, median: 2500, min: 1000, max: 4000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.amounts)
			if s.Count != tt.count {
				t.Errorf("count = %d, want %d", s.Count, tt.count)
			}
			if *s.Mean != tt.mean {
				t.Errorf("mean = %v, want %v", *s.Mean, tt.mean)
			}
			if *s.Median != tt.median {
				t.Errorf("median = %v, want %v", *s.Median, tt.median)
			}
			if *s.Min != tt.min || *s.Max != tt.max {
				t.Errorf("min/max = %v/%v, want %v/%v", *s.Min, *s.Max, tt.min, tt.max)
			}
		})
	}
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	amounts := []float64{3, 1, 2}
	wide := []float64{3, 1, 2}
	_ = Summarize(amounts)
	for i := range amounts {
		if amounts[i] != wide[i] {
			t.Fatalf("input mutated: %v", amounts)
		}
	}
}
