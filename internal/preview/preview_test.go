package preview

import (
	"strings"
	"testing"
)

func TestLine(t *testing.T) {
	out := Line([]float64{0, 1, 4, 9, 16}, "squares")
	if out == "" {
		t.Fatal("expected non-empty plot")
	}
	if !strings.Contains(out, "squares") {
		t.Error("expected caption in output")
	}
}

func TestScatter(t *testing.T) {
	out := Scatter([]float64{0, 1, 2}, []float64{0, 1, 2}, 40, 10)
	if out == "" {
		t.Fatal("expected non-empty canvas")
	}
	if !strings.Contains(out, "●") {
		t.Error("expected plotted points")
	}
	if !strings.Contains(out, "2.00") || !strings.Contains(out, "0.00") {
		t.Error("expected axis bounds in frame")
	}
}

func TestScatterDegenerate(t *testing.T) {
	// All points share a y value; the range guard keeps this drawable.
	out := Scatter([]float64{0, 1, 2}, []float64{5, 5, 5}, 40, 10)
	if !strings.Contains(out, "●") {
		t.Error("expected points on a flat line")
	}

	if got := Scatter(nil, nil, 40, 10); got != "" {
		t.Errorf("expected empty string for no points, got %q", got)
	}
	if got := Scatter([]float64{1}, []float64{1, 2}, 40, 10); got != "" {
		t.Errorf("expected empty string for mismatched input, got %q", got)
	}
}
