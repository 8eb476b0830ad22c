package components

import (
	"math"
	"strings"
	"testing"
)

func TestSparkline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		values []float64
		width  int
		want   string
	}{
		{"empty", nil, 10, ""},
		{"ramp", []float64{0, 7}, 10, "▁█"},
		{"flat", []float64{3, 3, 3}, 10, "▅▅▅"},
		{"gap", []float64{0, math.NaN(), 7}, 10, "▁ █"},
		{"truncated to tail", []float64{0, 1, 2, 3, 4, 5, 6, 7}, 2, "▁█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sparkline(tt.values, tt.width); got != tt.want {
				t.Fatalf("Sparkline() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBarsScaleToLargest(t *testing.T) {
	t.Parallel()
	out := Bars([]Bar{
		{Label: "Desktop", Value: 10, Note: "50.00%"},
		{Label: "Tablet", Value: 5},
		{Label: "None", Value: 0},
	}, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", out)
	}
	if strings.Count(lines[0], "█") != 10 || !strings.HasSuffix(lines[0], "50.00%") {
		t.Fatalf("largest bar should fill width: %q", lines[0])
	}
	if strings.Count(lines[1], "█") != 5 || !strings.HasPrefix(lines[1], "Tablet  ") {
		t.Fatalf("half bar with padded label expected: %q", lines[1])
	}
	if strings.Contains(lines[2], "█") {
		t.Fatalf("zero bar should be empty: %q", lines[2])
	}
}
