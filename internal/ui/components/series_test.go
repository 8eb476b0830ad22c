package components

import (
	"testing"
	"time"

	analyticsdto "statdeck/internal/modules/analytics/dto"
)

func TestOldestFirstDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }
	in := []analyticsdto.PointOutput{
		{Date: day(3), Revenue: 3},
		{Date: day(1), Revenue: 1},
		{Date: day(2), Revenue: 2},
	}
	got := Values(OldestFirst(in), func(p analyticsdto.PointOutput) float64 { return p.Revenue })
	if got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("unexpected order %v", got)
	}
	if in[0].Revenue != 3 {
		t.Fatal("input slice was reordered")
	}
}
