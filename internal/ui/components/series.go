package components

import (
	"sort"

	analyticsdto "statdeck/internal/modules/analytics/dto"
)

// OldestFirst returns a copy of points ordered by date for left-to-right
// charts. Points with equal dates keep their server order.
func OldestFirst(points []analyticsdto.PointOutput) []analyticsdto.PointOutput {
	out := make([]analyticsdto.PointOutput, len(points))
	copy(out, points)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Values projects one field of every point.
func Values(points []analyticsdto.PointOutput, field func(analyticsdto.PointOutput) float64) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = field(p)
	}
	return out
}
