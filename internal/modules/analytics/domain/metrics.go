package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Snapshot is the aggregate record served by the dashboard-stats endpoint.
type Snapshot struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalOrders        float64 `json:"totalOrders"`
	TotalVisitors      float64 `json:"totalVisitors"`
	NewUsers           float64 `json:"newUsers"`
	ReturningUsers     float64 `json:"returningUsers"`
	BounceRate         float64 `json:"bounceRate"`
	AvgSessionDuration float64 `json:"avgSessionDuration"`
}

type DeviceBreakdown struct {
	Desktop float64 `json:"desktop"`
	Mobile  float64 `json:"mobile"`
	Tablet  float64 `json:"tablet"`
}

func (d DeviceBreakdown) Total() float64 { return d.Desktop + d.Mobile + d.Tablet }

// Point is one per-date record of the time series.
type Point struct {
	Date               Date            `json:"date"`
	Revenue            float64         `json:"revenue"`
	Visitors           float64         `json:"visitors"`
	Orders             float64         `json:"orders"`
	AvgSessionDuration float64         `json:"avgSessionDuration"`
	NewUsers           float64         `json:"newUsers"`
	ReturningUsers     float64         `json:"returningUsers"`
	Devices            DeviceBreakdown `json:"topDevices"`
}

func (p Point) ConversionRate() Metric { return ConversionRate(p.Orders, p.Visitors) }

// Series keeps the order the server returned.
type Series []Point

// Latest is the first element, which the API uses for the most recent day.
func (s Series) Latest() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[0], true
}

// Date accepts RFC3339 timestamps as well as bare YYYY-MM-DD dates.
type Date struct{ time.Time }

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognised date %q", raw)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.RFC3339))
}

// Label renders the date the way a US locale short date does.
func (d Date) Label() string {
	if d.IsZero() {
		return "-"
	}
	return d.Format("1/2/2006")
}

// Metric is a derived value. Valid is false when the inputs could not produce
// a finite number, for example a zero denominator.
type Metric struct {
	Value float64
	Valid bool
}

const NotAvailable = "N/A"

func ratio(num, den float64) Metric {
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) || math.IsNaN(num) || math.IsInf(num, 0) {
		return Metric{}
	}
	v := num / den
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Metric{}
	}
	return Metric{Value: v, Valid: true}
}

// ConversionRate is orders/visitors×100.
func ConversionRate(orders, visitors float64) Metric {
	m := ratio(orders, visitors)
	m.Value *= 100
	return m
}

// AverageOrderValue is revenue/orders.
func AverageOrderValue(revenue, orders float64) Metric {
	return ratio(revenue, orders)
}

// Share is part/total×100.
func Share(part, total float64) Metric {
	m := ratio(part, total)
	m.Value *= 100
	return m
}

func (m Metric) Percent() string {
	if !m.Valid {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f%%", m.Value)
}

func (m Metric) Currency() string {
	if !m.Valid {
		return NotAvailable
	}
	return FormatCurrency(m.Value)
}

func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", v)
}

func FormatCount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	if v == math.Trunc(v) {
		return humanize.Comma(int64(v))
	}
	return humanize.Commaf(v)
}

// FormatDuration renders seconds as "3m 5s".
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return NotAvailable
	}
	total := int64(seconds)
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}
