package dto

import "time"

// MetricOutput is a derived value plus its display form; Display is "N/A"
// when Valid is false.
type MetricOutput struct {
	Value   float64
	Valid   bool
	Display string
}

type CardOutput struct {
	Title     string
	Value     string
	Available bool
}

type SnapshotOutput struct {
	TotalRevenue       float64
	TotalOrders        float64
	TotalVisitors      float64
	NewUsers           float64
	ReturningUsers     float64
	BounceRate         float64
	AvgSessionDuration float64
	ConversionRate     MetricOutput
	AverageOrderValue  MetricOutput
	// Cards are the headline row (revenue, orders, conversion, AOV) followed
	// by the engagement row (new users, bounce rate, session duration).
	Cards []CardOutput
}

type PointOutput struct {
	Date               time.Time
	Label              string
	Revenue            float64
	Visitors           float64
	Orders             float64
	AvgSessionDuration float64
	NewUsers           float64
	ReturningUsers     float64
	ConversionRate     MetricOutput
	Desktop            float64
	Mobile             float64
	Tablet             float64
}

type SeriesOutput struct {
	Points []PointOutput
}

type DashboardOutput struct {
	Stats  SnapshotOutput
	Series SeriesOutput
}

type DeviceShareOutput struct {
	Name  string
	Count float64
	Share MetricOutput
}

type DetailOutput struct {
	Series    SeriesOutput
	HasLatest bool
	Latest    PointOutput
	Cards     []CardOutput
	Devices   []DeviceShareOutput
}
