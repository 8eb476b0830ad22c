package demoapi

import (
	"math"
	"time"
)

type Stats struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalOrders        float64 `json:"totalOrders"`
	TotalVisitors      float64 `json:"totalVisitors"`
	NewUsers           float64 `json:"newUsers"`
	ReturningUsers     float64 `json:"returningUsers"`
	BounceRate         float64 `json:"bounceRate"`
	AvgSessionDuration float64 `json:"avgSessionDuration"`
}

type Devices struct {
	Desktop float64 `json:"desktop"`
	Mobile  float64 `json:"mobile"`
	Tablet  float64 `json:"tablet"`
}

type Day struct {
	Date               string  `json:"date"`
	Revenue            float64 `json:"revenue"`
	Visitors           float64 `json:"visitors"`
	Orders             float64 `json:"orders"`
	AvgSessionDuration float64 `json:"avgSessionDuration"`
	NewUsers           float64 `json:"newUsers"`
	ReturningUsers     float64 `json:"returningUsers"`
	TopDevices         Devices `json:"topDevices"`
}

type User struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	LastActive string `json:"lastActive"`
}

// Fixture is everything the demo API serves besides login.
type Fixture struct {
	Stats  Stats
	Series []Day
	Users  []User
}

// DefaultFixture builds a deterministic fortnight of data ending at end,
// newest day first, with Stats aggregated from the series.
func DefaultFixture(end time.Time) Fixture {
	const days = 14
	end = end.UTC().Truncate(24 * time.Hour)

	series := make([]Day, 0, days)
	var stats Stats
	var sessionTotal float64
	for i := 0; i < days; i++ {
		wave := math.Sin(float64(i) / 2)
		visitors := math.Round(1200 + 250*wave + float64(i*13%70))
		orders := math.Round(visitors * (0.031 + 0.004*wave))
		revenue := math.Round(orders*58.5*100) / 100
		newUsers := math.Round(visitors * 0.42)
		returning := visitors - newUsers
		duration := math.Round(180 + 40*wave)
		desktop := math.Round(visitors * 0.55)
		mobile := math.Round(visitors * 0.35)

		series = append(series, Day{
			Date:               end.AddDate(0, 0, -i).Format("2006-01-02"),
			Revenue:            revenue,
			Visitors:           visitors,
			Orders:             orders,
			AvgSessionDuration: duration,
			NewUsers:           newUsers,
			ReturningUsers:     returning,
			TopDevices: Devices{
				Desktop: desktop,
				Mobile:  mobile,
				Tablet:  visitors - desktop - mobile,
			},
		})

		stats.TotalRevenue += revenue
		stats.TotalOrders += orders
		stats.TotalVisitors += visitors
		stats.NewUsers += newUsers
		stats.ReturningUsers += returning
		sessionTotal += duration
	}
	stats.TotalRevenue = math.Round(stats.TotalRevenue*100) / 100
	stats.BounceRate = 38.4
	stats.AvgSessionDuration = math.Round(sessionTotal / days)

	users := []User{
		{ID: 1, Name: DemoName, Email: DemoEmail, Role: "admin", Status: "active", LastActive: end.Format("2006-01-02")},
		{ID: 2, Name: "Ada Lovelace", Email: "ada@statdeck.dev", Role: "analyst", Status: "active", LastActive: end.AddDate(0, 0, -1).Format("2006-01-02")},
		{ID: 3, Name: "Grace Hopper", Email: "grace@statdeck.dev", Role: "editor", Status: "active", LastActive: end.AddDate(0, 0, -3).Format("2006-01-02")},
		{ID: 4, Name: "Alan Turing", Email: "alan@statdeck.dev", Role: "viewer", Status: "inactive", LastActive: end.AddDate(0, -2, 0).Format("2006-01-02")},
		{ID: 5, Name: "Edsger Dijkstra", Email: "edsger@statdeck.dev", Role: "viewer", Status: "inactive", LastActive: end.AddDate(0, -5, 0).Format("2006-01-02")},
	}

	return Fixture{Stats: stats, Series: series, Users: users}
}
