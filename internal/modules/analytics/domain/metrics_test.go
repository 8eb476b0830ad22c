package domain_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"statdeck/internal/modules/analytics/domain"
)

func TestConversionRateFormatsTwoDecimals(t *testing.T) {
	t.Parallel()
	var s domain.Snapshot
	if err := json.Unmarshal([]byte(`{"totalOrders": 50, "totalVisitors": 200}`), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := domain.ConversionRate(s.TotalOrders, s.TotalVisitors).Percent()
	if got != "25.00%" {
		t.Fatalf("expected 25.00%%, got %s", got)
	}
}

func TestZeroDenominatorsAreNotAvailable(t *testing.T) {
	t.Parallel()
	aov := domain.AverageOrderValue(1200, 0)
	if aov.Valid {
		t.Fatalf("aov with zero orders must be invalid")
	}
	if aov.Currency() != domain.NotAvailable {
		t.Fatalf("expected N/A, got %s", aov.Currency())
	}
	if got := domain.ConversionRate(0, 0).Percent(); got != domain.NotAvailable {
		t.Fatalf("0/0 conversion should be N/A, got %s", got)
	}
	if got := domain.Share(1, math.Inf(1)).Percent(); got != domain.NotAvailable {
		t.Fatalf("infinite total should be N/A, got %s", got)
	}
	if got := domain.ConversionRate(0, 10).Percent(); got != "0.00%" {
		t.Fatalf("zero orders over visitors is a valid 0%%, got %s", got)
	}
}

func TestFormatting(t *testing.T) {
	t.Parallel()
	if got := domain.AverageOrderValue(2469, 2).Currency(); got != "$1,234.50" {
		t.Fatalf("currency: got %s", got)
	}
	if got := domain.FormatCurrency(-5); got != "-$5.00" {
		t.Fatalf("negative currency: got %s", got)
	}
	if got := domain.FormatCount(1234567); got != "1,234,567" {
		t.Fatalf("count: got %s", got)
	}
	if got := domain.FormatDuration(185); got != "3m 5s" {
		t.Fatalf("duration: got %s", got)
	}
	if got := domain.FormatDuration(math.NaN()); got != domain.NotAvailable {
		t.Fatalf("nan duration: got %s", got)
	}
}

func TestPointDecodingAndLatest(t *testing.T) {
	t.Parallel()
	payload := `[
	  {"date":"2026-03-02T00:00:00Z","revenue":900,"visitors":300,"orders":30,"avgSessionDuration":140,"newUsers":40,"returningUsers":60,"topDevices":{"desktop":150,"mobile":120,"tablet":30}},
	  {"date":"2026-03-01","revenue":800,"visitors":0,"orders":10,"avgSessionDuration":120,"topDevices":{"desktop":0,"mobile":0,"tablet":0}}
	]`
	var series domain.Series
	if err := json.Unmarshal([]byte(payload), &series); err != nil {
		t.Fatalf("decode series: %v", err)
	}
	latest, ok := series.Latest()
	if !ok {
		t.Fatalf("expected latest point")
	}
	if !latest.Date.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) || latest.Date.Label() != "3/2/2026" {
		t.Fatalf("unexpected date %v label %s", latest.Date, latest.Date.Label())
	}
	if latest.ConversionRate().Percent() != "10.00%" {
		t.Fatalf("unexpected conversion %s", latest.ConversionRate().Percent())
	}
	if latest.Devices.Total() != 300 {
		t.Fatalf("unexpected device total %v", latest.Devices.Total())
	}
	if series[1].ConversionRate().Valid {
		t.Fatalf("zero visitors must not yield a valid conversion rate")
	}
	if _, ok := domain.Series(nil).Latest(); ok {
		t.Fatalf("empty series has no latest point")
	}

	var bad domain.Point
	if err := json.Unmarshal([]byte(`{"date":"yesterday"}`), &bad); err == nil {
		t.Fatalf("expected bad date to fail")
	}
}
