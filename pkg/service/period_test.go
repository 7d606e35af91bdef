package service

import (
	"testing"
	"time"

	"sellerpulse/ms-seller-analytics/pkg/utils"
)

func TestPeriodKey(t *testing.T) {
	// 2021-06-16 is a Wednesday
	ts := time.Date(2021, 6, 16, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		t      time.Time
		period string
		want   string
	}{
		{"day", ts, utils.PERIOD_DAY, "2021-06-16"},
		{"week keys on monday", ts, utils.PERIOD_WEEK, "2021-06-14"},
		{"week of a monday is itself", time.Date(2021, 6, 14, 0, 0, 0, 0, time.UTC), utils.PERIOD_WEEK, "2021-06-14"},
		{"week of a sunday", time.Date(2021, 6, 20, 23, 59, 0, 0, time.UTC), utils.PERIOD_WEEK, "2021-06-14"},
		{"month", ts, utils.PERIOD_MONTH, "2021-06"},
		{"quarter", ts, utils.PERIOD_QUARTER, "2021-Q2"},
		{"quarter boundary", time.Date(2021, 10, 1, 0, 0, 0, 0, time.UTC), utils.PERIOD_QUARTER, "2021-Q4"},
		{"year", ts, utils.PERIOD_YEAR, "2021"},
		{"unknown falls back to day", ts, "fortnight", "2021-06-16"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeriodKey(tt.t, tt.period); got != tt.want {
				t.Errorf("PeriodKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPeriodKeyStableAcrossOneBucket(t *testing.T) {
	// every day of a month must land in the same month bucket
	for d := 1; d <= 28; d++ {
		ts := time.Date(2021, 2, d, 12, 0, 0, 0, time.UTC)
		if got := PeriodKey(ts, utils.PERIOD_MONTH); got != "2021-02" {
			t.Errorf("PeriodKey(%v) = %v, want 2021-02", ts, got)
		}
	}
}
