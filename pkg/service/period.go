package service

import (
	"fmt"
	"time"

	"sellerpulse/ms-seller-analytics/pkg/utils"
)

// PeriodKey maps a timestamp to a sortable bucket key for the given granularity.
// Week buckets key on the Monday on or before the timestamp.
func PeriodKey(t time.Time, period string) string {
	switch period {
	case utils.PERIOD_WEEK:
		offset := (int(t.Weekday()) + 6) % 7
		return t.AddDate(0, 0, -offset).Format(utils.DATE_FORMAT)
	case utils.PERIOD_MONTH:
		return t.Format("2006-01")
	case utils.PERIOD_QUARTER:
		return fmt.Sprintf("%d-Q%d", t.Year(), (int(t.Month())-1)/3+1)
	case utils.PERIOD_YEAR:
		return t.Format("2006")
	default:
		return t.Format(utils.DATE_FORMAT)
	}
}
