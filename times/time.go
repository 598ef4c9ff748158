package times

import (
	"fmt"
	"strconv"
	"time"
	_ "time/tzdata"
)

const (
	YearMonthDayLayout = "2006/1/2"
	ClockLayout        = "3:04:05"
)

const (
	DayDuration = 24 * time.Hour

	// NotAvailable is shown for timestamps that were never written.
	NotAvailable = "-"
)

// Taipei is the zone every timestamp is displayed in.
var Taipei = loadTaipei()

func loadTaipei() *time.Location {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		return time.FixedZone("CST", 8*60*60)
	}

	return loc
}

// FormatTaipei renders t the way zh-TW locales print a local date time,
// e.g. "2024/1/5 下午3:04:05".
func FormatTaipei(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}

	local := t.In(Taipei)

	meridiem := "上午"
	if local.Hour() >= 12 {
		meridiem = "下午"
	}

	return fmt.Sprintf("%s %s%s", local.Format(YearMonthDayLayout), meridiem, local.Format(ClockLayout))
}

// EpochMillis returns t as the decimal milliseconds string stored for activity timestamps.
func EpochMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// ParseEpochMillis is the inverse of EpochMillis.
func ParseEpochMillis(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}

	return time.UnixMilli(ms), nil
}
