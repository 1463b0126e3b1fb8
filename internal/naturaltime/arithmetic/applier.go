package arithmetic

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime"
)

// Apply implements naturaltime.TokenPlugin. Seconds through fortnights are
// fixed-duration shifts; months and years use calendar arithmetic with
// day-of-month clamping so Jan 31 + 1 month lands on the last day of
// February, never in March. Time-of-day is preserved for calendar shifts.
func (p *Plugin) Apply(tok naturaltime.TimeToken, base time.Time) (time.Time, error) {
	if tok.Unit == naturaltime.Unknown || tok.Unit > naturaltime.Years {
		return time.Time{}, fmt.Errorf("%w: %s", naturaltime.ErrUnknownUnit, tok.Unit)
	}

	n, err := strconv.ParseInt(tok.Magnitude, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid magnitude %q: %w", tok.Magnitude, err)
	}

	switch tok.Unit {
	case naturaltime.Seconds:
		return addDuration(base, n, time.Second)
	case naturaltime.Minutes:
		return addDuration(base, n, time.Minute)
	case naturaltime.Hours:
		return addDuration(base, n, time.Hour)
	case naturaltime.Days:
		return addDuration(base, n, 24*time.Hour)
	case naturaltime.Weeks:
		return addDuration(base, n, 7*24*time.Hour)
	case naturaltime.Fortnights:
		return addDuration(base, n, 14*24*time.Hour)
	case naturaltime.Months:
		return addMonths(base, n)
	case naturaltime.Years:
		if n > math.MaxInt64/12 || n < math.MinInt64/12 {
			return time.Time{}, fmt.Errorf("magnitude %d overflows year arithmetic", n)
		}
		return addMonths(base, n*12)
	default:
		return time.Time{}, fmt.Errorf("%w: %s", naturaltime.ErrUnknownUnit, tok.Unit)
	}
}

// addDuration shifts t by n*unit, refusing multiplications that overflow
// the duration representation.
func addDuration(t time.Time, n int64, unit time.Duration) (time.Time, error) {
	d := time.Duration(n) * unit
	if n != 0 && d/unit != time.Duration(n) {
		return time.Time{}, fmt.Errorf("magnitude %d overflows duration arithmetic", n)
	}
	return t.Add(d), nil
}

// addMonths shifts t by whole calendar months, clamping the day-of-month to
// the last valid day of the destination month. time.AddDate is deliberately
// not used here: it normalizes Jan 31 + 1 month into early March.
func addMonths(t time.Time, months int64) (time.Time, error) {
	total := int64(t.Year())*12 + int64(t.Month()) - 1
	if (months > 0 && total > math.MaxInt64-months) ||
		(months < 0 && total < math.MinInt64-months) {
		return time.Time{}, fmt.Errorf("magnitude %d overflows month arithmetic", months)
	}
	total += months

	year := total / 12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}

	m := time.Month(month + 1)
	day := t.Day()
	if last := lastDayOfMonth(year, m); day > last {
		day = last
	}

	hour, min, sec := t.Clock()
	return time.Date(int(year), m, day, hour, min, sec, t.Nanosecond(), t.Location()), nil
}

// lastDayOfMonth returns the number of days in the given month. Day zero of
// the following month normalizes to the last day of this one.
func lastDayOfMonth(year int64, m time.Month) int {
	return time.Date(int(year), m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
