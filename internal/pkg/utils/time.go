package utils

import "time"

const UTCDateTimeLayout = "2006-01-02T15:04:05Z"

// NextWeekday returns the next occurrence of day at hour:minute UTC strictly
// after the calendar day of from.
func NextWeekday(from time.Time, day time.Weekday, hour, minute int) time.Time {
	from = from.UTC()
	days := (int(day) - int(from.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	next := from.AddDate(0, 0, days)
	return time.Date(next.Year(), next.Month(), next.Day(), hour, minute, 0, 0, time.UTC)
}

func FormatUTC(t time.Time) string {
	return t.UTC().Format(UTCDateTimeLayout)
}
