// Package schedule holds the date arithmetic for the itinerary: calendar
// labels for day N, the countdown to departure, and detection of the
// activity happening right now. Pure functions of (startDate, dayNumber, now).
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultActivityMinutes is the assumed duration of the last activity of a
// day, which has no successor to bound it.
const DefaultActivityMinutes = 120

const isoDate = "2006-01-02"

// DayLabel renders the header label for a day offset from the trip start,
// e.g. "FRI, APR 25". Without a start date it falls back to "DAY N".
func DayLabel(startDate string, dayOffset int) string {
	start, err := time.Parse(isoDate, startDate)
	if err != nil {
		return fmt.Sprintf("DAY %d", dayOffset+1)
	}
	d := start.AddDate(0, 0, dayOffset)
	label := fmt.Sprintf("%s, %s %d", d.Weekday().String()[:3], d.Month().String()[:3], d.Day())
	return strings.ToUpper(label)
}

// DayOfMonth returns the calendar day-of-month at startDate + dayOffset.
// The second return is false when no start date is set.
func DayOfMonth(startDate string, dayOffset int) (int, bool) {
	start, err := time.Parse(isoDate, startDate)
	if err != nil {
		return 0, false
	}
	return start.AddDate(0, 0, dayOffset).Day(), true
}

// DaysUntil counts whole days from now until the trip starts, at midnight
// granularity: positive before the trip, 0 on departure day, negative after.
// The second return is false when no start date is set.
func DaysUntil(startDate string, now time.Time) (int, bool) {
	start, err := time.Parse(isoDate, startDate)
	if err != nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startMidnight := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	days := int(startMidnight.Sub(today).Hours() / 24)
	return days, true
}

// IsTripDayToday reports whether day dayNumber of the trip falls on today's
// calendar date, ignoring time of day.
func IsTripDayToday(startDate string, dayNumber int, now time.Time) bool {
	start, err := time.Parse(isoDate, startDate)
	if err != nil {
		return false
	}
	d := start.AddDate(0, 0, dayNumber-1)
	return d.Year() == now.Year() && d.Month() == now.Month() && d.Day() == now.Day()
}

// IsOngoing reports whether an activity is happening at now. The interval is
// half-open: it starts at the activity's time and ends at the next activity's
// time, end exclusive. Without a next activity a fixed default window of
// DefaultActivityMinutes applies. An inverted interval (next activity earlier
// than this one) is treated as empty rather than wrapping past midnight.
func IsOngoing(activityTime, nextActivityTime string, now time.Time) bool {
	start, ok := minutesSinceMidnight(activityTime)
	if !ok {
		return false
	}
	end := start + DefaultActivityMinutes
	if nextActivityTime != "" {
		next, ok := minutesSinceMidnight(nextActivityTime)
		if !ok {
			return false
		}
		end = next
	}
	nowMinutes := now.Hour()*60 + now.Minute()
	return start <= nowMinutes && nowMinutes < end
}

// minutesSinceMidnight parses "HH:MM" into minutes. Malformed input reports
// false rather than erroring; callers treat those activities as never ongoing.
func minutesSinceMidnight(hhmm string) (int, bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
