// Package timeparse normalizes the free-form date and time strings the
// model extracts from user requests into canonical forms.
package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateFormats is tried in order; the first successful parse wins. Note that
// a string like "01-02-2025" matches the DD-MM-YYYY pattern, so it is read
// as the 1st of February, never as January 2nd.
var dateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
}

var (
	time24Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	time12Pattern = regexp.MustCompile(`^(\d{1,2}):?(\d{2})?\s*(AM|PM|am|pm)$`)
)

// ParseDate parses a date string in one of the accepted formats and returns
// it normalized to YYYY-MM-DD. The boolean reports whether any format
// matched; an unparseable string is not an error, callers turn it into a
// user-facing validation message.
func ParseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// ParseTime parses a 24-hour HH:MM string or a 12-hour string with an AM/PM
// suffix and returns it normalized to zero-padded 24-hour HH:MM.
func ParseTime(s string) (string, bool) {
	s = strings.TrimSpace(s)

	if m := time24Pattern.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour <= 23 && minute <= 59 {
			return fmt.Sprintf("%02d:%02d", hour, minute), true
		}
		return "", false
	}

	if m := time12Pattern.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		period := strings.ToUpper(m[3])
		if period == "PM" && hour != 12 {
			hour += 12
		} else if period == "AM" && hour == 12 {
			hour = 0
		}
		if hour <= 23 && minute <= 59 {
			return fmt.Sprintf("%02d:%02d", hour, minute), true
		}
	}

	return "", false
}

// Combine joins a normalized YYYY-MM-DD date and HH:MM time into a single
// UTC instant.
func Combine(date, clock string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04", date+" "+clock)
}

// IsFutureAt reports whether the combined instant is strictly after now.
// A parse failure counts as not-future.
func IsFutureAt(date, clock string, now time.Time) bool {
	t, err := Combine(date, clock)
	if err != nil {
		return false
	}
	return t.After(now.UTC())
}

// IsFuture is IsFutureAt against the wall clock.
func IsFuture(date, clock string) bool {
	return IsFutureAt(date, clock, time.Now())
}
