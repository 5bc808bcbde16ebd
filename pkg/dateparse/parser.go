package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser normalizes natural-language date and time phrases from booking
// messages into absolute values. All resolution is relative to an injected
// "now", so callers (and tests) control the clock.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string, e.g. "Europe/London".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Absolute layouts accepted before any relative resolution is attempted.
var absoluteLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
}

// ResolveDate converts a date token to the start of the target day.
//
// Supported phrasings: absolute dates, month-name + day, "today",
// "tomorrow", bare weekday names, "next <weekday>", "this weekend",
// and "in N days/weeks". A bare weekday always resolves strictly after
// today: asking for "friday" on a Friday means next week's Friday.
func (p *Parser) ResolveDate(token string, now time.Time) (time.Time, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return time.Time{}, fmt.Errorf("empty date token")
	}
	now = now.In(p.location)

	for _, layout := range absoluteLayouts {
		if d, err := time.ParseInLocation(layout, token, p.location); err == nil {
			return d, nil
		}
	}

	switch token {
	case "today", "tonight":
		return p.startOfDay(now), nil
	case "tomorrow":
		return p.startOfDay(now.AddDate(0, 0, 1)), nil
	case "this weekend", "weekend":
		return p.nextWeekday(now, time.Saturday, 0), nil
	}

	if strings.HasPrefix(token, "in ") {
		return p.resolveInDuration(token, now)
	}

	if strings.HasPrefix(token, "next ") {
		if wd, ok := weekdays[strings.TrimPrefix(token, "next ")]; ok {
			return p.nextWeekday(now, wd, 7), nil
		}
		return time.Time{}, fmt.Errorf("unknown weekday in %q", token)
	}

	if wd, ok := weekdays[token]; ok {
		return p.nextWeekday(now, wd, 0), nil
	}

	if d, ok := p.resolveMonthDay(token, now); ok {
		return d, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date token %q", token)
}

// nextWeekday returns the next occurrence of target strictly after now,
// plus extraDays ("next friday" is the bare resolution one week later).
func (p *Parser) nextWeekday(now time.Time, target time.Weekday, extraDays int) time.Time {
	delta := int(target-now.Weekday()+7) % 7
	if delta == 0 {
		delta = 7
	}
	return p.startOfDay(now.AddDate(0, 0, delta+extraDays))
}

func (p *Parser) resolveInDuration(token string, now time.Time) (time.Time, error) {
	re := regexp.MustCompile(`^in (\d+) (day|days|week|weeks)$`)
	m := re.FindStringSubmatch(token)
	if len(m) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration phrase %q", token)
	}
	amount, _ := strconv.Atoi(m[1])
	if strings.HasPrefix(m[2], "week") {
		amount *= 7
	}
	return p.startOfDay(now.AddDate(0, 0, amount)), nil
}

// monthDayRe matches "march 15", "aug 3", "december 24 2026".
var monthDayRe = regexp.MustCompile(`^([a-z]+) (\d{1,2})(?: (\d{4}))?$`)

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// resolveMonthDay handles month-name + day; a missing year rolls forward
// to the next occurrence of that date.
func (p *Parser) resolveMonthDay(token string, now time.Time) (time.Time, bool) {
	m := monthDayRe.FindStringSubmatch(token)
	if m == nil {
		return time.Time{}, false
	}
	month, ok := months[m[1]]
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[2])
	if day < 1 || day > 31 {
		return time.Time{}, false
	}

	year := now.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if m[3] == "" && d.Before(p.startOfDay(now)) {
		d = d.AddDate(1, 0, 0)
	}
	return d, true
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

var timeRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(?::(\d{2}))?\s*(am|pm)?$`)

// NormalizeTime converts phrases like "7pm", "7:30 PM", "19:30" or
// "19:00:00" to HH:MM:SS as required by the reservation API. Unlike the
// date resolver it never guesses: an unparseable phrase is an error.
func NormalizeTime(token string) (string, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	m := timeRe.FindStringSubmatch(token)
	if m == nil {
		return "", fmt.Errorf("unrecognized time %q", token)
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch m[4] {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return "", fmt.Errorf("time %q out of range", token)
	}
	return fmt.Sprintf("%02d:%02d:00", hour, minute), nil
}
