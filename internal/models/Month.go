package models

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	MonthLayout = "2006-01"
	DateLayout  = "2006-01-02"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Month is a calendar month in YYYY-MM form.
type Month struct {
	Year  int
	Month time.Month
}

func ParseMonth(s string) (Month, error) {
	if !monthPattern.MatchString(s) {
		return Month{}, fmt.Errorf("invalid month format %q, expected YYYY-MM", s)
	}
	year, _ := strconv.Atoi(s[:4])
	m, _ := strconv.Atoi(s[5:])
	if m < 1 || m > 12 {
		return Month{}, fmt.Errorf("invalid month %q", s)
	}
	return Month{Year: year, Month: time.Month(m)}, nil
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) first() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Previous returns the month before m.
func (m Month) Previous() Month {
	return MonthOf(m.first().AddDate(0, -1, 0))
}

func (m Month) String() string {
	return m.first().Format(MonthLayout)
}

// Label is the human form, e.g. "February 2024".
func (m Month) Label() string {
	return m.first().Format("January 2006")
}

// Range returns the first and last day of the month as YYYY-MM-DD.
func (m Month) Range() (string, string) {
	start := m.first()
	end := start.AddDate(0, 1, -1)
	return start.Format(DateLayout), end.Format(DateLayout)
}

// Contains reports whether date (YYYY-MM-DD) falls within the month.
func (m Month) Contains(date string) bool {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	return d.Year() == m.Year && d.Month() == m.Month
}
