package scrape

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var spanishMonths = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

var spanishDate = regexp.MustCompile(`(?i)(\d{1,2})\s+de\s+([a-záéíóú]+)\s+de\s+(\d{4})`)

// ParseSpanishDate reads dates such as "viernes, 14 de noviembre de 2025".
func ParseSpanishDate(s string, loc *time.Location) (time.Time, bool) {
	m := spanishDate.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	month, ok := spanishMonths[strings.ToLower(m[2])]
	if !ok {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	if loc == nil {
		loc = time.Local
	}

	return time.Date(year, month, day, 0, 0, 0, 0, loc), true
}

// DMY formats t as dd/mm/yyyy, the way programs title their daily episodes.
func DMY(t time.Time) string {
	return t.Format("02/01/2006")
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBack returns today and the previous n-1 days, newest first.
func DaysBack(today time.Time, n int) []time.Time {
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, today.AddDate(0, 0, -i))
	}
	return days
}
