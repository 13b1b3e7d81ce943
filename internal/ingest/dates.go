package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet serial dates count days since 1899-12-30 (the Lotus epoch,
// including the phantom 1900 leap day). Serials outside (0, 100000) are
// rejected as implausible rather than mapped to far-future instants.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const maxSerialDays = 100000

// genericLayouts are tried first, in order. They cover ISO timestamps and
// unambiguous date strings straight out of export tools.
var genericLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// namedMonthLayouts handle "15 Jan 2025" and "Jan 15, 2025" style strings.
var namedMonthLayouts = []string{
	"2 Jan 2006 15:04:05",
	"2 Jan 2006 15:04",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006 15:04",
	"Jan 2, 2006",
	"January 2, 2006",
}

// numericDatePattern matches D/M/Y or D-M-Y with an optional time and AM/PM
// marker. Year may be two or four digits.
var numericDatePattern = regexp.MustCompile(
	`^(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})(?:[ T](\d{1,2}):(\d{2})(?::(\d{2}))?(?:\s*([AaPp][Mm]))?)?$`)

// ParseDate parses a heterogeneous date string into a UTC instant. Strategies
// are tried in order: generic layouts, day-first numeric dates, named-month
// formats, then spreadsheet serial numbers. It returns false when every
// strategy fails; callers treat that as "missing", not a hard error.
//
// Day-first disambiguation policy: for numeric D/M/Y strings the first
// component is preferred as the day. When that reading is impossible (the
// month position exceeds 12) the string is reinterpreted as M/D/Y. True
// locale intent cannot be recovered from the string alone; this is a
// documented tie-break, not a guarantee.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	if t, ok := parseNumericDate(s); ok {
		return t, true
	}

	for _, layout := range namedMonthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	if t, ok := parseSerialDate(s); ok {
		return t, true
	}

	return time.Time{}, false
}

func parseNumericDate(s string) (time.Time, bool) {
	m := numericDatePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		year += 2000
	}

	day, month := first, second
	if month > 12 && day <= 12 {
		// Impossible as D/M; reinterpret month-first.
		day, month = second, first
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	hour, minute, sec := 0, 0, 0
	if m[4] != "" {
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
		if m[6] != "" {
			sec, _ = strconv.Atoi(m[6])
		}
		if meridiem := strings.ToUpper(m[7]); meridiem != "" {
			if hour > 12 {
				return time.Time{}, false
			}
			if meridiem == "PM" && hour != 12 {
				hour += 12
			}
			if meridiem == "AM" && hour == 12 {
				hour = 0
			}
		}
		if hour > 23 || minute > 59 || sec > 59 {
			return time.Time{}, false
		}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.UTC)
	// time.Date normalizes overflow (e.g. Feb 30); reject those.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}

func parseSerialDate(s string) (time.Time, bool) {
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, false
	}
	if serial <= 0 || serial >= maxSerialDays {
		return time.Time{}, false
	}

	days := int(serial)
	frac := serial - float64(days)
	t := serialEpoch.AddDate(0, 0, days)
	if frac > 0 {
		t = t.Add(time.Duration(frac * float64(24*time.Hour)))
	}
	return t, true
}
