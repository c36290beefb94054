// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/cinematch/internal/textnorm"
)

var (
	// ErrInvalidMonth is returned for month names or numbers that do not
	// denote a month.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidDay is returned for weekday names or numbers that do not
	// denote a weekday.
	ErrInvalidDay = errors.New("invalid day")
)

// Weekday numbers a weekday from Monday (0) to Sunday (6).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// String returns the English weekday name.
func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Weekday(" + strconv.Itoa(int(d)) + ")"
	}
	return weekdayNames[d]
}

// WeekdayOf converts a time.Weekday, which counts from Sunday.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

var monthsByName = map[string]time.Month{
	"enero": time.January, "febrero": time.February, "marzo": time.March,
	"abril": time.April, "mayo": time.May, "junio": time.June,
	"julio": time.July, "agosto": time.August, "septiembre": time.September,
	"setiembre": time.September, "octubre": time.October,
	"noviembre": time.November, "diciembre": time.December,

	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// Keys are folded, so "miércoles" and "sábado" match without accents.
var weekdaysByName = map[string]Weekday{
	"lunes": Monday, "martes": Tuesday, "miercoles": Wednesday,
	"jueves": Thursday, "viernes": Friday, "sabado": Saturday, "domingo": Sunday,

	"monday": Monday, "tuesday": Tuesday, "wednesday": Wednesday,
	"thursday": Thursday, "friday": Friday, "saturday": Saturday, "sunday": Sunday,
}

// ParseMonth accepts a Spanish or English month name, in any case and with
// or without accents, or a number from 1 to 12.
func ParseMonth(s string) (time.Month, error) {
	key := textnorm.Normalize(strings.TrimSpace(s))
	if m, ok := monthsByName[key]; ok {
		return m, nil
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 12 {
		return time.Month(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
}

// ParseWeekday accepts a Spanish or English weekday name, in any case and
// with or without accents, or a number from 0 (Monday) to 6 (Sunday).
func ParseWeekday(s string) (Weekday, error) {
	key := textnorm.Normalize(strings.TrimSpace(s))
	if d, ok := weekdaysByName[key]; ok {
		return d, nil
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 0 && n <= 6 {
		return Weekday(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDay, s)
}
