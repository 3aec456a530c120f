package fortune

import (
	"fmt"
	"time"
)

// BirthColor is the color and day name of the weekday someone was born on.
type BirthColor struct {
	Color DayColor `json:"color"`
	Day   DayName  `json:"day"`
}

// ColorForWeekday returns the color of weekday w.
// It returns ErrInvalidWeekday when w is outside Sunday..Saturday.
func ColorForWeekday(w time.Weekday) (DayColor, error) {
	if w < time.Sunday || w > time.Saturday {
		return DayColor{}, fmt.Errorf("%w: got %d", ErrInvalidWeekday, int(w))
	}
	return dayColors[w], nil
}

// ColorForDate returns the color of the weekday d falls on.
func ColorForDate(d Date) DayColor {
	// Weekday of a Date is always in range.
	return dayColors[d.Weekday()]
}

// BirthColorFor returns the color and day name of the weekday of birth.
func BirthColorFor(birth Date) BirthColor {
	w := birth.Weekday()
	return BirthColor{
		Color: dayColors[w],
		Day:   dayNames[w],
	}
}

// TodayColor returns the color of today's weekday.
func TodayColor(today Date) DayColor {
	return ColorForDate(today)
}

// ColorMatches reports whether the birth color is also today's color.
func ColorMatches(birth, today Date) bool {
	return birth.Weekday() == today.Weekday()
}
