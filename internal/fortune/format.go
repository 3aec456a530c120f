package fortune

import (
	"fmt"
	"time"
)

// FormatDisplayDate formats a date for display, e.g. "January 15, 1990".
// A date whose month is outside January..December, such as the zero Date,
// is rendered in ISO form instead.
func FormatDisplayDate(d Date) string {
	if d.Month < time.January || d.Month > time.December {
		return d.String()
	}
	return fmt.Sprintf("%s %d, %d", monthNames[d.Month-1], d.Day, d.Year)
}
