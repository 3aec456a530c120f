package fortune

import "fmt"

const (
	// guidanceOffset shifts the guidance pick relative to the message pick so
	// the two pools do not rotate in lockstep.
	guidanceOffset = 3

	// firstLuckyHour and luckyHourSpan keep the lucky hour within 6..17.
	firstLuckyHour = 6
	luckyHourSpan  = 12
)

// Horoscope is the daily message set for a birthday.
type Horoscope struct {
	Sign      ZodiacSign `json:"sign"`
	Message   string     `json:"message"`
	Guidance  string     `json:"guidance"`
	LuckyHour int        `json:"lucky_hour"`
}

// DailyHoroscope picks today's message, guidance and lucky hour for a birthday.
//
// Selection is purely modular: the day of the year of today, offset by the
// zero-based birth month, indexes each message pool. The guidance index is
// shifted by a further 3. The lucky hour is the same base mod 12, plus 6.
func DailyHoroscope(birth, today Date) Horoscope {
	base := horoscopeBase(birth, today)

	return Horoscope{
		Sign:      ZodiacSignFor(birth),
		Message:   positiveMessages[base%len(positiveMessages)],
		Guidance:  guidanceMessages[(base+guidanceOffset)%len(guidanceMessages)],
		LuckyHour: base%luckyHourSpan + firstLuckyHour,
	}
}

func horoscopeBase(birth, today Date) int {
	return today.YearDay() + int(birth.Month) - 1
}

// FormatHour renders a 24-hour clock hour as a 12-hour label, e.g. "5:00 PM".
func FormatHour(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour
	if hour > 12 {
		display = hour - 12
	}
	return fmt.Sprintf("%d:00 %s", display, suffix)
}
