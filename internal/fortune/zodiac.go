package fortune

import "time"

// Direction is a zodiac sign together with the lucky direction of its element.
type Direction struct {
	Sign      ZodiacSign       `json:"sign"`
	Direction ElementDirection `json:"direction"`
}

// ZodiacSignFor classifies a birth date into its western zodiac sign.
//
// Boundaries (inclusive):
// capricorn: Dec 22 - Jan 19
// aquarius: Jan 20 - Feb 18
// pisces: Feb 19 - Mar 20
// aries: Mar 21 - Apr 19
// taurus: Apr 20 - May 20
// gemini: May 21 - Jun 20
// cancer: Jun 21 - Jul 22
// leo: Jul 23 - Aug 22
// virgo: Aug 23 - Sep 22
// libra: Sep 23 - Oct 22
// scorpio: Oct 23 - Nov 21
// sagittarius: Nov 22 - Dec 21
//
// The ranges partition the year, so every valid date matches exactly one
// sign. Should the table ever leave a gap, the first sign (Capricorn) is
// returned rather than failing.
func ZodiacSignFor(birth Date) ZodiacSign {
	sign, _ := classifyZodiac(birth.Month, birth.Day)
	return sign
}

// classifyZodiac scans the signs in canonical order and returns the first
// whose range contains month/day. ok is false when the fallback was used.
func classifyZodiac(month time.Month, day int) (sign ZodiacSign, ok bool) {
	for _, s := range zodiacSigns {
		if signContains(s, month, day) {
			return s, true
		}
	}
	return zodiacSigns[0], false
}

func signContains(s ZodiacSign, month time.Month, day int) bool {
	if s.StartMonth == time.December {
		// Wraps from December into January.
		return (month == time.December && day >= s.StartDay) ||
			(month == time.January && day <= s.EndDay)
	}
	return (month == s.StartMonth && day >= s.StartDay) ||
		(month == s.EndMonth && day <= s.EndDay)
}

// LuckyDirection returns the zodiac sign of a birth date and the lucky
// direction of the sign's element.
func LuckyDirection(birth Date) Direction {
	sign := ZodiacSignFor(birth)
	return Direction{
		Sign:      sign,
		Direction: elementDirections[sign.Element],
	}
}
