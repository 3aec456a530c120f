package fortune

import "strconv"

// Numbers holds the numerology values of a birthday on a given day.
type Numbers struct {
	LifePath int `json:"life_path"`
	Daily    int `json:"daily"`
}

// IsMasterNumber reports whether n is one of the master numbers 11, 22 or 33,
// which are never reduced further.
func IsMasterNumber(n int) bool {
	return n == 11 || n == 22 || n == 33
}

// LifePathNumber computes the numerology life-path number of a birth date.
//
// The day, the 1-indexed month and the full year are written out as decimal
// strings with no separators or leading zeros and concatenated in that order.
// All digits are summed, and the sum is reduced by summing its digits until it
// is a single digit or a master number.
//
// Example: 1990-01-15 gives "15"+"1"+"1990" = "1511990", 1+5+1+1+9+9+0 = 26,
// 2+6 = 8.
//
// The result is always in 1..9 or one of 11, 22, 33.
func LifePathNumber(birth Date) int {
	digits := strconv.Itoa(birth.Day) + strconv.Itoa(int(birth.Month)) + strconv.Itoa(birth.Year)

	sum := 0
	for _, r := range digits {
		sum += int(r - '0')
	}

	for sum > 9 {
		if IsMasterNumber(sum) {
			break
		}
		sum = digitSum(sum)
	}

	return sum
}

// DailyNumber mixes the life-path number with today's day of the year.
//
// The raw value is (LifePathNumber(birth) + today.YearDay()) mod 100. Values
// below 10 are multiplied by 11 so they display as two-digit repdigits
// (0, 11, 22, ... 99). The scaling is presentational and kept as is.
func DailyNumber(birth, today Date) int {
	n := (LifePathNumber(birth) + today.YearDay()) % 100
	if n < 10 {
		n *= 11
	}
	return n
}

// LifePathMeaning returns the short meaning of a life-path number, or an
// empty string if n is not a life-path value.
func LifePathMeaning(n int) string {
	return lifePathMeanings[n]
}

// digitSum returns the sum of the decimal digits of a non-negative n.
func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
