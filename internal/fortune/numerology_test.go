package fortune

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLifePathNumber(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		birth Date
		want  int
	}{
		{
			// "1"+"1"+"1990" = 111990 -> 21 -> 3
			name:  "single digit day and month",
			birth: NewDate(1990, time.January, 1),
			want:  3,
		},
		{
			// "15"+"1"+"1990" = 1511990 -> 26 -> 8
			name:  "two digit day",
			birth: NewDate(1990, time.January, 15),
			want:  8,
		},
		{
			// "29"+"2"+"2000" = 2922000 -> 15 -> 6
			name:  "leap day",
			birth: NewDate(2000, time.February, 29),
			want:  6,
		},
		{
			// "1"+"9"+"1999" = 191999 -> 38 -> 11
			name:  "master number 11 stops reduction",
			birth: NewDate(1999, time.September, 1),
			want:  11,
		},
		{
			// "29"+"9"+"2000" = 2992000 -> 22
			name:  "master number 22 from first sum",
			birth: NewDate(2000, time.September, 29),
			want:  22,
		},
		{
			// "5"+"1"+"1989" = 511989 -> 33
			name:  "master number 33 from first sum",
			birth: NewDate(1989, time.January, 5),
			want:  33,
		},
		{
			// "22"+"12"+"1985" = 22121985 -> 30 -> 3
			name:  "two digit month",
			birth: NewDate(1985, time.December, 22),
			want:  3,
		},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, LifePathNumber(tc.birth))
		})
	}
}

func TestLifePathNumberRange(t *testing.T) {
	t.Parallel()

	start := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2030, time.December, 31, 0, 0, 0, 0, time.UTC)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		n := LifePathNumber(DateOf(d))
		if !(n >= 1 && n <= 9) && !IsMasterNumber(n) {
			t.Fatalf("life path %d for %s is outside 1..9, 11, 22, 33", n, DateOf(d))
		}
	}
}

func TestDailyNumber(t *testing.T) {
	t.Parallel()

	birth := NewDate(1990, time.January, 15) // life path 8

	testCases := []struct {
		name  string
		today Date
		want  int
	}{
		{name: "raw 9 becomes repdigit", today: NewDate(2024, time.January, 1), want: 99},
		{name: "raw 10 is kept", today: NewDate(2024, time.January, 2), want: 10},
		{name: "raw 0 stays 0", today: NewDate(2023, time.April, 2), want: 0},
		{name: "wraps past 100", today: NewDate(2024, time.December, 31), want: 74},
		{name: "mid year", today: NewDate(2023, time.March, 23), want: 90},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, DailyNumber(birth, tc.today))
		})
	}
}

func TestDailyNumberRepdigitRule(t *testing.T) {
	t.Parallel()

	birth := NewDate(2000, time.February, 29)
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	for d := start; d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		today := DateOf(d)
		raw := (LifePathNumber(birth) + today.YearDay()) % 100
		got := DailyNumber(birth, today)

		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 99)
		if raw < 10 {
			assert.Equal(t, raw*11, got, "today %s", today)
		} else {
			assert.Equal(t, raw, got, "today %s", today)
		}
	}
}

func TestLifePathMeaning(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Leadership & Independence", LifePathMeaning(1))
	assert.Equal(t, "Master Builder", LifePathMeaning(22))
	assert.Equal(t, "Master Teacher", LifePathMeaning(33))
	assert.Empty(t, LifePathMeaning(10))
}
