package fortune

import (
	"time"
)

// Reading is the full fortune of a birthday on a single day.
type Reading struct {
	Birthday        Date       `json:"birthday"`
	Today           Date       `json:"today"`
	BirthColor      BirthColor `json:"birth_color"`
	TodayColor      DayColor   `json:"today_color"`
	ColorMatch      bool       `json:"color_match"`
	Numbers         Numbers    `json:"numbers"`
	LifePathMeaning string     `json:"life_path_meaning"`
	Direction       Direction  `json:"direction"`
	Horoscope       Horoscope  `json:"horoscope"`
}

// Compute derives every fortune value for birth against the single date today.
func Compute(birth, today Date) Reading {
	lifePath := LifePathNumber(birth)

	return Reading{
		Birthday:   birth,
		Today:      today,
		BirthColor: BirthColorFor(birth),
		TodayColor: TodayColor(today),
		ColorMatch: ColorMatches(birth, today),
		Numbers: Numbers{
			LifePath: lifePath,
			Daily:    DailyNumber(birth, today),
		},
		LifePathMeaning: LifePathMeaning(lifePath),
		Direction:       LuckyDirection(birth),
		Horoscope:       DailyHoroscope(birth, today),
	}
}

// Clock returns the current time.
type Clock func() time.Time

// Service defines the interface for producing fortune readings
type Service interface {
	// Reading computes the fortune of birth for the current day
	Reading(birth Date) (*Reading, error)

	// Today returns the current calendar date as seen by the service
	Today() Date
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	now Clock
	loc *time.Location
}

// NewDefaultService creates a fortune service using the system clock and
// the local time zone.
func NewDefaultService() Service {
	return NewServiceWithClock(time.Now, time.Local)
}

// NewServiceWithClock creates a fortune service that reads the time from now
// and interprets it in loc. A nil now uses time.Now; a nil loc uses time.Local.
func NewServiceWithClock(now Clock, loc *time.Location) Service {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &defaultService{
		now: now,
		loc: loc,
	}
}

// Reading implements the Service interface.
// The clock is read exactly once, so every value in the reading refers to
// the same day.
func (s *defaultService) Reading(birth Date) (*Reading, error) {
	if birth.IsZero() {
		return nil, ErrZeroDate
	}

	reading := Compute(birth, s.Today())
	return &reading, nil
}

// Today implements the Service interface.
func (s *defaultService) Today() Date {
	return Today(s.now(), s.loc)
}
