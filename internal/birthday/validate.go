package birthday

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/fortune/internal/fortune"
)

// MinYear is the earliest accepted birth year.
const MinYear = 1900

// Validation errors. Every error wraps ErrInvalidBirthday.
var (
	ErrInvalidBirthday  = errors.New("invalid birthday")
	ErrMissingField     = fmt.Errorf("%w: please fill in all fields", ErrInvalidBirthday)
	ErrInvalidYear      = fmt.Errorf("%w: please enter a valid year", ErrInvalidBirthday)
	ErrInvalidMonth     = fmt.Errorf("%w: please enter a valid month", ErrInvalidBirthday)
	ErrInvalidDay       = fmt.Errorf("%w: please enter a valid day", ErrInvalidBirthday)
	ErrNotACalendarDate = fmt.Errorf("%w: invalid date for this month", ErrInvalidBirthday)
	ErrFutureDate       = fmt.Errorf("%w: birthday cannot be in the future", ErrInvalidBirthday)
	ErrInvalidFormat    = fmt.Errorf("%w: expected YYYY-MM-DD", ErrInvalidBirthday)
)

// Global validator instance for reuse
var validate = validator.New()

// Input is a birthday as entered by a user, before validation.
type Input struct {
	Year  int `validate:"required,gte=1900"`
	Month int `validate:"required,gte=1,lte=12"`
	Day   int `validate:"required,gte=1,lte=31"`
}

// Validate checks a user-entered birthday against today and returns it as a
// calendar date. The year must be between MinYear and today's year, the day
// must exist in its month, and the date must not be after today.
func Validate(in Input, today fortune.Date) (fortune.Date, error) {
	if err := validate.Struct(in); err != nil {
		return fortune.Date{}, mapValidationError(err)
	}

	if in.Year > today.Year {
		return fortune.Date{}, ErrInvalidYear
	}

	d := fortune.NewDate(in.Year, time.Month(in.Month), in.Day)
	if !d.Valid() {
		return fortune.Date{}, ErrNotACalendarDate
	}

	if d.After(today) {
		return fortune.Date{}, ErrFutureDate
	}

	return d, nil
}

// Parse reads a birthday string and validates it against today.
//
// Accepted forms are an ISO-8601 calendar date (1990-01-15) and an RFC 3339
// timestamp (1990-01-14T17:00:00.000Z). A timestamp is converted to loc
// before its calendar date is taken; a nil loc means time.Local.
func Parse(s string, today fortune.Date, loc *time.Location) (fortune.Date, error) {
	d, err := decode(strings.TrimSpace(s), loc)
	if err != nil {
		return fortune.Date{}, err
	}

	return Validate(Input{Year: d.Year, Month: int(d.Month), Day: d.Day}, today)
}

// decode turns a stored or typed birthday string into a Date without range
// checks. A date-shaped string with an out-of-range field is reported the way
// Validate reports it (1990-13-01 is ErrInvalidMonth), and a day that does not
// exist in its month (1990-02-30) is ErrNotACalendarDate.
func decode(s string, loc *time.Location) (fortune.Date, error) {
	if s == "" {
		return fortune.Date{}, ErrMissingField
	}

	if d, err := fortune.ParseDate(s); err == nil {
		return d, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		if loc == nil {
			loc = time.Local
		}
		return fortune.DateOf(t.In(loc)), nil
	}

	var y, m, d int
	if n, err := fmt.Sscanf(s, "%4d-%2d-%2d", &y, &m, &d); err == nil && n == 3 {
		if err := validate.Struct(Input{Year: y, Month: m, Day: d}); err != nil {
			return fortune.Date{}, mapValidationError(err)
		}
		if date := fortune.NewDate(y, time.Month(m), d); !date.Valid() {
			return fortune.Date{}, ErrNotACalendarDate
		}
	}

	return fortune.Date{}, fmt.Errorf("%w: got %q", ErrInvalidFormat, s)
}

// mapValidationError converts the first struct validation failure into one of
// the package's sentinel errors.
func mapValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidBirthday, err)
	}

	fieldErr := validationErrors[0]
	if fieldErr.Tag() == "required" {
		return ErrMissingField
	}

	switch fieldErr.Field() {
	case "Year":
		return ErrInvalidYear
	case "Month":
		return ErrInvalidMonth
	case "Day":
		return ErrInvalidDay
	default:
		return fmt.Errorf("%w: %s", ErrInvalidBirthday, fieldErr.Error())
	}
}
