package timezone

import "time"

const DefaultTimezone = "Europe/Istanbul"

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = "2006-01-02 15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Clock returns the current time in the business location.
type Clock func() time.Time

func NewClock(tz string) Clock {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func ParseDateTimeIn(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, date+" "+clock, loc)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
