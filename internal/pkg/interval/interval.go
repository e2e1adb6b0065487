package interval

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	ErrInvalidFormat = errors.New("invalid ISO 8601 duration")
	// Calendar years and months have no fixed length, so they cannot back a
	// bookable time span. PnW and PnD are accepted instead.
	ErrCalendarUnits = errors.New("year and month duration units are not supported")
)

// Matches the duration subset we accept: P[nW][nD][T[nH][nM][nS]].
var durationRe = regexp.MustCompile(`^P(?:(\d+)W)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

var calendarRe = regexp.MustCompile(`^P\d+[YM]|^P(?:\d+W)?(?:\d+D)?\d+[YM]`)

// Interval is a fixed-length time span in the ISO 8601 duration notation
// used on the wire ("P1D", "PT2H30M"). Weeks normalize to days on parse.
type Interval struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Parse decodes an ISO 8601 duration string.
func Parse(s string) (Interval, error) {
	if s == "" || s == "P" || s == "PT" {
		return Interval{}, ErrInvalidFormat
	}
	if calendarRe.MatchString(s) {
		return Interval{}, ErrCalendarUnits
	}
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	atoi := func(v string) int {
		if v == "" {
			return 0
		}
		n, _ := strconv.Atoi(v)
		return n
	}

	iv := Interval{
		Days:    atoi(m[1])*7 + atoi(m[2]),
		Hours:   atoi(m[3]),
		Minutes: atoi(m[4]),
		Seconds: atoi(m[5]),
	}
	return iv, nil
}

// IsZero reports whether every component is zero.
func (i Interval) IsZero() bool {
	return i.Days == 0 && i.Hours == 0 && i.Minutes == 0 && i.Seconds == 0
}

// String renders the canonical form, "PT0S" for the zero interval.
func (i Interval) String() string {
	if i.IsZero() {
		return "PT0S"
	}
	s := "P"
	if i.Days > 0 {
		s += strconv.Itoa(i.Days) + "D"
	}
	if i.Hours > 0 || i.Minutes > 0 || i.Seconds > 0 {
		s += "T"
		if i.Hours > 0 {
			s += strconv.Itoa(i.Hours) + "H"
		}
		if i.Minutes > 0 {
			s += strconv.Itoa(i.Minutes) + "M"
		}
		if i.Seconds > 0 {
			s += strconv.Itoa(i.Seconds) + "S"
		}
	}
	return s
}

// Value implements driver.Valuer; intervals persist as canonical strings.
func (i Interval) Value() (driver.Value, error) {
	return i.String(), nil
}

// Scan implements sql.Scanner.
func (i *Interval) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*i = parsed
		return nil
	case []byte:
		return i.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Interval", src)
	}
}

// MarshalJSON renders the interval as its ISO 8601 string.
func (i Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// UnmarshalJSON parses an ISO 8601 string.
func (i *Interval) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
