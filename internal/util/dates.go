package util

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a date-only value for DATE columns, rendered as YYYY-MM-DD in JSON.
type Date struct {
	time.Time
}

func Today() Date {
	return Date{time.Now()}
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)

	// YYYY-MM-DD
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{t}, nil
	}

	// RFC3339 timestamp, truncated to its date
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Date{t}, nil
	}

	return Date{}, errors.New("invalid date format (use YYYY-MM-DD or RFC3339)")
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		d.Time = v
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	}
	return fmt.Errorf("cannot scan %T into Date", value)
}

func (d *Date) scanString(s string) error {
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Format(dateLayout), nil
}

// AgeYears is the whole-year difference between dob and now.
func AgeYears(dob Date, now time.Time) int {
	years := now.Year() - dob.Year()
	anniversary := time.Date(dob.Year()+years, dob.Month(), dob.Day(), 0, 0, 0, 0, now.Location())
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}
