package models

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format of a calendar date (yyyy-MM-dd).
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day, stored in a DATE column.
// The zero value means "no date" and is written as NULL.
type Date datatypes.Date

func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a strict yyyy-MM-dd string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date(t), nil
}

func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Civil returns the date at midnight UTC, dropping whatever location the
// driver attached when scanning.
func (d Date) Civil() time.Time {
	y, m, day := time.Time(d).Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Before(other Date) bool { return d.Civil().Before(other.Civil()) }
func (d Date) After(other Date) bool  { return d.Civil().After(other.Civil()) }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Civil().Format(DateLayout)
}

func (Date) GormDataType() string {
	return "date"
}

func (d *Date) Scan(value interface{}) error {
	var dd datatypes.Date
	if err := dd.Scan(value); err != nil {
		return err
	}
	*d = Date(dd)
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return datatypes.Date(d.Civil()).Value()
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("date must be a string, got %s", b)
	}
	return d.UnmarshalText(b[1 : len(b)-1])
}

// MarshalText is used by encoding/xml.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts yyyy-MM-dd, falling back to RFC3339 truncated to its date.
func (d *Date) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" {
		*d = Date{}
		return nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		*d = Date(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: use yyyy-MM-dd", s)
	}
	*d = NewDate(t.Year(), t.Month(), t.Day())
	return nil
}
