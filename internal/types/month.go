// Package types implements special types for the event calendar.
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// Month is one of the twelve calendar month labels an event can be planned for.
//
// Months are not bound to a year. The label is what is persisted and sent over the wire.
type Month string

const (
	January   Month = "Janeiro"
	February  Month = "Fevereiro"
	March     Month = "Março"
	April     Month = "Abril"
	May       Month = "Maio"
	June      Month = "Junho"
	July      Month = "Julho"
	August    Month = "Agosto"
	September Month = "Setembro"
	October   Month = "Outubro"
	November  Month = "Novembro"
	December  Month = "Dezembro"
)

// Months lists all months in canonical order, January to December.
var Months = [12]Month{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

var ErrInvalidMonth = errors.New("mês inválido")

// NewMonth returns the Month for a time.Month.
func NewMonth(month time.Month) Month {
	if month < time.January || month > time.December {
		return ""
	}
	return Months[month-1]
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	return NewMonth(t.Month())
}

// ParseMonth parses a month label. Only the exact canonical labels are accepted.
func ParseMonth(s string) (Month, error) {
	m := Month(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidMonth, s)
	}

	return m, nil
}

// Index returns the zero based position of the month in the canonical order
// or -1 if m is not a canonical label.
func (m Month) Index() int {
	for i, month := range Months {
		if month == m {
			return i
		}
	}
	return -1
}

// Valid reports if m is one of the canonical labels.
func (m Month) Valid() bool {
	return m.Index() >= 0
}

// String returns the label.
func (m Month) String() string {
	return string(m)
}

// UnmarshalParam implements gin's BindUnmarshaler so that months
// can be used in URI and query bindings.
func (m *Month) UnmarshalParam(p string) error {
	if p == "" {
		*m = ""
		return nil
	}

	parsed, err := ParseMonth(p)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// Scan writes the value from the database.
func (m *Month) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*m = Month(v)
	case []byte:
		*m = Month(v)
	case nil:
		*m = ""
	default:
		return fmt.Errorf("cannot scan %T into Month", value)
	}
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	return string(m), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "varchar(20)"
}
