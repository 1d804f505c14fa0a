package domain

import (
	"fmt"

	dErrors "numerology/pkg/domain-errors"
)

// BirthDateLayout is the only accepted textual form of a birth date.
const BirthDateLayout = "YYYY-MM-DD"

// BirthDate is a parsed {year, month, day} triple.
// Month and day are range-checked but never checked against a calendar:
// 2001-02-30 is a valid BirthDate because the fields are only digit sources.
type BirthDate struct {
	Year  int
	Month int
	Day   int
}

// ParseBirthDate validates s against YYYY-MM-DD and returns the triple.
// Only ASCII digits are accepted in the numeric fields.
func ParseBirthDate(s string) (BirthDate, error) {
	if len(s) != len(BirthDateLayout) || s[4] != '-' || s[7] != '-' {
		return BirthDate{}, formatError()
	}
	year, ok := atoi(s[0:4])
	if !ok {
		return BirthDate{}, formatError()
	}
	month, ok := atoi(s[5:7])
	if !ok {
		return BirthDate{}, formatError()
	}
	day, ok := atoi(s[8:10])
	if !ok {
		return BirthDate{}, formatError()
	}
	return NewBirthDate(year, month, day)
}

// NewBirthDate builds a BirthDate from already-numeric fields.
func NewBirthDate(year, month, day int) (BirthDate, error) {
	if year < 1 || year > 9999 {
		return BirthDate{}, dErrors.New(dErrors.CodeValidation, "birth date year must be between 0001 and 9999")
	}
	if month < 1 || month > 12 {
		return BirthDate{}, dErrors.New(dErrors.CodeValidation, "birth date month must be between 01 and 12")
	}
	if day < 1 || day > 31 {
		return BirthDate{}, dErrors.New(dErrors.CodeValidation, "birth date day must be between 01 and 31")
	}
	return BirthDate{Year: year, Month: month, Day: day}, nil
}

// String renders the date as YYYY-MM-DD.
func (d BirthDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsZero reports whether the date was never set.
func (d BirthDate) IsZero() bool {
	return d == BirthDate{}
}

// MarshalText implements encoding.TextMarshaler.
func (d BirthDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *BirthDate) UnmarshalText(text []byte) error {
	parsed, err := ParseBirthDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func formatError() error {
	return dErrors.New(dErrors.CodeValidation, "birth date must be in "+BirthDateLayout+" format")
}

func atoi(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
