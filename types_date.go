package fintrack

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings, ISO-8601 day precision.
const DateFormat = "2006-01-02"

// TimestampFormat is the fixed-width UTC format used for record timestamps.
// Millisecond precision keeps lexicographic order identical to chronological order.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Date is a calendar day in YYYY-MM-DD form.
//
// It is deliberately string-backed: bulk import must carry whatever date
// value the file contains (see ValidateImportData), and sorting by date is
// defined as lexicographic order on the string, which is chronologically
// correct for well-formed values.
type Date string

// datePattern accepts YYYY-MM-DD with month 01-12 and day 01-31. Day range is
// not checked against the month length: 2024-02-30 is accepted.
var datePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if !datePattern.MatchString(str) {
		return "", fmt.Errorf("invalid date %q want format %q", str, DateFormat)
	}
	return Date(str), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Today returns the current date.
func Today() Date { return Date(time.Now().Format(DateFormat)) }

func (d Date) String() string { return string(d) }

// IsValid reports whether the date is well-formed YYYY-MM-DD.
func (d Date) IsValid() bool { return datePattern.MatchString(string(d)) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d < x }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d > x }

// Time converts the date to a time.Time at midnight UTC. The boolean is
// false when the date does not parse, which can happen for imported values.
func (d Date) Time() (time.Time, bool) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Timestamp is a creation or modification time in fixed-width UTC ISO-8601
// form. Like Date it is string-backed so imported values survive verbatim.
type Timestamp string

// Now returns the current instant as a Timestamp.
func Now() Timestamp {
	return Timestamp(time.Now().UTC().Format(TimestampFormat))
}

func (t Timestamp) String() string { return string(t) }

// Before reports whether t is strictly before x. Valid for timestamps
// produced by Now, whose fixed width makes string order chronological.
func (t Timestamp) Before(x Timestamp) bool { return t < x }
