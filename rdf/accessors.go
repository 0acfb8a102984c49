package rdf

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// IsBound reports whether a column of the current row has a value.
func IsBound(c Cursor, column int) bool {
	return c.ValueType(column) != ValueTypeUnbound
}

func lexical(c Cursor, column int) (string, error) {
	value, _, ok := c.StringValue(column)
	if !ok {
		return "", fmt.Errorf("column %d: %w", column, ErrUnbound)
	}
	return strings.TrimSpace(value), nil
}

// Integer returns a column as an int64.
func Integer(c Cursor, column int) (int64, error) {
	value, err := lexical(c, column)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(value, 10, 64)
}

// Double returns a column as a float64. INF, -INF and NaN are accepted.
func Double(c Cursor, column int) (float64, error) {
	value, err := lexical(c, column)
	if err != nil {
		return 0, err
	}
	switch value {
	case "INF", "+INF":
		value = "+Inf"
	case "-INF":
		value = "-Inf"
	}
	return strconv.ParseFloat(value, 64)
}

// Boolean returns a column as a bool. Accepts "true", "false", "1" and "0",
// ignoring case.
func Boolean(c Cursor, column int) (bool, error) {
	value, err := lexical(c, column)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(value) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("column %d: invalid boolean %q", column, value)
	}
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02Z07:00",
	"2006-01-02",
}

// DateTime returns an xsd:dateTime or xsd:date column as a time.
// Values without a zone are read as UTC.
func DateTime(c Cursor, column int) (time.Time, error) {
	value, err := lexical(c, column)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("column %d: invalid date/time %q", column, value)
}

// Decimal returns a numeric column as an arbitrary-precision decimal.
func Decimal(c Cursor, column int) (*apd.Decimal, error) {
	value, err := lexical(c, column)
	if err != nil {
		return nil, err
	}
	d, _, err := apd.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("column %d: invalid decimal %q: %w", column, value, err)
	}
	return d, nil
}
