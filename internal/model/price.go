package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// amountPattern matches an integer or an amount with one or two decimals.
var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// ErrInvalidPrice is returned for strings that are not a valid amount.
var ErrInvalidPrice = errors.New("invalid price")

// Price is a non-negative amount stored as a whole number of cents.
type Price int64

// MaxPrice is the largest amount a DECIMAL(10,2) column holds.
const MaxPrice Price = 99999999_99

// IsAmount reports whether s is an integer or integer.dd amount.
func IsAmount(s string) bool {
	return amountPattern.MatchString(s)
}

// ParsePrice parses an amount such as "12", "12.5" or "12.50". Amounts above
// MaxPrice are rejected.
func ParsePrice(s string) (Price, error) {
	if !IsAmount(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	p, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	if p > MaxPrice {
		return 0, fmt.Errorf("%w: %q exceeds %s", ErrInvalidPrice, s, MaxPrice)
	}
	return p, nil
}

// parseDecimal accepts what a DECIMAL column hands back: the amount pattern
// with any number of trailing fraction digits (truncated to cents).
func parseDecimal(s string) (Price, error) {
	whole, frac, _ := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 || units > (math.MaxInt64-99)/100 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	frac = (frac + "00")[:2]
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	return Price(units*100 + cents), nil
}

// String formats the price with exactly two decimals.
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", int64(p)/100, int64(p)%100)
}

// Value stores the price as a decimal string.
func (p Price) Value() (driver.Value, error) {
	return p.String(), nil
}

// Scan reads a DECIMAL column. MySQL returns the text form, SQLite may return
// a float for NUMERIC affinity.
func (p *Price) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	case int64:
		s = strconv.FormatInt(v, 10)
	case float64:
		s = strconv.FormatFloat(v, 'f', 2, 64)
	default:
		return fmt.Errorf("scanning price: unsupported type %T", src)
	}

	parsed, err := parseDecimal(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText renders the price for JSON as "12.50".
func (p Price) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
