package models

import (
	"bytes"
	"math"
	"strconv"
)

// Amount is a monetary value in currency units. Report payloads come from
// clients that historically stored amounts as numbers, quoted numbers, or
// nothing at all, so unmarshalling is tolerant: anything that cannot be read
// as a number becomes 0 rather than an error. Totals derived from reports
// must never turn into NaN because one line item was malformed.
type Amount float64

// Float returns the amount as a plain float64.
func (a Amount) Float() float64 { return float64(a) }

// UnmarshalJSON coerces numbers, quoted numbers, null, and garbage.
// Malformed values decode as 0 and never fail the surrounding document.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = string(bytes.TrimSpace([]byte(s[1 : len(s)-1])))
		if s == "" {
			*a = 0
			return nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

// MarshalJSON emits the amount as a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', -1, 64)), nil
}
