package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexInt is an int that survives sloppy persisted state. Older client builds
// wrote counters as quoted strings and occasionally as floats; a blob that
// decodes at all must never poison arithmetic, so unknown shapes become 0.
type FlexInt int

// UnmarshalJSON accepts numbers, numeric strings and null. It never returns
// an error: unreadable values collapse to zero.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			*f = 0
			return nil
		}
		s = strings.TrimSpace(raw)
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		*f = FlexInt(n)
		return nil
	}

	*f = 0
	return nil
}

// Int returns the value clamped to zero. Negative numbers only appear when a
// blob was corrupted, and the progression math assumes non-negative input.
func (f FlexInt) Int() int {
	if f < 0 {
		return 0
	}
	return int(f)
}
