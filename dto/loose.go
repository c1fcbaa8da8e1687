package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number accepts a JSON number or a numeric string. Anything else decodes to 0.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number(ParseNumber(string(bytes.Trim(b, `"`))))
	return nil
}

func (n Number) Float() float64 { return float64(n) }
func (n Number) Int() int       { return ToInt(float64(n)) }

// ParseNumber converts s to a float, returning 0 when s is not a finite number.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParseInt is ParseNumber truncated to an int.
func ParseInt(s string) int { return ToInt(ParseNumber(s)) }

// ToInt truncates f, mapping values outside the int32 range to 0.
func ToInt(f float64) int {
	if math.IsNaN(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

// Text accepts a JSON string, number or bool and keeps its textual form.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Text(strings.TrimSpace(s))
		return nil
	}
	*t = Text(strings.TrimSpace(string(b)))
	return nil
}

func (t Text) String() string { return string(t) }
