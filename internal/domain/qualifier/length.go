package qualifier

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type LengthShape uint8

const (
	LengthExact LengthShape = iota
	LengthRange
	LengthAtLeast
	LengthAtMost
)

// LengthTerm constrains the number of days of a trip. Days is used by the
// exact, at-least and at-most shapes; MinDays/MaxDays by the range shape.
type LengthTerm struct {
	Shape   LengthShape
	Days    int
	MinDays int
	MaxDays int
}

var lengthFormats = []format[LengthShape]{
	{shape: LengthExact, pattern: regexp.MustCompile(`^(\d+)D$`)},
	{shape: LengthRange, pattern: regexp.MustCompile(`^(\d+)-(\d+)D$`)},
	{shape: LengthAtLeast, pattern: regexp.MustCompile(`^>=\s*(\d+)D$`)},
	{shape: LengthAtMost, pattern: regexp.MustCompile(`^<=\s*(\d+)D$`)},
}

func ExactDays(days int) LengthTerm {
	return LengthTerm{Shape: LengthExact, Days: days}
}

func AtLeastDays(days int) LengthTerm {
	return LengthTerm{Shape: LengthAtLeast, Days: days}
}

func AtMostDays(days int) LengthTerm {
	return LengthTerm{Shape: LengthAtMost, Days: days}
}

func BetweenDays(minDays, maxDays int) LengthTerm {
	return LengthTerm{Shape: LengthRange, MinDays: minDays, MaxDays: maxDays}
}

// ParseLength accepts "4D", "4-5D", ">= 4D" and "<= 3D" (the space after the
// operator is optional). Surrounding whitespace is ignored.
func ParseLength(q string) (LengthTerm, bool) {
	q = strings.TrimSpace(q)
	if q == "" {
		return LengthTerm{}, false
	}

	for _, f := range lengthFormats {
		m := f.pattern.FindStringSubmatch(q)
		if m == nil {
			continue
		}

		first, err := strconv.Atoi(m[1])
		if err != nil {
			return LengthTerm{}, false
		}

		switch f.shape {
		case LengthRange:
			second, err := strconv.Atoi(m[2])
			if err != nil {
				return LengthTerm{}, false
			}
			return BetweenDays(first, second), true
		default:
			return LengthTerm{Shape: f.shape, Days: first}, true
		}
	}

	return LengthTerm{}, false
}

func (t LengthTerm) String() string {
	switch t.Shape {
	case LengthRange:
		return fmt.Sprintf("%d-%dD", t.MinDays, t.MaxDays)
	case LengthAtLeast:
		return fmt.Sprintf(">= %dD", t.Days)
	case LengthAtMost:
		return fmt.Sprintf("<= %dD", t.Days)
	default:
		return fmt.Sprintf("%dD", t.Days)
	}
}

func (t LengthTerm) Matches(tripDays int) bool {
	switch t.Shape {
	case LengthExact:
		return tripDays == t.Days
	case LengthRange:
		return tripDays >= t.MinDays && tripDays <= t.MaxDays
	case LengthAtLeast:
		return tripDays >= t.Days
	case LengthAtMost:
		return tripDays <= t.Days
	default:
		return false
	}
}
