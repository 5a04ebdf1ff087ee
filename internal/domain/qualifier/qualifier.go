// Package qualifier holds the textual grammar of trip-property qualifiers.
//
// Every matchable property has one parser that turns the qualifier text into
// a structured term, and every term serialises back to the exact text the
// parser accepts. The builder encodes through terms, the matcher evaluates
// them, so neither re-implements the grammar.
package qualifier

import (
	"regexp"
	"strconv"
)

// Comparator is the relational operator used by time, layover and length
// qualifiers.
type Comparator string

const (
	Less           Comparator = "<"
	LessOrEqual    Comparator = "<="
	Greater        Comparator = ">"
	GreaterOrEqual Comparator = ">="
)

func (c Comparator) Valid() bool {
	switch c {
	case Less, LessOrEqual, Greater, GreaterOrEqual:
		return true
	default:
		return false
	}
}

func compare[T int | float64](c Comparator, value, bound T) bool {
	switch c {
	case Less:
		return value < bound
	case LessOrEqual:
		return value <= bound
	case Greater:
		return value > bound
	case GreaterOrEqual:
		return value >= bound
	default:
		return false
	}
}

// format is one accepted textual form of a qualifier. Formats of a property
// are tried in order and the first match wins.
type format[S any] struct {
	shape   S
	pattern *regexp.Regexp
}

var clockPattern = regexp.MustCompile(`^(\d{1,3}):(\d{2})$`)

// ParseClock converts a strict "H:MM" to "HHH:MM" string into total minutes.
func ParseClock(value string) (int, bool) {
	m := clockPattern.FindStringSubmatch(value)
	if m == nil {
		return 0, false
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	mins, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}

	return hours*60 + mins, true
}
