package qualifier

import "strings"

// DestinationTerm matches trips whose route text contains Code.
type DestinationTerm struct {
	Code string
}

// Destination normalises a pilot-entered code the way the builder stores it.
func Destination(code string) DestinationTerm {
	return DestinationTerm{Code: strings.ToUpper(strings.TrimSpace(code))}
}

// ParseDestination rejects only the empty qualifier; anything else is used as
// an upper-cased substring.
func ParseDestination(q string) (DestinationTerm, bool) {
	if q == "" {
		return DestinationTerm{}, false
	}
	return DestinationTerm{Code: strings.ToUpper(q)}, true
}

func (t DestinationTerm) String() string {
	return t.Code
}

func (t DestinationTerm) Matches(route string) bool {
	return strings.Contains(strings.ToUpper(route), t.Code)
}
