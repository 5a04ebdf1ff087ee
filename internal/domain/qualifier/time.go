package qualifier

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	timePattern    = regexp.MustCompile(`([<>]=?)\s*(\d{1,3}:\d{2})`)
	layoverPattern = regexp.MustCompile(`([<>]=?)\s*(\d{1,3})(?::(\d{2}))?`)
)

// TimeTerm compares an HH:MM trip field (credit, report time) against Clock.
// Clock is kept as written so that encoding is lossless.
type TimeTerm struct {
	Comparator Comparator
	Clock      string
}

// ParseTime finds the first "<op> H:MM" in q. Leading or trailing text is
// tolerated, the clock itself must be strict.
func ParseTime(q string) (TimeTerm, bool) {
	m := timePattern.FindStringSubmatch(q)
	if m == nil {
		return TimeTerm{}, false
	}
	if _, ok := ParseClock(m[2]); !ok {
		return TimeTerm{}, false
	}

	return TimeTerm{Comparator: Comparator(m[1]), Clock: m[2]}, true
}

func (t TimeTerm) String() string {
	return string(t.Comparator) + " " + strings.TrimSpace(t.Clock)
}

// Matches reports whether clock satisfies the term. An empty or malformed
// clock never matches.
func (t TimeTerm) Matches(clock string) bool {
	bound, ok := ParseClock(t.Clock)
	if !ok {
		return false
	}
	value, ok := ParseClock(clock)
	if !ok {
		return false
	}

	return compare(t.Comparator, value, bound)
}

// LayoverTerm bounds the estimated layover length.
type LayoverTerm struct {
	Comparator Comparator
	Hours      int
	Minutes    int
}

// ParseLayover accepts "<op> H", "<op> HH" and "<op> HH:MM".
func ParseLayover(q string) (LayoverTerm, bool) {
	m := layoverPattern.FindStringSubmatch(q)
	if m == nil {
		return LayoverTerm{}, false
	}

	hours, err := strconv.Atoi(m[2])
	if err != nil {
		return LayoverTerm{}, false
	}
	mins := 0
	if m[3] != "" {
		mins, err = strconv.Atoi(m[3])
		if err != nil {
			return LayoverTerm{}, false
		}
	}

	return LayoverTerm{Comparator: Comparator(m[1]), Hours: hours, Minutes: mins}, true
}

func (t LayoverTerm) String() string {
	return fmt.Sprintf("%s %d:%02d", t.Comparator, t.Hours, t.Minutes)
}

func (t LayoverTerm) Matches(layoverHours float64) bool {
	bound := float64(t.Hours*60 + t.Minutes)
	return compare(t.Comparator, layoverHours*60, bound)
}
