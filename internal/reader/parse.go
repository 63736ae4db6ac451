package reader

import (
	"regexp"
	"strconv"
)

var (
	primaryPattern  = regexp.MustCompile(`(\d{1,3})\/240`)
	overflowPattern = regexp.MustCompile(`30.+\s(\d{1,3})\s.+240`)
)

// Parse extracts the primary and overflow plate counts from captured window
// text. ok is false unless both counts are present.
func Parse(text string) (primary, overflow int, ok bool) {
	primary, ok = firstNumber(primaryPattern, text)
	if !ok {
		return 0, 0, false
	}
	overflow, ok = firstNumber(overflowPattern, text)
	if !ok {
		return 0, 0, false
	}
	return primary, overflow, true
}

func firstNumber(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
