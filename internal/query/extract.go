package query

import (
	"regexp"
	"strconv"
)

var (
	lakhAmountRegex = regexp.MustCompile(`(\d+\.?\d*)[lL]`)
	targetAgeRegex  = regexp.MustCompile(`at (\d+)`)
)

// AmountInLakhs extracts a loan amount written as "20L" or "12.5l" and
// scales it to rupees. Only the first match is used when the text carries
// several numbers.
func AmountInLakhs(text string) (float64, bool) {
	m := lakhAmountRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	lakhs, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return lakhs * 100000, true
}

// TargetAge extracts a target age from an "at N" phrase, first match only
func TargetAge(text string) (int, bool) {
	m := targetAgeRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	age, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return age, true
}
