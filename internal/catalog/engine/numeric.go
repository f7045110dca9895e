package engine

import "strconv"

// parseAmount extracts the numeric value out of a formatted display string
// such as "12 500 TND", "45.000 km" or "125cc" by keeping only the digits.
// Returns false when the string carries no usable number.
func parseAmount(s string) (float64, bool) {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	if len(digits) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(string(digits), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
