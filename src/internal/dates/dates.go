package dates

import (
	"strconv"

	"bibtool/src/internal/stringsx"
)

// ParseYear returns the value of a year field when it is made only of digits.
// Values such as "2019a", "in press" or " 2019" are not years.
func ParseYear(s string) (int, bool) {
	if !stringsx.IsDigits(s) {
		return 0, false
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return y, true
}
