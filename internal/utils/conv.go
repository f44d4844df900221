package utils

import (
	"strconv"
)

// ParseID accepts only plain positive integer literals ("1", "42").
// Signs, spaces and leading zeros are rejected, as are values that do not fit in an int64.
func ParseID(s string) (int, bool) {
	if s == "" || len(s) > 19 || s[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
