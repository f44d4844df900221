package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	valid := map[string]int{"1": 1, "42": 42, "9223372036854775807": 9223372036854775807}
	for in, want := range valid {
		got, ok := ParseID(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "0", "007", "-1", "+1", "1.5", "banana", " 1", "1e3", "9223372036854775808", "99999999999999999999"} {
		_, ok := ParseID(in)
		assert.False(t, ok, in)
	}
}
