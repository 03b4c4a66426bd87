package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2026-09-09", AddDays("2026-09-06", 3))
	assert.Equal(t, "2026-10-01", AddDays("2026-09-30", 1), "month rollover")
	assert.Equal(t, "2026-09-06", AddDays("2026-09-06", 0))
	assert.Equal(t, "garbage", AddDays("garbage", 3), "unparseable input passes through")
}

func TestValidClockTime(t *testing.T) {
	for _, ok := range []string{"09:00", "21:30", "00:00", "23:59"} {
		assert.True(t, ValidClockTime(ok), ok)
	}
	for _, bad := range []string{"9am", "25:00", "12:60", "noon", ""} {
		assert.False(t, ValidClockTime(bad), bad)
	}
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	_, err := ParseDate("06-09-2026")
	assert.Error(t, err)

	_, err = ParseDate("2026-09-06")
	assert.NoError(t, err)
}
