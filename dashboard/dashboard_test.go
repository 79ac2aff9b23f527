package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodayRange(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 37, 22, 500, time.UTC)

	start, end := TodayRange(now)

	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), end)
}

func TestTodayRangeSpansExactly24Hours(t *testing.T) {
	start, end := TodayRange(time.Now())
	assert.Equal(t, 24*time.Hour, end.Sub(start))
	assert.False(t, start.After(time.Now()))
}

func TestTodayRangeKeepsLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 1, 15, 1, 0, 0, 0, loc)

	start, end := TodayRange(now)
	assert.Equal(t, loc, start.Location())
	assert.Equal(t, 15, start.Day(), "early-morning local time stays on the same local day")
	assert.Equal(t, 16, end.Day())
}
