package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForPoints(t *testing.T) {
	cases := []struct {
		points int
		level  int
		title  string
	}{
		{0, 1, "Rookie"},
		{99, 1, "Rookie"},
		{100, 2, "Connector"},
		{249, 2, "Connector"},
		{250, 3, "Networker"},
		{4999, 7, "Executive"},
		{5000, 8, "Diamond"},
		{999999, 8, "Diamond"},
	}

	for _, tc := range cases {
		lv := LevelForPoints(tc.points, DefaultLevels)
		assert.Equal(t, tc.level, lv.Level, "points=%d", tc.points)
		assert.Equal(t, tc.title, lv.Title, "points=%d", tc.points)
	}
}

func TestIsConsecutiveDay(t *testing.T) {
	assert.True(t, IsConsecutiveDay("2026-03-10", "2026-03-11"))
	assert.True(t, IsConsecutiveDay("2026-02-28", "2026-03-01"))
	assert.False(t, IsConsecutiveDay("2026-03-10", "2026-03-12"))
	assert.False(t, IsConsecutiveDay("2026-03-11", "2026-03-10"))
	assert.False(t, IsConsecutiveDay("2026-03-10", "2026-03-10"))
	assert.False(t, IsConsecutiveDay("", "2026-03-10"))
	assert.False(t, IsConsecutiveDay("yesterday", "2026-03-10"))
}
