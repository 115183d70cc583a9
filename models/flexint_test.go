package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{`42`, 42},
		{`"42"`, 42},
		{`"42.9"`, 42},
		{`42.9`, 42},
		{`null`, 0},
		{`""`, 0},
		{`"abc"`, 0},
		{`true`, 0},
		{`[1,2]`, 0},
		{`-5`, -5},
	}

	for _, tc := range cases {
		var v FlexInt
		err := json.Unmarshal([]byte(tc.in), &v)
		require.NoError(t, err, "input %s must never error", tc.in)
		assert.Equal(t, tc.want, int(v), "input %s", tc.in)
	}
}

func TestFlexIntInFullBlob(t *testing.T) {
	var g Gamification
	err := json.Unmarshal([]byte(`{"xp":"150","level":2,"streak":null}`), &g)
	require.NoError(t, err)
	assert.Equal(t, 150, g.Points.Int())
	assert.Equal(t, 0, g.Streak.Int())
}

func TestFlexIntIntClampsNegative(t *testing.T) {
	assert.Equal(t, 0, FlexInt(-3).Int())
	assert.Equal(t, 7, FlexInt(7).Int())
}

func TestUserGoalsNormalize(t *testing.T) {
	g := UserGoals{DailyContacts: -1, DailyFollowUps: -1, DailyPosts: 0}
	g.Normalize()
	assert.Equal(t, 0, g.DailyContacts)
	assert.Equal(t, 0, g.DailyFollowUps)
	assert.Equal(t, 1, g.DailyPosts)
}
