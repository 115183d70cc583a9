package engine

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duplikit/duplikit/models"
	"github.com/duplikit/duplikit/store"
)

func newTestEngine() *Engine {
	e := New(store.NewMemory(), nil)
	e.Now = func() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) }
	e.Rand = rand.New(rand.NewSource(1))
	return e
}

func setDay(e *Engine, y int, m time.Month, d int) {
	e.Now = func() time.Time { return time.Date(y, m, d, 9, 0, 0, 0, time.UTC) }
}

func TestRecordContactAwardsPoints(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	res := e.RecordContact(ctx, 1)
	assert.Equal(t, 1, res.Progress.ContactsMade.Int())
	assert.Equal(t, PointsContact, res.Gamification.Points.Int())
	assert.Equal(t, 1, res.Gamification.Streak.Int())
	require.NotEmpty(t, res.Events)
	assert.Equal(t, EventActionSuccess, res.Events[0].Type)
}

func TestStreakAdvancesOncePerDay(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	e.RecordContact(ctx, 1)
	e.RecordFollowUp(ctx, 1)
	res := e.RecordPost(ctx, 1, false)
	assert.Equal(t, 1, res.Gamification.Streak.Int())
}

func TestRolloverIsIdempotentWithinDay(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	first := e.Snapshot(ctx, 1)
	require.NotNil(t, first.Gamification.CurrentMission)
	missionID := first.Gamification.CurrentMission.ID

	for i := 0; i < 5; i++ {
		again := e.Snapshot(ctx, 1)
		assert.Equal(t, missionID, again.Gamification.CurrentMission.ID)
		assert.Equal(t, first.Progress.LastUpdated, again.Progress.LastUpdated)
	}
}

func TestRolloverArchivesYesterday(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	e.RecordContact(ctx, 1)
	e.RecordContact(ctx, 1)
	e.RecordFollowUp(ctx, 1)

	setDay(e, 2026, 3, 11)
	res := e.Snapshot(ctx, 1)

	assert.Equal(t, 0, res.Progress.ContactsMade.Int())
	assert.Equal(t, 0, res.Progress.FollowUpsMade.Int())
	assert.Equal(t, "2026-03-11", res.Progress.LastUpdated)

	archived, ok := res.Progress.History["2026-03-10"]
	require.True(t, ok)
	assert.Equal(t, 2, archived.Contacts.Int())
	assert.Equal(t, 1, archived.FollowUps.Int())
}

func TestStreakContinuesOnConsecutiveDay(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	e.RecordContact(ctx, 1)

	setDay(e, 2026, 3, 11)
	res := e.RecordContact(ctx, 1)
	assert.Equal(t, 2, res.Gamification.Streak.Int())
}

func TestStreakResetsAfterGap(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	e.RecordContact(ctx, 1)

	setDay(e, 2026, 3, 13)
	snap := e.Snapshot(ctx, 1)
	assert.Equal(t, 0, snap.Gamification.Streak.Int())

	res := e.RecordContact(ctx, 1)
	assert.Equal(t, 1, res.Gamification.Streak.Int())
}

func TestLevelUpEmittedExactlyOnce(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	// Nine contacts stay below the 100-point threshold.
	for i := 0; i < 9; i++ {
		res := e.RecordContact(ctx, 1)
		for _, ev := range res.Events {
			assert.NotEqual(t, EventLevelUp, ev.Type)
		}
	}

	// The tenth crosses it: level_up replaces action_success.
	res := e.RecordContact(ctx, 1)
	require.Len(t, res.Events, 1)
	assert.Equal(t, EventLevelUp, res.Events[0].Type)
	assert.Equal(t, 2, res.Events[0].Level)
	assert.Equal(t, "Connector", res.Events[0].Title)

	// Further awards inside level 2 go back to plain success.
	res = e.RecordContact(ctx, 1)
	require.Len(t, res.Events, 1)
	assert.Equal(t, EventActionSuccess, res.Events[0].Type)
}

func TestGoalReachedFiresExactlyOnTarget(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	goalEvents := func(res Result) int {
		n := 0
		for _, ev := range res.Events {
			if ev.Type == EventGoalReached {
				n++
			}
		}
		return n
	}

	// Default contact goal is 5.
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0, goalEvents(e.RecordContact(ctx, 1)))
	}

	hit := e.RecordContact(ctx, 1)
	require.Equal(t, 1, goalEvents(hit))
	for _, ev := range hit.Events {
		if ev.Type == EventGoalReached {
			assert.Equal(t, GoalContacts, ev.Goal)
		}
	}

	// Past the target the signal stays quiet.
	assert.Equal(t, 0, goalEvents(e.RecordContact(ctx, 1)))
}

func TestPostsNeverEmitGoalReached(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	// Default post goal is 1; even landing on it is silent.
	res := e.RecordPost(ctx, 1, false)
	for _, ev := range res.Events {
		assert.NotEqual(t, EventGoalReached, ev.Type)
	}
}

func TestRescuePostPaysBoostedReward(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	res := e.RecordPost(ctx, 1, true)
	assert.Equal(t, PointsRescuePost, res.Gamification.Points.Int())
	assert.Equal(t, 1, res.Progress.PostsMade.Int())
}

func TestCompleteMissionOnlyOnce(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	snap := e.Snapshot(ctx, 1)
	require.NotNil(t, snap.Gamification.CurrentMission)
	reward := snap.Gamification.CurrentMission.PointsReward.Int()

	first := e.CompleteMission(ctx, 1)
	assert.Equal(t, reward, first.Gamification.Points.Int())
	assert.True(t, first.Gamification.CurrentMission.Completed)

	var sawCompleted bool
	for _, ev := range first.Events {
		if ev.Type == EventMissionCompleted {
			sawCompleted = true
		}
	}
	assert.True(t, sawCompleted)

	second := e.CompleteMission(ctx, 1)
	assert.Empty(t, second.Events)
	assert.Equal(t, reward, second.Gamification.Points.Int())
}

func TestMissionRotatesNextDay(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	e.CompleteMission(ctx, 1)

	setDay(e, 2026, 3, 11)
	res := e.Snapshot(ctx, 1)
	require.NotNil(t, res.Gamification.CurrentMission)
	assert.False(t, res.Gamification.CurrentMission.Completed)
}

func TestCorruptedGamificationBlobDegrades(t *testing.T) {
	kv := store.NewMemory()
	e := New(kv, nil)
	e.Now = func() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	// Numbers arrive as strings, garbage degrades to zero.
	kv.Set(ctx, gamifyKey(7), `{"xp":"250","streak":"abc","lastActiveDate":"2026-03-09"}`)

	res := e.Snapshot(ctx, 7)
	assert.Equal(t, 250, res.Gamification.Points.Int())
	assert.Equal(t, 3, res.Gamification.Level)
	assert.Equal(t, 0, res.Gamification.Streak.Int())
}

func TestCorruptedProgressBlobResets(t *testing.T) {
	kv := store.NewMemory()
	e := New(kv, nil)
	e.Now = func() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	kv.Set(ctx, progressKey(7), `not json at all`)

	res := e.Snapshot(ctx, 7)
	assert.Equal(t, 0, res.Progress.ContactsMade.Int())
	assert.Equal(t, "2026-03-10", res.Progress.LastUpdated)
	assert.NotNil(t, res.Progress.History)
}

func TestGoalsRoundTrip(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	assert.Equal(t, models.DefaultGoals(), e.Goals(ctx, 1))

	saved := e.UpdateGoals(ctx, 1, models.UserGoals{
		DailyContacts:  8,
		DailyFollowUps: -2,
		DailyPosts:     0,
		CompanyName:    "Acme Wellness",
	})
	assert.Equal(t, 8, saved.DailyContacts)
	assert.Equal(t, 0, saved.DailyFollowUps)
	assert.Equal(t, 1, saved.DailyPosts)

	assert.Equal(t, saved, e.Goals(ctx, 1))
}

func TestJoinTeamTagsProgress(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	res := e.JoinTeam(ctx, 1, "team-abc")
	assert.Equal(t, "team-abc", res.Progress.TeamID)

	res = e.Snapshot(ctx, 1)
	assert.Equal(t, "team-abc", res.Progress.TeamID)

	res = e.JoinTeam(ctx, 1, "")
	assert.Equal(t, "", res.Progress.TeamID)
}

func TestUsersAreIsolated(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	e.RecordContact(ctx, 1)
	other := e.Snapshot(ctx, 2)
	assert.Equal(t, 0, other.Progress.ContactsMade.Int())
	assert.Equal(t, 0, other.Gamification.Points.Int())
}
