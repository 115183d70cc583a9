// Package engine owns all progression state: daily counters, points,
// levels, streaks and the daily mission. Every public operation starts by
// rolling state over to the current calendar day, so callers never reason
// about dates themselves. State is persisted through a key-value store as
// JSON blobs, one per user per kind; writes are fire-and-forget and the
// in-memory copy wins for the rest of the request on write failure.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/duplikit/duplikit/models"
	"github.com/duplikit/duplikit/store"
)

// Point values per recorded action. The rescue post pays more to make the
// low-effort recovery path worth taking on a bad day.
const (
	PointsContact    = 10
	PointsFollowUp   = 5
	PointsPost       = 20
	PointsRescuePost = 50
)

// Engine is the authoritative owner of goals, daily progress and
// gamification state. All mutation funnels through its methods.
type Engine struct {
	kv  store.KV
	log *zap.SugaredLogger

	// Now and Rand are swappable so tests can pin the calendar day and
	// the mission draw.
	Now  func() time.Time
	Rand *rand.Rand

	levels   []models.Level
	missions []models.Mission
}

// New builds an engine over the given store with the default level table
// and mission catalog. The logger may be nil.
func New(kv store.KV, log *zap.SugaredLogger) *Engine {
	return &Engine{
		kv:       kv,
		log:      log,
		Now:      time.Now,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		levels:   DefaultLevels,
		missions: DefaultMissions,
	}
}

// Result is the outcome of one engine operation: the post-operation state
// plus the feedback events the caller should render.
type Result struct {
	Progress     models.DailyProgress `json:"progress"`
	Gamification models.Gamification  `json:"gamification"`
	Events       []Event              `json:"events"`
}

// Levels exposes the fixed level table.
func (e *Engine) Levels() []models.Level { return e.levels }

func goalsKey(userID uint) string    { return fmt.Sprintf("coach:goals:%d", userID) }
func progressKey(userID uint) string { return fmt.Sprintf("coach:progress:%d", userID) }
func gamifyKey(userID uint) string   { return fmt.Sprintf("coach:gamify:%d", userID) }

// Goals returns the user's targets, falling back to defaults on first run
// or a corrupted blob.
func (e *Engine) Goals(ctx context.Context, userID uint) models.UserGoals {
	g := models.DefaultGoals()
	if raw, ok := e.kv.Get(ctx, goalsKey(userID)); ok {
		var dec models.UserGoals
		if err := json.Unmarshal([]byte(raw), &dec); err == nil {
			dec.Normalize()
			g = dec
		} else if e.log != nil {
			e.log.Warnf("corrupt goals blob user=%d, using defaults: %v", userID, err)
		}
	}
	return g
}

// UpdateGoals replaces the user's targets wholesale and returns the
// normalized result.
func (e *Engine) UpdateGoals(ctx context.Context, userID uint, g models.UserGoals) models.UserGoals {
	g.Normalize()
	e.saveJSON(ctx, goalsKey(userID), g)
	return g
}

// Snapshot rolls state over to today and returns it without recording an
// action.
func (e *Engine) Snapshot(ctx context.Context, userID uint) Result {
	p, g, _ := e.ensureRolledOver(ctx, userID)
	return Result{Progress: p, Gamification: g}
}

// RecordContact banks one prospecting contact.
func (e *Engine) RecordContact(ctx context.Context, userID uint) Result {
	p, g, today := e.ensureRolledOver(ctx, userID)
	goals := e.Goals(ctx, userID)

	p.ContactsMade++
	p.History[today] = models.DayTotals{Contacts: p.ContactsMade, FollowUps: p.FollowUpsMade}

	events := e.award(&g, PointsContact, today)
	if p.ContactsMade.Int() == goals.DailyContacts {
		events = append(events, Event{Type: EventGoalReached, Goal: GoalContacts})
	}

	e.persist(ctx, userID, p, g)
	return Result{Progress: p, Gamification: g, Events: events}
}

// RecordFollowUp banks one follow-up with an existing prospect.
func (e *Engine) RecordFollowUp(ctx context.Context, userID uint) Result {
	p, g, today := e.ensureRolledOver(ctx, userID)
	goals := e.Goals(ctx, userID)

	p.FollowUpsMade++
	p.History[today] = models.DayTotals{Contacts: p.ContactsMade, FollowUps: p.FollowUpsMade}

	events := e.award(&g, PointsFollowUp, today)
	if p.FollowUpsMade.Int() == goals.DailyFollowUps {
		events = append(events, Event{Type: EventGoalReached, Goal: GoalFollowUps})
	}

	e.persist(ctx, userID, p, g)
	return Result{Progress: p, Gamification: g, Events: events}
}

// RecordPost banks one social post. Rescue posts are the low-effort
// recovery action and pay the boosted reward. Posts never emit a
// goal-reached signal; only outreach counters do.
func (e *Engine) RecordPost(ctx context.Context, userID uint, rescue bool) Result {
	p, g, today := e.ensureRolledOver(ctx, userID)

	p.PostsMade++
	p.History[today] = models.DayTotals{Contacts: p.ContactsMade, FollowUps: p.FollowUpsMade}

	pts := PointsPost
	if rescue {
		pts = PointsRescuePost
	}
	events := e.award(&g, pts, today)

	e.persist(ctx, userID, p, g)
	return Result{Progress: p, Gamification: g, Events: events}
}

// CompleteMission turns in today's mission. Calling it again the same day,
// or with no mission assigned, is a no-op.
func (e *Engine) CompleteMission(ctx context.Context, userID uint) Result {
	p, g, today := e.ensureRolledOver(ctx, userID)

	m := g.CurrentMission
	if m == nil || m.Completed {
		return Result{Progress: p, Gamification: g}
	}

	// Reward passes through FlexInt, so a corrupted blob degrades to a
	// zero-point completion instead of breaking the award.
	events := e.award(&g, m.PointsReward.Int(), today)
	m.Completed = true
	events = append(events, Event{Type: EventMissionCompleted})

	e.persist(ctx, userID, p, g)
	return Result{Progress: p, Gamification: g, Events: events}
}

// JoinTeam tags the user's progress with a team id ("" leaves the team).
func (e *Engine) JoinTeam(ctx context.Context, userID uint, teamID string) Result {
	p, g, _ := e.ensureRolledOver(ctx, userID)
	p.TeamID = teamID
	e.saveJSON(ctx, progressKey(userID), p)
	return Result{Progress: p, Gamification: g}
}

// ensureRolledOver advances state to today: archives yesterday's counters,
// settles streak continuity and rotates the daily mission. It is idempotent
// within a calendar day.
func (e *Engine) ensureRolledOver(ctx context.Context, userID uint) (models.DailyProgress, models.Gamification, string) {
	today := e.Now().Format(models.DayFormat)
	p := e.loadProgress(ctx, userID, today)
	g := e.loadGamification(ctx, userID)

	changed := false

	if p.LastUpdated != today {
		if p.LastUpdated != "" {
			p.History[p.LastUpdated] = models.DayTotals{Contacts: p.ContactsMade, FollowUps: p.FollowUpsMade}
		}
		p.ContactsMade, p.FollowUpsMade, p.PostsMade = 0, 0, 0
		p.LastUpdated = today
		changed = true
	}

	// A skipped day breaks the streak. Being active yesterday (or already
	// today) keeps it; a blank LastActiveDate means first run.
	if g.LastActiveDate != "" && g.LastActiveDate != today && !IsConsecutiveDay(g.LastActiveDate, today) {
		if g.Streak != 0 {
			g.Streak = 0
			changed = true
		}
	}

	if g.CurrentMission == nil || g.MissionDate != today {
		g.CurrentMission = e.pickMission()
		g.MissionDate = today
		changed = true
	}

	if changed {
		e.persist(ctx, userID, p, g)
	}
	return p, g, today
}

// award banks points, settles the level and advances the streak at most
// once per day. It returns either a level-up or a plain success event,
// never both.
func (e *Engine) award(g *models.Gamification, amount int, today string) []Event {
	if amount < 0 {
		amount = 0
	}
	pts := g.Points.Int() + amount
	g.Points = models.FlexInt(pts)

	prev := g.Level
	lv := LevelForPoints(pts, e.levels)
	g.Level = lv.Level

	events := make([]Event, 0, 2)
	if lv.Level > prev {
		events = append(events, Event{Type: EventLevelUp, Level: lv.Level, Title: lv.Title})
	} else {
		events = append(events, Event{Type: EventActionSuccess})
	}

	if g.LastActiveDate != today {
		g.Streak = models.FlexInt(g.Streak.Int() + 1)
		g.LastActiveDate = today
	}
	return events
}

func (e *Engine) loadProgress(ctx context.Context, userID uint, today string) models.DailyProgress {
	p := models.NewDailyProgress(today)
	if raw, ok := e.kv.Get(ctx, progressKey(userID)); ok {
		var dec models.DailyProgress
		if err := json.Unmarshal([]byte(raw), &dec); err == nil {
			p = dec
		} else if e.log != nil {
			e.log.Warnf("corrupt progress blob user=%d, resetting: %v", userID, err)
		}
	}
	if p.History == nil {
		p.History = map[string]models.DayTotals{}
	}
	if p.ContactsMade < 0 {
		p.ContactsMade = 0
	}
	if p.FollowUpsMade < 0 {
		p.FollowUpsMade = 0
	}
	if p.PostsMade < 0 {
		p.PostsMade = 0
	}
	return p
}

func (e *Engine) loadGamification(ctx context.Context, userID uint) models.Gamification {
	g := models.NewGamification()
	if raw, ok := e.kv.Get(ctx, gamifyKey(userID)); ok {
		var dec models.Gamification
		if err := json.Unmarshal([]byte(raw), &dec); err == nil {
			g = dec
		} else if e.log != nil {
			e.log.Warnf("corrupt gamification blob user=%d, resetting: %v", userID, err)
		}
	}
	if g.Points < 0 {
		g.Points = 0
	}
	if g.Streak < 0 {
		g.Streak = 0
	}
	// Level is derived state; settle it against the table on every load so
	// a stale or hand-edited blob cannot desync it.
	g.Level = LevelForPoints(g.Points.Int(), e.levels).Level
	return g
}

func (e *Engine) persist(ctx context.Context, userID uint, p models.DailyProgress, g models.Gamification) {
	e.saveJSON(ctx, progressKey(userID), p)
	e.saveJSON(ctx, gamifyKey(userID), g)
}

func (e *Engine) saveJSON(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		if e.log != nil {
			e.log.Errorf("marshal state key=%s: %v", key, err)
		}
		return
	}
	e.kv.Set(ctx, key, string(b))
}
