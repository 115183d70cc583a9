package engine

// EventType identifies a feedback signal emitted by the engine.
type EventType string

const (
	// EventLevelUp fires when an award pushes the user past a level
	// threshold. It replaces the plain success signal for that award.
	EventLevelUp EventType = "level_up"
	// EventActionSuccess is the low-intensity signal for awards that do
	// not change the level.
	EventActionSuccess EventType = "action_success"
	// EventGoalReached fires once when a counter lands exactly on its
	// daily target. Only contacts and follow-ups participate.
	EventGoalReached EventType = "goal_reached"
	// EventMissionCompleted fires when the daily mission is turned in.
	EventMissionCompleted EventType = "mission_completed"
)

// Goal kinds carried on EventGoalReached.
const (
	GoalContacts  = "contacts"
	GoalFollowUps = "followUps"
)

// Event is one feedback signal for the view layer to render.
type Event struct {
	Type  EventType `json:"type"`
	Level int       `json:"level,omitempty"`
	Title string    `json:"title,omitempty"`
	Goal  string    `json:"goal,omitempty"`
}
