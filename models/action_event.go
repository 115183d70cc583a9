package models

import "time"

// Action kinds recorded in the event journal.
const (
	ActionContact    = "contact"
	ActionFollowUp   = "follow_up"
	ActionPost       = "post"
	ActionRescuePost = "rescue_post"
	ActionMission    = "mission"
)

// ActionEvent is one point-earning action, journaled per user per day.
// Rows feed the public stats and team leaderboards; they are written
// best-effort and are never read back by the progression engine itself.
type ActionEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	TeamID    string    `gorm:"size:36;index" json:"team_id"`
	Kind      string    `gorm:"size:16;index;not null" json:"kind"`
	Points    int       `json:"points"`
	Date      string    `gorm:"size:10;index;not null" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
