package models

// Level is one row of the fixed level table, ascending by MinPoints.
type Level struct {
	Level     int    `json:"level"`
	MinPoints int    `json:"minPoints"`
	Title     string `json:"title"`
}

// Mission is a daily bonus objective. A copy from the catalog is stored on
// the gamification blob together with its completion flag.
type Mission struct {
	ID           string  `json:"id"`
	Description  string  `json:"description"`
	PointsReward FlexInt `json:"xp"`
	Completed    bool    `json:"completed"`
}

// Gamification is the cross-day progression state for one user.
//
// Invariants maintained by the engine: Level is always the highest table
// entry whose MinPoints does not exceed Points, Streak grows at most once
// per calendar date, and CurrentMission is replaced when MissionDate falls
// behind today.
type Gamification struct {
	Points         FlexInt  `json:"xp"`
	Level          int      `json:"level"`
	Streak         FlexInt  `json:"streak"`
	LastActiveDate string   `json:"lastActiveDate,omitempty"`
	CurrentMission *Mission `json:"currentMission,omitempty"`
	MissionDate    string   `json:"missionDate,omitempty"`
}

// NewGamification returns the first-run state.
func NewGamification() Gamification {
	return Gamification{Level: 1}
}
