package models

// DayFormat is the calendar-date layout used across persisted state.
const DayFormat = "2006-01-02"

// DayTotals is one archived day inside DailyProgress.History. Posts are
// deliberately absent: the history view only ever charted outreach.
type DayTotals struct {
	Contacts  FlexInt `json:"contacts"`
	FollowUps FlexInt `json:"followUps"`
}

// DailyProgress carries today's counters. Counters are only meaningful while
// LastUpdated equals the current calendar date; the engine rolls them into
// History and zeroes them on the first touch of a new day.
type DailyProgress struct {
	ContactsMade  FlexInt              `json:"contactsMade"`
	FollowUpsMade FlexInt              `json:"followUpsMade"`
	PostsMade     FlexInt              `json:"postsMade"`
	LastUpdated   string               `json:"lastUpdated"`
	History       map[string]DayTotals `json:"history,omitempty"`
	TeamID        string               `json:"teamId,omitempty"`
}

// NewDailyProgress returns zeroed counters stamped with the given day.
func NewDailyProgress(day string) DailyProgress {
	return DailyProgress{
		LastUpdated: day,
		History:     map[string]DayTotals{},
	}
}
