package engine

import (
	"time"

	"github.com/duplikit/duplikit/models"
)

// DefaultLevels is the fixed progression table, ascending by MinPoints.
// Level 1 starts at zero so every non-negative score maps to a level.
var DefaultLevels = []models.Level{
	{Level: 1, MinPoints: 0, Title: "Rookie"},
	{Level: 2, MinPoints: 100, Title: "Connector"},
	{Level: 3, MinPoints: 250, Title: "Networker"},
	{Level: 4, MinPoints: 500, Title: "Team Builder"},
	{Level: 5, MinPoints: 1000, Title: "Mentor"},
	{Level: 6, MinPoints: 2000, Title: "Director"},
	{Level: 7, MinPoints: 3500, Title: "Executive"},
	{Level: 8, MinPoints: 5000, Title: "Diamond"},
}

// LevelForPoints returns the highest table entry whose MinPoints does not
// exceed points. The table is scanned in order; later qualifying rows win.
func LevelForPoints(points int, table []models.Level) models.Level {
	best := table[0]
	for _, lv := range table {
		if lv.MinPoints <= points {
			best = lv
		}
	}
	return best
}

// IsConsecutiveDay reports whether last is exactly the calendar day before
// today. Granularity is whole days, not elapsed hours. Unparseable input is
// never consecutive.
func IsConsecutiveDay(last, today string) bool {
	lastDay, err := time.Parse(models.DayFormat, last)
	if err != nil {
		return false
	}
	todayDay, err := time.Parse(models.DayFormat, today)
	if err != nil {
		return false
	}
	return lastDay.AddDate(0, 0, 1).Equal(todayDay)
}
