package models

// UserGoals holds the daily targets a user commits to plus the business
// context used when generating scripts. The whole struct is replaced on
// edit or when a duplication token is accepted; it is never partially
// mutated.
type UserGoals struct {
	DailyContacts  int    `json:"dailyContacts"`
	DailyFollowUps int    `json:"dailyFollowUps"`
	DailyPosts     int    `json:"dailyPosts"`
	MonthlyIncome  string `json:"monthlyIncome"`
	CompanyName    string `json:"companyName"`
	SponsorName    string `json:"sponsorName"`
	ProductNiche   string `json:"productNiche"`
	TeamChallenge  string `json:"teamChallenge"`
}

// DefaultGoals returns the first-run targets. One post a day is the floor
// even before the user has set anything up.
func DefaultGoals() UserGoals {
	return UserGoals{
		DailyContacts:  5,
		DailyFollowUps: 3,
		DailyPosts:     1,
	}
}

// Normalize clamps negative targets and restores the post floor.
func (g *UserGoals) Normalize() {
	if g.DailyContacts < 0 {
		g.DailyContacts = 0
	}
	if g.DailyFollowUps < 0 {
		g.DailyFollowUps = 0
	}
	if g.DailyPosts <= 0 {
		g.DailyPosts = 1
	}
}
