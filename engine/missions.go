package engine

import "github.com/duplikit/duplikit/models"

// DefaultMissions is the daily mission catalog. One entry is drawn
// uniformly at random each day; the reward is banked on completion.
var DefaultMissions = []models.Mission{
	{ID: "voice-note", Description: "Send a voice message to 2 prospects instead of texting", PointsReward: 30},
	{ID: "reconnect", Description: "Reach out to someone you haven't talked to in 90+ days", PointsReward: 25},
	{ID: "story-post", Description: "Share a customer story on your socials", PointsReward: 35},
	{ID: "three-comments", Description: "Leave a genuine comment on 3 prospects' posts", PointsReward: 20},
	{ID: "team-shoutout", Description: "Publicly celebrate a teammate's win", PointsReward: 20},
	{ID: "follow-up-five", Description: "Follow up with 5 people from last week's list", PointsReward: 40},
	{ID: "new-market", Description: "Start a conversation outside your usual circle", PointsReward: 30},
	{ID: "testimonial-ask", Description: "Ask a happy customer for a testimonial", PointsReward: 35},
	{ID: "calendar-block", Description: "Book tomorrow's prospecting hour in your calendar", PointsReward: 15},
	{ID: "objection-drill", Description: "Practice answering your toughest objection out loud", PointsReward: 25},
}

// pickMission draws a fresh mission for the day. The returned copy is
// always marked incomplete.
func (e *Engine) pickMission() *models.Mission {
	m := e.missions[e.Rand.Intn(len(e.missions))]
	m.Completed = false
	return &m
}
