package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/duplikit/duplikit/middleware"
	"github.com/duplikit/duplikit/models"
)

// getUserID extracts the authenticated user id placed by the auth
// middleware.
func getUserID(ctx *gin.Context) (uint, bool) {
	v, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// publicUser is the profile shape exposed to other users.
type publicUser struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	Headline  string `json:"headline"`
	Points    int    `json:"points"`
	Level     int    `json:"level"`
	Streak    int    `json:"streak"`
	TeamID    string `json:"team_id,omitempty"`
}

func sanitizeUserResponse(u models.User) publicUser {
	return publicUser{
		ID:        u.ID,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		Headline:  u.Headline,
		Points:    u.Points,
		Level:     u.Level,
		Streak:    u.Streak,
		TeamID:    u.TeamID,
	}
}
