package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/duplikit/duplikit/engine"
	"github.com/duplikit/duplikit/models"
	"github.com/duplikit/duplikit/utils"
)

const leaderboardCacheTTL = 2 * time.Minute

// TeamsController manages teams and their leaderboards.
type TeamsController struct {
	engine *engine.Engine
	db     *gorm.DB
}

// NewTeamsController creates a TeamsController.
func NewTeamsController(eng *engine.Engine, db *gorm.DB) *TeamsController {
	return &TeamsController{engine: eng, db: db}
}

// Create registers a new team and puts the creator on it.
func (t *TeamsController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	var req struct {
		Name      string `json:"name" binding:"required,min=2,max=64"`
		Challenge string `json:"challenge"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40080, "invalid request payload")
		return
	}

	team := models.Team{
		ID:        uuid.NewString(),
		Name:      utils.Sanitize(strings.TrimSpace(req.Name)),
		Challenge: utils.Sanitize(strings.TrimSpace(req.Challenge)),
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}
	if team.Name == "" {
		utils.Error(ctx, http.StatusBadRequest, 40081, "team name is empty after sanitization")
		return
	}

	if err := t.db.Create(&team).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50080, "failed to create team")
		return
	}

	t.placeUser(ctx, userID, team.ID)
	utils.Success(ctx, team)
}

// Join puts the user on an existing team.
func (t *TeamsController) Join(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	teamID := strings.TrimSpace(ctx.Param("id"))
	var team models.Team
	if err := t.db.First(&team, "id = ?", teamID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40480, "team not found")
		return
	}

	t.placeUser(ctx, userID, team.ID)
	utils.Success(ctx, team)
}

// Leave removes the user from their team.
func (t *TeamsController) Leave(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	t.placeUser(ctx, userID, "")
	utils.Success(ctx, gin.H{"message": "left team"})
}

// leaderboardRow is one aggregated entry of a team leaderboard.
type leaderboardRow struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	Actions  int    `json:"actions"`
}

// Leaderboard aggregates the action journal for a team over the last 30
// days. Results are cached briefly because the board renders on every
// team member's home screen.
func (t *TeamsController) Leaderboard(ctx *gin.Context) {
	if _, ok := getUserID(ctx); !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	teamID := strings.TrimSpace(ctx.Param("id"))
	if teamID == "" {
		utils.Error(ctx, http.StatusBadRequest, 40082, "team id required")
		return
	}

	cacheKey := "coach:leaderboard:" + teamID
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		var rows []leaderboardRow
		if err := json.Unmarshal(b, &rows); err == nil {
			utils.Success(ctx, gin.H{"team_id": teamID, "rows": rows, "cached": true})
			return
		}
	}

	since := time.Now().AddDate(0, 0, -30).Format(models.DayFormat)
	var rows []leaderboardRow
	err := t.db.Model(&models.ActionEvent{}).
		Select("action_events.user_id, users.username, SUM(action_events.points) AS points, COUNT(*) AS actions").
		Joins("JOIN users ON users.id = action_events.user_id").
		Where("action_events.team_id = ? AND action_events.date >= ?", teamID, since).
		Group("action_events.user_id, users.username").
		Order("points DESC").
		Limit(50).
		Scan(&rows).Error
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50081, "failed to build leaderboard")
		return
	}

	utils.CacheSetJSON(cacheKey, rows, leaderboardCacheTTL)
	utils.Success(ctx, gin.H{"team_id": teamID, "rows": rows, "cached": false})
}

// placeUser moves the user onto (or off) a team in both stores.
func (t *TeamsController) placeUser(ctx *gin.Context, userID uint, teamID string) {
	t.engine.JoinTeam(ctx.Request.Context(), userID, teamID)
	if err := t.db.Model(&models.User{}).Where("id = ?", userID).Update("team_id", teamID).Error; err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("user team sync failed user=%d team=%s: %v", userID, teamID, err)
	}
	utils.InvalidateByPrefix("coach:leaderboard:")
}
