package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/duplikit/duplikit/engine"
	"github.com/duplikit/duplikit/models"
	"github.com/duplikit/duplikit/utils"
)

// ActionsController records prospecting actions and serves progress reads.
type ActionsController struct {
	engine *engine.Engine
	db     *gorm.DB
}

// NewActionsController creates an ActionsController.
func NewActionsController(eng *engine.Engine, db *gorm.DB) *ActionsController {
	return &ActionsController{engine: eng, db: db}
}

// Contact records one prospecting contact.
func (a *ActionsController) Contact(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	res := a.engine.RecordContact(ctx.Request.Context(), userID)
	a.journal(userID, models.ActionContact, engine.PointsContact, res)
	utils.Success(ctx, res)
}

// FollowUp records one follow-up with an existing prospect.
func (a *ActionsController) FollowUp(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	res := a.engine.RecordFollowUp(ctx.Request.Context(), userID)
	a.journal(userID, models.ActionFollowUp, engine.PointsFollowUp, res)
	utils.Success(ctx, res)
}

// Post records one social post. A `rescue` flag (body or query) marks the
// low-effort recovery post, which pays a boosted reward.
func (a *ActionsController) Post(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	var req struct {
		Rescue bool `json:"rescue"`
	}
	_ = ctx.ShouldBindJSON(&req)
	rescue := req.Rescue || ctx.Query("rescue") == "true"

	res := a.engine.RecordPost(ctx.Request.Context(), userID, rescue)

	kind, pts := models.ActionPost, engine.PointsPost
	if rescue {
		kind, pts = models.ActionRescuePost, engine.PointsRescuePost
	}
	a.journal(userID, kind, pts, res)
	utils.Success(ctx, res)
}

// Progress returns today's counters alongside the user's goals.
func (a *ActionsController) Progress(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	res := a.engine.Snapshot(ctx.Request.Context(), userID)
	goals := a.engine.Goals(ctx.Request.Context(), userID)
	utils.Success(ctx, gin.H{
		"progress": res.Progress,
		"goals":    goals,
	})
}

// History returns the per-day archive of outreach counters.
func (a *ActionsController) History(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	res := a.engine.Snapshot(ctx.Request.Context(), userID)
	utils.Success(ctx, gin.H{"history": res.Progress.History})
}

// Gamification returns the points, level, streak and daily mission state,
// plus the current title and the next level threshold for progress bars.
func (a *ActionsController) Gamification(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	res := a.engine.Snapshot(ctx.Request.Context(), userID)

	title := ""
	nextAt := 0
	for _, lv := range a.engine.Levels() {
		if lv.Level == res.Gamification.Level {
			title = lv.Title
		}
		if lv.Level == res.Gamification.Level+1 {
			nextAt = lv.MinPoints
		}
	}

	utils.Success(ctx, gin.H{
		"gamification": res.Gamification,
		"title":        title,
		"nextLevelAt":  nextAt,
		"maxLevel":     nextAt == 0,
	})
}

// Levels returns the fixed level table. Public so the landing page can
// render the ladder.
func (a *ActionsController) Levels(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"levels": a.engine.Levels()})
}

// journal writes the action to the durable event log and syncs the user's
// display snapshot. Both writes are best-effort; the engine state already
// holds the truth.
func (a *ActionsController) journal(userID uint, kind string, points int, res engine.Result) {
	if a.db == nil {
		return
	}

	event := models.ActionEvent{
		UserID: userID,
		TeamID: res.Progress.TeamID,
		Kind:   kind,
		Points: points,
		Date:   res.Progress.LastUpdated,
	}
	if err := a.db.Create(&event).Error; err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("action journal write failed user=%d kind=%s: %v", userID, kind, err)
	}

	updates := map[string]interface{}{
		"points": res.Gamification.Points.Int(),
		"level":  res.Gamification.Level,
		"streak": res.Gamification.Streak.Int(),
	}
	if err := a.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("user snapshot sync failed user=%d: %v", userID, err)
	}
}
