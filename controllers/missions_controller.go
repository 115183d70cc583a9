package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/duplikit/duplikit/engine"
	"github.com/duplikit/duplikit/models"
	"github.com/duplikit/duplikit/utils"
)

// MissionsController serves the rotating daily mission.
type MissionsController struct {
	engine *engine.Engine
	db     *gorm.DB
}

// NewMissionsController creates a MissionsController.
func NewMissionsController(eng *engine.Engine, db *gorm.DB) *MissionsController {
	return &MissionsController{engine: eng, db: db}
}

// Current returns today's mission, assigning one if needed.
func (m *MissionsController) Current(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	res := m.engine.Snapshot(ctx.Request.Context(), userID)
	utils.Success(ctx, gin.H{"mission": res.Gamification.CurrentMission})
}

// Complete turns in today's mission and awards its points. Completing an
// already-completed mission is a quiet no-op.
func (m *MissionsController) Complete(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	before := m.engine.Snapshot(ctx.Request.Context(), userID)
	res := m.engine.CompleteMission(ctx.Request.Context(), userID)

	if len(res.Events) > 0 && m.db != nil {
		pts := 0
		if mission := before.Gamification.CurrentMission; mission != nil {
			pts = mission.PointsReward.Int()
		}
		event := models.ActionEvent{
			UserID: userID,
			TeamID: res.Progress.TeamID,
			Kind:   models.ActionMission,
			Points: pts,
			Date:   res.Progress.LastUpdated,
		}
		if err := m.db.Create(&event).Error; err != nil && utils.Sugar != nil {
			utils.Sugar.Warnf("mission journal write failed user=%d: %v", userID, err)
		}
		updates := map[string]interface{}{
			"points": res.Gamification.Points.Int(),
			"level":  res.Gamification.Level,
			"streak": res.Gamification.Streak.Int(),
		}
		if err := m.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil && utils.Sugar != nil {
			utils.Sugar.Warnf("user snapshot sync failed user=%d: %v", userID, err)
		}
	}

	utils.Success(ctx, res)
}
