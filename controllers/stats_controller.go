package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/duplikit/duplikit/models"
	"github.com/duplikit/duplikit/utils"
)

const statsCacheTTL = 5 * time.Minute

// StatsController serves aggregate activity numbers.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a StatsController.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

type siteStats struct {
	Users       int64 `json:"users"`
	Teams       int64 `json:"teams"`
	Actions     int64 `json:"actions"`
	ActiveToday int64 `json:"active_today"`
}

// Site returns site-wide counts. Cached because the numbers back a public
// landing page widget and tolerate staleness.
func (s *StatsController) Site(ctx *gin.Context) {
	const cacheKey = "coach:stats:site"
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		var cached siteStats
		if err := json.Unmarshal(b, &cached); err == nil {
			utils.Success(ctx, cached)
			return
		}
	}

	var stats siteStats
	today := time.Now().Format(models.DayFormat)

	s.db.Model(&models.User{}).Count(&stats.Users)
	s.db.Model(&models.Team{}).Count(&stats.Teams)
	s.db.Model(&models.ActionEvent{}).Count(&stats.Actions)
	s.db.Model(&models.ActionEvent{}).Where("date = ?", today).
		Distinct("user_id").Count(&stats.ActiveToday)

	utils.CacheSetJSON(cacheKey, stats, statsCacheTTL)
	utils.Success(ctx, stats)
}

// Me returns the authenticated user's lifetime action breakdown from the
// journal.
func (s *StatsController) Me(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	type kindCount struct {
		Kind   string `json:"kind"`
		Count  int64  `json:"count"`
		Points int64  `json:"points"`
	}

	var rows []kindCount
	err := s.db.Model(&models.ActionEvent{}).
		Select("kind, COUNT(*) AS count, SUM(points) AS points").
		Where("user_id = ?", userID).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50090, "failed to load stats")
		return
	}

	utils.Success(ctx, gin.H{"kinds": rows})
}
