package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/duplikit/duplikit/config"
	"github.com/duplikit/duplikit/duplication"
	"github.com/duplikit/duplikit/engine"
	"github.com/duplikit/duplikit/models"
	"github.com/duplikit/duplikit/utils"
)

// GoalsController manages the user's daily targets and the duplication
// share-link flow.
type GoalsController struct {
	engine *engine.Engine
}

// NewGoalsController creates a GoalsController.
func NewGoalsController(eng *engine.Engine) *GoalsController {
	return &GoalsController{engine: eng}
}

// Get returns the user's current goals, defaults on first run.
func (g *GoalsController) Get(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	utils.Success(ctx, g.engine.Goals(ctx.Request.Context(), userID))
}

// Update replaces the user's goals wholesale.
func (g *GoalsController) Update(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	var goals models.UserGoals
	if err := ctx.ShouldBindJSON(&goals); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid goals payload")
		return
	}

	// Free-text fields render in share previews, so they pass through the
	// sanitizer before persisting.
	goals.CompanyName = utils.Sanitize(strings.TrimSpace(goals.CompanyName))
	goals.SponsorName = utils.Sanitize(strings.TrimSpace(goals.SponsorName))
	goals.ProductNiche = utils.Sanitize(strings.TrimSpace(goals.ProductNiche))
	goals.TeamChallenge = utils.Sanitize(strings.TrimSpace(goals.TeamChallenge))
	goals.MonthlyIncome = utils.Sanitize(strings.TrimSpace(goals.MonthlyIncome))

	saved := g.engine.UpdateGoals(ctx.Request.Context(), userID, goals)
	utils.Success(ctx, saved)
}

// ShareLink returns the duplication URL encoding the user's current goals.
func (g *GoalsController) ShareLink(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	goals := g.engine.Goals(ctx.Request.Context(), userID)
	link := duplication.ShareLink(config.Get().BaseURL, goals)
	utils.Success(ctx, gin.H{
		"url":   link,
		"token": duplication.Serialize(goals),
	})
}

// Duplicate seeds the user's goals from an incoming share token.
func (g *GoalsController) Duplicate(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "invalid request payload")
		return
	}

	decoded := duplication.Deserialize(req.Token)
	if decoded == nil {
		utils.Error(ctx, http.StatusBadRequest, 40061, "token carries no recognizable goals")
		return
	}

	decoded.CompanyName = utils.Sanitize(decoded.CompanyName)
	decoded.SponsorName = utils.Sanitize(decoded.SponsorName)
	decoded.TeamChallenge = utils.Sanitize(decoded.TeamChallenge)

	saved := g.engine.UpdateGoals(ctx.Request.Context(), userID, *decoded)
	utils.Success(ctx, saved)
}

// Preview decodes a share token without authentication or persistence, so
// a recipient can see the plan before signing up.
func (g *GoalsController) Preview(ctx *gin.Context) {
	token := ctx.Query(duplication.Param)
	if token == "" {
		token = ctx.Query("token")
	}

	decoded := duplication.Deserialize(token)
	if decoded == nil {
		utils.Error(ctx, http.StatusBadRequest, 40061, "token carries no recognizable goals")
		return
	}

	decoded.CompanyName = utils.Sanitize(decoded.CompanyName)
	decoded.SponsorName = utils.Sanitize(decoded.SponsorName)
	decoded.TeamChallenge = utils.Sanitize(decoded.TeamChallenge)

	utils.Success(ctx, decoded)
}
