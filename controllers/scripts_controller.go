package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/duplikit/duplikit/ai"
	"github.com/duplikit/duplikit/utils"
)

// ScriptsController serves AI-assisted prospecting scripts.
type ScriptsController struct {
	scripter *ai.Scripter
}

// NewScriptsController creates a ScriptsController.
func NewScriptsController(scripter *ai.Scripter) *ScriptsController {
	return &ScriptsController{scripter: scripter}
}

// Generate produces a script for the requested kind. Generation failures
// degrade to a canned script, never an error.
func (s *ScriptsController) Generate(ctx *gin.Context) {
	if _, ok := getUserID(ctx); !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	var req ai.Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40070, "invalid request payload")
		return
	}

	req.Kind = strings.TrimSpace(req.Kind)
	if !ai.ValidKind(req.Kind) {
		utils.Error(ctx, http.StatusBadRequest, 40071, "unknown script kind")
		return
	}

	req.ProspectName = utils.Sanitize(strings.TrimSpace(req.ProspectName))
	req.Context = utils.Sanitize(strings.TrimSpace(req.Context))
	req.Tone = utils.Sanitize(strings.TrimSpace(req.Tone))

	text, fromFallback := s.scripter.Script(ctx.Request.Context(), req)
	utils.Success(ctx, gin.H{
		"kind":     req.Kind,
		"text":     text,
		"fallback": fromFallback,
	})
}
