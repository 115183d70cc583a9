package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/duplikit/duplikit/ai"
	"github.com/duplikit/duplikit/config"
	"github.com/duplikit/duplikit/controllers"
	"github.com/duplikit/duplikit/duplication"
	"github.com/duplikit/duplikit/engine"
	"github.com/duplikit/duplikit/middleware"
	"github.com/duplikit/duplikit/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB, eng *engine.Engine, scripter *ai.Scripter) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}

	r.Use(cors.New(corsCfg))

	authController := controllers.NewAuthController(db)
	goalsController := controllers.NewGoalsController(eng)
	actionsController := controllers.NewActionsController(eng, db)
	missionsController := controllers.NewMissionsController(eng, db)
	scriptsController := controllers.NewScriptsController(scripter)
	teamsController := controllers.NewTeamsController(eng, db)
	statsController := controllers.NewStatsController(db)

	// A share link lands here; surface the decoded plan so the recipient
	// sees it before signing up.
	r.GET("/", func(ctx *gin.Context) {
		if ctx.Query(duplication.Param) != "" {
			goalsController.Preview(ctx)
			return
		}
		utils.Success(ctx, gin.H{"service": "duplikit"})
	})

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)
	authGroup.PATCH("/profile", middleware.AuthRequired(), authController.UpdateProfile)

	// Public endpoints
	api.GET("/duplication/preview", goalsController.Preview)
	api.GET("/levels", actionsController.Levels)
	api.GET("/stats", statsController.Site)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())

	protected.GET("/goals", goalsController.Get)
	protected.PUT("/goals", goalsController.Update)
	protected.GET("/goals/share-link", goalsController.ShareLink)
	protected.POST("/goals/duplicate", goalsController.Duplicate)

	protected.POST("/actions/contact", actionsController.Contact)
	protected.POST("/actions/follow-up", actionsController.FollowUp)
	protected.POST("/actions/post", actionsController.Post)
	protected.GET("/progress", actionsController.Progress)
	protected.GET("/progress/history", actionsController.History)
	protected.GET("/gamification", actionsController.Gamification)

	protected.GET("/missions/current", missionsController.Current)
	protected.POST("/missions/complete", missionsController.Complete)

	protected.POST("/scripts/generate", scriptsController.Generate)

	protected.POST("/teams", teamsController.Create)
	protected.POST("/teams/:id/join", teamsController.Join)
	protected.POST("/teams/leave", teamsController.Leave)
	protected.GET("/teams/:id/leaderboard", teamsController.Leaderboard)

	protected.GET("/stats/me", statsController.Me)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}
