package main

import (
	"context"
	"time"

	"github.com/duplikit/duplikit/ai"
	"github.com/duplikit/duplikit/config"
	"github.com/duplikit/duplikit/engine"
	"github.com/duplikit/duplikit/models"
	"github.com/duplikit/duplikit/routes"
	"github.com/duplikit/duplikit/store"
	"github.com/duplikit/duplikit/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.ActionEvent{}, &models.Team{})

	// Engine state lives in Redis when reachable, memory otherwise.
	var kv store.KV = store.NewMemory()
	if rc := utils.GetRedis(); rc != nil {
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rc.Ping(pingCtx).Err(); err != nil {
			utils.Sugar.Warnf("redis unavailable (%v), engine state held in memory only", err)
		} else {
			kv = store.NewRedis(rc, utils.Sugar)
		}
		cancel()
	}
	eng := engine.New(kv, utils.Sugar)

	var gen ai.Generator
	if cfg.AIProxyURL != "" {
		gen = ai.NewProxyGenerator(cfg.AIProxyURL, time.Duration(cfg.AITimeoutSec)*time.Second, utils.Sugar)
	}
	scripter := ai.NewScripter(gen, nil, utils.Sugar)

	r := routes.SetupRouter(db, eng, scripter)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
