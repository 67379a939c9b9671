package main

import (
	"os"

	"pokerquest/internal/api"
	"pokerquest/internal/constants"
	"pokerquest/internal/logging"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	repo := createRepositoryOrExit(dbPath)

	r := gin.Default()
	api.RegisterRoutes(r, api.NewEncounterHandler(repo, cfg))

	addr := cfg.ServerAddress
	if addr == "" {
		addr = constants.DefaultServerAddress
	}
	logging.Info("server starting", logging.Fields{"address": addr, "stages": len(cfg.Stages)})
	if err := r.Run(addr); err != nil {
		logging.Fatal("server stopped", err, nil)
	}
}
