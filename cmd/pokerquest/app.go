package main

import (
	"pokerquest/internal/config"
	"pokerquest/internal/logging"
	"pokerquest/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid pokerquest configuration", err, logging.Fields{
			"config_path": path,
			"hint":        "create a pokerquest_config.json with a 'stage_list' array (name, boss stats, boss_rules) and optional keys: server.address, wildcard_chance, hand_size, max_attack_cards",
		})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenDB(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{"db_path": dbPath})
	}
	return storage.NewSQLiteRepository(db)
}
