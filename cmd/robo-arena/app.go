package main

import (
	"github.com/ogarreto/robo-arena/internal/bot"
	"github.com/ogarreto/robo-arena/internal/config"
	"github.com/ogarreto/robo-arena/internal/logging"
	"github.com/ogarreto/robo-arena/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid arena configuration", err, logging.Fields{"config_path": path, "hint": "create an arena_config.json with a 'bot_list' array of robot objects (name,attributes,combat,affinity,behavior,abilities) and optional keys: server.address, match"})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string, roster []bot.Bot) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath, roster)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
