package storage

import (
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ogarreto/robo-arena/internal/bot"
	"github.com/ogarreto/robo-arena/internal/logging"
)

// OpenAndMigrate opens the SQLite database, migrates the schema and
// seeds the robot roster from the configuration.
func OpenAndMigrate(dataSourceName string, botsFromConfig []bot.Bot) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&bot.Bot{}, &bot.Ability{}, &MatchRecord{}); err != nil {
		return nil, err
	}

	seedRoster(db, botsFromConfig)
	return db, nil
}

// seedRoster inserts configured robots that are not yet in the roster.
// Existing rows are left untouched so battle histories survive restarts;
// stat changes for an existing robot require a roster reset.
func seedRoster(db *gorm.DB, botsFromConfig []bot.Bot) {
	for _, conf := range botsFromConfig {
		var count int64
		db.Model(&bot.Bot{}).Where("lower(name) = ?", strings.ToLower(conf.Name)).Count(&count)
		if count > 0 {
			continue
		}
		fresh := conf
		fresh.History.RankTier = bot.TierBronze
		if err := db.Create(&fresh).Error; err != nil {
			logging.Error("failed to seed roster entry", err, logging.Fields{"name": conf.Name})
			continue
		}
		logging.Info("roster entry seeded", logging.Fields{"name": conf.Name})
	}
}
