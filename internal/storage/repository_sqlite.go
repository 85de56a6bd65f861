package storage

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ogarreto/robo-arena/internal/bot"
	"github.com/ogarreto/robo-arena/internal/dedupe"
)

// ErrBotNotFound is returned when a roster lookup matches nothing.
var ErrBotNotFound = errors.New("robot not found")

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps a migrated GORM handle in the Repository
// interface.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetBots() ([]bot.Bot, error) {
	var bots []bot.Bot
	if err := r.db.Preload("Abilities").Order("name asc").Find(&bots).Error; err != nil {
		return nil, err
	}
	return bots, nil
}

func (r *sqliteRepository) GetBotByID(id uint) (*bot.Bot, error) {
	var b bot.Bot
	if err := r.db.Preload("Abilities").First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBotNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *sqliteRepository) GetBotByName(name string) (*bot.Bot, error) {
	var b bot.Bot
	if err := r.db.Preload("Abilities").Where("lower(name) = ?", strings.ToLower(strings.TrimSpace(name))).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBotNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *sqliteRepository) UpdateBot(b *bot.Bot) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(b).Error
}

func (r *sqliteRepository) SaveMatch(rec *MatchRecord) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetRecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []MatchRecord
	if err := r.db.Order("created_at desc").Limit(limit).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// GetLeaderboard ranks the roster by ranking points. Concurrent requests
// for the same size collapse into one query via singleflight.
func (r *sqliteRepository) GetLeaderboard(limit int) ([]bot.Bot, error) {
	if limit <= 0 {
		limit = 10
	}
	key := fmt.Sprintf("top:%d", limit)
	v, err, _ := dedupe.LeaderboardGroup.Do(key, func() (interface{}, error) {
		var bots []bot.Bot
		err := r.db.
			Order("history_ranking_points desc").
			Order("history_wins desc").
			Order("name asc").
			Limit(limit).
			Find(&bots).Error
		if err != nil {
			return nil, err
		}
		return bots, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]bot.Bot), nil
}
