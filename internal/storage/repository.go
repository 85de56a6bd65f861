package storage

import "github.com/ogarreto/robo-arena/internal/bot"

// Repository is the persistence surface of the arena: the robot roster,
// persisted battle histories and match records.
type Repository interface {
	GetBots() ([]bot.Bot, error)
	GetBotByID(id uint) (*bot.Bot, error)
	// GetBotByName returns a robot by its name (case-insensitive).
	GetBotByName(name string) (*bot.Bot, error)
	// UpdateBot persists a definition including its mutated history.
	UpdateBot(b *bot.Bot) error

	SaveMatch(rec *MatchRecord) error
	GetRecentMatches(limit int) ([]MatchRecord, error)

	// GetLeaderboard returns the top robots by ranking points.
	GetLeaderboard(limit int) ([]bot.Bot, error)
}
