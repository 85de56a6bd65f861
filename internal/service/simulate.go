package service

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/ogarreto/robo-arena/internal/bot"
	"github.com/ogarreto/robo-arena/internal/engine"
	"github.com/ogarreto/robo-arena/internal/logging"
	"github.com/ogarreto/robo-arena/internal/ranking"
	"github.com/ogarreto/robo-arena/internal/storage"
)

var (
	ErrBotNotFound = errors.New("robot not found")
	ErrSameBot     = errors.New("a robot cannot fight itself")
)

// MatchRepo is the minimal repository interface required by
// SimulateMatch.
type MatchRepo interface {
	GetBotByID(id uint) (*bot.Bot, error)
	UpdateBot(b *bot.Bot) error
	SaveMatch(rec *storage.MatchRecord) error
}

// SimulateRequest parameterizes one simulation run. Seed 0 selects a
// time-seeded randomness source; any other value makes the run
// replayable.
type SimulateRequest struct {
	BotAID uint
	BotBID uint
	Config engine.MatchConfig
	Seed   int64
}

// loadBot maps a missing roster entry to ErrBotNotFound and lets every
// other repository failure through untouched, so callers can distinguish
// a bad id from a broken database.
func loadBot(repo MatchRepo, id uint) (*bot.Bot, error) {
	b, err := repo.GetBotByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrBotNotFound) {
			return nil, ErrBotNotFound
		}
		return nil, err
	}
	if b == nil {
		return nil, ErrBotNotFound
	}
	return b, nil
}

// rankMu serializes ranking updates. Concurrent matches that share a
// definition would otherwise race on its history fields.
var rankMu sync.Mutex

// SimulateMatch loads both robots, runs the match and applies the
// ranking update exactly once before persisting the mutated histories
// and a match record. Any failure before the match completes skips the
// ranking update entirely.
func SimulateMatch(repo MatchRepo, req SimulateRequest, sinks ...engine.EventSink) (*engine.MatchResult, error) {
	a, err := loadBot(repo, req.BotAID)
	if err != nil {
		return nil, err
	}
	b, err := loadBot(repo, req.BotBID)
	if err != nil {
		return nil, err
	}
	if a.ID == b.ID {
		return nil, ErrSameBot
	}

	var rng *rand.Rand
	if req.Seed != 0 {
		rng = rand.New(rand.NewSource(req.Seed))
	}
	m, err := engine.NewMatch(a, b, req.Config, rng, sinks...)
	if err != nil {
		return nil, err
	}
	result := m.Run()

	rankMu.Lock()
	ranking.ApplyResult(result.Winner, result.Loser)
	rankMu.Unlock()

	if err := repo.UpdateBot(result.Winner); err != nil {
		return nil, err
	}
	if err := repo.UpdateBot(result.Loser); err != nil {
		return nil, err
	}
	if err := repo.SaveMatch(&storage.MatchRecord{
		MatchUUID:    result.MatchID,
		WinnerID:     result.Winner.ID,
		LoserID:      result.Loser.ID,
		WinnerName:   result.WinnerName,
		LoserName:    result.LoserName,
		WinnerRounds: result.WinnerRounds,
		LoserRounds:  result.LoserRounds,
		RoundsFought: result.RoundsFought,
		WinnerDamage: result.WinnerDamage,
		LoserDamage:  result.LoserDamage,
		Duration:     result.Duration,
	}); err != nil {
		return nil, err
	}

	logging.Info("match simulated", logging.Fields{
		"match_id": result.MatchID,
		"winner":   result.WinnerName,
		"loser":    result.LoserName,
		"rounds":   result.RoundsFought,
	})
	return result, nil
}
