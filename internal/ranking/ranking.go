// Package ranking applies a completed match result to the persistent
// battle histories of both robots and recomputes their rank tiers.
package ranking

import "github.com/ogarreto/robo-arena/internal/bot"

const (
	winPoints  = 25
	lossPoints = 10
)

// TierForPoints maps accumulated ranking points to a named rank tier.
func TierForPoints(points int) bot.RankTier {
	switch {
	case points < 100:
		return bot.TierBronze
	case points < 300:
		return bot.TierSilver
	case points < 600:
		return bot.TierGold
	case points < 1000:
		return bot.TierPlatinum
	case points < 1500:
		return bot.TierDiamond
	case points < 2000:
		return bot.TierChampion
	default:
		return bot.TierLegend
	}
}

// ApplyResult mutates both histories for one completed match: the winner
// gains points and extends its streak, the loser drops points (never
// below zero) and resets its streak, and both tiers are recomputed.
//
// Call this exactly once per completed match — a second invocation
// double-counts. Concurrent matches sharing a definition must serialize
// their calls; the service layer holds a mutex around this.
func ApplyResult(winner, loser *bot.Bot) {
	w := &winner.History
	w.TotalBattles++
	w.Wins++
	w.WinStreak++
	if w.WinStreak > w.LongestWinStreak {
		w.LongestWinStreak = w.WinStreak
	}
	w.RankingPoints += winPoints
	w.RankTier = TierForPoints(w.RankingPoints)

	l := &loser.History
	l.TotalBattles++
	l.Losses++
	l.WinStreak = 0
	l.RankingPoints -= lossPoints
	if l.RankingPoints < 0 {
		l.RankingPoints = 0
	}
	l.RankTier = TierForPoints(l.RankingPoints)
}
