package dedupe

// Package dedupe provides shared singleflight groups used to collapse
// concurrent duplicate reads. Using a centralized singleflight.Group
// ensures that only one query runs for a given key while other callers
// wait for the same result.

import "golang.org/x/sync/singleflight"

// LeaderboardGroup deduplicates leaderboard queries keyed by the
// requested size (e.g. "top:10").
var LeaderboardGroup singleflight.Group
