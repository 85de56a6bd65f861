package api

import (
	"github.com/ogarreto/robo-arena/internal/engine"
	"github.com/ogarreto/robo-arena/internal/storage"
)

// ArenaHandler bundles the HTTP handlers with their dependencies: the
// roster repository and the configured match defaults.
type ArenaHandler struct {
	repo     storage.Repository
	matchCfg engine.MatchConfig
}

// NewArenaHandler constructs the handler set used by the router.
func NewArenaHandler(repo storage.Repository, matchCfg engine.MatchConfig) *ArenaHandler {
	return &ArenaHandler{repo: repo, matchCfg: matchCfg}
}
