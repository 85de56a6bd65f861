package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ogarreto/robo-arena/internal/constants"
	"github.com/ogarreto/robo-arena/internal/engine"
	"github.com/ogarreto/robo-arena/internal/service"
)

// simulateBody is the request payload for a match simulation. The match
// fields are optional and fall back to the configured defaults; seed 0
// selects a time-seeded run.
type simulateBody struct {
	RobotAID       uint    `json:"robot_a_id"`
	RobotBID       uint    `json:"robot_b_id"`
	RoundsToWin    int     `json:"rounds_to_win"`
	RoundTimeLimit float64 `json:"round_time_limit"`
	Seed           int64   `json:"seed"`
}

func (h *ArenaHandler) matchConfigFor(body simulateBody) engine.MatchConfig {
	cfg := h.matchCfg
	if body.RoundsToWin > 0 {
		cfg.RoundsToWin = body.RoundsToWin
	}
	if body.RoundTimeLimit > 0 {
		cfg.RoundTimeLimit = body.RoundTimeLimit
	}
	return cfg
}

// SimulateMatch runs a full match between two roster robots and returns
// the result, event log included.
func (h *ArenaHandler) SimulateMatch(c *gin.Context) {
	var body simulateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if body.RobotAID == 0 || body.RobotBID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRobotID})
		return
	}

	result, err := service.SimulateMatch(h.repo, service.SimulateRequest{
		BotAID: body.RobotAID,
		BotBID: body.RobotBID,
		Config: h.matchConfigFor(body),
		Seed:   body.Seed,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBotNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRobotNotFound})
		case errors.Is(err, service.ErrSameBot), errors.Is(err, engine.ErrIncompleteBot):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrSimulationFailed})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListMatches returns the most recent match records, newest first.
func (h *ArenaHandler) ListMatches(c *gin.Context) {
	limit := 20
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	recs, err := h.repo.GetRecentMatches(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	c.JSON(http.StatusOK, recs)
}
