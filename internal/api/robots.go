package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ogarreto/robo-arena/internal/bot"
	"github.com/ogarreto/robo-arena/internal/constants"
	"github.com/ogarreto/robo-arena/internal/storage"
)

// ListRobots returns the full roster, abilities included.
func (h *ArenaHandler) ListRobots(c *gin.Context) {
	bots, err := h.repo.GetBots()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRobots})
		return
	}
	c.JSON(http.StatusOK, bots)
}

// GetRobot returns a single robot. The route param is a numeric id or,
// when non-numeric, a case-insensitive robot name.
func (h *ArenaHandler) GetRobot(c *gin.Context) {
	param := strings.TrimSpace(c.Param("robotID"))
	if param == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRobotID})
		return
	}
	var (
		b   *bot.Bot
		err error
	)
	if id, perr := strconv.ParseUint(param, 10, 32); perr == nil && id > 0 {
		b, err = h.repo.GetBotByID(uint(id))
	} else {
		b, err = h.repo.GetBotByName(param)
	}
	if err != nil {
		if errors.Is(err, storage.ErrBotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRobotNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRobots})
		return
	}
	c.JSON(http.StatusOK, b)
}

// Leaderboard returns the roster ranked by ranking points, limited to
// top 10 by default.
func (h *ArenaHandler) Leaderboard(c *gin.Context) {
	// optional ?limit=N
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	bots, err := h.repo.GetLeaderboard(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, bots)
}
