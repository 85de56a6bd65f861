package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ogarreto/robo-arena/internal/api"
	"github.com/ogarreto/robo-arena/internal/constants"
	"github.com/ogarreto/robo-arena/internal/logging"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	// Load the arena configuration file (required). Path may be provided
	// via ARENA_CONFIG or defaults to ./arena_config.json in the current
	// working directory.
	configPath := os.Getenv(constants.EnvArenaConfig)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)

	// Allow the DB path to be configured via ARENA_DB. Default to a
	// `data/` directory inside the module for local development.
	dbPath := os.Getenv(constants.EnvArenaDB)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	repo := createRepositoryOrExit(dbPath, cfg.Bots)

	handler := api.NewArenaHandler(repo, cfg.Match)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteRobots, handler.ListRobots)
		apiRoutes.GET(constants.RouteRobotByID, handler.GetRobot)
		apiRoutes.GET(constants.RouteLeaderboard, handler.Leaderboard)
		apiRoutes.GET(constants.RouteMatches, handler.ListMatches)
		apiRoutes.POST(constants.RouteMatchSimulate, handler.SimulateMatch)
		apiRoutes.GET(constants.RouteMatchLive, handler.LiveMatch)
		apiRoutes.GET(constants.RouteVersion, api.Version)
	}

	addr := cfg.ServerAddress
	if env := os.Getenv(constants.EnvArenaAddr); env != "" {
		addr = env
	}
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
