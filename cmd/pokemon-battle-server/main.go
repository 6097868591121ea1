package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/TeriYeaki/Pokemon-Battle/internal/api"
	"github.com/TeriYeaki/Pokemon-Battle/internal/config"
	"github.com/TeriYeaki/Pokemon-Battle/internal/constants"
	"github.com/TeriYeaki/Pokemon-Battle/internal/logging"
)

func main() {
	debug := os.Getenv(constants.EnvDebug) != ""
	logging.Init(debug)
	defer logging.Sync()

	// Config path may be provided via POKEBATTLE_CONFIG; defaults apply
	// when unset.
	configPath := os.Getenv(constants.EnvConfigPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid configuration", err, logging.Fields{"config_path": configPath})
	}

	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	handler := api.NewBattleHandler(cfg)

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteHealth, api.Health)
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.POST(constants.RouteBattles, handler.RunBattle)
		apiRoutes.GET(constants.RouteBattlesStream, handler.StreamBattle)
		apiRoutes.POST(constants.RouteSimulations, handler.Simulate)
	}

	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: cfg.Server.Address})
	if err := router.Run(cfg.Server.Address); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
