package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/threadmind-dev/threadmind/internal/config"
	"github.com/threadmind-dev/threadmind/internal/logger"
	"github.com/threadmind-dev/threadmind/internal/router"
	"github.com/threadmind-dev/threadmind/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps := setup.SetupDependencies(cfg)
	go deps.Hub.Run()

	r := router.New(deps)

	srv := &http.Server{
		Addr:         cfg.Public.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Log.Info("server started", "addr", cfg.Public.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
