package main

import (
	"log"
	"os"

	"github.com/hiveden/hostinfo/internal/api"
	"github.com/hiveden/hostinfo/internal/config"
	"github.com/hiveden/hostinfo/internal/logging"
	"github.com/hiveden/hostinfo/internal/osinfo"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

func main() {
	cfg, err := config.Load(viper.New(), os.Getenv("HOSTINFO_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	inspector := osinfo.New(osinfo.WithLogger(logger))
	apiHandler := api.NewAPIHandler(inspector, logger)

	r := gin.Default()
	apiHandler.Register(r)

	logger.Info("starting api server", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
