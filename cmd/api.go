package cmd

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	config "github.com/blocklens/blocksummary/configs"
	"github.com/blocklens/blocksummary/internal/handlers"
	"github.com/blocklens/blocksummary/internal/middleware"
)

var (
	apiCmd = &cobra.Command{
		Use:   "api",
		Short: "Start the block summary HTTP API",
		Long:  "Start the block summary HTTP API",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

func RunApi(cmd *cobra.Command, args []string) {
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	r.GET("/", handlers.GetIndex)
	r.GET("/block", handlers.GetBlockSummary)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.Info().Str("host", config.Cfg.API.Host).Msg("Starting API")
	if err := r.Run(config.Cfg.API.Host); err != nil {
		log.Fatal().Err(err).Msg("API server failed")
	}
}
