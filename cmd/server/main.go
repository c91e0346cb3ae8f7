package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mxcd/fittracker-download/internal/server"
	"github.com/mxcd/fittracker-download/internal/util"
	"github.com/mxcd/go-config/config"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := util.InitConfig(); err != nil {
		log.Panic().Err(err).Msg("error initializing config")
	}
	config.Print()

	if err := util.InitLogger(); err != nil {
		log.Panic().Err(err).Msg("error initializing logger")
	}
	log.Info().
		Str("version", util.Version).
		Str("commit", util.Commit).
		Str("image_tag", config.Get().String("DEPLOYMENT_IMAGE_TAG")).
		Msg("starting download server")

	s, err := server.NewServer(&server.ServerOptions{
		DevMode:        config.Get().Bool("DEV"),
		Port:           config.Get().Int("PORT"),
		TargetFilePath: config.Get().String("TARGET_FILE_PATH"),
		DisplayName:    config.Get().String("DOWNLOAD_FILENAME"),
	})
	if err != nil {
		log.Panic().Err(err).Msg("error initializing server")
	}

	if err := s.RegisterRoutes(); err != nil {
		log.Panic().Err(err).Msg("error registering routes")
	}
	s.CheckArtifact()

	go func() {
		if err := s.Run(); err != nil {
			log.Panic().Err(err).Msg("error running server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error shutting down server")
		return
	}
	log.Info().Msg("server shutdown complete")
}
