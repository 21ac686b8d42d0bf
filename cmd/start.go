package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"movie-manager/core/loader"
	"movie-manager/core/server"
	"movie-manager/feature/backup"
	"movie-manager/feature/integrity"
	"movie-manager/feature/movies"

	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "movie-manager/docs/swagger"
)

// @title Movie Manager API
// @version 1.0
// @description API for tracking movies to watch, backed by TMDB search and a Firebase-style remote store.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the movie manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer a.Close()
		zap.ReplaceGlobals(a.logger)

		app := server.New(a.cfg.Server, a.logger)
		app.Get("/swagger/*", swagger.HandlerDefault)

		mgr := loader.NewManager(a.logger)
		mgr.Register(movies.NewFeature(a.movies))
		mgr.Register(backup.NewFeature(a.storage, a.cfg.Storage, a.movies, a.logger))
		mgr.Register(integrity.NewFeature(a.storage, a.cfg.Storage, a.db, a.logger))

		if err := mgr.LoadAll(app); err != nil {
			a.logger.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			a.logger.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			if err := app.Listen(a.cfg.Server.Address()); err != nil {
				a.logger.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		a.logger.Info("Shutting down server...")
		_ = app.Shutdown()
		a.logger.Info("Waiting for pending remote calls")
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
