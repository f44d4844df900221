package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ncnews/internal/config"
	"ncnews/internal/db"
	"ncnews/internal/handlers"
	"ncnews/internal/repositories"
	"ncnews/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	root := &cobra.Command{
		Use:          "ncnews",
		Short:        "News aggregator REST API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&cfg.DatabaseURL, "db", cfg.DatabaseURL, "postgres DSN")
	root.PersistentFlags().StringVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cfg, db.Migrate)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Drop all tables and load the development data",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cfg, func(conn *gorm.DB) error {
					return db.Seed(conn, db.DevData())
				})
			},
		},
	)
	return root
}

func withDB(cfg *config.Config, fn func(*gorm.DB) error) error {
	log := cfg.NewLogger()
	conn, err := db.Open(cfg, log)
	if err != nil {
		return err
	}
	defer db.Close(conn)

	if err := fn(conn); err != nil {
		return err
	}
	log.Info("Done")
	return nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := cfg.NewLogger()
	gin.SetMode(cfg.GinMode)

	conn, err := db.Open(cfg, log)
	if err != nil {
		return err
	}
	defer db.Close(conn)

	api, err := handlers.NewAPIHandler(cfg.EndpointsFile)
	if err != nil {
		return err
	}
	checker := repositories.NewChecker(conn)
	r := router.NewEngine(log, router.Handlers{
		API:      api,
		Topics:   handlers.NewTopicHandler(repositories.NewTopicRepository(conn)),
		Users:    handlers.NewUserHandler(repositories.NewUserRepository(conn)),
		Articles: handlers.NewArticleHandler(repositories.NewArticleRepository(conn), checker),
		Comments: handlers.NewCommentHandler(repositories.NewCommentRepository(conn), checker),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
