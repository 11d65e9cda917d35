package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/arenaforge/arena-api/internal/handlers/rest"
	"github.com/arenaforge/arena-api/internal/orchestrators/battle"
	"github.com/arenaforge/arena-api/internal/orchestrators/roster"
	"github.com/arenaforge/arena-api/internal/pkg/clock"
	"github.com/arenaforge/arena-api/internal/pkg/idgen"
	redisclient "github.com/arenaforge/arena-api/internal/redis"
	characterrepo "github.com/arenaforge/arena-api/internal/repositories/character"
	fightrepo "github.com/arenaforge/arena-api/internal/repositories/fight"
)

// serverConfig is parsed from the environment; flags override
type serverConfig struct {
	HTTPPort  int    `env:"HTTP_PORT" envDefault:"8080"`
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
}

var (
	httpPort  int
	redisAddr string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the arena-api HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP server port (overrides HTTP_PORT)")
	serverCmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address (overrides REDIS_ADDR)")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	if httpPort != 0 {
		cfg.HTTPPort = httpPort
	}
	if redisAddr != "" {
		cfg.RedisAddr = redisAddr
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	charRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		return fmt.Errorf("failed to create character repository: %w", err)
	}

	fightRepo, err := fightrepo.NewRedisRepository(&fightrepo.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create fight repository: %w", err)
	}

	battleService, err := battle.NewOrchestrator(&battle.Config{
		CharacterRepo: charRepo,
		FightRepo:     fightRepo,
		Roller:        dice.DefaultRoller,
	})
	if err != nil {
		return fmt.Errorf("failed to create battle orchestrator: %w", err)
	}

	rosterService, err := roster.NewOrchestrator(&roster.Config{
		CharacterRepo: charRepo,
	})
	if err != nil {
		return fmt.Errorf("failed to create roster orchestrator: %w", err)
	}

	handler, err := rest.NewHandler(&rest.Config{
		BattleService: battleService,
		RosterService: rosterService,
		IDGenerator:   idgen.NewUUID("req"),
	})
	if err != nil {
		return fmt.Errorf("failed to create REST handler: %w", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	handler.Register(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("HTTP server starting on port %d...", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Println("Graceful shutdown timeout exceeded, forcing close")
			_ = srv.Close()
		} else {
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}
