// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/bunker-game/bunker-service/internal/handlers"
	"github.com/bunker-game/bunker-service/internal/lobby"
	"github.com/bunker-game/bunker-service/internal/middleware"
	"github.com/bunker-game/bunker-service/internal/notify"
	"github.com/bunker-game/bunker-service/internal/scenario"
	"github.com/bunker-game/bunker-service/internal/store"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	scenariosPath := os.Getenv("SCENARIOS_FILE")
	if scenariosPath == "" {
		scenariosPath = "scenarios.json"
	}
	scenarios, err := scenario.Load(scenariosPath)
	if err != nil {
		logger.Fatalf("failed to load scenarios from %s: %v", scenariosPath, err)
	}
	logger.Infof("loaded %d scenarios", len(scenarios))

	st, err := store.ConnectFromEnv()
	if err != nil {
		logger.Fatalf("failed to connect store: %v", err)
	}
	defer st.Close()

	hub := notify.NewHub(logger)
	svc := lobby.NewService(st, hub, scenarios, logger)
	srv := handlers.NewServer(svc, hub, logger)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	server := &http.Server{
		Addr:        addr,
		Handler:     middleware.LogMiddleware(logger)(srv.Routes()),
		ReadTimeout: 10 * time.Second,
	}

	logger.Infof("Running on %s", addr)

	errc := make(chan error, 1)
	go func() {
		errc <- server.ListenAndServe()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	select {
	case err := <-errc:
		logger.Errorf("failed to serve: %v", err)
	case sig := <-sigs:
		logger.Infof("terminating: %v", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Errorf("shutdown: %v", err)
		}
	}
}
