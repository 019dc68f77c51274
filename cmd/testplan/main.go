// Command testplan runs only the test-plan generation and download
// endpoints, for deployments that serve the planning UI on its own.
package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studydesk/go-services/internal/config"
	"github.com/studydesk/go-services/internal/database"
	"github.com/studydesk/go-services/internal/generation"
	"github.com/studydesk/go-services/internal/storage"
	"github.com/studydesk/go-services/internal/testplan/handler"
	"github.com/studydesk/go-services/internal/testplan/repository"
	"github.com/studydesk/go-services/internal/testplan/service"
	"github.com/studydesk/go-services/pkg/logger"
	"github.com/studydesk/go-services/pkg/middleware"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if port := os.Getenv("TESTPLAN_SERVICE_PORT"); port != "" {
		cfg.Server.Port = port
		if os.Getenv("PUBLIC_URL") == "" {
			cfg.Server.PublicURL = "http://localhost:" + port
		}
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(), gin.Recovery())

	// Unlike the main service, fall back to an in-memory record log when
	// MongoDB is unreachable: the spreadsheet flow works without it.
	var repo repository.Repository
	if cfg.MongoDB.Backend == "mongo" && cfg.MongoDB.URI != "" {
		client, err := database.ConnectMongo(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err != nil {
			logger.Warnf("cannot connect to MongoDB (%v); using memory-backed records", err)
			repo = repository.NewMemoryRepo()
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = client.Disconnect(ctx)
			}()
			repo = repository.NewMongoRepo(client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.TestPlanCollection))
		}
	} else {
		repo = repository.NewMemoryRepo()
	}

	store, err := storage.New(cfg)
	if err != nil {
		logger.Fatalf("artifact storage: %v", err)
	}
	gen := generation.NewClient(cfg.Ollama.URL, cfg.Ollama.Model, cfg.Ollama.Timeout)
	handler.RegisterTestPlanRoutes(r, service.New(repo, gen, store, service.Options{
		PublicURL:   cfg.Server.PublicURL,
		UniqueNames: cfg.Artifacts.UniqueNames,
	}))

	logger.Infof("testplan service listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Errorf("server stopped: %v", err)
	}
}
