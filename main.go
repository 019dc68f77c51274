package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/studydesk/go-services/handlers"
	"github.com/studydesk/go-services/internal/config"
	"github.com/studydesk/go-services/internal/database"
	"github.com/studydesk/go-services/internal/generation"
	noteHandler "github.com/studydesk/go-services/internal/note/handler"
	noteRepo "github.com/studydesk/go-services/internal/note/repository"
	noteService "github.com/studydesk/go-services/internal/note/service"
	"github.com/studydesk/go-services/internal/storage"
	studentHandler "github.com/studydesk/go-services/internal/student/handler"
	studentRepo "github.com/studydesk/go-services/internal/student/repository"
	testplanHandler "github.com/studydesk/go-services/internal/testplan/handler"
	testplanRepo "github.com/studydesk/go-services/internal/testplan/repository"
	testplanService "github.com/studydesk/go-services/internal/testplan/service"
	"github.com/studydesk/go-services/pkg/logger"
	"github.com/studydesk/go-services/pkg/metrics"
	"github.com/studydesk/go-services/pkg/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

var startTime = time.Now()

// deps are the process-wide handles created at startup and released on
// shutdown. Mongo and Redis are nil when not in use.
type deps struct {
	cfg      *config.Config
	mongo    *mongo.Client
	redis    *redis.Client
	gen      generation.Generator
	store    storage.Store
	notes    noteRepo.Repository
	students studentRepo.Repository
	plans    testplanRepo.Repository
}

func main() {
	// LOG_LEVEL: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: backend=%s mongo=%v redis=%v ollama=%s model=%s",
		cfg.MongoDB.Backend, cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Ollama.URL, cfg.Ollama.Model)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := connect(ctx, cfg)
	if err != nil {
		logger.Fatalf("startup failed: %v", err)
	}
	defer d.close()

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r := newRouter(d)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Infof("Starting studydesk service on %s (public url %s)", srv.Addr, cfg.Server.PublicURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}

// connect builds every dependency from cfg. Mongo failures are fatal unless
// the memory backend was selected; Redis is optional.
func connect(ctx context.Context, cfg *config.Config) (*deps, error) {
	d := &deps{cfg: cfg}

	if cfg.Redis.Host != "" {
		rc := redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := rc.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			_ = rc.Close()
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
			d.redis = rc
		}
	}

	switch cfg.MongoDB.Backend {
	case "memory":
		logger.Warnf("using in-memory stores; data is lost on restart")
		d.notes = noteRepo.NewMemoryRepo()
		d.students = studentRepo.NewMemoryRepo()
		d.plans = testplanRepo.NewMemoryRepo()
	default:
		client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
		if err != nil {
			d.close()
			return nil, err
		}
		d.mongo = client
		db := client.Database(cfg.MongoDB.Database)
		d.notes = noteRepo.NewMongoRepo(db.Collection(cfg.MongoDB.NotesCollection))
		d.students = studentRepo.NewMongoRepo(db.Collection(cfg.MongoDB.StudentsCollection))
		d.plans = testplanRepo.NewMongoRepo(db.Collection(cfg.MongoDB.TestPlanCollection))
		logger.Infof("Connected to MongoDB database %q", cfg.MongoDB.Database)
	}

	store, err := storage.New(cfg)
	if err != nil {
		d.close()
		return nil, err
	}
	d.store = store
	logger.Infof("artifact storage: %s", store.Backend())

	d.gen = generation.NewClient(cfg.Ollama.URL, cfg.Ollama.Model, cfg.Ollama.Timeout)
	return d, nil
}

func (d *deps) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if d.mongo != nil {
		if err := d.mongo.Disconnect(ctx); err != nil {
			logger.Warnf("mongo disconnect: %v", err)
		}
	}
	if d.redis != nil {
		_ = d.redis.Close()
	}
}

func newRouter(d *deps) *gin.Engine {
	cfg := d.cfg
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsCfg.ExposeHeaders = []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader}
	r.Use(cors.New(corsCfg))

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && d.redis != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(d.redis, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	r.GET("/ready", func(c *gin.Context) { ready(c, d) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterSwagger(r)

	noteHandler.RegisterNoteRoutes(r, noteService.New(d.notes, d.gen))
	studentHandler.RegisterStudentRoutes(r, d.students)
	testplanHandler.RegisterTestPlanRoutes(r, testplanService.New(d.plans, d.gen, d.store, testplanService.Options{
		PublicURL:   cfg.Server.PublicURL,
		UniqueNames: cfg.Artifacts.UniqueNames,
	}))
	return r
}

// ready reports 200 only when the stores the handlers depend on answer.
func ready(c *gin.Context, d *deps) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := map[string]bool{}
	if d.mongo != nil {
		status["mongo"] = d.mongo.Ping(ctx, nil) == nil
	} else {
		status["mongo"] = d.cfg.MongoDB.Backend == "memory"
	}
	ok := status["mongo"]
	if d.cfg.RateLimit.Enabled && d.cfg.RateLimit.UseRedis {
		status["redis"] = d.redis != nil && d.redis.Ping(ctx).Err() == nil
		ok = ok && status["redis"]
	}
	status["storage"] = d.store != nil
	ok = ok && status["storage"]

	body := gin.H{"deps": status, "uptime": time.Since(startTime).String()}
	if !ok {
		body["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	body["status"] = "ready"
	c.JSON(http.StatusOK, body)
}
