package app

import (
	"course_cert_backend/internal/config"
	"course_cert_backend/internal/controller"
	"course_cert_backend/internal/repository"
	"course_cert_backend/internal/service"
	"course_cert_backend/internal/util"
	"course_cert_backend/pkg/configwatcher"
	"course_cert_backend/pkg/database"
	"course_cert_backend/pkg/logger"
	"course_cert_backend/pkg/monitoring"
	"course_cert_backend/pkg/security"
	"course_cert_backend/pkg/tracing"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sweepInterval = time.Minute

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	rateLimiter     *security.RateLimiter
	tracer          *sdktrace.TracerProvider
	configMu        sync.RWMutex
	configCallbacks []func(*config.Config)
}

type services struct {
	progress   *service.ProgressService
	completion *service.CompletionService
	course     *service.CourseService
	quiz       *service.QuizService
	playback   *service.PlaybackService
	ad         *service.AdService
}

type controllers struct {
	course      *controller.CourseController
	progress    *controller.ProgressController
	playback    *controller.PlaybackController
	quiz        *controller.QuizController
	certificate *controller.CertificateController
	ad          *controller.AdController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 热更新：替换当前配置并通知各组件
func (a *App) ApplyConfig(cfg *config.Config) {
	a.configMu.Lock()
	a.Config = cfg
	a.configMu.Unlock()

	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) currentConfig() *config.Config {
	a.configMu.RLock()
	defer a.configMu.RUnlock()
	return a.Config
}

// initSubstrate 按 progress.driver 选择进度文档的存储介质
func (a *App) initSubstrate(cfg *config.Config) (repository.Substrate, error) {
	switch cfg.Progress.Driver {
	case util.ProgressDriverGorm:
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("init database: %w", err)
		}
		a.DB = db
		return repository.NewGormSubstrate(db), nil
	case util.ProgressDriverRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("init redis: %w", err)
		}
		a.Redis = rdb
		return repository.NewRedisSubstrate(rdb, cfg.Progress.RedisTTL), nil
	case util.ProgressDriverMemory:
		logger.Log.Warn("Progress is kept in memory and will be lost on restart")
		return repository.NewMemorySubstrate(), nil
	default:
		return nil, fmt.Errorf("unknown progress driver %q", cfg.Progress.Driver)
	}
}

func (a *App) initServices(cfg *config.Config, substrate repository.Substrate) (*services, error) {
	source, err := service.NewContentSource(&cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("init content source: %w", err)
	}

	s := &services{}
	s.progress = service.NewProgressService(repository.NewProgressStore(substrate, cfg.Progress.StorageKey))
	s.completion = service.NewCompletionService(s.progress)

	s.course = service.NewCourseService(source, s.progress)
	if cfg.Catalog.Source == util.CatalogLocal {
		s.course.ProbeDurations = cfg.Catalog.ProbeDurations
		s.course.MediaRoot = cfg.Catalog.LocalPath
	}

	s.quiz = service.NewQuizService(s.course, s.progress)
	s.playback = service.NewPlaybackService(s.progress, s.course, cfg.Playback.SessionIdleTimeout)
	s.ad = service.NewAdService(source, cfg.Ads)

	return s, nil
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		course:      controller.NewCourseController(s.course),
		progress:    controller.NewProgressController(s.progress, s.course),
		playback:    controller.NewPlaybackController(s.playback),
		quiz:        controller.NewQuizController(s.quiz),
		certificate: controller.NewCertificateController(s.completion),
		ad:          controller.NewAdController(s.ad),
		health:      controller.NewHealthController(a.healthChecks()),
	}
}

func (a *App) healthChecks() map[string]controller.HealthCheck {
	checks := map[string]controller.HealthCheck{}
	if a.DB != nil {
		checks["database"] = func(ctx context.Context) error {
			sqlDB, err := a.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	}
	if a.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return a.Redis.Ping(ctx).Err()
		}
	}
	return checks
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	a.rateLimiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	router.Use(a.rateLimiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) registerConfigCallbacks(s *services) {
	a.RegisterConfigCallback(func(cfg *config.Config) {
		s.ad.UpdateSettings(cfg.Ads)
	})
	a.RegisterConfigCallback(func(cfg *config.Config) {
		a.rateLimiter.Update(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	})
	a.RegisterConfigCallback(func(cfg *config.Config) {
		s.playback.SetIdleTimeout(cfg.Playback.SessionIdleTimeout)
	})
}

func (a *App) startBackgroundTasks(s *services) {
	s.playback.StartSweeper(sweepInterval)
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)

	app, err := build(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize application", zap.Error(err))
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("course-cert-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.startBackgroundTasks(app.services)

	return app
}

// build 组装存储、服务、控制器和路由，不启动后台任务
func build(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	substrate, err := app.initSubstrate(cfg)
	if err != nil {
		return nil, err
	}

	services, err := app.initServices(cfg, substrate)
	if err != nil {
		app.Close(context.Background())
		return nil, err
	}
	app.services = services
	controllers := app.initControllers(services)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)
	app.registerConfigCallbacks(services)

	return app, nil
}

func (a *App) watchConfig(stop <-chan struct{}) {
	if a.Config.ConfigFile == "" {
		logger.Log.Info("No config file in use, hot reload disabled")
		return
	}
	go func() {
		if err := configwatcher.WatchConfig(a.Config.ConfigFile, a.ApplyConfig, stop); err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	stopWatch := make(chan struct{})
	a.watchConfig(stopWatch)

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	close(stopWatch)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	a.Close(ctx)
	log.Println("Server exiting")
}

// Close 停止后台任务并释放外部连接
func (a *App) Close(ctx context.Context) {
	if a.services != nil {
		a.services.playback.Stop()
	}
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Warn("Failed to close redis", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
