package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/yourusername/trivia-quiz-api/internal/config"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	"github.com/yourusername/trivia-quiz-api/internal/handler"
	"github.com/yourusername/trivia-quiz-api/internal/middleware"
	memRepo "github.com/yourusername/trivia-quiz-api/internal/repository/memory"
	pgRepo "github.com/yourusername/trivia-quiz-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/trivia-quiz-api/internal/repository/redis"
	"github.com/yourusername/trivia-quiz-api/internal/service"
	"github.com/yourusername/trivia-quiz-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	isProduction := gin.Mode() == gin.ReleaseMode

	// Инициализируем репозитории
	var (
		questionRepo repository.QuestionRepository
		categoryRepo repository.CategoryRepository
	)
	switch cfg.Database.Driver {
	case config.DriverMemory:
		seed, err := memRepo.LoadQuestionsFile(cfg.Database.SeedFile)
		if err != nil {
			log.Printf("Failed to load seed questions: %v", err)
			os.Exit(1)
		}
		log.Printf("Используется хранилище в памяти (%d вопросов)", len(seed))
		questionRepo = memRepo.NewQuestionRepo(seed)
		categoryRepo = memRepo.NewCategoryRepo(memRepo.DefaultCategories())
	default:
		// Инициализируем подключение к PostgreSQL
		db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), !isProduction)
		if err != nil {
			log.Printf("Failed to connect to database: %v", err)
			os.Exit(1)
		}
		// Применяем миграции
		if err := database.MigrateDB(db, cfg.Database.MigrationsPath); err != nil {
			log.Printf("Failed to migrate database: %v", err)
			os.Exit(1)
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		questionRepo = pgRepo.NewQuestionRepo(db)
		categoryRepo = pgRepo.NewCategoryRepo(db)
	}

	// Redis необязателен: без него нет кеша категорий и rate limiting
	var (
		redisClient redis.UniversalClient
		cacheRepo   repository.CacheRepository
		rateLimiter *middleware.RateLimiter
	)
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewUniversalRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		log.Println("Successfully connected to Redis")

		repo, err := redisRepo.NewCacheRepo(redisClient, cfg.Redis.KeyPrefix)
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v", err)
			os.Exit(1)
		}
		cacheRepo = repo

		if cfg.RateLimit.Enabled {
			rateLimiter = middleware.NewRateLimiter(redisClient)
		}
	} else {
		log.Println("Redis не настроен: кеш категорий и rate limiting отключены")
	}

	// Инициализируем сервисы
	categoryService := service.NewCategoryService(categoryRepo, cacheRepo, cfg.Cache.CategoriesTTL)
	questionService := service.NewQuestionService(questionRepo, categoryService, cfg.Quiz.Logic())
	exportService := service.NewExportService(questionRepo, categoryService)

	// Инициализируем обработчики
	questionHandler := handler.NewQuestionHandler(questionService, exportService)
	categoryHandler := handler.NewCategoryHandler(categoryService, questionService)

	// В production не доверяем прокси-заголовкам, в development доверяем localhost
	var trustedProxies []string
	if !isProduction {
		trustedProxies = []string{"127.0.0.1", "::1"}
	}

	rateLimitConfig := middleware.DefaultWriteRateLimitConfig()
	rateLimitConfig.MaxRequests = cfg.RateLimit.MaxRequests
	rateLimitConfig.Window = cfg.RateLimit.Window

	router := handler.NewRouter(handler.RouterDeps{
		QuestionHandler: questionHandler,
		CategoryHandler: categoryHandler,
		RateLimiter:     rateLimiter,
		RateLimitConfig: rateLimitConfig,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		TrustedProxies:  trustedProxies,
	})

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s (quiz selection: %s)", cfg.Server.Port, cfg.Quiz.Selection)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		return
	}

	log.Println("Server exited properly")
}
