package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/middleware"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/response"
)

// RouterDeps — зависимости HTTP-слоя
type RouterDeps struct {
	QuestionHandler *QuestionHandler
	CategoryHandler *CategoryHandler
	// RateLimiter может быть nil: тогда лимиты не применяются
	RateLimiter     *middleware.RateLimiter
	RateLimitConfig middleware.RateLimitConfig
	AllowedOrigins  []string
	TrustedProxies  []string
}

// NewRouter собирает gin.Engine со всеми маршрутами API
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	if err := router.SetTrustedProxies(deps.TrustedProxies); err != nil {
		log.Printf("Warning: failed to set trusted proxies: %v", err)
	}

	// Настройка CORS
	if len(deps.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  deps.AllowedOrigins,
			AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	router.NoRoute(func(c *gin.Context) { response.Error(c, http.StatusNotFound) })
	router.NoMethod(func(c *gin.Context) { response.Error(c, http.StatusMethodNotAllowed) })

	// Лимит применяется только к POST-запросам
	limit := func(c *gin.Context) { c.Next() }
	if deps.RateLimiter != nil {
		limit = deps.RateLimiter.Limit(deps.RateLimitConfig)
	}

	router.GET("/healthz", func(c *gin.Context) {
		response.OK(c, gin.H{})
	})

	// Категории
	router.GET("/categories", deps.CategoryHandler.ListCategories)
	categoryWithID := router.Group("/categories/:id")
	categoryWithID.Use(middleware.ExtractUintParam("id", "categoryID"))
	{
		categoryWithID.GET("/questions", deps.CategoryHandler.ListCategoryQuestions)
	}

	// Вопросы
	questions := router.Group("/questions")
	{
		questions.GET("", deps.QuestionHandler.ListQuestions)
		questions.POST("", limit, deps.QuestionHandler.CreateQuestion)
		questions.GET("/export", deps.QuestionHandler.ExportQuestions)
		questions.DELETE("/:id", middleware.ExtractUintParam("id", "questionID"), deps.QuestionHandler.DeleteQuestion)
	}

	router.POST("/search", limit, deps.QuestionHandler.SearchQuestions)
	router.POST("/quizzes", limit, deps.QuestionHandler.NextQuizQuestion)

	return router
}
