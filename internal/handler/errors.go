package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/middleware"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/response"
)

// handleError отображает ошибки сервисов в HTTP-статусы конверта ошибки
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		response.Error(c, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrValidation):
		response.Error(c, http.StatusUnprocessableEntity)
	default:
		log.Printf("ERROR: Internal server error [request_id=%s] %s %s: %v",
			middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
		response.Error(c, http.StatusInternalServerError)
	}
}
