package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Тексты сообщений конверта ошибки, известные фронтенду
var messages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Resource Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Unprocessable",
	http.StatusTooManyRequests:     "Too Many Requests",
	http.StatusInternalServerError: "Internal Server Error",
}

// ErrorBody — конверт ошибки {success: false, error: <код>, message: <текст>}
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// NewErrorBody строит конверт ошибки для HTTP-статуса
func NewErrorBody(status int) ErrorBody {
	msg, ok := messages[status]
	if !ok {
		msg = http.StatusText(status)
	}
	return ErrorBody{Success: false, Error: status, Message: msg}
}

// Error отправляет конверт ошибки и прерывает цепочку обработчиков
func Error(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, NewErrorBody(status))
}

// OK отправляет успешный ответ: к полям payload добавляется success: true
func OK(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
