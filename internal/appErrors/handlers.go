package appErrors

import (
	"jobbridge_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError - обработка ошибок для Gin контекста.
// Ошибки персистентного слоя и прочие неожиданные ошибки наружу не
// раскрываются - клиент получает обезличенный internal error.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "Server error", appErr, "path", c.Request.URL.Path)
		// Скрываем детали внутренних ошибок от клиента
		appErr = New(CodeInternalError, "Internal server error", appErr.HTTPCode)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}
