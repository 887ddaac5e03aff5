package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"jobbridge_backend/internal/appErrors"
	"jobbridge_backend/internal/auth"
	"jobbridge_backend/internal/logger"
	"jobbridge_backend/internal/middleware"
	"jobbridge_backend/internal/models"
	"jobbridge_backend/internal/services"
	"jobbridge_backend/internal/services/dto"
	"jobbridge_backend/internal/storage"
	"jobbridge_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Лимит размера документа о регистрации бизнеса
const maxRegistrationFileSize = 10 << 20 // 10 MB

// ForgotPasswordMessage отдается в ответ на forgot-password всегда,
// независимо от существования email
const ForgotPasswordMessage = "If an account with that email exists, a reset link has been sent."

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	fileStorage storage.Storage
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, fileStorage storage.Storage) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		fileStorage: fileStorage,
	}
}

// RegisterRoutes регистрирует маршруты аутентификации.
// sensitiveLimiter навешивается на эндпоинты, пригодные для перебора.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup, tm *auth.TokenManager, sensitiveLimiter gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", sensitiveLimiter, h.Register)
		authGroup.POST("/register-employer", sensitiveLimiter, h.RegisterEmployer)
		authGroup.POST("/login", sensitiveLimiter, h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.POST("/forgot-password", sensitiveLimiter, h.ForgotPassword)
		authGroup.POST("/reset-password", sensitiveLimiter, h.ResetPassword)
	}

	me := r.Group("/auth")
	me.Use(middleware.AuthMiddleware(tm))
	{
		me.GET("/me", h.GetCurrentUser)
	}

	admin := r.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware(tm), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.PUT("/:userId/approve-employer", h.ApproveEmployer)
	}
}

// Register - публичная регистрация студента или специалиста
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tokens, err := h.authService.RegisterUser(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tokens)
}

// RegisterEmployer - регистрация работодателя (multipart/form-data).
// Документ сохраняется ДО создания пользователя; при ошибке создания
// осиротевший файл остается - его подчистит ручная модерация.
func (h *AuthHandler) RegisterEmployer(c *gin.Context) {
	var req dto.RegisterEmployerRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	fileHeader, err := c.FormFile("registrationFile")
	if err != nil {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Business registration document is required"))
		return
	}
	if fileHeader.Size > maxRegistrationFileSize {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Registration document exceeds the 10 MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, appErrors.InternalError(err))
		return
	}
	defer file.Close()

	storagePath := fmt.Sprintf("employer_docs/%s%s", uuid.NewString(), filepath.Ext(fileHeader.Filename))
	if err := h.fileStorage.Save(c.Request.Context(), storagePath, file); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to store registration document", err)
		h.HandleServiceError(c, appErrors.InternalError(err))
		return
	}

	req.RegistrationFileURL = h.fileStorage.GetURL(storagePath)
	req.RegistrationFileName = fileHeader.Filename

	resp, err := h.authService.RegisterEmployer(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login - вход по email и паролю
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tokens, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Refresh - обмен refresh-токена на новую пару
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tokens, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Logout - отзыв refresh-токена, всегда 200
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// ForgotPassword - запрос письма для сброса пароля.
// Ответ одинаковый и при существующем, и при неизвестном email.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ForgotPassword(req.Email); err != nil {
		// Внутренний сбой логируем, но наружу отдаем тот же ответ:
		// иначе по коду ответа можно проверить существование email
		logger.CtxWithError(c.Request.Context(), "forgot-password processing failed", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": ForgotPasswordMessage})
}

// ResetPassword - установка нового пароля по одноразовому токену
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully"})
}

// GetCurrentUser - профиль владельца access-токена
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.CurrentUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ApproveEmployer - одобрение профиля работодателя администратором
func (h *AuthHandler) ApproveEmployer(c *gin.Context) {
	req := dto.ApproveEmployerRequest{UserID: c.Param("userId")}
	if err := h.validator.Validate(&req); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			appErrors.HandleError(c, appErrors.ValidationError(vErr.Errors))
		} else {
			appErrors.HandleError(c, appErrors.InternalError(err))
		}
		return
	}

	if err := h.authService.ApproveEmployer(req.UserID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employer approved"})
}
