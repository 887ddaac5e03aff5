package services

import (
	"strings"
	"time"

	"jobbridge_backend/internal/appErrors"
	"jobbridge_backend/internal/auth"
	"jobbridge_backend/internal/email"
	"jobbridge_backend/internal/logger"
	"jobbridge_backend/internal/models"
	"jobbridge_backend/internal/repositories"
	"jobbridge_backend/internal/services/dto"
)

// Срок жизни токена сброса пароля: минуты, не дни
const resetTokenTTL = 15 * time.Minute

// EmployerPendingMessage возвращается при регистрации работодателя
// и повторяется в ответе хендлера
const EmployerPendingMessage = "Registration successful. Await admin approval."

type AuthService interface {
	RegisterUser(req *dto.RegisterUserRequest) (*dto.TokenPairResponse, error)
	RegisterEmployer(req *dto.RegisterEmployerRequest) (*dto.EmployerPendingResponse, error)
	Login(req *dto.LoginRequest) (*dto.TokenPairResponse, error)
	Refresh(rawRefreshToken string) (*dto.TokenPairResponse, error)
	Logout(rawRefreshToken string) error
	ForgotPassword(emailAddr string) error
	ResetPassword(rawResetToken, newPassword string) error
	ApproveEmployer(userID string) error
	CurrentUser(userID string) (*dto.CurrentUserResponse, error)
}

type AuthServiceImpl struct {
	repo          repositories.AuthRepository
	tokens        *auth.TokenManager
	emailProvider email.Provider
}

func NewAuthService(
	repo repositories.AuthRepository,
	tokens *auth.TokenManager,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		repo:          repo,
		tokens:        tokens,
		emailProvider: emailProvider,
	}
}

// RegisterUser - регистрация студента или специалиста.
// Роль ограничена белым списком: EMPLOYER и ADMIN так не создаются.
func (s *AuthServiceImpl) RegisterUser(req *dto.RegisterUserRequest) (*dto.TokenPairResponse, error) {
	role := models.UserRole(strings.ToUpper(req.Role))
	if role != models.UserRoleStudent && role != models.UserRoleProfessional {
		return nil, appErrors.ErrInvalidUserRole
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		Email:        normalizeEmail(req.Email),
		PasswordHash: hashed,
		Role:         role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	if err := s.repo.CreateUser(user); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	return s.issueTokenPair(user.ID, user.Role)
}

// RegisterEmployer - регистрация работодателя.
// Пользователь и профиль создаются атомарно, токены НЕ выдаются:
// вход закрыт до одобрения администратором.
func (s *AuthServiceImpl) RegisterEmployer(req *dto.RegisterEmployerRequest) (*dto.EmployerPendingResponse, error) {
	if req.RegistrationFileURL == "" {
		return nil, appErrors.NewBadRequestError("Business registration document is required")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		Email:        normalizeEmail(req.Email),
		PasswordHash: hashed,
		Role:         models.UserRoleEmployer,
	}
	profile := &models.EmployerProfile{
		CompanyName:          req.CompanyName,
		RegistrationFileURL:  req.RegistrationFileURL,
		RegistrationFileName: req.RegistrationFileName,
		VerificationStatus:   models.VerificationStatusPending,
	}

	if err := s.repo.CreateEmployer(user, profile); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	return &dto.EmployerPendingResponse{
		Message: EmployerPendingMessage,
		UserID:  user.ID,
	}, nil
}

// Login - аутентификация пользователя.
// Ответ для несуществующего email и неверного пароля одинаковый.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	user, err := s.repo.FindUserByEmail(normalizeEmail(req.Email))
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	// Работодатель с корректным паролем, но без одобрения, получает
	// отдельное сообщение - ожидание проверки скрывать незачем.
	if user.Role == models.UserRoleEmployer && !user.IsApprovedEmployer() {
		return nil, appErrors.ErrAccountPending
	}

	// Каждый вход создает новую запись RefreshToken:
	// параллельные сессии разрешены.
	return s.issueTokenPair(user.ID, user.Role)
}

// Refresh - ротация refresh-токена.
// Предъявленный токен отзывается, взамен выдается новая пара.
// Личность берется из подписанного payload, а не из БД.
func (s *AuthServiceImpl) Refresh(rawRefreshToken string) (*dto.TokenPairResponse, error) {
	fingerprint := auth.Fingerprint(rawRefreshToken)

	stored, err := s.repo.FindRefreshToken(fingerprint)
	if err != nil {
		if appErrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, appErrors.ErrInvalidToken
		}
		return nil, appErrors.InternalError(err)
	}

	now := time.Now()
	if stored.Revoked {
		// Повторное использование ротированного токена: либо баг
		// клиента, либо кража токена. Сигнал для мониторинга.
		logger.Warn("refresh token reuse detected", "user_id", stored.UserID)
		return nil, appErrors.ErrInvalidToken
	}
	if !stored.ExpiresAt.After(now) {
		return nil, appErrors.ErrInvalidToken
	}

	claims, err := s.tokens.ParseRefreshToken(rawRefreshToken)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	newRefresh, err := s.tokens.GenerateRefreshToken(claims.UserID, claims.Role)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	newRecord := &models.RefreshToken{
		Fingerprint: auth.Fingerprint(newRefresh),
		UserID:      claims.UserID,
		ExpiresAt:   now.Add(s.tokens.RefreshTTL()),
	}
	if err := s.repo.RotateRefreshToken(fingerprint, newRecord); err != nil {
		if appErrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			// Конкурентный refresh успел отозвать токен первым
			logger.Warn("refresh token reuse detected", "user_id", stored.UserID)
			return nil, appErrors.ErrInvalidToken
		}
		return nil, appErrors.InternalError(err)
	}

	accessToken, err := s.tokens.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
	}, nil
}

// Logout - отзыв refresh-токена.
// Идемпотентен: неизвестный или уже отозванный токен - тоже успех,
// чтобы по ответу нельзя было проверить существование токена.
func (s *AuthServiceImpl) Logout(rawRefreshToken string) error {
	fingerprint := auth.Fingerprint(rawRefreshToken)

	if err := s.repo.RevokeRefreshToken(fingerprint); err != nil {
		if appErrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			logger.Debug("logout for unknown or already revoked token")
			return nil
		}
		return appErrors.InternalError(err)
	}
	return nil
}

// ForgotPassword - запрос сброса пароля.
// Хендлер отвечает одинаково вне зависимости от исхода; сырой токен
// уходит только в письмо, в БД хранится отпечаток с TTL 15 минут.
func (s *AuthServiceImpl) ForgotPassword(emailAddr string) error {
	user, err := s.repo.FindUserByEmail(normalizeEmail(emailAddr))
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			// Существование email не раскрываем
			return nil
		}
		return appErrors.InternalError(err)
	}

	rawToken, err := auth.GenerateResetToken()
	if err != nil {
		return appErrors.InternalError(err)
	}

	resetToken := &models.PasswordResetToken{
		Fingerprint: auth.Fingerprint(rawToken),
		UserID:      user.ID,
		ExpiresAt:   time.Now().Add(resetTokenTTL),
	}
	if err := s.repo.CreatePasswordResetToken(resetToken); err != nil {
		return appErrors.InternalError(err)
	}

	s.sendPasswordResetEmail(user.Email, rawToken)

	return nil
}

// ResetPassword - сброс пароля по токену.
// Успех: новый хеш сохранен, токен удален (одноразовость), все
// refresh-токены пользователя отозваны - украденные сессии гаснут.
func (s *AuthServiceImpl) ResetPassword(rawResetToken, newPassword string) error {
	fingerprint := auth.Fingerprint(rawResetToken)

	stored, err := s.repo.FindPasswordResetToken(fingerprint)
	if err != nil {
		if appErrors.Is(err, repositories.ErrResetTokenNotFound) {
			return appErrors.ErrInvalidResetToken
		}
		return appErrors.InternalError(err)
	}

	if !stored.ExpiresAt.After(time.Now()) {
		return appErrors.ErrInvalidResetToken
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return appErrors.InternalError(err)
	}

	if err := s.repo.ConsumePasswordReset(stored.UserID, hashed, fingerprint); err != nil {
		if appErrors.Is(err, repositories.ErrResetTokenNotFound) {
			return appErrors.ErrInvalidResetToken
		}
		return appErrors.InternalError(err)
	}

	return nil
}

// ApproveEmployer - одобрение работодателя администратором.
// Идемпотентно; отклонения или повторной проверки нет.
func (s *AuthServiceImpl) ApproveEmployer(userID string) error {
	if err := s.repo.ApproveEmployer(userID); err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

// CurrentUser - профиль пользователя по ID из access-токена
func (s *AuthServiceImpl) CurrentUser(userID string) (*dto.CurrentUserResponse, error) {
	user, err := s.repo.FindUserByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	resp := &dto.CurrentUserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if user.EmployerProfile != nil {
		resp.Employer = &dto.EmployerInfo{
			CompanyName:        user.EmployerProfile.CompanyName,
			VerificationStatus: string(user.EmployerProfile.VerificationStatus),
		}
	}
	return resp, nil
}

// --- Helper functions ---

// issueTokenPair выдает access + refresh и сохраняет отпечаток refresh-токена
func (s *AuthServiceImpl) issueTokenPair(userID string, role models.UserRole) (*dto.TokenPairResponse, error) {
	accessToken, err := s.tokens.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	record := &models.RefreshToken{
		Fingerprint: auth.Fingerprint(refreshToken),
		UserID:      userID,
		ExpiresAt:   time.Now().Add(s.tokens.RefreshTTL()),
	}
	if err := s.repo.CreateRefreshToken(record); err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// sendPasswordResetEmail отправляет письмо со ссылкой для сброса пароля
func (s *AuthServiceImpl) sendPasswordResetEmail(to, rawToken string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		if err := s.emailProvider.SendPasswordReset(to, rawToken); err != nil {
			logger.Error("failed to send password reset email", "error", err)
		}
	}()
}

// normalizeEmail приводит email к каноническому виду.
// Уникальность email регистронезависимая.
func normalizeEmail(emailAddr string) string {
	return strings.ToLower(strings.TrimSpace(emailAddr))
}
