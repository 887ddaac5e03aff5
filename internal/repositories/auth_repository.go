package repositories

import (
	"errors"
	"time"

	"jobbridge_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrRefreshTokenNotFound возвращается, когда активный refresh-токен
	// не найден: записи нет, токен уже отозван или условное обновление
	// не затронуло ни одной строки.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrResetTokenNotFound   = errors.New("password reset token not found")
	ErrProfileNotFound      = errors.New("employer profile not found")
)

// AuthRepository определяет интерфейс хранилища учетных данных:
// пользователи, профили работодателей, refresh-токены и токены сброса
// пароля. Составные операции (регистрация работодателя, ротация,
// применение сброса пароля) атомарны на уровне БД.
type AuthRepository interface {
	// User operations
	FindUserByEmail(email string) (*models.User, error)
	FindUserByID(id string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUserPassword(userID, passwordHash string) error

	// Employer operations
	CreateEmployer(user *models.User, profile *models.EmployerProfile) error
	ApproveEmployer(userID string) error

	// RefreshToken operations
	CreateRefreshToken(token *models.RefreshToken) error
	FindRefreshToken(fingerprint string) (*models.RefreshToken, error)
	RevokeRefreshToken(fingerprint string) error
	RotateRefreshToken(oldFingerprint string, newToken *models.RefreshToken) error
	RevokeUserRefreshTokens(userID string) error

	// PasswordResetToken operations
	CreatePasswordResetToken(token *models.PasswordResetToken) error
	FindPasswordResetToken(fingerprint string) (*models.PasswordResetToken, error)
	ConsumePasswordReset(userID, passwordHash, fingerprint string) error

	// Maintenance
	DeleteExpiredResetTokens() (int64, error)
}

type AuthRepositoryImpl struct {
	db *gorm.DB
}

// NewAuthRepository создает новый экземпляр AuthRepository
func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &AuthRepositoryImpl{db: db}
}

// --- User operations ---

// FindUserByEmail находит пользователя по email вместе с профилем работодателя
func (r *AuthRepositoryImpl) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("EmployerProfile").
		First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByID находит пользователя по ID вместе с профилем работодателя
func (r *AuthRepositoryImpl) FindUserByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("EmployerProfile").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser создает пользователя; дубликат email - ErrUserAlreadyExists
func (r *AuthRepositoryImpl) CreateUser(user *models.User) error {
	return createUser(r.db, user)
}

func createUser(db *gorm.DB, user *models.User) error {
	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return db.Create(user).Error
}

// UpdateUserPassword обновляет хеш пароля пользователя
func (r *AuthRepositoryImpl) UpdateUserPassword(userID, passwordHash string) error {
	return updateUserPassword(r.db, userID, passwordHash)
}

func updateUserPassword(db *gorm.DB, userID, passwordHash string) error {
	result := db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// --- Employer operations ---

// CreateEmployer создает пользователя-работодателя и его профиль в одной
// транзакции: либо появляются обе записи, либо ни одной.
func (r *AuthRepositoryImpl) CreateEmployer(user *models.User, profile *models.EmployerProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := createUser(tx, user); err != nil {
			return err
		}
		profile.UserID = user.ID
		if profile.ID == "" {
			profile.ID = uuid.NewString()
		}
		return tx.Create(profile).Error
	})
}

// ApproveEmployer переводит профиль в APPROVED. Операция идемпотентна:
// повторное одобрение уже одобренного профиля не является ошибкой.
func (r *AuthRepositoryImpl) ApproveEmployer(userID string) error {
	result := r.db.Model(&models.EmployerProfile{}).
		Where("user_id = ?", userID).
		Update("verification_status", models.VerificationStatusApproved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// --- RefreshToken operations ---

// CreateRefreshToken создает новую запись о refresh-токене
func (r *AuthRepositoryImpl) CreateRefreshToken(token *models.RefreshToken) error {
	return createRefreshToken(r.db, token)
}

func createRefreshToken(db *gorm.DB, token *models.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	return db.Create(token).Error
}

// FindRefreshToken находит refresh-токен по отпечатку
func (r *AuthRepositoryImpl) FindRefreshToken(fingerprint string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	if err := r.db.Where("fingerprint = ?", fingerprint).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

// RevokeRefreshToken отзывает токен условным обновлением:
// UPDATE ... WHERE fingerprint = ? AND revoked = false.
// Из двух конкурентных вызовов на один токен успешным будет ровно один -
// второй получит ErrRefreshTokenNotFound. Записи не удаляются.
func (r *AuthRepositoryImpl) RevokeRefreshToken(fingerprint string) error {
	return revokeRefreshToken(r.db, fingerprint)
}

func revokeRefreshToken(db *gorm.DB, fingerprint string) error {
	result := db.Model(&models.RefreshToken{}).
		Where("fingerprint = ? AND revoked = ?", fingerprint, false).
		Update("revoked", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRefreshTokenNotFound
	}
	return nil
}

// RotateRefreshToken атомарно отзывает предъявленный токен и сохраняет
// новый. Условное обновление внутри транзакции гарантирует, что два
// конкурентных refresh с одним и тем же токеном не пройдут оба.
func (r *AuthRepositoryImpl) RotateRefreshToken(oldFingerprint string, newToken *models.RefreshToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := revokeRefreshToken(tx, oldFingerprint); err != nil {
			return err
		}
		return createRefreshToken(tx, newToken)
	})
}

// RevokeUserRefreshTokens отзывает все активные токены пользователя
func (r *AuthRepositoryImpl) RevokeUserRefreshTokens(userID string) error {
	return revokeUserRefreshTokens(r.db, userID)
}

func revokeUserRefreshTokens(db *gorm.DB, userID string) error {
	return db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true).Error
}

// --- PasswordResetToken operations ---

// CreatePasswordResetToken создает запись о токене сброса пароля
func (r *AuthRepositoryImpl) CreatePasswordResetToken(token *models.PasswordResetToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	return r.db.Create(token).Error
}

// FindPasswordResetToken находит токен сброса по отпечатку
func (r *AuthRepositoryImpl) FindPasswordResetToken(fingerprint string) (*models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	if err := r.db.Where("fingerprint = ?", fingerprint).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

// ConsumePasswordReset применяет сброс пароля одной транзакцией:
// обновляет хеш пароля, удаляет токен сброса (одноразовость) и отзывает
// все активные refresh-токены пользователя. Удаление токена условное -
// если его уже успел удалить конкурентный вызов, вся транзакция
// откатывается.
func (r *AuthRepositoryImpl) ConsumePasswordReset(userID, passwordHash, fingerprint string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := updateUserPassword(tx, userID, passwordHash); err != nil {
			return err
		}

		result := tx.Where("fingerprint = ?", fingerprint).
			Delete(&models.PasswordResetToken{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrResetTokenNotFound
		}

		return revokeUserRefreshTokens(tx, userID)
	})
}

// --- Maintenance ---

// DeleteExpiredResetTokens удаляет истекшие токены сброса пароля.
// Refresh-токены не удаляются никогда (след для аудита) - проверка
// срока действия выполняется при каждом обращении.
func (r *AuthRepositoryImpl) DeleteExpiredResetTokens() (int64, error) {
	result := r.db.Where("expires_at < ?", time.Now()).
		Delete(&models.PasswordResetToken{})
	return result.RowsAffected, result.Error
}
