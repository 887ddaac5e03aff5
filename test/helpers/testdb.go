package helpers

import (
	"strings"
	"testing"

	"jobbridge_backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя с автоматическим хешированием пароля
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}

	return nil
}

// CreateApprovedEmployer создает работодателя с одобренным профилем
func CreateApprovedEmployer(t *testing.T, db *gorm.DB, email, password string) *models.User {
	user := &models.User{
		Email:        email,
		PasswordHash: password,
		Role:         models.UserRoleEmployer,
	}
	if err := CreateUser(t, db, user); err != nil {
		t.Fatalf("Не удалось создать работодателя: %v", err)
	}

	profile := &models.EmployerProfile{
		UserID:             user.ID,
		CompanyName:        "Test Company",
		VerificationStatus: models.VerificationStatusApproved,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("Не удалось создать профиль работодателя: %v", err)
	}

	return user
}

// CreateAdmin создает администратора
func CreateAdmin(t *testing.T, db *gorm.DB, email, password string) *models.User {
	user := &models.User{
		Email:        email,
		PasswordHash: password,
		Role:         models.UserRoleAdmin,
	}
	if err := CreateUser(t, db, user); err != nil {
		t.Fatalf("Не удалось создать администратора: %v", err)
	}
	return user
}
