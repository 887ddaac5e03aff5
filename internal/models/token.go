package models

import "time"

// RefreshToken - запись о выданном refresh-токене.
// В БД хранится только fingerprint (sha256) исходного токена, сам токен
// никогда не сохраняется. Записи не удаляются физически: отозванный или
// истекший токен остается как след для аудита.
type RefreshToken struct {
	BaseModel
	Fingerprint string    `gorm:"not null;uniqueIndex"`
	UserID      string    `gorm:"type:uuid;not null;index"`
	ExpiresAt   time.Time `gorm:"not null"`
	Revoked     bool      `gorm:"not null;default:false"`
}

// Active - токен еще не отозван и не истек
func (t *RefreshToken) Active(now time.Time) bool {
	return !t.Revoked && t.ExpiresAt.After(now)
}

// PasswordResetToken - одноразовый токен сброса пароля.
// Хранится также только fingerprint. Запись удаляется при успешном
// использовании, что и обеспечивает одноразовость.
type PasswordResetToken struct {
	BaseModel
	Fingerprint string    `gorm:"not null;uniqueIndex"`
	UserID      string    `gorm:"type:uuid;not null;index"`
	ExpiresAt   time.Time `gorm:"not null"`
}
