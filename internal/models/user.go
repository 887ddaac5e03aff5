package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
	FirstName    string
	LastName     string

	// Relations
	EmployerProfile *EmployerProfile `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshToken   `gorm:"foreignKey:UserID"`
}

// IsApprovedEmployer сообщает, прошел ли работодатель проверку администратором.
// Для остальных ролей всегда false.
func (u *User) IsApprovedEmployer() bool {
	return u.Role == UserRoleEmployer &&
		u.EmployerProfile != nil &&
		u.EmployerProfile.VerificationStatus == VerificationStatusApproved
}
