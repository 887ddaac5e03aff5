package models

type EmployerProfile struct {
	BaseModel
	UserID               string `gorm:"type:uuid;uniqueIndex;not null"`
	CompanyName          string `gorm:"not null"`
	RegistrationFileURL  string
	RegistrationFileName string
	VerificationStatus   VerificationStatus `gorm:"type:varchar(20);default:'PENDING'"`
}
