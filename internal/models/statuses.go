package models

// UserRole - роль пользователя на платформе
type UserRole string

const (
	UserRoleStudent      UserRole = "STUDENT"
	UserRoleProfessional UserRole = "PROFESSIONAL"
	UserRoleEmployer     UserRole = "EMPLOYER"
	UserRoleAdmin        UserRole = "ADMIN"
)

// VerificationStatus - статус проверки работодателя администратором.
// Переход только в одну сторону: PENDING -> APPROVED.
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "PENDING"
	VerificationStatusApproved VerificationStatus = "APPROVED"
)

// RegistrationRoles - роли, разрешенные при публичной регистрации
var RegistrationRoles = []UserRole{UserRoleStudent, UserRoleProfessional}
