package dto

// RegisterUserRequest - запрос публичной регистрации студента или специалиста
type RegisterUserRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,userrole"`
}

// RegisterEmployerRequest - запрос регистрации работодателя.
// Поля Registration* заполняет транспортный слой после сохранения
// загруженного документа - от клиента они не принимаются.
type RegisterEmployerRequest struct {
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required,min=8,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=Password"`
	CompanyName     string `json:"companyName" form:"companyName" validate:"required"`

	RegistrationFileURL  string `json:"-" form:"-"`
	RegistrationFileName string `json:"-" form:"-"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest - запрос обновления пары токенов
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutRequest - запрос выхода
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ForgotPasswordRequest - запрос ссылки для сброса пароля
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest - сброс пароля по токену из письма
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,strongpassword"`
}

// ApproveEmployerRequest - одобрение работодателя администратором
type ApproveEmployerRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

// CurrentUserResponse - профиль текущего пользователя
type CurrentUserResponse struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	Role      string        `json:"role"`
	FirstName string        `json:"firstName,omitempty"`
	LastName  string        `json:"lastName,omitempty"`
	Employer  *EmployerInfo `json:"employer,omitempty"`
}

// EmployerInfo - вложенный блок профиля работодателя
type EmployerInfo struct {
	CompanyName        string `json:"companyName"`
	VerificationStatus string `json:"verificationStatus"`
}

// TokenPairResponse - ответ с парой токенов
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// EmployerPendingResponse - ответ на регистрацию работодателя:
// токены не выдаются, вход закрыт до одобрения администратором
type EmployerPendingResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}
