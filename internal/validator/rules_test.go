package validator

import (
	"testing"

	"jobbridge_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordInput struct {
	Password string `json:"password" validate:"strongpassword"`
}

type roleInput struct {
	Role string `json:"role" validate:"userrole"`
}

func TestStrongPassword(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"заглавная и цифра", "Password1", true},
		{"без заглавной", "password1", false},
		{"без цифры", "PasswordOnly", false},
		{"кириллица считается заглавной", "Пароль123", true},
		{"пустое значение пропускается", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&passwordInput{Password: tt.password})
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				vErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, vErr.Errors, "password")
			}
		})
	}
}

func TestRegistrationRole(t *testing.T) {
	v := New()

	valid := []string{"STUDENT", "PROFESSIONAL", ""}
	for _, role := range valid {
		assert.NoError(t, v.Validate(&roleInput{Role: role}), "role: %q", role)
	}

	// EMPLOYER и ADMIN через публичную регистрацию не создаются
	invalid := []string{"EMPLOYER", "ADMIN", "student", "MODEL"}
	for _, role := range invalid {
		assert.Error(t, v.Validate(&roleInput{Role: role}), "role: %q", role)
	}
}

// Проверка полного DTO регистрации: required, email, min, eqfield
// и кастомные правила вместе
func TestRegisterRequestValidation(t *testing.T) {
	v := New()

	valid := dto.RegisterUserRequest{
		Email:           "user@test.com",
		Password:        "SuperPassword1",
		ConfirmPassword: "SuperPassword1",
		Role:            "STUDENT",
	}

	tests := []struct {
		name     string
		mutate   func(r *dto.RegisterUserRequest)
		badField string
	}{
		{"пустой email", func(r *dto.RegisterUserRequest) { r.Email = "" }, "email"},
		{"некорректный email", func(r *dto.RegisterUserRequest) { r.Email = "not-an-email" }, "email"},
		{"короткий пароль", func(r *dto.RegisterUserRequest) { r.Password = "Sh1"; r.ConfirmPassword = "Sh1" }, "password"},
		{"слабый пароль", func(r *dto.RegisterUserRequest) { r.Password = "weakpassword"; r.ConfirmPassword = "weakpassword" }, "password"},
		{"пароли не совпадают", func(r *dto.RegisterUserRequest) { r.ConfirmPassword = "DifferentPass1" }, "confirmPassword"},
		{"роль вне списка", func(r *dto.RegisterUserRequest) { r.Role = "EMPLOYER" }, "role"},
	}

	require.NoError(t, v.Validate(&valid))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := v.Validate(&req)
			require.Error(t, err)
			vErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Contains(t, vErr.Errors, tt.badField)
		})
	}
}
