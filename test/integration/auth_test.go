package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobbridge_backend/internal/models"
	"jobbridge_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterAndLoginFlow - регистрация студента и вход под ним
func TestRegisterAndLoginFlow(t *testing.T) {
	ts := GetTestServer(t)

	registerBody := map[string]interface{}{
		"firstName":       "Aruzhan",
		"lastName":        "Seitova",
		"email":           "student-flow@test.com",
		"password":        "SuperPassword123",
		"confirmPassword": "SuperPassword123",
		"role":            "STUDENT",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "accessToken")
	assert.Contains(t, regBodyStr, "refreshToken")

	loginBody := map[string]interface{}{
		"email":    "student-flow@test.com",
		"password": "SuperPassword123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "accessToken")
}

// TestRegister_DuplicateEmail - повторная регистрация на тот же email
func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        "duplicate@test.com",
		PasswordHash: "SomePassword123",
		Role:         models.UserRoleStudent,
	})
	require.NoError(t, err)

	duplicateBody := map[string]interface{}{
		"email":           "duplicate@test.com",
		"password":        "AnotherPassword123",
		"confirmPassword": "AnotherPassword123",
		"role":            "PROFESSIONAL",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", duplicateBody)

	assert.Equal(t, http.StatusConflict, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Email already exists")
}

// TestLogin_BadPassword - неверный пароль и несуществующий email
// дают неотличимые ответы
func TestLogin_BadPassword(t *testing.T) {
	ts := GetTestServer(t)

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        "badpass@test.com",
		PasswordHash: "CorrectPassword1",
		Role:         models.UserRoleStudent,
	})
	require.NoError(t, err)

	wrongRes, wrongBody := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "badpass@test.com",
		"password": "WrongPassword123",
	})
	ghostRes, ghostBody := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "WrongPassword123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongRes.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, ghostRes.StatusCode)
	assert.Equal(t, wrongBody, ghostBody)
}

// TestEmployerApprovalGate - работодатель не входит до одобрения
func TestEmployerApprovalGate(t *testing.T) {
	ts := GetTestServer(t)

	user := &models.User{
		Email:        "pending-employer@test.com",
		PasswordHash: "EmployerPass123",
		Role:         models.UserRoleEmployer,
	}
	require.NoError(t, helpers.CreateUser(t, ts.DB, user))
	require.NoError(t, ts.DB.Create(&models.EmployerProfile{
		UserID:             user.ID,
		CompanyName:        "Pending LLC",
		VerificationStatus: models.VerificationStatusPending,
	}).Error)

	loginBody := map[string]interface{}{
		"email":    "pending-employer@test.com",
		"password": "EmployerPass123",
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "pending")

	// Одобряем от имени администратора
	helpers.CreateAdmin(t, ts.DB, "gate-admin@test.com", "AdminPassword12")
	adminRes, adminBody := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "gate-admin@test.com",
		"password": "AdminPassword12",
	})
	require.Equal(t, http.StatusOK, adminRes.StatusCode)
	adminToken := extractToken(t, adminBody, "accessToken")

	apprRes, _ := ts.SendRequest(t, "PUT", "/api/v1/admin/users/"+user.ID+"/approve-employer", adminToken, nil)
	assert.Equal(t, http.StatusOK, apprRes.StatusCode)

	res2, body2 := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res2.StatusCode)
	assert.Contains(t, body2, "accessToken")
}

// TestApproveEmployer_RequiresAdmin - студенту одобрение недоступно
func TestApproveEmployer_RequiresAdmin(t *testing.T) {
	ts := GetTestServer(t)

	registerBody := map[string]interface{}{
		"email":           "plain-student@test.com",
		"password":        "StudentPass1234",
		"confirmPassword": "StudentPass1234",
		"role":            "STUDENT",
	}
	regRes, regBody := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, regRes.StatusCode)
	studentToken := extractToken(t, regBody, "accessToken")

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/admin/users/00000000-0000-0000-0000-000000000000/approve-employer", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestRefreshRotation - refresh одноразовый: повтор дает 401
func TestRefreshRotation(t *testing.T) {
	ts := GetTestServer(t)

	regRes, regBody := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":           "rotation@test.com",
		"password":        "RotationPass123",
		"confirmPassword": "RotationPass123",
		"role":            "PROFESSIONAL",
	})
	require.Equal(t, http.StatusCreated, regRes.StatusCode)
	firstRefresh := extractToken(t, regBody, "refreshToken")

	res1, body1 := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]interface{}{
		"refreshToken": firstRefresh,
	})
	require.Equal(t, http.StatusOK, res1.StatusCode)
	secondRefresh := extractToken(t, body1, "refreshToken")
	assert.NotEqual(t, firstRefresh, secondRefresh)

	// Повторное предъявление ротированного токена
	res2, _ := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]interface{}{
		"refreshToken": firstRefresh,
	})
	assert.Equal(t, http.StatusUnauthorized, res2.StatusCode)

	// Преемник остается рабочим
	res3, _ := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]interface{}{
		"refreshToken": secondRefresh,
	})
	assert.Equal(t, http.StatusOK, res3.StatusCode)
}

// TestLogout_Idempotent - logout всегда отвечает 200
func TestLogout_Idempotent(t *testing.T) {
	ts := GetTestServer(t)

	regRes, regBody := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":           "logout@test.com",
		"password":        "LogoutPass12345",
		"confirmPassword": "LogoutPass12345",
		"role":            "STUDENT",
	})
	require.Equal(t, http.StatusCreated, regRes.StatusCode)
	refreshToken := extractToken(t, regBody, "refreshToken")

	logoutBody := map[string]interface{}{"refreshToken": refreshToken}

	res1, _ := ts.SendRequest(t, "POST", "/api/v1/auth/logout", "", logoutBody)
	assert.Equal(t, http.StatusOK, res1.StatusCode)

	res2, _ := ts.SendRequest(t, "POST", "/api/v1/auth/logout", "", logoutBody)
	assert.Equal(t, http.StatusOK, res2.StatusCode)

	// Отозванный токен больше не обменивается
	res3, _ := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]interface{}{
		"refreshToken": refreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res3.StatusCode)
}

// TestForgotPassword_UniformResponse - ответ не раскрывает
// существование email
func TestForgotPassword_UniformResponse(t *testing.T) {
	ts := GetTestServer(t)

	require.NoError(t, helpers.CreateUser(t, ts.DB, &models.User{
		Email:        "forgot@test.com",
		PasswordHash: "ForgotPass12345",
		Role:         models.UserRoleStudent,
	}))

	knownRes, knownBody := ts.SendRequest(t, "POST", "/api/v1/auth/forgot-password", "", map[string]interface{}{
		"email": "forgot@test.com",
	})
	ghostRes, ghostBody := ts.SendRequest(t, "POST", "/api/v1/auth/forgot-password", "", map[string]interface{}{
		"email": "ghost@test.com",
	})

	assert.Equal(t, http.StatusOK, knownRes.StatusCode)
	assert.Equal(t, http.StatusOK, ghostRes.StatusCode)
	assert.Equal(t, knownBody, ghostBody)
}

// TestGetCurrentUser - /auth/me отдает профиль владельца токена
func TestGetCurrentUser(t *testing.T) {
	ts := GetTestServer(t)

	regRes, regBody := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"firstName":       "Miras",
		"email":           "me@test.com",
		"password":        "CurrentUser1234",
		"confirmPassword": "CurrentUser1234",
		"role":            "STUDENT",
	})
	require.Equal(t, http.StatusCreated, regRes.StatusCode)
	accessToken := extractToken(t, regBody, "accessToken")

	meRes, meBody := ts.SendRequest(t, "GET", "/api/v1/auth/me", accessToken, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)
	assert.Contains(t, meBody, "me@test.com")
	assert.Contains(t, meBody, "STUDENT")

	noAuthRes, _ := ts.SendRequest(t, "GET", "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, noAuthRes.StatusCode)
}

// extractToken достает поле из JSON-ответа
func extractToken(t *testing.T, body, field string) string {
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	value, ok := parsed[field].(string)
	require.True(t, ok, "в ответе нет поля %s: %s", field, body)
	return value
}
