package integration_test

import (
	"os"
	"sync"
	"testing"

	"jobbridge_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer возвращает тестовый сервер (создает при первом вызове).
// Интеграционные тесты требуют живой Postgres: без TEST_DATABASE_URL
// они пропускаются.
func GetTestServer(t *testing.T) *helpers.TestServer {
	testDSN := os.Getenv("TEST_DATABASE_URL")
	if testDSN == "" {
		t.Skip("TEST_DATABASE_URL не задан, интеграционные тесты пропущены")
	}

	serverOnce.Do(func() {
		os.Setenv("DATABASE_URL", testDSN)
		os.Setenv("SERVER_ENV", "test")
		os.Setenv("JWT_SECRET", "access_secret_for_tests_only_1234")
		os.Setenv("JWT_REFRESH_SECRET", "refresh_secret_for_tests_only_56")

		globalTestServer = helpers.NewTestServer(t)
		globalTestServer.ClearTables(t)
	})

	return globalTestServer
}
