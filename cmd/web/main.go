// @title           JobBridge Auth API
// @version         1.0
// @description     Сервис учетных записей и токенов платформы JobBridge.
// @host            localhost:8000
// @BasePath        /api/v1

package main

import "jobbridge_backend/internal/app"

func main() {
	app.Run()
}
