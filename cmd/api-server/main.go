package main

import "marketplace/internal/app"

// Старт: конфиг из окружения, пересоздание схемы и сид-данные (DB_RESET=true),
// затем HTTP-сервер. Останавливается по SIGINT/SIGTERM.
func main() {
	app.New().Run()
}
