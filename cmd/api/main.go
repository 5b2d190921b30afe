package main

import (
	_ "hometheater_quote/docs"
	"hometheater_quote/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Home Theater Quote API
// @version         1.0
// @description     Quote wizard, service request storage and admin exports for home theater installations.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey AdminCookie
// @in cookie
// @name admin_token

func main() {
	routes.Run()
}
