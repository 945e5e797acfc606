package main

import (
	_ "cardapio_digital/docs"
	"cardapio_digital/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Cardápio Digital API
// @version         1.0
// @description     Storefront, cart and admin catalog for a single-restaurant digital menu.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @securityDefinitions.apikey AdminSecret
// @in header
// @name X-Admin-API-Secret

func main() {
	routes.Run()
}
