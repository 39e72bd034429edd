package main

import (
	"fmt"
	"log"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/madiaz/bizledger/app/repository"
	"github.com/madiaz/bizledger/internal/pkg/cache"
	"github.com/madiaz/bizledger/internal/pkg/database"
	"github.com/madiaz/bizledger/internal/pkg/env"
	"github.com/madiaz/bizledger/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	cache.SetupCache()

	// The storage driver is decided once here; everything downstream works
	// against the repository interfaces.
	driver := repository.DriverFromEnv()
	if driver == repository.DriverMySQL {
		database.SetupDatabase()
	} else {
		log.Println("using in-memory storage driver")
	}
	repository.InitializeFactory(database.GetDB(), driver)

	app := fiber.New(fiber.Config{
		AppName: "BizLedger",
	})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	return app
}
