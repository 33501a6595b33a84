package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"campushub_backend/internals/configs"
	database "campushub_backend/internals/databases"
	paymentService "campushub_backend/internals/features/finance/payments/service"
	authScheduler "campushub_backend/internals/features/users/auth/scheduler"
	"campushub_backend/internals/helpers/events"
	"campushub_backend/internals/middlewares"
	routes "campushub_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.Migrate()
	database.WarmUpQueries()

	paymentService.InitMidtrans(configs.MidtransServerKey)
	events.Init()
	authScheduler.StartBlacklistCleanupScheduler(database.DB)

	app := fiber.New(fiber.Config{
		AppName:      "campushub-backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    12 << 20,
	})

	app.Use(requestid.New())
	app.Use(compress.New())
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	routes.SetupRoutes(app, database.DB)

	go func() {
		port := configs.GetEnv("PORT", "8080")
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("[INFO] shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("shutdown err: %v", err)
	}
}
