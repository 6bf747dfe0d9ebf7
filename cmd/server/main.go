package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/aircnc/aircnc-server/internal/config"
	"github.com/aircnc/aircnc-server/internal/db"
	"github.com/aircnc/aircnc-server/internal/handlers"
	"github.com/aircnc/aircnc-server/internal/mailer"
	"github.com/aircnc/aircnc-server/internal/payment"
	"github.com/aircnc/aircnc-server/internal/repository"
	"github.com/aircnc/aircnc-server/internal/token"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	log.Println("Connected to MongoDB")

	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, 2)
	tokens := token.New(cfg.TokenSecret)
	payments := payment.New(cfg.PaymentSecretKey)

	router := &handlers.Router{
		Tokens:   tokens,
		Auth:     handlers.NewAuthHandler(tokens),
		Users:    handlers.NewUserHandler(repository.NewUsers(db.Collection(client, cfg.DBName, "users"))),
		Rooms:    handlers.NewRoomHandler(repository.NewRooms(db.Collection(client, cfg.DBName, "rooms"))),
		Bookings: handlers.NewBookingHandler(repository.NewBookings(db.Collection(client, cfg.DBName, "bookings")), mail),
		Payments: handlers.NewPaymentHandler(payments),
	}

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())
	router.Register(app)

	// Shut the listener down on SIGINT/SIGTERM so the deferred cleanup runs.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("server: %v", err)
	}

	mail.Close()
	if err := client.Disconnect(context.Background()); err != nil {
		log.Printf("mongodb disconnect: %v", err)
	}
}
