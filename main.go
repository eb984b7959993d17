package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/railconnect/reservation-service/config"
	"github.com/railconnect/reservation-service/internal/handler"
	"github.com/railconnect/reservation-service/internal/middleware"
	"github.com/railconnect/reservation-service/internal/registry"
	"github.com/railconnect/reservation-service/internal/service"
	"github.com/railconnect/reservation-service/internal/store"
	"github.com/railconnect/reservation-service/internal/waitlist"
	"github.com/railconnect/reservation-service/pkg/database"
	"github.com/railconnect/reservation-service/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	var st store.Store
	switch cfg.StorageDriver {
	case "postgres":
		db := database.NewPostgresDB(cfg.DSN())
		st = store.NewPostgresStore(db)
		log.Println("using postgres snapshot store")
	default:
		st = store.NewFileStore(cfg.TrainsFile, cfg.BookingsFile)
		log.Printf("using file snapshot store (%s, %s)", cfg.TrainsFile, cfg.BookingsFile)
	}

	var publisher service.EventPublisher
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer pub.Close()
		publisher = pub
	} else {
		log.Println("RABBIT_URL not set, booking events disabled")
	}

	svc := service.NewReservationService(registry.New(), waitlist.New(), st, publisher)
	if err := svc.LoadState(context.Background()); err != nil {
		log.Fatalf("failed to load reservation state: %v", err)
	}

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "reservation-service"})
	})

	handler.NewReservationHandler(svc).RegisterRoutes(e)

	log.Printf("Reservation Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
