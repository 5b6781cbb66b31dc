package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	eventhandler "github.com/aliskhannn/event-notifier/internal/api/handlers/event"
	notifhandler "github.com/aliskhannn/event-notifier/internal/api/handlers/notification"
	"github.com/aliskhannn/event-notifier/internal/api/router"
	"github.com/aliskhannn/event-notifier/internal/api/server"
	"github.com/aliskhannn/event-notifier/internal/config"
	"github.com/aliskhannn/event-notifier/internal/rabbitmq/handlers/delivery"
	"github.com/aliskhannn/event-notifier/internal/rabbitmq/queue"
	eventrepo "github.com/aliskhannn/event-notifier/internal/repository/event"
	jobrepo "github.com/aliskhannn/event-notifier/internal/repository/job"
	notifrepo "github.com/aliskhannn/event-notifier/internal/repository/notification"
	userrepo "github.com/aliskhannn/event-notifier/internal/repository/user"
	eventsvc "github.com/aliskhannn/event-notifier/internal/service/event"
	notifsvc "github.com/aliskhannn/event-notifier/internal/service/notification"
	"github.com/aliskhannn/event-notifier/internal/worker"
	"github.com/aliskhannn/event-notifier/internal/ws"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewDeliveryQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create delivery queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	events := eventrepo.NewRepository(db)
	jobs := jobrepo.NewRepository(db)
	notifications := notifrepo.NewRepository(db)
	users := userrepo.NewRepository(db)

	hub := ws.NewHub()

	notifService := notifsvc.NewService(notifications, events, users, hub, rdb, cfg.Notifications.ListLimit)
	eventService := eventsvc.NewService(events, jobs, q)

	messageHandler := delivery.NewHandler(notifService, jobs)
	notifier := worker.NewNotifier(q, messageHandler)

	go notifier.Run(ctx, cfg.Retry, cfg.Workers.Count)

	eventHandler := eventhandler.NewHandler(eventService, val, cfg)
	notifHandler := notifhandler.NewHandler(notifService)
	wsHandler := ws.NewHandler(hub, cfg.WebSocket.HandshakeTimeout)

	r := router.New(eventHandler, notifHandler, wsHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
