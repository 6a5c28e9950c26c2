package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/nutrivida/site-backend/internal/config"
	"github.com/nutrivida/site-backend/internal/infra/http/handlers"
	"github.com/nutrivida/site-backend/internal/infra/http/middleware"
	"github.com/nutrivida/site-backend/internal/infra/mail"
	"github.com/nutrivida/site-backend/internal/infra/queue"
	"github.com/nutrivida/site-backend/internal/infra/store"
	"github.com/nutrivida/site-backend/internal/infra/supabase"
	"github.com/nutrivida/site-backend/internal/logger"
	"github.com/nutrivida/site-backend/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Environment)

	// 1. Conector com o banco hospedado (pode ficar "não configurado")
	client := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, log)

	// 2. Espelho durável do fallback (opcional)
	var mirror store.Mirror
	var redisMirror *store.RedisMirror
	if cfg.Redis.Addr != "" {
		rm, err := store.NewRedisMirror(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Msg("Redis indisponível; fallback só em memória")
		} else {
			redisMirror = rm
			mirror = rm
			defer rm.Close()
			log.Info().Str("addr", cfg.Redis.Addr).Msg("espelho Redis conectado")
		}
	}
	fallback := store.NewFallbackStore(mirror, log)

	// 3. Fila de notificações (opcional)
	var rabbitConn *amqp.Connection
	var producer usecase.NotificationProducer
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.URL)
		if err != nil {
			log.Warn().Err(err).Msg("RabbitMQ indisponível; notificações desligadas")
		} else {
			rabbitConn = rabbitMQ.Conn
			producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
			defer rabbitMQ.Conn.Close()
			defer rabbitMQ.Ch.Close()

			// Worker só faz sentido com SMTP configurado
			if cfg.Mail.Host != "" {
				mailSender := mail.NewEmailSender(
					cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password,
					cfg.Mail.From, cfg.Mail.NotifyEmail,
				)
				worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
				go worker.Start(queue.QueueName)
			}
		}
	}

	// 4. Facade de acesso a dados
	service := usecase.NewDataService(client, fallback, producer, log)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(service, client, log)
	depoimentoHandler := handlers.NewDepoimentoHandler(service, client, log)
	adminLeadHandler := handlers.NewAdminLeadHandler(client, cfg.StrictPersistence, log)
	adminDepoimentoHandler := handlers.NewAdminDepoimentoHandler(client, cfg.StrictPersistence, log)
	dataHandler := handlers.NewDataHandler(service, client, fallback, log)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(cfg.Environment, log)
	connectionHandler := handlers.NewConnectionHandler(client, log)
	healthHandler := handlers.NewHealthHandler(client, redisMirror, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/leads", leadHandler.List)
		r.Post("/leads", leadHandler.Create)
		r.Patch("/leads", leadHandler.Update)
		r.Delete("/leads", leadHandler.Delete)

		r.Get("/depoimentos", depoimentoHandler.List)
		r.Post("/depoimentos", depoimentoHandler.Create)
		r.Patch("/depoimentos", depoimentoHandler.Update)
		r.Delete("/depoimentos", depoimentoHandler.Delete)

		r.Get("/admin/leads", adminLeadHandler.List)
		r.Patch("/admin/leads", adminLeadHandler.Update)
		r.Delete("/admin/leads", adminLeadHandler.Delete)

		r.Get("/admin/depoimentos", adminDepoimentoHandler.List)
		r.Post("/admin/depoimentos", adminDepoimentoHandler.Create)
		r.Patch("/admin/depoimentos", adminDepoimentoHandler.Update)
		r.Delete("/admin/depoimentos", adminDepoimentoHandler.Delete)

		r.Get("/data", dataHandler.Get)
		r.Post("/data", dataHandler.Post)

		r.Get("/test-connection", connectionHandler.Get)
		r.Post("/test-connection", connectionHandler.Post)

		r.Get("/diagnostics", diagnosticsHandler.Get)
		r.Post("/diagnostics", diagnosticsHandler.Post)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Info().Str("porta", cfg.Port).Str("ambiente", cfg.Environment).Msg("🔥 NutriVida API no ar")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("servidor encerrou")
	}
}
