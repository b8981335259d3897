package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/dthstore/dthstore-api/internal/config"
	"github.com/dthstore/dthstore-api/internal/infra/cache"
	"github.com/dthstore/dthstore-api/internal/infra/database"
	"github.com/dthstore/dthstore-api/internal/infra/http/handlers"
	"github.com/dthstore/dthstore-api/internal/infra/http/middleware"
	"github.com/dthstore/dthstore-api/internal/infra/integration/bridge"
	"github.com/dthstore/dthstore-api/internal/infra/integration/firestore"
	"github.com/dthstore/dthstore-api/internal/infra/integration/web3forms"
	"github.com/dthstore/dthstore-api/internal/infra/mail"
	"github.com/dthstore/dthstore-api/internal/infra/notify"
	"github.com/dthstore/dthstore-api/internal/infra/queue"
	"github.com/dthstore/dthstore-api/internal/infra/session"
	"github.com/dthstore/dthstore-api/internal/infra/store"
	"github.com/dthstore/dthstore-api/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Local cache, the always-available fallback store.
	cacheStore, err := cache.Open(cfg.CachePath)
	if err != nil {
		log.Fatal(err)
	}
	defer cacheStore.Close()

	// Postgres is optional; without it the router runs cache-only and the
	// catalog serves from the cache.
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠️ database unavailable, running cache-only: %v", err)
			db = nil
		} else {
			defer db.Close()
		}
	}

	// Notification settings, loaded once from the cache.
	settings := notify.LoadConfig(cacheStore)

	// Active leads backend, chosen once at startup.
	var backend store.Backend
	switch cfg.LeadsBackend {
	case config.BackendSQL:
		if db != nil {
			backend = store.NewSQLBackend(database.NewLeadRepository(db))
		}
	case config.BackendFirestore:
		backend = firestore.NewClient(cfg.FirestoreProjectID, cfg.FirestoreAPIKey)
	case config.BackendBridge:
		nc := settings.Current()
		if nc.WhatsAppAPIURL != "" {
			backend = bridge.NewClient(nc.WhatsAppAPIURL, nc.WhatsAppAPIKey, nc.WhatsAppSessionID)
		}
	}
	router := store.NewRouter(backend, string(cfg.LeadsBackend), cacheStore)
	log.Printf("🔀 leads backend: %s", router.BackendName())

	var productRepo *database.ProductRepository
	var siteRepo *database.SiteConfigRepository
	if db != nil {
		productRepo = database.NewProductRepository(db)
		siteRepo = database.NewSiteConfigRepository(db)
	}
	catalog := store.NewCatalog(productRepo, siteRepo, cacheStore)

	// Redis backs the desktop channel, the dashboard event stream and admin
	// sessions.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	sessions := session.NewStore(rdb, session.DefaultTTL)

	// Notification fan-out.
	mailSender := mail.NewSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
	dispatcher := notify.NewDispatcher(settings,
		notify.NewEmailChannel(web3forms.NewClient()),
		notify.NewSMTPChannel(mailSender),
		notify.NewTelegramChannel(),
		notify.NewWhatsAppChannel(),
		notify.NewDesktopChannel(rdb),
	)

	// RabbitMQ feeds Facebook leadgen events to the ingest worker. The
	// webhook stays registered either way; without a broker it answers 503
	// and Facebook retries.
	var producer queue.ProducerInterface
	var rabbitConn *amqp.Connection
	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitURL)
	if err != nil {
		log.Printf("⚠️ RabbitMQ unavailable, facebook ingest disabled: %v", err)
	} else {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		worker := queue.NewWorker(rabbitMQ.Ch, router, dispatcher)
		worker.Start(queue.QueueName)
	}

	// UseCases
	captureUC := usecase.NewCaptureLeadUseCase(router, dispatcher)
	manageUC := usecase.NewManageLeadsUseCase(router)

	// Handlers
	leadHandler := handlers.NewLeadHandler(captureUC, manageUC)
	productHandler := handlers.NewProductHandler(catalog)
	configHandler := handlers.NewConfigHandler(catalog, settings)
	authHandler := handlers.NewAuthHandler(sessions)
	whatsappHandler := handlers.NewWhatsAppHandler(settings)
	notificationHandler := handlers.NewNotificationHandler(dispatcher)
	eventsHandler := handlers.NewEventsHandler(rdb)
	webhookHandler := handlers.NewWebhookHandler(cfg.FacebookVerifyToken, producer)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, rdb, router.BackendName())

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("DTH Store API is running"))
	})
	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	// Public storefront
	r.Post("/api/leads", leadHandler.Capture)
	r.Get("/api/products", productHandler.List)
	r.Get("/api/config/site", configHandler.GetSiteConfig)
	r.Post("/api/auth/login", authHandler.Login)

	// Facebook webhook
	r.Get("/api/webhook/facebook", webhookHandler.Verify)
	r.Post("/api/webhook/facebook", webhookHandler.Handle)

	// Admin dashboard
	r.Group(func(r chi.Router) {
		r.Use(authHandler.RequireAuth)

		r.Get("/api/leads", leadHandler.List)
		r.Put("/api/leads/{id}", leadHandler.Update)
		r.Delete("/api/leads/{id}", leadHandler.Delete)
		r.Post("/api/leads/{id}/notes", leadHandler.AddNote)
		r.Put("/api/leads/{id}/followup", leadHandler.ScheduleFollowUp)

		r.Post("/api/products", productHandler.Create)
		r.Delete("/api/products/{id}", productHandler.Delete)

		r.Put("/api/config/site", configHandler.UpdateSiteConfig)
		r.Get("/api/config/notifications", configHandler.GetNotificationConfig)
		r.Put("/api/config/notifications", configHandler.UpdateNotificationConfig)
		r.Post("/api/notifications/test/{channel}", notificationHandler.Test)

		r.Get("/api/whatsapp/status", whatsappHandler.Status)
		r.Get("/api/whatsapp/qr", whatsappHandler.QR)

		r.Get("/api/events", eventsHandler.Stream)

		r.Post("/api/auth/logout", authHandler.Logout)
		r.Get("/api/auth/me", authHandler.Me)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("🔥 DTH Store API running on %s", addr)
	http.ListenAndServe(addr, r)
}
