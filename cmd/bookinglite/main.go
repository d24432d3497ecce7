package main

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/md-rashed-zaman/bookinglite/internal/cache"
	"github.com/md-rashed-zaman/bookinglite/internal/events"
	"github.com/md-rashed-zaman/bookinglite/internal/handlers"
	"github.com/md-rashed-zaman/bookinglite/internal/storage"
	"github.com/md-rashed-zaman/bookinglite/internal/uploads"
	"github.com/md-rashed-zaman/bookinglite/libs/config"
	"github.com/md-rashed-zaman/bookinglite/libs/db"
	"github.com/md-rashed-zaman/bookinglite/libs/httpx"
	"github.com/md-rashed-zaman/bookinglite/libs/kafkax"
	otelx "github.com/md-rashed-zaman/bookinglite/libs/otel"
	"github.com/md-rashed-zaman/bookinglite/libs/runtime"
)

func main() {
	service := config.String("SERVICE_NAME", "bookinglite")
	port, err := config.Port("PORT", "8080")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}
	pool, err := db.Open(ctx, dbURL, db.Options{
		MaxConns: int32(config.Int("DB_MAX_CONNS", 10)),
		MinConns: int32(config.Int("DB_MIN_CONNS", 1)),
	})
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	if err := storage.EnsureSchema(ctx, pool); err != nil {
		logger.Error("schema bootstrap failed", "err", err)
		panic(err)
	}

	uploadStore, err := uploads.New(config.String("UPLOAD_DIR", "./uploads"))
	if err != nil {
		logger.Error("upload dir setup failed", "err", err)
		panic(err)
	}

	kafkaBrokers := config.String("KAFKA_BROKERS", "")
	publisher := events.NewPublisher(kafkaBrokers, logger)
	defer publisher.Close()

	readyChecks := []runtime.ReadyCheck{
		{Name: "db", Check: db.ReadyCheck(pool)},
	}
	if kafkaBrokers != "" {
		readyChecks = append(readyChecks, runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(kafkaBrokers)})
	}
	mux := runtime.NewBaseMuxWithReady(readyChecks...)

	accountRepo := storage.NewAccountRepository(pool)
	customerRepo := storage.NewCustomerRepository(pool)
	appointmentRepo := storage.NewAppointmentRepository(pool)

	var businessStore storage.BusinessStore = storage.NewBusinessRepository(pool)
	if addr := config.String("REDIS_ADDR", ""); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.String("REDIS_PASSWORD", ""),
			DB:       config.Int("REDIS_DB", 0),
		})
		defer func() { _ = rdb.Close() }()
		businessStore = cache.NewCachedBusinessStore(businessStore, rdb, logger)
		logger.Info("business cache enabled (redis)", "redis_addr", addr)
	}

	jwtSecret := config.String("JWT_SECRET", "dev-secret")
	tokenTTL := time.Duration(config.Int("TOKEN_TTL_HOURS", 24)) * time.Hour

	authHandler := handlers.NewAuthHandler(accountRepo, jwtSecret, tokenTTL)
	customerHandler := handlers.NewCustomerHandler(customerRepo)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo, customerRepo, publisher)
	businessHandler := handlers.NewBusinessHandler(businessStore)
	userHandler := handlers.NewUserHandler(accountRepo)
	uploadHandler := handlers.NewUploadHandler(uploadStore)

	// Bearer-token validation is enforced on every route except signup,
	// signin, home and image retrieval.
	protect := handlers.RequireAuth(jwtSecret, accountRepo)
	protected := func(h http.HandlerFunc) http.Handler { return protect(h) }

	mux.HandleFunc("POST /signup", authHandler.Signup)
	mux.HandleFunc("POST /signin", authHandler.Signin)
	mux.HandleFunc("GET /{$}", handlers.Home)
	mux.HandleFunc("GET /image/{filename}", uploadHandler.Image)

	mux.Handle("GET /customers", protected(customerHandler.List))
	mux.Handle("POST /customers", protected(customerHandler.Create))
	mux.Handle("PUT /customers/{id}", protected(customerHandler.Update))
	mux.Handle("DELETE /clients/{id}", protected(customerHandler.Delete))

	mux.Handle("GET /appointments", protected(appointmentHandler.List))
	mux.Handle("POST /appointments", protected(appointmentHandler.Create))
	mux.Handle("PUT /appointments/{id}", protected(appointmentHandler.Update))
	mux.Handle("PUT /completeappointment/{id}", protected(appointmentHandler.Complete))
	mux.Handle("DELETE /appointments/{id}", protected(appointmentHandler.Delete))

	mux.Handle("GET /businesses", protected(businessHandler.List))
	mux.Handle("POST /businesses", protected(businessHandler.Create))
	mux.Handle("PUT /businesses/{id}", protected(businessHandler.Update))
	mux.Handle("DELETE /businesses/{id}", protected(businessHandler.Delete))

	mux.Handle("GET /users/{id}", protected(userHandler.Get))
	mux.Handle("PUT /users/{id}", protected(userHandler.Update))

	mux.Handle("POST /upload/images", protected(uploadHandler.Upload))

	bodyLimit := int64(config.Int("REQUEST_BODY_LIMIT_BYTES", 33554432)) // multipart uploads included
	requestTimeout := time.Duration(config.Int("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second

	handler := httpx.Chain(mux,
		httpx.WithCORS(httpx.CORSPolicy{
			AllowedOrigins:   config.List("CORS_ALLOWED_ORIGINS", ""),
			AllowedMethods:   config.List("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"),
			AllowedHeaders:   config.List("CORS_ALLOWED_HEADERS", "Authorization,Content-Type,X-Request-Id"),
			AllowCredentials: config.Bool("CORS_ALLOW_CREDENTIALS", false),
			MaxAge:           time.Duration(config.Int("CORS_MAX_AGE_SECONDS", 600)) * time.Second,
		}),
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
		httpx.WithBodyLimit(bodyLimit),
		httpx.WithTimeout(requestTimeout),
	)
	handler = otelhttp.NewHandler(handler, service)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}
