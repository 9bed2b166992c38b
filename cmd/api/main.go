package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/totegamma/longrest"
	"github.com/totegamma/longrest/core"
	"github.com/totegamma/longrest/internal/clock"
	"github.com/totegamma/longrest/x/auth"
	"github.com/totegamma/longrest/x/campaign"
	"github.com/totegamma/longrest/x/inbox"
	"github.com/totegamma/longrest/x/job"
	"github.com/totegamma/longrest/x/packet"
	"github.com/totegamma/longrest/x/recap"
	"github.com/totegamma/longrest/x/response"
	"github.com/totegamma/longrest/x/session"
	"github.com/totegamma/longrest/x/util"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version      = "unknown"
	buildMachine = "unknown"
	buildTime    = "unknown"
	goVersion    = "unknown"
)

func main() {

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	if version == "unknown" {
		version = util.GetVersion()
	}

	slog.Info(fmt.Sprintf("Long Rest %s starting...", version),
		slog.String("buildMachine", buildMachine),
		slog.String("buildTime", buildTime),
		slog.String("goVersion", goVersion),
	)

	// .env is optional; the yaml file and real environment take it from there
	_ = godotenv.Load()

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true
	config := Config{}
	configPath := os.Getenv("LONGREST_CONFIG")
	if configPath == "" {
		configPath = "/etc/longrest/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	coreConfig := config.Core()

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "longrest/api", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "lr",
		LabelFuncs: map[string]echoprometheus.LabelValueFunc{
			"url": func(c echo.Context, err error) string {
				return "REDACTED"
			},
		},
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	// Migrate the schema
	slog.Info("start migrate")
	err = db.AutoMigrate(
		&core.Campaign{},
		&core.CampaignMember{},
		&core.Session{},
		&core.SessionResponse{},
		&core.SessionRecap{},
		&core.EventPacket{},
		&core.EventPacketRecipient{},
		&core.IdempotencyKey{},
		&core.Job{},
	)
	if err != nil {
		panic("failed to migrate schema")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "", // no password set
		DB:       config.Server.RedisDB,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	authService := longrest.SetupAuthService(coreConfig)
	authHandler := auth.NewHandler()

	campaignService := longrest.SetupCampaignService(db)
	campaignHandler := campaign.NewHandler(campaignService)

	sessionService := longrest.SetupSessionService(db, rdb, mc, coreConfig)
	sessionHandler := session.NewHandler(sessionService)

	responseService := longrest.SetupResponseService(db, rdb, mc, coreConfig)
	responseHandler := response.NewHandler(responseService)

	recapService := longrest.SetupRecapService(db)
	recapHandler := recap.NewHandler(recapService)

	packetService := longrest.SetupPacketService(db, rdb, mc, coreConfig)
	packetHandler := packet.NewHandler(packetService)

	inboxService := longrest.SetupInboxService(db)
	inboxHandler := inbox.NewHandler(inboxService)

	jobService := longrest.SetupJobService(db)

	apiV1 := e.Group("", authService.IdentifyIdentity)
	known := auth.Restrict(auth.ISKNOWN)

	apiV1.GET("/me", authHandler.Me, known)

	// campaign
	apiV1.POST("/campaigns", campaignHandler.Create, known)
	apiV1.GET("/campaigns", campaignHandler.ListMine, known)
	apiV1.GET("/campaign/:id", campaignHandler.Get, known)
	apiV1.GET("/campaign/:id/members", campaignHandler.ListMembers, known)
	apiV1.POST("/campaign/:id/members", campaignHandler.AddMember, known)

	// session
	apiV1.POST("/campaign/:id/sessions", sessionHandler.Create, known)
	apiV1.GET("/campaign/:id/sessions", sessionHandler.List, known)
	apiV1.GET("/session/:id", sessionHandler.Get, known)
	apiV1.PUT("/session/:id/proposed", sessionHandler.SetProposedTime, known)
	apiV1.POST("/session/:id/finalize", sessionHandler.Finalize, known)
	apiV1.POST("/session/:id/reopen", sessionHandler.Reopen, known)
	apiV1.PUT("/session/:id/status", sessionHandler.UpdateStatus, known)

	// response
	apiV1.PUT("/session/:id/response", responseHandler.Upsert, known)
	apiV1.GET("/session/:id/responses", responseHandler.List, known)
	apiV1.GET("/responses/summary", responseHandler.Summary, known)
	apiV1.GET("/responses/mine", responseHandler.Mine, known)

	// recap
	apiV1.GET("/session/:id/recap", recapHandler.Get, known)
	apiV1.PUT("/session/:id/recap", recapHandler.Upsert, known)

	// packet
	apiV1.POST("/campaign/:id/packets", packetHandler.Send, known)
	apiV1.GET("/campaign/:id/packets", packetHandler.ListSent, known)

	// inbox
	apiV1.GET("/campaign/:id/inbox", inboxHandler.Get, known)
	apiV1.GET("/campaign/:id/inbox/unread", inboxHandler.Unread, known)
	apiV1.POST("/packet/:id/read", inboxHandler.MarkRead, known)

	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	var resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lr_resources_count",
			Help: "resources count",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(resourceCountMetrics)

	go func() {
		for {
			time.Sleep(15 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

			count, err := sessionService.Count(ctx)
			if err != nil {
				slog.ErrorContext(ctx, fmt.Sprintf("failed to count sessions: %v", err))
			} else {
				resourceCountMetrics.WithLabelValues("session").Set(float64(count))
			}

			count, err = packetService.Count(ctx)
			if err != nil {
				slog.ErrorContext(ctx, fmt.Sprintf("failed to count packets: %v", err))
			} else {
				resourceCountMetrics.WithLabelValues("packet").Set(float64(count))
			}

			cancel()
		}
	}()

	e.GET("/metrics", echoprometheus.NewHandler())

	reactor := job.NewReactor(packetService, jobService, clock.NewDefault())
	reactor.Start(context.Background())

	e.Logger.Fatal(e.Start(config.Server.Listen))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
