package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/breakroom-app/breakroom/internal/config"
	"github.com/breakroom-app/breakroom/internal/infrastructure/database"
	"github.com/breakroom-app/breakroom/internal/infrastructure/dataset"
	"github.com/breakroom-app/breakroom/internal/infrastructure/repository"
	"github.com/breakroom-app/breakroom/internal/present/rest"
	"github.com/breakroom-app/breakroom/internal/service"
	"github.com/breakroom-app/breakroom/internal/usecase"
)

func main() {
	configPath := os.Getenv("BREAKROOM_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	conf, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config",
			slog.String("path", configPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	ctx := context.Background()

	if conf.Server.EnableTrace {
		shutdown, err := setupTracing(ctx, conf.Server.TraceEndpoint)
		if err != nil {
			slog.Error("failed to set up tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer shutdown(ctx)
	}

	var (
		companyRepo usecase.CompanyRepository
		postRepo    usecase.PostRepository
		stateRepo   usecase.ModerationStateRepository
		reportRepo  usecase.ReportRepository
	)

	if conf.Server.PostgresDsn != "" {
		db, err := database.NewPostgres(conf.Server.PostgresDsn)
		if err != nil {
			slog.Error("failed to connect database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := database.MigratePostgres(db); err != nil {
			slog.Error("failed to migrate database", slog.String("error", err.Error()))
			os.Exit(1)
		}

		companies := repository.NewCompanyRepository(db)
		if err := companies.Seed(ctx, dataset.Companies()); err != nil {
			slog.Error("failed to seed companies", slog.String("error", err.Error()))
			os.Exit(1)
		}

		companyRepo = companies
		postRepo = repository.NewPostRepository(db)
		stateRepo = repository.NewModerationStateRepository(db)
		reportRepo = repository.NewReportRepository(db)
	} else {
		store := repository.NewMemoryStore(dataset.Companies(), dataset.SeedPosts())
		companyRepo = store.Companies()
		postRepo = store.Posts()
		stateRepo = store.State()
		reportRepo = store.Reports()
	}

	if conf.Server.MemcachedAddr != "" {
		mc := database.NewMemcached(conf.Server.MemcachedAddr)
		companyRepo = repository.NewCachedCompanyRepository(companyRepo, mc)
	}

	var signal *service.SignalService
	var publisher usecase.EventPublisher
	if conf.Server.RedisAddr != "" {
		rdb := database.NewRedis(conf.Server.RedisAddr, "", conf.Server.RedisDB)
		signal = service.NewSignalService(rdb)
		publisher = signal
	}

	companyUC := usecase.NewCompanyUsecase(companyRepo)
	postUC := usecase.NewPostUsecase(postRepo, companyRepo, stateRepo, publisher)
	reportUC := usecase.NewReportUsecase(reportRepo, publisher)
	adminUC := usecase.NewAdminUsecase(postRepo, stateRepo, publisher)
	insightUC := usecase.NewInsightUsecase()

	handler := rest.NewHandler(conf, companyUC, postUC, reportUC, adminUC, insightUC, signal)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("breakroom"))
	}

	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", conf.Server.Port)))
}

func setupTracing(ctx context.Context, endpoint string) (func(context.Context) error, error) {
	opts := []otlptracehttp.Option{otlptracehttp.WithInsecure()}
	if endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	res, err := sdkresource.New(ctx,
		sdkresource.WithAttributes(semconv.ServiceName("breakroom")),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
