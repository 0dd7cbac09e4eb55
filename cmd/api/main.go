package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/Saas-api/internal/application/audit"
	"github.com/jhoicas/Saas-api/internal/application/auth"
	"github.com/jhoicas/Saas-api/internal/application/usecase"
	"github.com/jhoicas/Saas-api/internal/infrastructure/cache"
	"github.com/jhoicas/Saas-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Saas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Saas-api/internal/infrastructure/revocation"
	httpRouter "github.com/jhoicas/Saas-api/internal/interfaces/http"
	"github.com/jhoicas/Saas-api/pkg/clock"
	"github.com/jhoicas/Saas-api/pkg/config"
	"github.com/jhoicas/Saas-api/pkg/jwt"
	"github.com/jhoicas/Saas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clk := clock.Real{}

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	brandingRepo := postgres.NewBrandingRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	auditLogRepo := postgres.NewAuditLogRepository(pool)
	announcementRepo := postgres.NewAnnouncementRepository(pool)
	statisticsRepo := postgres.NewStatisticsRepository(pool)
	maintenanceRepo := cache.NewMaintenanceCache(
		postgres.NewMaintenanceRepository(pool),
		time.Duration(cfg.Cache.MaintenanceSeconds)*time.Second,
	)

	txRunner := postgres.NewTxRunner(pool)
	recorder := audit.NewRecorder(txRunner, clk)
	accessSvc := usecase.NewAccessService(postgres.NewOwnershipResolver(pool))

	systemUC := usecase.NewSystemUseCase(maintenanceRepo, subscriptionRepo, clk, usecase.SystemInfo{
		Version:     cfg.App.Version,
		Environment: cfg.App.Env,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, planRepo, auditLogRepo, accessSvc, recorder, clk)
	branchUC := usecase.NewBranchUseCase(branchRepo, accessSvc, recorder, clk)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, userRepo, branchRepo, accessSvc, recorder, clk)
	subscriptionUC := usecase.NewSubscriptionUseCase(subscriptionRepo, invoiceRepo, accessSvc, recorder, clk)
	maintenanceUC := usecase.NewMaintenanceUseCase(maintenanceRepo, accessSvc, recorder, clk)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, accessSvc)
	auditLogUC := usecase.NewAuditLogUseCase(auditLogRepo, accessSvc)
	announcementUC := usecase.NewAnnouncementUseCase(announcementRepo, clk)
	statisticsUC := usecase.NewStatisticsUseCase(statisticsRepo, subscriptionRepo, planRepo, accessSvc, clk)

	issuer, err := jwt.NewIssuer(jwt.Config{
		Secret:            cfg.JWT.Secret,
		Issuer:            cfg.JWT.Issuer,
		AccessExpMinutes:  cfg.JWT.AccessExpiration,
		RefreshExpMinutes: cfg.JWT.RefreshExpiration,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configuración JWT")
	}

	// Sin REDIS_URL/REDIS_ADDR la revocación vive en memoria (una sola instancia).
	revoker, redisClient, err := revocation.New(ctx, cfg.Redis, clk)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
		log.Info().Msg("revocación de refresh tokens en Redis")
	} else {
		log.Warn().Msg("revocación de refresh tokens en memoria")
	}

	resolver := auth.NewPrincipalResolver(userRepo, employeeRepo, branchRepo, companyRepo)
	authUC := auth.NewAuthUseCase(auth.Deps{
		Resolver: resolver,
		System:   systemUC,
		Tokens:   issuer,
		Revoker:  revoker,
		Audit:    recorder,
		Plans:    planRepo,
		Branding: brandingRepo,
		Clock:    clk,
	})

	m := metrics.New("saas")
	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		SwaggerFile: "./docs/swagger.json",
		Log:         log,
		Metrics:     m,
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		SystemUC:       systemUC,
		CompanyUC:      companyUC,
		StatisticsUC:   statisticsUC,
		BranchUC:       branchUC,
		EmployeeUC:     employeeUC,
		SubscriptionUC: subscriptionUC,
		MaintenanceUC:  maintenanceUC,
		NotificationUC: notificationUC,
		AnnouncementUC: announcementUC,
		AuditLogUC:     auditLogUC,
		Tokens:         issuer,
		Principals:     resolver,
		Metrics:        m,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
