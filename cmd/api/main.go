package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/estoque-pro/estoque-api/internal/application/analytics"
	"github.com/estoque-pro/estoque-api/internal/application/auth"
	"github.com/estoque-pro/estoque-api/internal/application/inventory"
	"github.com/estoque-pro/estoque-api/internal/application/report"
	"github.com/estoque-pro/estoque-api/internal/application/usecase"
	"github.com/estoque-pro/estoque-api/internal/infrastructure/cache"
	infrapdf "github.com/estoque-pro/estoque-api/internal/infrastructure/pdf"
	"github.com/estoque-pro/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/estoque-pro/estoque-api/internal/interfaces/http"
	"github.com/estoque-pro/estoque-api/pkg/config"
	"github.com/estoque-pro/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	categoriaRepo := postgres.NewCategoriaRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache opcional do dashboard (REDIS_ADDR vazio = sem cache)
	var dashCache analytics.Cache
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis.Addr)
		if err != nil {
			log.Warn().Err(err).Msg("Redis indisponível, seguindo sem cache")
		} else {
			dashCache = redisClient
			log.Info().Str("addr", cfg.Redis.Addr).Msg("cache Redis habilitado")
		}
	}

	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo, produtoRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo, categoriaRepo, movRepo)
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo, movRepo, dashCache)
	// lançamento aceito descarta o resumo em cache do dashboard
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, produtoRepo, dashboardUC)
	movimentacaoUC := inventory.NewQueryUseCase(movRepo)
	relatorioUC := report.NewUseCase(produtoRepo, movRepo, infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoriaUC:      categoriaUC,
		ProdutoUC:        produtoUC,
		RegisterMovement: registerMovementUC,
		MovimentacaoUC:   movimentacaoUC,
		RelatorioUC:      relatorioUC,
		DashboardUC:      dashboardUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
