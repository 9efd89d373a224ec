package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/nexus-estoque/api/internal/application/auth"
	"github.com/nexus-estoque/api/internal/application/estoque"
	"github.com/nexus-estoque/api/internal/application/relatorio"
	"github.com/nexus-estoque/api/internal/application/usecase"
	infrapdf "github.com/nexus-estoque/api/internal/infrastructure/pdf"
	"github.com/nexus-estoque/api/internal/infrastructure/postgres"
	httpRouter "github.com/nexus-estoque/api/internal/interfaces/http"
	"github.com/nexus-estoque/api/pkg/config"
	"github.com/nexus-estoque/api/pkg/logger"
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
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	transacaoRepo := postgres.NewTransacaoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	estoqueUC := estoque.NewUseCase(txRunner, transacaoRepo)

	// PDF: relatório de estoque da partição do usuário
	pdfGerador := infrapdf.NewMarotoGerador()
	relatorioUC := relatorio.NewUseCase(userRepo, produtoRepo, categoriaRepo, pdfGerador)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "NEXUS API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "NEXUS API", "version": cfg.App.Version})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CategoriaUC: categoriaUC,
		ProdutoUC:   produtoUC,
		ClienteUC:   clienteUC,
		EstoqueUC:   estoqueUC,
		RelatorioUC: relatorioUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, fechando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
