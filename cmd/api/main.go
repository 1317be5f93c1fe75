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
	"github.com/tu-usuario/it-supplies-api/internal/application/audit"
	"github.com/tu-usuario/it-supplies-api/internal/application/auth"
	"github.com/tu-usuario/it-supplies-api/internal/application/usecase"
	"github.com/tu-usuario/it-supplies-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/it-supplies-api/internal/interfaces/http"
	"github.com/tu-usuario/it-supplies-api/pkg/config"
	"github.com/tu-usuario/it-supplies-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB.ConnectionString(), cfg.DB.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	descriptorRepo := postgres.NewDescriptorRepository(pool)
	logRepo := postgres.NewLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recorder := audit.NewRecorder(logRepo, log)
	hasher := auth.BcryptHasher{}

	authUC := auth.NewAuthUseCase(userRepo, hasher, recorder, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, hasher, recorder)
	productUC := usecase.NewProductUseCase(productRepo, recorder)
	assetUC := usecase.NewAssetUseCase(assetRepo, txRunner, recorder)
	descriptorUC := usecase.NewDescriptorUseCase(descriptorRepo, productRepo, recorder)
	logUC := usecase.NewLogUseCase(logRepo)

	// Datos de arranque: usuario Administrador y categorías por defecto.
	admin, err := userUC.EnsureDefaultAdmin(ctx, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("usuario administrador de arranque")
	}
	if err := descriptorUC.EnsureDefaults(ctx, admin.ID); err != nil {
		log.Fatal().Err(err).Msg("descriptores por defecto")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "IT Supplies API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		ProductUC:    productUC,
		AssetUC:      assetUC,
		DescriptorUC: descriptorUC,
		LogUC:        logUC,
		JWTSecret:    cfg.JWT.Secret,
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
