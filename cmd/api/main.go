package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/security"
	httpRouter "github.com/jhoicas/Empleados-api/internal/interfaces/http"
	"github.com/jhoicas/Empleados-api/pkg/config"
	"github.com/jhoicas/Empleados-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	empRepo := postgres.NewEmployeeRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	hasher := security.NewBcryptHasher()
	tempGen := security.NewTempPasswordGenerator()
	tokens := security.NewJWTIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	authUC := auth.NewAuthUseCase(empRepo, roleRepo, txRunner, hasher, tokens, auth.DirectorConfig{
		RoleName:       cfg.Bootstrap.DirectorRoleName,
		HierarchyLevel: cfg.Bootstrap.DirectorLevel,
	})
	employeeUC := usecase.NewEmployeeUseCase(empRepo, roleRepo, txRunner, hasher, tempGen, log)
	roleUC := usecase.NewRoleUseCase(roleRepo, empRepo, txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		EmployeeUC: employeeUC,
		RoleUC:     roleUC,
		JWTSecret:  cfg.JWT.Secret,
		Log:        log,
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
