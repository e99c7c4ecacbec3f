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
	appauth "github.com/tu-usuario/cement-ledger/internal/application/auth"
	appledger "github.com/tu-usuario/cement-ledger/internal/application/ledger"
	"github.com/tu-usuario/cement-ledger/internal/infrastructure/jsonstore"
	infrapdf "github.com/tu-usuario/cement-ledger/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/cement-ledger/internal/interfaces/http"
	"github.com/tu-usuario/cement-ledger/pkg/config"
	"github.com/tu-usuario/cement-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("dataDir", cfg.Data.Dir).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}
	if cfg.Auth.Password == "" {
		log.Fatal().Msg("AUTH_PASSWORD es requerido")
	}

	if err := jsonstore.EnsureDataDir(cfg.Data.Dir); err != nil {
		log.Fatal().Err(err).Msg("directorio de datos")
	}

	customerRepo := jsonstore.NewCustomerRepository(cfg.Data.Dir, log)
	billRepo := jsonstore.NewBillRepository(cfg.Data.Dir, log)
	paymentRepo := jsonstore.NewPaymentRepository(cfg.Data.Dir, log)
	stockRepo := jsonstore.NewStockRepository(cfg.Data.Dir, log)

	customerUC := appledger.NewCustomerUseCase(customerRepo)
	billUC := appledger.NewBillUseCase(billRepo, customerRepo, stockRepo, log)
	paymentUC := appledger.NewPaymentUseCase(paymentRepo, customerRepo, log)
	stockUC := appledger.NewStockUseCase(stockRepo)

	// PDF: recibo imprimible de la factura de venta
	pdfGenerator := infrapdf.NewMarotoBillGenerator(cfg.App.Name)
	billPDFUC := appledger.NewPDFUseCase(billRepo, customerRepo, pdfGenerator)

	authUC, err := appauth.NewAuthUseCase(cfg.Auth.Username, cfg.Auth.Password, appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("credenciales del operador")
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
		Title:    "Cement Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		BillUC:     billUC,
		PaymentUC:  paymentUC,
		StockUC:    stockUC,
		BillPDFUC:  billPDFUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
