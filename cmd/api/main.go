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

	"github.com/tacticadev/gestor-api/internal/application/auth"
	"github.com/tacticadev/gestor-api/internal/application/stock"
	"github.com/tacticadev/gestor-api/internal/application/usecase"
	"github.com/tacticadev/gestor-api/internal/events"
	infradrive "github.com/tacticadev/gestor-api/internal/infrastructure/drive"
	"github.com/tacticadev/gestor-api/internal/infrastructure/imagecache"
	infrasheets "github.com/tacticadev/gestor-api/internal/infrastructure/sheets"
	httpRouter "github.com/tacticadev/gestor-api/internal/interfaces/http"
	"github.com/tacticadev/gestor-api/pkg/config"
	"github.com/tacticadev/gestor-api/pkg/logger"
)

const indexSheetName = "indexSheetList"

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
		Msg("iniciando aplicación")

	ctx := context.Background()

	sheetsSvc, err := infrasheets.NewService(ctx, cfg.Google)
	if err != nil {
		log.Fatal().Err(err).Msg("servicio de Sheets")
	}
	driveSvc, err := infradrive.NewService(ctx, cfg.Google)
	if err != nil {
		log.Fatal().Err(err).Msg("servicio de Drive")
	}

	folders := infradrive.NewFolders(driveSvc, cfg.Google.RootFolder, cfg.Google.ImageFolder)

	// Spreadsheet índice: configurado por env o resuelto/creado en Drive.
	indexID := cfg.Google.IndexSheetID
	if indexID == "" {
		rootID, err := folders.GetOrCreateRootFolder(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("carpeta raíz en Drive")
		}
		indexID, err = folders.FindSpreadsheetInFolder(ctx, indexSheetName, rootID)
		if err != nil {
			log.Fatal().Err(err).Msg("buscar spreadsheet índice")
		}
		if indexID == "" {
			indexID, err = folders.CreateSpreadsheetInFolder(ctx, indexSheetName, rootID)
			if err != nil {
				log.Fatal().Err(err).Msg("crear spreadsheet índice")
			}
		}
	}

	if cfg.Google.SpreadsheetID == "" {
		log.Fatal().Msg("GESTOR_SPREADSHEET_ID es requerido")
	}
	gestorClient := infrasheets.NewClient(sheetsSvc, cfg.Google.SpreadsheetID)
	indexClient := infrasheets.NewClient(sheetsSvc, indexID)

	productoRepo := infrasheets.NewProductoRepository(gestorClient)
	depositoRepo := infrasheets.NewDepositoRepository(gestorClient)
	stockRepo := infrasheets.NewStockRepository(gestorClient)
	imagenRepo := infrasheets.NewImagenRepository(gestorClient)
	usuarioRepo := infrasheets.NewUsuarioRepository(gestorClient)
	logRepo := infrasheets.NewLogRepository(gestorClient)
	indexRepo := infrasheets.NewIndexRepository(indexClient)

	bus := events.New()
	permisos := infradrive.NewManager(driveSvc)
	uploader := infradrive.NewUploader(driveSvc, folders, log)
	bootstrapper := infrasheets.NewBootstrapper(sheetsSvc)

	cache, err := imagecache.New(imagecache.Options{
		Dir:        cfg.Cache.Dir,
		TTL:        time.Duration(cfg.Cache.TTLSeconds) * time.Second,
		MaxItems:   cfg.Cache.MaxItems,
		MaxFetches: int64(cfg.Cache.MaxFetches),
	}, func(ctx context.Context, recid string) (string, error) {
		link, err := imagenRepo.GetLinkByRecID(ctx, recid)
		if err != nil {
			return "", err
		}
		if fileID := infradrive.ExtractDriveID(link); fileID != "" {
			return infradrive.DownloadURL(fileID), nil
		}
		return link, nil
	}, imagecache.HTTPFetcher(nil), log)
	if err != nil {
		log.Fatal().Err(err).Msg("caché de imágenes")
	}

	logUC := usecase.NewLogUseCase(logRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo, bus)
	depositoUC := usecase.NewDepositoUseCase(depositoRepo, logUC, bus, log)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, permisos, cfg.Google.SpreadsheetID, logUC, bus, log)
	imagenUC := usecase.NewImagenUseCase(imagenRepo, uploader, cache, log)
	stockUC := stock.New(stockRepo, productoRepo, depositoRepo, logUC, bus, log)
	sheetUC := usecase.NewSheetUseCase(indexRepo, folders, bootstrapper)
	authSvc := auth.NewService(cfg.Google, usuarioRepo, usuarioUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Auditoría de refrescos: cada mutación publicada queda en el log estructurado.
	for _, topic := range []string{
		events.TopicStockRefresh,
		events.TopicProductoRefresh,
		events.TopicDepositoRefresh,
		events.TopicUsuarioRefresh,
	} {
		topic := topic
		bus.Subscribe(topic, func(data any) {
			log.Debug().Str("topic", topic).Interface("recid", data).Msg("refresco publicado")
		})
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC: productoUC,
		DepositoUC: depositoUC,
		StockUC:    stockUC,
		UsuarioUC:  usuarioUC,
		ImagenUC:   imagenUC,
		LogUC:      logUC,
		SheetUC:    sheetUC,
		AuthSvc:    authSvc,
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
