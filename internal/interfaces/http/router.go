package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tacticadev/gestor-api/internal/application/auth"
	"github.com/tacticadev/gestor-api/internal/application/stock"
	"github.com/tacticadev/gestor-api/internal/application/usecase"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC *usecase.ProductoUseCase
	DepositoUC *usecase.DepositoUseCase
	StockUC    *stock.UseCase
	UsuarioUC  *usecase.UsuarioUseCase
	ImagenUC   *usecase.ImagenUseCase
	LogUC      *usecase.LogUseCase
	SheetUC    *usecase.SheetUseCase
	AuthSvc    *auth.Service
	JWTSecret  string
}

// Router registra las rutas de la API. Lectura para cualquier rango con
// token válido; mutaciones solo para Administrador y Editor.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthSvc)
	authGroup.Get("/login", authHandler.Login)
	authGroup.Get("/callback", authHandler.Callback)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	editor := RequireEditor()

	// Productos
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByRecID)
	productos.Post("/", editor, productoHandler.Create)
	productos.Put("/:id", editor, productoHandler.Update)
	productos.Delete("/:id", editor, productoHandler.Delete)

	// Depósitos
	depositos := protected.Group("/depositos")
	depositoHandler := NewDepositoHandler(deps.DepositoUC)
	depositos.Get("/", depositoHandler.List)
	depositos.Get("/:id", depositoHandler.GetByRecID)
	depositos.Post("/", editor, depositoHandler.Create)
	depositos.Put("/:id", editor, depositoHandler.Update)
	depositos.Delete("/:id", editor, depositoHandler.Delete)

	// Stock
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/totales/producto", stockHandler.TotalesPorProducto)
	stockGroup.Get("/totales/deposito", stockHandler.TotalesPorDeposito)
	stockGroup.Get("/:id", stockHandler.GetByRecID)
	stockGroup.Post("/", editor, stockHandler.Create)
	stockGroup.Post("/:id/cargar", editor, stockHandler.Cargar)
	stockGroup.Post("/:id/descargar", editor, stockHandler.Descargar)
	stockGroup.Post("/:id/mover", editor, stockHandler.Mover)
	stockGroup.Delete("/:id", editor, stockHandler.Delete)

	// Usuarios (solo Administrador muta)
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	admin := RequireRango(entity.RangoAdministrador)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByRecID)
	usuarios.Post("/", admin, usuarioHandler.Invitar)
	usuarios.Put("/:id/rango", admin, usuarioHandler.CambiarRango)
	usuarios.Delete("/:id", admin, usuarioHandler.Delete)

	// Imágenes
	imagenes := protected.Group("/imagenes")
	imagenHandler := NewImagenHandler(deps.ImagenUC)
	imagenes.Get("/", imagenHandler.List)
	imagenes.Get("/:id", imagenHandler.Link)
	imagenes.Get("/:id/contenido", imagenHandler.Contenido)
	imagenes.Post("/", editor, imagenHandler.Subir)
	imagenes.Delete("/:id", editor, imagenHandler.Eliminar)

	// Bitácora
	logs := protected.Group("/logs")
	logHandler := NewLogHandler(deps.LogUC)
	logs.Get("/", logHandler.List)
	logs.Post("/", editor, logHandler.Append)

	// Planillas del gestor
	sheets := protected.Group("/sheets")
	sheetHandler := NewSheetHandler(deps.SheetUC)
	sheets.Get("/", sheetHandler.List)
	sheets.Post("/", admin, sheetHandler.Create)
	sheets.Put("/:id", admin, sheetHandler.Rename)
	sheets.Delete("/:id", admin, sheetHandler.Delete)
}
