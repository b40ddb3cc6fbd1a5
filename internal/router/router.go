package router

import (
	"time"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/config"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/handler"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/middleware"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/repository"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/service"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	gastoRepo := repository.NewGastoRepository(db)
	monederoRepo := repository.NewMonederoRepository(db)
	ajustesRepo := repository.NewAjustesRepository(db)
	movimientoStockRepo := repository.NewMovimientoStockRepository(db)
	carritoStore := repository.NewCarritoStore(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo, movimientoStockRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	carritoSvc := service.NewCarritoService(carritoStore, productoRepo, ajustesRepo)
	monederoSvc := service.NewMonederoService(monederoRepo, clienteRepo)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, clienteRepo, ajustesRepo,
		movimientoStockRepo, carritoSvc, monederoSvc, dispatcher)
	compraSvc := service.NewCompraService(compraRepo, productoRepo, movimientoStockRepo)
	gastoSvc := service.NewGastoService(gastoRepo)
	ajustesSvc := service.NewAjustesService(ajustesRepo)
	reporteSvc := service.NewReporteService(ventaRepo, gastoRepo, compraRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	carritoH := handler.NewCarritoHandler(carritoSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	gastosH := handler.NewGastosHandler(gastoSvc)
	monederoH := handler.NewMonederoHandler(monederoSvc, clienteSvc)
	ajustesH := handler.NewAjustesHandler(ajustesSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		vendedores := middleware.RequireRole("vendedor", "administrador")
		admin := middleware.RequireRole("administrador")

		// Carrito — always scoped to the authenticated user
		carrito := v1.Group("/carrito", vendedores)
		{
			carrito.GET("", carritoH.Obtener)
			carrito.DELETE("", carritoH.Vaciar)
			carrito.POST("/lineas", carritoH.Agregar)
			carrito.PUT("/lineas/:lineaId", carritoH.EditarCantidad)
			carrito.DELETE("/lineas/:lineaId", carritoH.Quitar)
		}

		// Ventas
		v1.POST("/ventas", vendedores, ventasH.Confirmar)
		v1.GET("/ventas", vendedores, ventasH.Listar)
		v1.GET("/ventas/:folio", vendedores, ventasH.Obtener)
		v1.DELETE("/ventas/:folio", admin, ventasH.Cancelar)
		v1.PATCH("/ventas/:folio", admin, ventasH.EditarFolio)
		v1.PUT("/ventas/lineas/:lineaId", admin, ventasH.EditarLinea)

		// Productos — reads for everyone, writes administrador only
		v1.GET("/productos", vendedores, productosH.Listar)
		v1.GET("/productos/:id", vendedores, productosH.Obtener)
		v1.GET("/productos/:id/movimientos", vendedores, productosH.Movimientos)
		prods := v1.Group("/productos", admin)
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Desactivar)
			prods.PATCH("/:id/reactivar", productosH.Reactivar)
		}

		// Clientes + monedero
		v1.GET("/clientes", vendedores, clientesH.Listar)
		v1.GET("/clientes/:id", vendedores, clientesH.Obtener)
		v1.POST("/clientes", vendedores, clientesH.Crear)
		v1.PUT("/clientes/:id", vendedores, clientesH.Actualizar)
		v1.DELETE("/clientes/:id", admin, clientesH.Eliminar)
		v1.POST("/clientes/:id/monedero/solicitar", vendedores, clientesH.SolicitarMonedero)
		v1.POST("/clientes/:id/monedero/activar", admin, clientesH.ActivarMonedero)
		v1.POST("/clientes/:id/monedero/desactivar", admin, clientesH.DesactivarMonedero)
		v1.GET("/clientes/:id/monedero", vendedores, monederoH.Saldo)
		v1.GET("/clientes/:id/monedero/movimientos", vendedores, monederoH.EstadoCuenta)
		v1.POST("/clientes/:id/monedero/deposito", admin, monederoH.Deposito)
		v1.POST("/clientes/:id/monedero/retiro", admin, monederoH.Retiro)

		// Compras y gastos — administrador only
		compras := v1.Group("/compras", admin)
		{
			compras.POST("", comprasH.Crear)
			compras.GET("", comprasH.Listar)
			compras.PUT("/:id", comprasH.Actualizar)
			compras.DELETE("/:id", comprasH.Eliminar)
		}
		gastos := v1.Group("/gastos", admin)
		{
			gastos.POST("", gastosH.Crear)
			gastos.GET("", gastosH.Listar)
			gastos.PUT("/:id", gastosH.Actualizar)
			gastos.DELETE("/:id", gastosH.Eliminar)
		}

		// Ajustes — read for everyone (the POS needs the tier thresholds)
		v1.GET("/ajustes", vendedores, ajustesH.Obtener)
		v1.PUT("/ajustes", admin, ajustesH.Actualizar)

		// Reportes
		v1.GET("/reportes/flujo-caja", admin, reportesH.FlujoDeCaja)

		// Usuarios — administrador only
		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.PATCH("/:id/reactivar", usuariosH.Reactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
