package webserver

import (
	"context"
	"time"

	"github.com/batyskurylys/catalog-service/internal/app"
	"github.com/batyskurylys/catalog-service/internal/catalog"
	"github.com/batyskurylys/catalog-service/internal/inquiry"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// WebServer is the JSON HTTP surface: catalog reads, product writes and
// inquiry submission. Its dependencies are injected at construction so tests
// can stand it up against fakes.
type WebServer struct {
	app        app.AppContext
	root       *echo.Echo
	categories catalog.CategoryRepository
	products   catalog.ProductRepository
	inquiries  *inquiry.Service
}

func New(appCtx app.AppContext,
	categories catalog.CategoryRepository,
	products catalog.ProductRepository,
	inquiries *inquiry.Service,
) *WebServer {
	s := &WebServer{
		app:        appCtx,
		categories: categories,
		products:   products,
		inquiries:  inquiries,
	}
	s.root = s.buildEcho()
	return s
}

func (s *WebServer) buildEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	// Storefront clients are served from a separate origin.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.L().Info("http request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))

	e.GET("/", s.healthCheck)
	s.registerCatalogRoutes(e)
	s.registerInquiryRoutes(e)
	return e
}

func (s *WebServer) registerCatalogRoutes(e *echo.Echo) {
	e.GET("/categories", s.listCategories)
	e.GET("/products", s.listProducts)
	e.GET("/products/:id", s.getProduct)
	e.GET("/category/:id/", s.listProductsByCategory)
	e.POST("/products", s.createProduct)
	e.PUT("/products/:id", s.updateProduct)
}

func (s *WebServer) registerInquiryRoutes(e *echo.Echo) {
	e.POST("/admin/request", s.submitRequest)
	e.GET("/admin/requests", s.listRequests)
	e.GET("/admin/requests/:id", s.getRequest)
}

func (s *WebServer) healthCheck(c echo.Context) error {
	return ok(c, map[string]string{"message": "Hello"})
}

// Start blocks serving HTTP on the configured listen address.
func (s *WebServer) Start() error {
	listen := s.app.Config().System.Listen
	s.root.Server.ReadTimeout = 30 * time.Second
	s.root.Server.WriteTimeout = 60 * time.Second
	zap.S().Infof("web server listening on %s", listen)
	return s.root.Start(listen)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}
