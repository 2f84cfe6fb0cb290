package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"host-pricing/internal/handler/api"
	"host-pricing/internal/handler/middleware"
	"host-pricing/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, pricingHandler *api.PricingHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, pricingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, pricingHandler *api.PricingHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		pricingGroup := apiGroup.Group("/pricing")
		pricingGroup.Use(authMiddleware.RequireAuth())
		{
			addRoutes(pricingGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: pricingHandler.Get},
				{Method: http.MethodPut, Path: "", Handler: pricingHandler.Save},
				{Method: http.MethodPut, Path: "/base-price", Handler: pricingHandler.SetBasePrice},
				{Method: http.MethodPost, Path: "/rules", Handler: pricingHandler.AddRule},
				{Method: http.MethodPatch, Path: "/rules/:id", Handler: pricingHandler.UpdateRule},
				{Method: http.MethodDelete, Path: "/rules/:id", Handler: pricingHandler.DeleteRule},
				{Method: http.MethodPut, Path: "/overrides/:date", Handler: pricingHandler.SetOverride},
				{Method: http.MethodDelete, Path: "/overrides/:date", Handler: pricingHandler.DeleteOverride},
				{Method: http.MethodGet, Path: "/calendar", Handler: pricingHandler.Calendar},
				{Method: http.MethodGet, Path: "/resolve", Handler: pricingHandler.Resolve},
				{Method: http.MethodPost, Path: "/preview", Handler: pricingHandler.Preview},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
