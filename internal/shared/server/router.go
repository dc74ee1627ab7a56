package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/ats"
	"resume-studio/internal/drafts"
	"resume-studio/internal/editor"
	"resume-studio/internal/export"
	"resume-studio/internal/preview"
	"resume-studio/internal/services/health"
	"resume-studio/internal/shared/config"
	"resume-studio/internal/shared/metrics"
	"resume-studio/internal/shared/server/middleware"
	"resume-studio/internal/shared/server/respond"
	"resume-studio/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		exportRateLimit(),
	)

	// Dependencies. A missing or unreachable database degrades to the
	// in-memory draft store instead of refusing to start.
	var repo drafts.Repo
	if cfg.DatabaseURL != "" {
		sqlDB, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else if err := db.RunMigrations(context.Background(), sqlDB); err != nil {
			log.Printf("failed to run migrations, falling back to memory: %v", err)
		} else {
			repo = &drafts.PGRepo{DB: sqlDB}
		}
	}
	if repo == nil {
		repo = drafts.NewMemoryRepo()
	}

	draftSvc := &drafts.Service{Repo: repo}
	draftHandler := drafts.NewHandler(draftSvc)

	sessions := editor.NewRegistry()
	editorHandler := editor.NewHandler(sessions, draftSvc, ats.Scorer{})

	capturer := preview.NewCapturer()
	if cfg.ChromePath != "" {
		capturer.ChromePath = cfg.ChromePath
	}
	if cfg.ExportTimeout > 0 {
		capturer.Timeout = cfg.ExportTimeout
	}
	exportHandler := &export.Handler{Sessions: sessions, Preview: capturer}

	healthSvc := health.NewService()

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	api.GET("/metrics", metrics.Handler())
	editorHandler.RegisterRoutes(api)
	draftHandler.RegisterRoutes(api)
	exportHandler.RegisterRoutes(api)

	return r
}

// exportRateLimit throttles PDF generation, which spawns a headless browser
// per visual export. Everything else rides the default bucket.
func exportRateLimit() gin.HandlerFunc {
	return middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/sessions/:id/export" {
				return "EXPORT"
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"EXPORT": {Rate: 0.5, Burst: 3},
		},
	})
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
