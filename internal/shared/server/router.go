package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/analyses"
	"resume-optimizer/internal/documents"
	"resume-optimizer/internal/optimizations"
	"resume-optimizer/internal/services/health"
	"resume-optimizer/internal/shared/config"
	"resume-optimizer/internal/shared/metrics"
	"resume-optimizer/internal/shared/server/middleware"
	"resume-optimizer/internal/shared/server/respond"
	"resume-optimizer/internal/shared/storage/db"
	"resume-optimizer/internal/shared/storage/object"
	localstore "resume-optimizer/internal/shared/storage/object/local"
	s3store "resume-optimizer/internal/shared/storage/object/s3"
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
		middleware.RateLimit(rateLimits()),
	)

	// Dependencies
	store := newObjectStore(cfg)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var docRepo documents.DocumentsRepo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
	}
	docSvc := &documents.Service{Store: store, Repo: docRepo}
	docHandler := documents.NewHandler(docSvc)
	docHandler.MaxUploadBytes = cfg.MaxUploadBytes

	var analysisRepo analyses.Repo
	if sqlDB != nil {
		analysisRepo = &analyses.PGRepo{DB: sqlDB}
	} else {
		analysisRepo = analyses.NewMemoryRepo()
	}
	analysisSvc := analyses.NewService(analysisRepo, docSvc, cfg.AnalysisVersion)
	analysisHandler := analyses.NewHandler(analysisSvc)

	var optimizationRepo optimizations.Repo
	if sqlDB != nil {
		optimizationRepo = &optimizations.PGRepo{DB: sqlDB}
	} else {
		optimizationRepo = optimizations.NewMemoryRepo()
	}
	optimizationSvc := optimizations.NewService(optimizationRepo, docSvc, store)
	optimizationHandler := optimizations.NewHandler(optimizationSvc)

	healthSvc := health.NewService()

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	docHandler.RegisterRoutes(api)
	analysisHandler.RegisterRoutes(api)
	optimizationHandler.RegisterRoutes(api)

	return r
}

// newObjectStore selects the configured object store backend. S3 setup
// failures fall back to the local store so the API still comes up.
func newObjectStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			log.Printf("failed to init s3 store, falling back to local: %v", err)
			return localstore.New(cfg.LocalStoreDir)
		}
		return store
	}
	return localstore.New(cfg.LocalStoreDir)
}

func rateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":  {Rate: 10, Burst: 30},
			"UPLOAD":   {Rate: 0.5, Burst: 5},
			"PIPELINE": {Rate: 1, Burst: 10},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method != http.MethodPost {
				return ""
			}
			switch {
			case c.FullPath() == "/api/v1/documents":
				return "UPLOAD"
			case c.FullPath() == "/api/v1/documents/:id/analyze",
				c.FullPath() == "/api/v1/documents/:id/optimize":
				return "PIPELINE"
			}
			return ""
		},
	}
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
