package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/webcode-studio/studio-backend/config"
	httpapi "github.com/webcode-studio/studio-backend/internal/api/http"
	"github.com/webcode-studio/studio-backend/internal/api/http/middleware"
	dochttp "github.com/webcode-studio/studio-backend/internal/documents/http"
	docrepo "github.com/webcode-studio/studio-backend/internal/documents/repository"
	docservice "github.com/webcode-studio/studio-backend/internal/documents/service"
	sugghttp "github.com/webcode-studio/studio-backend/internal/suggestions/http"
	suggllm "github.com/webcode-studio/studio-backend/internal/suggestions/llm"
	suggrepo "github.com/webcode-studio/studio-backend/internal/suggestions/repository"
	suggservice "github.com/webcode-studio/studio-backend/internal/suggestions/service"
	wshttp "github.com/webcode-studio/studio-backend/internal/workspaces/http"
	wsrepo "github.com/webcode-studio/studio-backend/internal/workspaces/repository"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Config      *config.Config
	Pool        *pgxpool.Pool
	SQLDB       *sql.DB
	Redis       *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Config.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "X-API-Key", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Pool, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.APIKeyMiddleware(dep.Config.Server.APIKey))
	api.Use(middleware.RequestIDMiddleware())

	wsRepo := wsrepo.NewWorkspaceRepository(dep.SQLDB)
	docRepo := docrepo.NewDocumentRepository(dep.Pool)
	docSvc := docservice.NewDocumentService(docRepo)

	historyRepo := suggrepo.NewHistoryRepository(dep.Pool)
	cacheRepo := suggrepo.NewCacheRepository(dep.Redis)
	pipeline := suggservice.NewService(
		dep.Config.AI,
		suggllm.NewClient(dep.Config.AI),
		docRepo,
		historyRepo,
		cacheRepo,
	)

	workspacesGroup := api.Group("/workspaces")
	wshttp.New(wsRepo).Register(workspacesGroup)
	dochttp.New(docSvc).RegisterWorkspaceSubroutes(workspacesGroup)

	suggHandler := sugghttp.New(pipeline, historyRepo)
	suggHandler.RegisterWorkspaceSubroutes(workspacesGroup)
	suggHandler.RegisterMetrics(api)

	return r
}
