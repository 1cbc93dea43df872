package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/group-read-service/internal/auth"
	"github.com/nekogravitycat/group-read-service/internal/group"
	groupHttp "github.com/nekogravitycat/group-read-service/internal/group/http"
	"github.com/nekogravitycat/group-read-service/internal/user"
)

// Config carries the services and settings the router is assembled from.
type Config struct {
	IsProduction bool
	// ProdOrigins is a comma separated list of allowed CORS origins in production.
	ProdOrigins  string
	Logger       *zap.Logger
	UserService  user.Service
	GroupService group.Service
	JWTManager   *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - RequestLogger: Tags each request with an ID and logs it with zap.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	// Without any allowed origin, cross-origin requests are simply not served.
	if origins := allowedOrigins(cfg.IsProduction, cfg.ProdOrigins); len(origins) > 0 {
		config := cors.DefaultConfig()
		config.AllowOrigins = origins
		config.AllowMethods = []string{"GET", "OPTIONS"}
		config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", RequestIDHeader}
		config.ExposeHeaders = []string{RequestIDHeader}
		r.Use(cors.New(config))
	}

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// callerMiddleware: Resolves the authenticated user into a scoped caller.
	callerMiddleware := RequireCaller(cfg.UserService)

	groupHandler := groupHttp.NewHandler(cfg.GroupService, cfg.Logger)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		groupHttp.RegisterRoutes(v1, groupHandler, authMiddleware, callerMiddleware)
	}

	return r
}

func allowedOrigins(isProduction bool, prodOrigins string) []string {
	if !isProduction {
		return []string{
			"http://localhost:8081", // Swagger
			"http://localhost:3000",
		}
	}

	var origins []string
	for _, o := range strings.Split(prodOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
