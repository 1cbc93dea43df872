package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nekogravitycat/group-read-service/internal/api"
	"github.com/nekogravitycat/group-read-service/internal/auth"
	"github.com/nekogravitycat/group-read-service/internal/client"
	"github.com/nekogravitycat/group-read-service/internal/codevalue"
	"github.com/nekogravitycat/group-read-service/internal/group"
	"github.com/nekogravitycat/group-read-service/internal/office"
	"github.com/nekogravitycat/group-read-service/internal/staff"
	"github.com/nekogravitycat/group-read-service/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	Logger       *zap.Logger
	// ScopeLookups restricts group lookups to the caller's office hierarchy.
	ScopeLookups bool
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router       *gin.Engine
	JWTManager   *auth.JWTManager
	GroupService group.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Init Components
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo)

	// Group Module
	groupRepo := group.NewPgxRepository(cfg.DBPool)
	groupService := group.NewService(groupRepo, group.Providers{
		Centers:    groupRepo,
		Offices:    office.NewPgxRepository(cfg.DBPool),
		Staff:      staff.NewPgxRepository(cfg.DBPool),
		Clients:    client.NewPgxRepository(cfg.DBPool),
		CodeValues: codevalue.NewPgxRepository(cfg.DBPool),
	}, logger.Named("group"), cfg.ScopeLookups)

	// API Router Config
	routerParams := api.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		Logger:       logger.Named("http"),
		UserService:  userService,
		GroupService: groupService,
		JWTManager:   jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:       router,
		JWTManager:   jwtManager,
		GroupService: groupService,
	}
}
