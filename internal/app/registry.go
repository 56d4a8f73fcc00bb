package app

import (
	"github.com/SalimDiallo/LouraBackend/internal/auth"
	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/config"
	"github.com/SalimDiallo/LouraBackend/internal/contract"
	"github.com/SalimDiallo/LouraBackend/internal/department"
	"github.com/SalimDiallo/LouraBackend/internal/employee"
	"github.com/SalimDiallo/LouraBackend/internal/leave"
	"github.com/SalimDiallo/LouraBackend/internal/messaging/kafka"
	"github.com/SalimDiallo/LouraBackend/internal/middleware"
	"github.com/SalimDiallo/LouraBackend/internal/organization"
	"github.com/SalimDiallo/LouraBackend/internal/payroll"
	"github.com/SalimDiallo/LouraBackend/internal/permission"
	"github.com/SalimDiallo/LouraBackend/internal/position"
	"github.com/SalimDiallo/LouraBackend/internal/role"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
) error {
	logger := zap.L()

	// --- Repositories ---
	permissionRepo := permission.NewRepository(gormDB)
	organizationRepo := organization.NewRepository(gormDB)
	roleRepo := role.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	positionRepo := position.NewRepository(gormDB)
	contractRepo := contract.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Policy Engine ---
	engine := authz.NewEngine(newDirectory(organizationRepo, employeeRepo))

	// --- Services ---
	tokenIssuer := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := auth.NewService(organizationRepo, employeeRepo, tokenIssuer, rdb)
	permissionService := permission.NewService(permissionRepo, rdb)
	organizationService := organization.NewService(organizationRepo)
	roleService := role.NewService(gormDB, roleRepo, permissionService)
	employeeService := employee.NewService(gormDB, employeeRepo, roleRepo, permissionRepo, outboxRepo)
	departmentService := department.NewService(departmentRepo, employeeRepo)
	positionService := position.NewService(positionRepo)
	contractService := contract.NewService(contractRepo, employeeRepo)
	leaveService := leave.NewService(gormDB, leaveRepo, outboxRepo)
	payrollService := payroll.NewService(payrollRepo, employeeRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	permissionHandler := permission.NewHandler(permissionService)
	organizationHandler := organization.NewHandler(organizationService)
	roleHandler := role.NewHandler(roleService)
	employeeHandler := employee.NewHandler(employeeService)
	departmentHandler := department.NewHandler(departmentService)
	positionHandler := position.NewHandler(positionService)
	contractHandler := contract.NewHandler(contractService)
	leaveHandler := leave.NewHandler(leaveService)
	payrollHandler := payroll.NewHandler(payrollService)

	// --- Routes Registration ---
	router.Use(middleware.ContextLogger(logger))

	api := router.Group("/api/v1")
	authed := api.Group("",
		middleware.Authenticate([]byte(cfg.JWTSecret)),
		middleware.ResolveScope(engine),
	)
	{
		auth.RegisterRoutes(api, authed, authHandler)
		permission.RegisterRoutes(authed, permissionHandler)
		organization.RegisterRoutes(authed, organizationHandler)
		role.RegisterRoutes(authed, roleHandler)
		employee.RegisterRoutes(authed, employeeHandler)
		department.RegisterRoutes(authed, departmentHandler)
		position.RegisterRoutes(authed, positionHandler)
		contract.RegisterRoutes(authed, contractHandler)
		leave.RegisterRoutes(authed, leaveHandler, engine)
		payroll.RegisterRoutes(authed, payrollHandler)
	}

	return nil
}
