package app

import (
	"context"

	"github.com/SalimDiallo/LouraBackend/internal/config"
	"github.com/SalimDiallo/LouraBackend/internal/organization"
	"github.com/SalimDiallo/LouraBackend/internal/permission"
	"github.com/SalimDiallo/LouraBackend/internal/role"
	"github.com/SalimDiallo/LouraBackend/internal/shared/connection"

	"go.uber.org/zap"
)

// RunSeed reconciles the permission catalog, the system role templates and
// the organization sector catalog. Safe to run on every deploy.
func RunSeed(cfg config.Config) error {
	logger := zap.L().Named("app.seed")

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	permissionRepo := permission.NewRepository(gormDB)
	permissionService := permission.NewService(permissionRepo, redisClient)

	roleRepo := role.NewRepository(gormDB)
	roleService := role.NewService(gormDB, roleRepo, permissionService)

	ctx := context.Background()

	result, err := permissionService.Sync(ctx)
	if err != nil {
		return err
	}
	logger.Info("permission catalog reconciled",
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
	)

	if err := roleService.SyncPredefined(ctx); err != nil {
		return err
	}
	logger.Info("system role templates reconciled")

	organizationRepo := organization.NewRepository(gormDB)
	organizationService := organization.NewService(organizationRepo)

	created, err := organizationService.SeedCategories(ctx)
	if err != nil {
		return err
	}
	logger.Info("sector catalog reconciled", zap.Int("created", created))

	return nil
}
