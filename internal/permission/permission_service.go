package permission

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	catalogCacheKey = "permissions:catalog"
	catalogCacheTTL = 10 * time.Minute
)

//go:generate mockgen -source=permission_service.go -destination=mock/permission_service_mock.go -package=mock
type Service interface {
	// Sync loads the built-in catalog into the store, create-or-update by
	// code. Safe to run on every deploy.
	Sync(ctx context.Context) (SyncResult, error)
	List(ctx context.Context) ([]PermissionResponse, error)
	// ResolveCodes maps codes to catalog rows. Unknown codes are dropped,
	// not rejected.
	ResolveCodes(ctx context.Context, codes []string) ([]Permission, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("permission.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("permission.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Sync(ctx context.Context) (SyncResult, error) {
	existing, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("sync list existing permissions failed", zap.Error(err))
		return SyncResult{}, err
	}

	known := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		known[p.Code] = struct{}{}
	}

	codes := Codes()
	sort.Strings(codes)

	var result SyncResult
	for _, code := range codes {
		def := Catalog[code]
		if err := s.repo.Upsert(ctx, &Permission{
			Code:        code,
			Name:        def.Name,
			Category:    def.Category,
			Description: def.Description,
		}); err != nil {
			s.logger.Error("sync upsert permission failed",
				zap.String("code", code),
				zap.Error(err),
			)
			return SyncResult{}, err
		}

		if _, ok := known[code]; ok {
			result.Updated++
		} else {
			result.Created++
		}
	}

	if s.rdb != nil {
		_ = s.rdb.Del(ctx, catalogCacheKey).Err()
	}

	s.logger.Info("permission catalog synced",
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
	)
	return result, nil
}

func (s *service) List(ctx context.Context) ([]PermissionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, catalogCacheKey).Bytes(); err == nil {
			var resp []PermissionResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Collapse concurrent cache misses into one query.
	v, err, _ := s.sf.Do(catalogCacheKey, func() (any, error) {
		perms, err := s.repo.ListAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]PermissionResponse, len(perms))
		for i, p := range perms {
			resp[i] = mapToResponse(p)
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				_ = s.rdb.Set(ctx, catalogCacheKey, string(payload), catalogCacheTTL).Err()
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]PermissionResponse), nil
}

func (s *service) ResolveCodes(ctx context.Context, codes []string) ([]Permission, error) {
	return s.repo.FindByCodes(ctx, codes)
}

func mapToResponse(p Permission) PermissionResponse {
	return PermissionResponse{
		ID:          p.ID.String(),
		Code:        p.Code,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
	}
}
