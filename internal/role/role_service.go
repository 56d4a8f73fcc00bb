package role

import (
	"context"
	"errors"
	"strings"

	"github.com/SalimDiallo/LouraBackend/internal/permission"
	roleerrors "github.com/SalimDiallo/LouraBackend/internal/role/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=role_service.go -destination=mock/role_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, orgID uuid.UUID, req CreateRoleRequest) (RoleResponse, error)
	List(ctx context.Context, orgID uuid.UUID) ([]RoleResponse, error)
	GetByID(ctx context.Context, orgID uuid.UUID, id string) (RoleResponse, error)
	Update(ctx context.Context, orgID uuid.UUID, id string, req UpdateRoleRequest) (RoleResponse, error)
	Delete(ctx context.Context, orgID uuid.UUID, id string) error

	// SyncPredefined reconciles the global system role templates. Safe to run
	// on every boot.
	SyncPredefined(ctx context.Context) error
}

type service struct {
	db          *gorm.DB
	repo        Repository
	permissions permission.Service
	logger      *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, permissions permission.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
	}
	return &service{db: db, repo: repo, permissions: permissions, logger: l}
}

func (s *service) Create(ctx context.Context, orgID uuid.UUID, req CreateRoleRequest) (RoleResponse, error) {
	perms, err := s.permissions.ResolveCodes(ctx, req.PermissionCodes)
	if err != nil {
		return RoleResponse{}, err
	}
	if dropped := len(req.PermissionCodes) - len(perms); dropped > 0 {
		s.logger.Warn("dropped unknown permission codes on role create",
			zap.String("organization_id", orgID.String()),
			zap.String("code", req.Code),
			zap.Int("dropped", dropped),
		)
	}

	role := &Role{
		OrganizationID: &orgID,
		Code:           strings.ToLower(strings.TrimSpace(req.Code)),
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		IsActive:       true,
		Permissions:    perms,
	}

	if err := s.repo.Create(ctx, role); err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("role created",
		zap.String("role_id", role.ID.String()),
		zap.String("organization_id", orgID.String()),
		zap.String("code", role.Code),
		zap.Int("permissions", len(perms)),
	)
	return toRoleResponse(role), nil
}

func (s *service) List(ctx context.Context, orgID uuid.UUID) ([]RoleResponse, error) {
	roles, err := s.repo.ListForOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	out := make([]RoleResponse, 0, len(roles))
	for i := range roles {
		out = append(out, toRoleResponse(&roles[i]))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, orgID uuid.UUID, id string) (RoleResponse, error) {
	role, err := s.visibleRole(ctx, orgID, id)
	if err != nil {
		return RoleResponse{}, err
	}
	return toRoleResponse(role), nil
}

func (s *service) Update(ctx context.Context, orgID uuid.UUID, id string, req UpdateRoleRequest) (RoleResponse, error) {
	role, err := s.visibleRole(ctx, orgID, id)
	if err != nil {
		return RoleResponse{}, err
	}
	if role.IsSystemRole {
		return RoleResponse{}, roleerrors.ErrSystemRoleImmutable
	}

	if req.Name != nil {
		role.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		role.Description = *req.Description
	}
	if req.IsActive != nil {
		role.IsActive = *req.IsActive
	}

	var perms []permission.Permission
	if req.PermissionCodes != nil {
		if perms, err = s.permissions.ResolveCodes(ctx, req.PermissionCodes); err != nil {
			return RoleResponse{}, err
		}
	}

	// Field changes and the permission replacement land together or not at
	// all.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Update(ctx, role); err != nil {
			return mapRepositoryError(err)
		}
		if req.PermissionCodes != nil {
			if err := qtx.ReplacePermissions(ctx, role, perms); err != nil {
				return mapRepositoryError(err)
			}
			role.Permissions = perms
		}
		return nil
	})
	if err != nil {
		return RoleResponse{}, err
	}

	s.logger.Info("role updated", zap.String("role_id", role.ID.String()))
	return toRoleResponse(role), nil
}

func (s *service) Delete(ctx context.Context, orgID uuid.UUID, id string) error {
	role, err := s.visibleRole(ctx, orgID, id)
	if err != nil {
		return err
	}
	if role.IsSystemRole {
		return roleerrors.ErrSystemRoleImmutable
	}

	assigned, err := s.repo.CountAssignments(ctx, role.ID)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return roleerrors.ErrRoleInUse
	}

	if err := s.repo.Delete(ctx, role.ID); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.Info("role deleted", zap.String("role_id", role.ID.String()))
	return nil
}

func (s *service) SyncPredefined(ctx context.Context) error {
	for _, def := range PredefinedRoles() {
		perms, err := s.permissions.ResolveCodes(ctx, def.Permissions)
		if err != nil {
			return err
		}

		existing, err := s.repo.FindByOrgAndCode(ctx, nil, def.Code)
		if err != nil {
			mapped := mapRepositoryError(err)
			if !errors.Is(mapped, roleerrors.ErrRoleNotFound) {
				return mapped
			}
			created := &Role{
				Code:         def.Code,
				Name:         def.Name,
				Description:  def.Description,
				IsSystemRole: true,
				IsActive:     true,
				Permissions:  perms,
			}
			if err := s.repo.Create(ctx, created); err != nil {
				return mapRepositoryError(err)
			}
			s.logger.Info("system role created", zap.String("code", def.Code))
			continue
		}

		existing.Name = def.Name
		existing.Description = def.Description
		existing.IsSystemRole = true
		existing.IsActive = true
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			qtx := s.repo.WithTx(tx)
			if err := qtx.Update(ctx, existing); err != nil {
				return mapRepositoryError(err)
			}
			return mapRepositoryError(qtx.ReplacePermissions(ctx, existing, perms))
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// visibleRole loads a role the organization is allowed to see: its own roles
// and the global templates. Anything else reads as not found.
func (s *service) visibleRole(ctx context.Context, orgID uuid.UUID, id string) (*Role, error) {
	roleID, err := uuid.Parse(id)
	if err != nil {
		return nil, roleerrors.ErrInvalidRoleID
	}

	role, err := s.repo.FindByID(ctx, roleID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if role.OrganizationID != nil && *role.OrganizationID != orgID {
		return nil, roleerrors.ErrRoleNotFound
	}
	return role, nil
}
