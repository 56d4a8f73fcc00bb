package organization

import (
	"context"
	"errors"
	"strings"

	organizationerrors "github.com/SalimDiallo/LouraBackend/internal/organization/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_service.go -destination=mock/organization_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, adminID string, req CreateOrganizationRequest) (OrganizationResponse, error)
	GetAllByAdmin(ctx context.Context, adminID string) ([]OrganizationResponse, error)
	GetByID(ctx context.Context, adminID, id string) (OrganizationResponse, error)
	Update(ctx context.Context, adminID, id string, req UpdateOrganizationRequest) (OrganizationResponse, error)
	Delete(ctx context.Context, adminID, id string) error
	UpdateSettings(ctx context.Context, adminID, id string, req UpdateSettingsRequest) (SettingsResponse, error)

	// ListCategories returns the shared sector catalog. Read-only for API
	// callers; rows come from SeedCategories.
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
	SeedCategories(ctx context.Context) (created int, err error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("organization.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, adminID string, req CreateOrganizationRequest) (OrganizationResponse, error) {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return OrganizationResponse{}, organizationerrors.ErrAdminNotFound
	}

	org := &Organization{
		Name:      strings.TrimSpace(req.Name),
		Subdomain: strings.ToLower(strings.TrimSpace(req.Subdomain)),
		LogoURL:   req.LogoURL,
		AdminID:   adminUUID,
		IsActive:  true,
	}

	if req.CategoryID != nil {
		categoryID, err := s.resolveCategoryID(ctx, *req.CategoryID)
		if err != nil {
			return OrganizationResponse{}, err
		}
		org.CategoryID = categoryID
	}

	if err := s.repo.Create(ctx, org); err != nil {
		mapped := mapRepositoryError(err)
		s.logger.Error("create organization failed",
			zap.String("admin_id", adminID),
			zap.String("subdomain", org.Subdomain),
			zap.Error(err),
		)
		return OrganizationResponse{}, mapped
	}

	s.logger.Info("organization created",
		zap.String("organization_id", org.ID.String()),
		zap.String("admin_id", adminID),
	)
	return mapToResponse(*org), nil
}

func (s *service) GetAllByAdmin(ctx context.Context, adminID string) ([]OrganizationResponse, error) {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return nil, organizationerrors.ErrAdminNotFound
	}

	orgs, err := s.repo.FindAllByAdmin(ctx, adminUUID)
	if err != nil {
		return nil, err
	}

	resp := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		resp[i] = mapToResponse(org)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, adminID, id string) (OrganizationResponse, error) {
	org, err := s.ownedOrganization(ctx, adminID, id)
	if err != nil {
		return OrganizationResponse{}, err
	}
	return mapToResponse(*org), nil
}

func (s *service) Update(ctx context.Context, adminID, id string, req UpdateOrganizationRequest) (OrganizationResponse, error) {
	org, err := s.ownedOrganization(ctx, adminID, id)
	if err != nil {
		return OrganizationResponse{}, err
	}

	if req.Name != "" {
		org.Name = strings.TrimSpace(req.Name)
	}
	if req.LogoURL != nil {
		org.LogoURL = req.LogoURL
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			org.CategoryID = nil
			org.Category = nil
		} else {
			categoryID, err := s.resolveCategoryID(ctx, *req.CategoryID)
			if err != nil {
				return OrganizationResponse{}, err
			}
			org.CategoryID = categoryID
			org.Category = nil
		}
	}
	if req.IsActive != nil {
		org.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, org); err != nil {
		return OrganizationResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*org), nil
}

func (s *service) Delete(ctx context.Context, adminID, id string) error {
	org, err := s.ownedOrganization(ctx, adminID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, org.AdminID, org.ID)
}

func (s *service) UpdateSettings(ctx context.Context, adminID, id string, req UpdateSettingsRequest) (SettingsResponse, error) {
	org, err := s.ownedOrganization(ctx, adminID, id)
	if err != nil {
		return SettingsResponse{}, err
	}

	settings, err := s.repo.GetOrCreateSettings(ctx, org.ID)
	if err != nil {
		return SettingsResponse{}, err
	}

	if req.Country != nil {
		settings.Country = req.Country
	}
	if req.Currency != "" {
		settings.Currency = strings.ToUpper(req.Currency)
	}
	if req.Theme != nil {
		settings.Theme = req.Theme
	}
	if req.ContactEmail != nil {
		settings.ContactEmail = req.ContactEmail
	}

	if err := s.repo.UpdateSettings(ctx, settings); err != nil {
		return SettingsResponse{}, err
	}

	return mapSettings(settings), nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = CategoryResponse{
			ID:          c.ID.String(),
			Name:        c.Name,
			Description: c.Description,
		}
	}
	return resp, nil
}

// SeedCategories inserts the default sector catalog, skipping names that
// already exist. Safe to run on every deploy.
func (s *service) SeedCategories(ctx context.Context) (int, error) {
	created := 0
	for _, c := range DefaultCategories() {
		wasCreated, err := s.repo.GetOrCreateCategory(ctx, &c)
		if err != nil {
			return created, err
		}
		if wasCreated {
			created++
			s.logger.Info("category created", zap.String("name", c.Name))
		}
	}
	return created, nil
}

func (s *service) resolveCategoryID(ctx context.Context, raw string) (*uuid.UUID, error) {
	categoryID, err := uuid.Parse(raw)
	if err != nil {
		return nil, organizationerrors.ErrCategoryNotFound
	}
	if _, err := s.repo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organizationerrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return &categoryID, nil
}

// ownedOrganization resolves an organization and verifies ownership. A miss
// on either reads as not-found so tenants cannot enumerate each other's ids.
func (s *service) ownedOrganization(ctx context.Context, adminID, id string) (*Organization, error) {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return nil, organizationerrors.ErrAdminNotFound
	}
	orgUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, organizationerrors.ErrInvalidOrganizationID
	}

	org, err := s.repo.FindByID(ctx, orgUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organizationerrors.ErrOrganizationNotFound
		}
		return nil, err
	}
	if org.AdminID != adminUUID {
		return nil, organizationerrors.ErrNotOwner
	}
	return org, nil
}

func mapToResponse(org Organization) OrganizationResponse {
	resp := OrganizationResponse{
		ID:        org.ID.String(),
		Name:      org.Name,
		Subdomain: org.Subdomain,
		LogoURL:   org.LogoURL,
		AdminID:   org.AdminID.String(),
		IsActive:  org.IsActive,
	}
	if org.CategoryID != nil {
		id := org.CategoryID.String()
		resp.CategoryID = &id
	}
	if org.Category != nil {
		resp.CategoryName = org.Category.Name
	}
	if org.Settings != nil {
		v := mapSettings(org.Settings)
		resp.Settings = &v
	}
	return resp
}

func mapSettings(s *OrganizationSettings) SettingsResponse {
	return SettingsResponse{
		Country:      s.Country,
		Currency:     s.Currency,
		Theme:        s.Theme,
		ContactEmail: s.ContactEmail,
	}
}
