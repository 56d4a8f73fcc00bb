package department

import (
	"context"
	"strings"

	departmenterrors "github.com/SalimDiallo/LouraBackend/internal/department/errors"
	"github.com/SalimDiallo/LouraBackend/internal/employee"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, orgID uuid.UUID, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context, orgID uuid.UUID) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, orgID uuid.UUID, id string) (DepartmentResponse, error)
	Update(ctx context.Context, orgID uuid.UUID, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, orgID uuid.UUID, id string) error
}

type service struct {
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, employees: employees, logger: l}
}

func (s *service) Create(ctx context.Context, orgID uuid.UUID, req CreateDepartmentRequest) (DepartmentResponse, error) {
	headID, err := s.resolveHead(ctx, orgID, req.HeadID)
	if err != nil {
		return DepartmentResponse{}, err
	}

	dept := &Department{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           strings.TrimSpace(req.Name),
		Code:           strings.TrimSpace(req.Code),
		Description:    req.Description,
		HeadID:         headID,
		IsActive:       true,
	}

	if err := s.repo.Create(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("department created",
		zap.String("department_id", dept.ID.String()),
		zap.String("organization_id", orgID.String()),
	)
	return mapToResponse(*dept, 0), nil
}

func (s *service) GetAll(ctx context.Context, orgID uuid.UUID) ([]DepartmentResponse, error) {
	depts, err := s.repo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]DepartmentResponse, 0, len(depts))
	for _, dept := range depts {
		count, err := s.repo.ActiveEmployeeCount(ctx, dept.ID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		resp = append(resp, mapToResponse(dept, count))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, orgID uuid.UUID, id string) (DepartmentResponse, error) {
	dept, err := s.find(ctx, orgID, id)
	if err != nil {
		return DepartmentResponse{}, err
	}

	count, err := s.repo.ActiveEmployeeCount(ctx, dept.ID)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*dept, count), nil
}

func (s *service) Update(ctx context.Context, orgID uuid.UUID, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	dept, err := s.find(ctx, orgID, id)
	if err != nil {
		return DepartmentResponse{}, err
	}

	if req.Name != nil {
		dept.Name = strings.TrimSpace(*req.Name)
	}
	if req.Code != nil {
		dept.Code = strings.TrimSpace(*req.Code)
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}
	if req.HeadID != nil {
		headID, err := s.resolveHead(ctx, orgID, req.HeadID)
		if err != nil {
			return DepartmentResponse{}, err
		}
		dept.HeadID = headID
	}
	if req.IsActive != nil {
		dept.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	count, err := s.repo.ActiveEmployeeCount(ctx, dept.ID)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*dept, count), nil
}

func (s *service) Delete(ctx context.Context, orgID uuid.UUID, id string) error {
	dept, err := s.find(ctx, orgID, id)
	if err != nil {
		return err
	}

	count, err := s.repo.ActiveEmployeeCount(ctx, dept.ID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if count > 0 {
		return departmenterrors.ErrDepartmentInUse
	}

	if err := s.repo.Delete(ctx, orgID, dept.ID); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("department deleted",
		zap.String("department_id", dept.ID.String()),
		zap.String("organization_id", orgID.String()),
	)
	return nil
}

func (s *service) find(ctx context.Context, orgID uuid.UUID, id string) (*Department, error) {
	deptID, err := uuid.Parse(id)
	if err != nil {
		return nil, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByID(ctx, []uuid.UUID{orgID}, deptID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return dept, nil
}

func (s *service) resolveHead(ctx context.Context, orgID uuid.UUID, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	headID, err := uuid.Parse(*raw)
	if err != nil {
		return nil, departmenterrors.ErrHeadNotFound
	}
	if _, err := s.employees.FindByID(ctx, []uuid.UUID{orgID}, headID); err != nil {
		return nil, departmenterrors.ErrHeadNotFound
	}
	return &headID, nil
}
