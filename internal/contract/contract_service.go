package contract

import (
	"context"
	"strings"
	"time"

	"github.com/SalimDiallo/LouraBackend/internal/authz"
	contracterrors "github.com/SalimDiallo/LouraBackend/internal/contract/errors"
	"github.com/SalimDiallo/LouraBackend/internal/employee"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=contract_service.go -destination=mock/contract_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, orgID uuid.UUID, req CreateContractRequest) (ContractResponse, error)
	// GetAll narrows to the caller's own contracts unless the caller is an
	// owner-admin or holds an HR-admin role code.
	GetAll(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, filter ListFilter) ([]ContractResponse, int64, error)
	GetByID(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id string) (ContractResponse, error)
	Update(ctx context.Context, orgIDs []uuid.UUID, id string, req UpdateContractRequest) (ContractResponse, error)
	Delete(ctx context.Context, orgIDs []uuid.UUID, id string) error
}

type service struct {
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("contract.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contract.service")
	}
	return &service{repo: repo, employees: employees, logger: l}
}

func (s *service) Create(ctx context.Context, orgID uuid.UUID, req CreateContractRequest) (ContractResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrEmployeeNotFound
	}
	if _, err := s.employees.FindByID(ctx, []uuid.UUID{orgID}, employeeID); err != nil {
		return ContractResponse{}, contracterrors.ErrEmployeeNotFound
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrInvalidDateFormat
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return ContractResponse{}, err
	}
	if end != nil && end.Before(start) {
		return ContractResponse{}, contracterrors.ErrInvalidDateRange
	}

	contract := &Contract{
		ID:              uuid.New(),
		EmployeeID:      employeeID,
		ContractType:    req.ContractType,
		StartDate:       start,
		EndDate:         end,
		BaseSalary:      req.BaseSalary,
		Currency:        strings.ToUpper(req.Currency),
		SalaryPeriod:    req.SalaryPeriod,
		HoursPerWeek:    req.HoursPerWeek,
		Description:     req.Description,
		ContractFileURL: req.ContractFileURL,
		IsActive:        true,
	}
	if contract.Currency == "" {
		contract.Currency = "EUR"
	}
	if contract.SalaryPeriod == "" {
		contract.SalaryPeriod = PeriodMonthly
	}

	if err := s.repo.Create(ctx, contract); err != nil {
		return ContractResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("contract created",
		zap.String("contract_id", contract.ID.String()),
		zap.String("employee_id", employeeID.String()),
	)
	return mapToResponse(*contract), nil
}

func (s *service) GetAll(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, filter ListFilter) ([]ContractResponse, int64, error) {
	if staff, ok := principal.(authz.Staff); ok && !staff.IsHRAdmin() {
		own := staff.EmployeeID
		filter.EmployeeID = &own
	}

	contracts, total, err := s.repo.List(ctx, orgIDs, filter)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(contracts), total, nil
}

func (s *service) GetByID(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id string) (ContractResponse, error) {
	contract, err := s.find(ctx, orgIDs, id)
	if err != nil {
		return ContractResponse{}, err
	}

	if staff, ok := principal.(authz.Staff); ok && !staff.IsHRAdmin() {
		if contract.EmployeeID != staff.EmployeeID {
			// Same answer as a missing row, no probing other people's terms.
			return ContractResponse{}, contracterrors.ErrContractNotFound
		}
	}
	return mapToResponse(*contract), nil
}

func (s *service) Update(ctx context.Context, orgIDs []uuid.UUID, id string, req UpdateContractRequest) (ContractResponse, error) {
	contract, err := s.find(ctx, orgIDs, id)
	if err != nil {
		return ContractResponse{}, err
	}

	if req.ContractType != nil {
		contract.ContractType = *req.ContractType
	}
	if req.EndDate != nil {
		end, err := parseOptionalDate(req.EndDate)
		if err != nil {
			return ContractResponse{}, err
		}
		if end != nil && end.Before(contract.StartDate) {
			return ContractResponse{}, contracterrors.ErrInvalidDateRange
		}
		contract.EndDate = end
	}
	if req.BaseSalary != nil {
		contract.BaseSalary = *req.BaseSalary
	}
	if req.Currency != nil {
		contract.Currency = strings.ToUpper(*req.Currency)
	}
	if req.SalaryPeriod != nil {
		contract.SalaryPeriod = *req.SalaryPeriod
	}
	if req.HoursPerWeek != nil {
		contract.HoursPerWeek = *req.HoursPerWeek
	}
	if req.Description != nil {
		contract.Description = *req.Description
	}
	if req.ContractFileURL != nil {
		contract.ContractFileURL = req.ContractFileURL
	}
	if req.IsActive != nil {
		contract.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, contract); err != nil {
		return ContractResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*contract), nil
}

func (s *service) Delete(ctx context.Context, orgIDs []uuid.UUID, id string) error {
	contract, err := s.find(ctx, orgIDs, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, orgIDs, contract.ID); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("contract deleted", zap.String("contract_id", contract.ID.String()))
	return nil
}

func (s *service) find(ctx context.Context, orgIDs []uuid.UUID, id string) (*Contract, error) {
	contractID, err := uuid.Parse(id)
	if err != nil {
		return nil, contracterrors.ErrInvalidContractID
	}

	contract, err := s.repo.FindByID(ctx, orgIDs, contractID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return contract, nil
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, contracterrors.ErrInvalidDateFormat
	}
	return &d, nil
}
