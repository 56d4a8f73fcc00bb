package payroll

import (
	"context"
	"strings"
	"time"

	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/employee"
	payrollerrors "github.com/SalimDiallo/LouraBackend/internal/payroll/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// periodRank orders the period lifecycle; transitions only move up.
var periodRank = map[string]int{
	PeriodStatusDraft:      0,
	PeriodStatusProcessing: 1,
	PeriodStatusCompleted:  2,
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CreatePeriod(ctx context.Context, orgID uuid.UUID, req CreatePeriodRequest) (PeriodResponse, error)
	ListPeriods(ctx context.Context, orgID uuid.UUID) ([]PeriodResponse, error)
	GetPeriod(ctx context.Context, orgID uuid.UUID, id string) (PeriodResponse, error)
	UpdatePeriod(ctx context.Context, orgID uuid.UUID, id string, req UpdatePeriodRequest) (PeriodResponse, error)
	DeletePeriod(ctx context.Context, orgID uuid.UUID, id string) error

	CreatePayslip(ctx context.Context, orgID uuid.UUID, req CreatePayslipRequest) (PayslipResponse, error)
	// ListPayslips narrows to the caller's own rows unless the caller is an
	// owner-admin or holds an HR-admin role code.
	ListPayslips(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, filter PayslipFilter) ([]PayslipResponse, int64, error)
	GetPayslip(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id string) (PayslipResponse, error)
	MarkPaid(ctx context.Context, orgIDs []uuid.UUID, id string, req MarkPaidRequest) (PayslipResponse, error)
	PayslipPDF(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id string) ([]byte, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{repo: repo, employees: employees, logger: l}
}

func (s *service) CreatePeriod(ctx context.Context, orgID uuid.UUID, req CreatePeriodRequest) (PeriodResponse, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return PeriodResponse{}, payrollerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return PeriodResponse{}, payrollerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return PeriodResponse{}, payrollerrors.ErrInvalidDateRange
	}
	payment, err := parseOptionalDate(req.PaymentDate)
	if err != nil {
		return PeriodResponse{}, err
	}

	period := &PayrollPeriod{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           strings.TrimSpace(req.Name),
		StartDate:      start,
		EndDate:        end,
		PaymentDate:    payment,
		Status:         PeriodStatusDraft,
		Notes:          req.Notes,
	}

	if err := s.repo.CreatePeriod(ctx, period); err != nil {
		return PeriodResponse{}, mapPeriodError(err)
	}

	s.logger.Info("payroll period created",
		zap.String("period_id", period.ID.String()),
		zap.String("organization_id", orgID.String()),
	)
	return mapPeriodToResponse(*period, 0, 0), nil
}

func (s *service) ListPeriods(ctx context.Context, orgID uuid.UUID) ([]PeriodResponse, error) {
	periods, err := s.repo.ListPeriods(ctx, orgID)
	if err != nil {
		return nil, mapPeriodError(err)
	}

	resp := make([]PeriodResponse, 0, len(periods))
	for _, period := range periods {
		enriched, err := s.enrichPeriod(ctx, period)
		if err != nil {
			return nil, err
		}
		resp = append(resp, enriched)
	}
	return resp, nil
}

func (s *service) GetPeriod(ctx context.Context, orgID uuid.UUID, id string) (PeriodResponse, error) {
	period, err := s.findPeriod(ctx, orgID, id)
	if err != nil {
		return PeriodResponse{}, err
	}
	return s.enrichPeriod(ctx, *period)
}

func (s *service) UpdatePeriod(ctx context.Context, orgID uuid.UUID, id string, req UpdatePeriodRequest) (PeriodResponse, error) {
	period, err := s.findPeriod(ctx, orgID, id)
	if err != nil {
		return PeriodResponse{}, err
	}

	if req.Name != nil {
		period.Name = strings.TrimSpace(*req.Name)
	}
	if req.PaymentDate != nil {
		payment, err := parseOptionalDate(req.PaymentDate)
		if err != nil {
			return PeriodResponse{}, err
		}
		period.PaymentDate = payment
	}
	if req.Status != nil && *req.Status != period.Status {
		if periodRank[*req.Status] < periodRank[period.Status] {
			return PeriodResponse{}, payrollerrors.ErrInvalidStatusTransition
		}
		period.Status = *req.Status
	}
	if req.Notes != nil {
		period.Notes = *req.Notes
	}

	if err := s.repo.UpdatePeriod(ctx, period); err != nil {
		return PeriodResponse{}, mapPeriodError(err)
	}
	return s.enrichPeriod(ctx, *period)
}

func (s *service) DeletePeriod(ctx context.Context, orgID uuid.UUID, id string) error {
	period, err := s.findPeriod(ctx, orgID, id)
	if err != nil {
		return err
	}

	count, err := s.repo.CountPayslipsByPeriod(ctx, period.ID)
	if err != nil {
		return mapPeriodError(err)
	}
	if count > 0 {
		return payrollerrors.ErrPeriodNotEmpty
	}

	if err := s.repo.DeletePeriod(ctx, orgID, period.ID); err != nil {
		return mapPeriodError(err)
	}

	s.logger.Info("payroll period deleted", zap.String("period_id", period.ID.String()))
	return nil
}

func (s *service) CreatePayslip(ctx context.Context, orgID uuid.UUID, req CreatePayslipRequest) (PayslipResponse, error) {
	periodID, err := uuid.Parse(req.PayrollPeriodID)
	if err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidPeriodID
	}
	period, err := s.repo.FindPeriodByID(ctx, []uuid.UUID{orgID}, periodID)
	if err != nil {
		return PayslipResponse{}, mapPeriodError(err)
	}
	if period.Status == PeriodStatusCompleted {
		return PayslipResponse{}, payrollerrors.ErrPeriodClosed
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayslipResponse{}, payrollerrors.ErrEmployeeNotInOrganization
	}
	// The employee must live in the same organization as the period.
	if _, err := s.employees.FindByID(ctx, []uuid.UUID{period.OrganizationID}, employeeID); err != nil {
		return PayslipResponse{}, payrollerrors.ErrEmployeeNotInOrganization
	}

	payslip := &Payslip{
		ID:              uuid.New(),
		PayrollPeriodID: period.ID,
		EmployeeID:      employeeID,
		BaseSalary:      req.BaseSalary,
		OvertimePay:     req.OvertimePay,
		Bonuses:         req.Bonuses,
		Allowances:      req.Allowances,
		Tax:             req.Tax,
		SocialSecurity:  req.SocialSecurity,
		OtherDeductions: req.OtherDeductions,
		Currency:        strings.ToUpper(req.Currency),
		WorkedHours:     req.WorkedHours,
		OvertimeHours:   req.OvertimeHours,
		LeaveDaysTaken:  req.LeaveDaysTaken,
		Status:          PayslipStatusDraft,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	}
	if payslip.Currency == "" {
		payslip.Currency = "EUR"
	}
	payslip.settle()

	if err := s.repo.CreatePayslip(ctx, payslip); err != nil {
		return PayslipResponse{}, mapPayslipError(err)
	}

	s.logger.Info("payslip created",
		zap.String("payslip_id", payslip.ID.String()),
		zap.String("period_id", period.ID.String()),
		zap.String("employee_id", employeeID.String()),
	)
	return mapPayslipToResponse(*payslip), nil
}

func (s *service) ListPayslips(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, filter PayslipFilter) ([]PayslipResponse, int64, error) {
	if staff, ok := principal.(authz.Staff); ok && !staff.IsHRAdmin() {
		own := staff.EmployeeID
		filter.EmployeeID = &own
	}

	payslips, total, err := s.repo.ListPayslips(ctx, orgIDs, filter)
	if err != nil {
		return nil, 0, mapPayslipError(err)
	}
	return mapPayslipsToListResponse(payslips), total, nil
}

func (s *service) GetPayslip(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id string) (PayslipResponse, error) {
	payslip, err := s.findVisiblePayslip(ctx, principal, orgIDs, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapPayslipToResponse(*payslip), nil
}

func (s *service) MarkPaid(ctx context.Context, orgIDs []uuid.UUID, id string, req MarkPaidRequest) (PayslipResponse, error) {
	payslip, err := s.findPayslip(ctx, orgIDs, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	if payslip.Status == PayslipStatusPaid {
		return PayslipResponse{}, payrollerrors.ErrAlreadyPaid
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	payslip.Status = PayslipStatusPaid
	payslip.PaymentDate = &today
	payslip.PaymentReference = req.PaymentReference

	if err := s.repo.UpdatePayslip(ctx, payslip); err != nil {
		return PayslipResponse{}, mapPayslipError(err)
	}

	s.logger.Info("payslip marked paid", zap.String("payslip_id", payslip.ID.String()))
	return mapPayslipToResponse(*payslip), nil
}

func (s *service) PayslipPDF(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id string) ([]byte, error) {
	payslip, err := s.findVisiblePayslip(ctx, principal, orgIDs, id)
	if err != nil {
		return nil, err
	}
	return buildPayslipPDF(*payslip)
}

func (s *service) enrichPeriod(ctx context.Context, period PayrollPeriod) (PeriodResponse, error) {
	count, err := s.repo.CountPayslipsByPeriod(ctx, period.ID)
	if err != nil {
		return PeriodResponse{}, mapPeriodError(err)
	}
	totalNet, err := s.repo.SumNetByPeriod(ctx, period.ID)
	if err != nil {
		return PeriodResponse{}, mapPeriodError(err)
	}
	return mapPeriodToResponse(period, count, totalNet), nil
}

func (s *service) findPeriod(ctx context.Context, orgID uuid.UUID, id string) (*PayrollPeriod, error) {
	periodID, err := uuid.Parse(id)
	if err != nil {
		return nil, payrollerrors.ErrInvalidPeriodID
	}
	period, err := s.repo.FindPeriodByID(ctx, []uuid.UUID{orgID}, periodID)
	if err != nil {
		return nil, mapPeriodError(err)
	}
	return period, nil
}

func (s *service) findPayslip(ctx context.Context, orgIDs []uuid.UUID, id string) (*Payslip, error) {
	payslipID, err := uuid.Parse(id)
	if err != nil {
		return nil, payrollerrors.ErrInvalidPayslipID
	}
	payslip, err := s.repo.FindPayslipByID(ctx, orgIDs, payslipID)
	if err != nil {
		return nil, mapPayslipError(err)
	}
	return payslip, nil
}

func (s *service) findVisiblePayslip(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id string) (*Payslip, error) {
	payslip, err := s.findPayslip(ctx, orgIDs, id)
	if err != nil {
		return nil, err
	}
	if staff, ok := principal.(authz.Staff); ok && !staff.IsHRAdmin() {
		if payslip.EmployeeID != staff.EmployeeID {
			return nil, payrollerrors.ErrPayslipNotFound
		}
	}
	return payslip, nil
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, payrollerrors.ErrInvalidDateFormat
	}
	return &d, nil
}
