package payroll

import (
	"context"

	"github.com/SalimDiallo/LouraBackend/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayslipFilter struct {
	PeriodID   *uuid.UUID
	EmployeeID *uuid.UUID
	Offset     int
	Limit      int
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	CreatePeriod(ctx context.Context, period *PayrollPeriod) error
	FindPeriodByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*PayrollPeriod, error)
	ListPeriods(ctx context.Context, orgID uuid.UUID) ([]PayrollPeriod, error)
	UpdatePeriod(ctx context.Context, period *PayrollPeriod) error
	DeletePeriod(ctx context.Context, orgID, id uuid.UUID) error

	CreatePayslip(ctx context.Context, payslip *Payslip) error
	FindPayslipByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*Payslip, error)
	ListPayslips(ctx context.Context, orgIDs []uuid.UUID, filter PayslipFilter) ([]Payslip, int64, error)
	UpdatePayslip(ctx context.Context, payslip *Payslip) error
	CountPayslipsByPeriod(ctx context.Context, periodID uuid.UUID) (int64, error)
	SumNetByPeriod(ctx context.Context, periodID uuid.UUID) (float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreatePeriod(ctx context.Context, period *PayrollPeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *repository) FindPeriodByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*PayrollPeriod, error) {
	var period PayrollPeriod
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgIDs)).
		First(&period, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *repository) ListPeriods(ctx context.Context, orgID uuid.UUID) ([]PayrollPeriod, error) {
	var periods []PayrollPeriod
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("start_date DESC").
		Find(&periods).Error
	return periods, err
}

func (r *repository) UpdatePeriod(ctx context.Context, period *PayrollPeriod) error {
	return r.db.WithContext(ctx).Save(period).Error
}

func (r *repository) DeletePeriod(ctx context.Context, orgID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Delete(&PayrollPeriod{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreatePayslip(ctx context.Context, payslip *Payslip) error {
	return r.db.WithContext(ctx).Create(payslip).Error
}

func (r *repository) FindPayslipByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*Payslip, error) {
	var payslip Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.ScopeViaEmployee(orgIDs)).
		Preload("PayrollPeriod").
		First(&payslip, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payslip, nil
}

func (r *repository) ListPayslips(ctx context.Context, orgIDs []uuid.UUID, filter PayslipFilter) ([]Payslip, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Scopes(tenant.ScopeViaEmployee(orgIDs))

	if filter.PeriodID != nil {
		q = q.Where("payroll_period_id = ?", *filter.PeriodID)
	}
	if filter.EmployeeID != nil {
		q = q.Where("employee_id = ?", *filter.EmployeeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payslips []Payslip
	err := q.Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&payslips).Error
	return payslips, total, err
}

func (r *repository) UpdatePayslip(ctx context.Context, payslip *Payslip) error {
	return r.db.WithContext(ctx).Omit("PayrollPeriod").Save(payslip).Error
}

func (r *repository) CountPayslipsByPeriod(ctx context.Context, periodID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Where("payroll_period_id = ?", periodID).
		Count(&count).Error
	return count, err
}

func (r *repository) SumNetByPeriod(ctx context.Context, periodID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Where("payroll_period_id = ?", periodID).
		Select("COALESCE(SUM(net_salary), 0)").
		Scan(&total).Error
	return total, err
}
