package employee

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	employeeerrors "github.com/SalimDiallo/LouraBackend/internal/employee/errors"
	"github.com/SalimDiallo/LouraBackend/internal/events"
	"github.com/SalimDiallo/LouraBackend/internal/messaging/kafka"
	"github.com/SalimDiallo/LouraBackend/internal/permission"
	"github.com/SalimDiallo/LouraBackend/internal/role"
	"github.com/SalimDiallo/LouraBackend/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, orgID uuid.UUID, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, orgID uuid.UUID, page, pageSize int) ([]EmployeeResponse, int64, error)
	GetByID(ctx context.Context, orgIDs []uuid.UUID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, orgIDs []uuid.UUID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	AssignRole(ctx context.Context, orgIDs []uuid.UUID, id string, req AssignRoleRequest) (EmployeeResponse, error)
	Activate(ctx context.Context, orgIDs []uuid.UUID, id string) error
	Deactivate(ctx context.Context, orgIDs []uuid.UUID, id string) error

	GrantPermission(ctx context.Context, orgIDs []uuid.UUID, id, code, grantedBy string) error
	RevokePermission(ctx context.Context, orgIDs []uuid.UUID, id, code string) error

	// ResolvePermissions returns the employee's effective permission set:
	// role permissions plus custom grants, deduplicated.
	ResolvePermissions(ctx context.Context, orgIDs []uuid.UUID, id string) (PermissionSetResponse, error)
	HasPermission(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID, code string) (bool, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	roles  role.Repository
	perms  permission.Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	roles role.Repository,
	perms permission.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		roles:  roles,
		perms:  perms,
		outbox: outbox,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, orgID uuid.UUID, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("organization_id", orgID.String()),
		zap.String("email", req.Email),
	)

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	empl := &Employee{
		OrganizationID:   orgID,
		EmployeeNumber:   strings.ToUpper(strings.TrimSpace(req.EmployeeNumber)),
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:            req.Phone,
		Language:         req.Language,
		Timezone:         req.Timezone,
		HireDate:         hireDate,
		EmploymentStatus: StatusActive,
		IsActive:         true,
	}
	if empl.EmployeeNumber == "" {
		empl.EmployeeNumber = generateEmployeeNumber()
	}
	if empl.Language == "" {
		empl.Language = "fr"
	}
	if empl.Timezone == "" {
		empl.Timezone = "Africa/Conakry"
	}

	if req.DepartmentID != nil {
		id, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		empl.DepartmentID = &id
	}
	if req.PositionID != nil {
		id, err := uuid.Parse(*req.PositionID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		empl.PositionID = &id
	}

	if req.ManagerID != nil {
		managerID, err := uuid.Parse(*req.ManagerID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrManagerNotFound
		}
		if _, err := s.repo.FindByID(ctx, []uuid.UUID{orgID}, managerID); err != nil {
			return EmployeeResponse{}, employeeerrors.ErrManagerNotFound
		}
		empl.ManagerID = &managerID
	}

	if req.RoleID != nil {
		roleID, err := s.assignableRoleID(ctx, orgID, *req.RoleID)
		if err != nil {
			return EmployeeResponse{}, err
		}
		empl.AssignedRoleID = &roleID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}
	empl.PasswordHash = string(hash)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, empl); err != nil {
			return mapRepositoryError(err)
		}
		return s.queueEmployeeCreated(ctx, tx, empl, rid)
	})
	if err != nil {
		s.logger.Error("create employee failed",
			zap.String("request_id", rid),
			zap.String("organization_id", orgID.String()),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(empl), nil
}

func (s *service) queueEmployeeCreated(ctx context.Context, tx *gorm.DB, empl *Employee, rid string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.EmployeeCreatedEvent{
		EventType:      "employee_created",
		EmployeeID:     empl.ID.String(),
		OrganizationID: empl.OrganizationID.String(),
		HireDate:       empl.HireDate.Format("2006-01-02"),
		OccurredAt:     time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   empl.ID.String(),
		EventType:     event.EventType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetAll(ctx context.Context, orgID uuid.UUID, page, pageSize int) ([]EmployeeResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	employees, total, err := s.repo.ListByOrg(ctx, orgID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(employees), total, nil
}

func (s *service) GetByID(ctx context.Context, orgIDs []uuid.UUID, id string) (EmployeeResponse, error) {
	empl, err := s.scopedEmployee(ctx, orgIDs, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(empl), nil
}

func (s *service) Update(ctx context.Context, orgIDs []uuid.UUID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	empl, err := s.scopedEmployee(ctx, orgIDs, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		empl.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		empl.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		empl.Phone = *req.Phone
	}
	if req.Language != nil {
		empl.Language = *req.Language
	}
	if req.Timezone != nil {
		empl.Timezone = *req.Timezone
	}
	if req.EmploymentStatus != nil {
		empl.EmploymentStatus = *req.EmploymentStatus
	}
	if req.TerminationDate != nil {
		if *req.TerminationDate == "" {
			empl.TerminationDate = nil
		} else {
			endDate, err := time.Parse("2006-01-02", *req.TerminationDate)
			if err != nil {
				return EmployeeResponse{}, employeeerrors.ErrInvalidTerminationDate
			}
			empl.TerminationDate = &endDate
		}
	}
	if req.DepartmentID != nil {
		if *req.DepartmentID == "" {
			empl.DepartmentID = nil
		} else {
			deptID, err := uuid.Parse(*req.DepartmentID)
			if err != nil {
				return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
			}
			empl.DepartmentID = &deptID
		}
	}
	if req.PositionID != nil {
		if *req.PositionID == "" {
			empl.PositionID = nil
		} else {
			posID, err := uuid.Parse(*req.PositionID)
			if err != nil {
				return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
			}
			empl.PositionID = &posID
		}
	}
	if req.ManagerID != nil {
		if *req.ManagerID == "" {
			empl.ManagerID = nil
		} else {
			managerID, err := uuid.Parse(*req.ManagerID)
			if err != nil {
				return EmployeeResponse{}, employeeerrors.ErrManagerNotFound
			}
			if managerID == empl.ID {
				return EmployeeResponse{}, employeeerrors.ErrSelfManager
			}
			if _, err := s.repo.FindByID(ctx, []uuid.UUID{empl.OrganizationID}, managerID); err != nil {
				return EmployeeResponse{}, employeeerrors.ErrManagerNotFound
			}
			empl.ManagerID = &managerID
		}
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("employee updated", zap.String("employee_id", empl.ID.String()))
	return mapToResponse(empl), nil
}

func (s *service) AssignRole(ctx context.Context, orgIDs []uuid.UUID, id string, req AssignRoleRequest) (EmployeeResponse, error) {
	empl, err := s.scopedEmployee(ctx, orgIDs, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	roleID, err := s.assignableRoleID(ctx, empl.OrganizationID, req.RoleID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl.AssignedRoleID = &roleID
	empl.AssignedRole = nil
	if err := s.repo.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("role assigned",
		zap.String("employee_id", empl.ID.String()),
		zap.String("role_id", roleID.String()),
	)
	return s.GetByID(ctx, orgIDs, id)
}

func (s *service) Activate(ctx context.Context, orgIDs []uuid.UUID, id string) error {
	return s.setActive(ctx, orgIDs, id, true)
}

func (s *service) Deactivate(ctx context.Context, orgIDs []uuid.UUID, id string) error {
	return s.setActive(ctx, orgIDs, id, false)
}

func (s *service) setActive(ctx context.Context, orgIDs []uuid.UUID, id string, active bool) error {
	empl, err := s.scopedEmployee(ctx, orgIDs, id)
	if err != nil {
		return err
	}

	empl.IsActive = active
	if active {
		empl.EmploymentStatus = StatusActive
	} else {
		empl.EmploymentStatus = StatusSuspended
	}
	if err := s.repo.Update(ctx, empl); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("employee active flag changed",
		zap.String("employee_id", empl.ID.String()),
		zap.Bool("is_active", active),
	)
	return nil
}

func (s *service) GrantPermission(ctx context.Context, orgIDs []uuid.UUID, id, code, grantedBy string) error {
	empl, err := s.scopedEmployee(ctx, orgIDs, id)
	if err != nil {
		return err
	}

	// Custom grants must reference a real catalog code; unlike role creation
	// there is nothing to silently drop, the whole request is the one code.
	found, err := s.perms.FindByCodes(ctx, []string{code})
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return employeeerrors.ErrUnknownPermissionCode
	}

	err = s.repo.AddCustomPermission(ctx, &CustomPermission{
		EmployeeID:     empl.ID,
		PermissionCode: code,
		GrantedBy:      grantedBy,
	})
	if err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("custom permission granted",
		zap.String("employee_id", empl.ID.String()),
		zap.String("permission_code", code),
	)
	return nil
}

func (s *service) RevokePermission(ctx context.Context, orgIDs []uuid.UUID, id, code string) error {
	empl, err := s.scopedEmployee(ctx, orgIDs, id)
	if err != nil {
		return err
	}

	if err := s.repo.RemoveCustomPermission(ctx, empl.ID, code); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("custom permission revoked",
		zap.String("employee_id", empl.ID.String()),
		zap.String("permission_code", code),
	)
	return nil
}

func (s *service) ResolvePermissions(ctx context.Context, orgIDs []uuid.UUID, id string) (PermissionSetResponse, error) {
	empl, err := s.scopedEmployee(ctx, orgIDs, id)
	if err != nil {
		return PermissionSetResponse{}, err
	}

	set := map[string]struct{}{}
	if empl.AssignedRoleID != nil {
		roleCodes, err := s.roles.PermissionCodesByRoleID(ctx, *empl.AssignedRoleID)
		if err != nil {
			return PermissionSetResponse{}, err
		}
		for _, c := range roleCodes {
			set[c] = struct{}{}
		}
	}

	custom, err := s.repo.CustomPermissionCodes(ctx, empl.ID)
	if err != nil {
		return PermissionSetResponse{}, err
	}
	for _, c := range custom {
		set[c] = struct{}{}
	}

	codes := make([]string, 0, len(set))
	for c := range set {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	return PermissionSetResponse{EmployeeID: empl.ID, Permissions: codes}, nil
}

// HasPermission checks the custom grants first so a direct grant works even
// when the employee has no role at all.
func (s *service) HasPermission(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID, code string) (bool, error) {
	custom, err := s.repo.CustomPermissionCodes(ctx, id)
	if err != nil {
		return false, err
	}
	for _, c := range custom {
		if c == code {
			return true, nil
		}
	}

	empl, err := s.repo.FindByID(ctx, orgIDs, id)
	if err != nil {
		return false, mapRepositoryError(err)
	}
	if empl.AssignedRoleID == nil {
		return false, nil
	}

	roleCodes, err := s.roles.PermissionCodesByRoleID(ctx, *empl.AssignedRoleID)
	if err != nil {
		return false, err
	}
	for _, c := range roleCodes {
		if c == code {
			return true, nil
		}
	}
	return false, nil
}

// generateEmployeeNumber builds a badge number for organizations that do not
// hand out their own. Uniqueness is still enforced by the database index.
func generateEmployeeNumber() string {
	return "EMP-" + strings.ToUpper(uuid.NewString()[:8])
}

// assignableRoleID resolves a role the organization may use: its own roles
// or an active global template.
func (s *service) assignableRoleID(ctx context.Context, orgID uuid.UUID, raw string) (uuid.UUID, error) {
	roleID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, employeeerrors.ErrRoleNotAssignable
	}

	r, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return uuid.Nil, employeeerrors.ErrRoleNotAssignable
	}
	if r.OrganizationID != nil && *r.OrganizationID != orgID {
		return uuid.Nil, employeeerrors.ErrRoleNotAssignable
	}
	if !r.IsActive {
		return uuid.Nil, employeeerrors.ErrRoleNotAssignable
	}
	return r.ID, nil
}

func (s *service) scopedEmployee(ctx context.Context, orgIDs []uuid.UUID, id string) (*Employee, error) {
	employeeID, err := uuid.Parse(id)
	if err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, orgIDs, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return empl, nil
}
