package leave

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/events"
	leaveerrors "github.com/SalimDiallo/LouraBackend/internal/leave/errors"
	"github.com/SalimDiallo/LouraBackend/internal/messaging/kafka"
	"github.com/SalimDiallo/LouraBackend/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	CreateLeaveType(ctx context.Context, orgID uuid.UUID, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context, orgID uuid.UUID) ([]LeaveTypeResponse, error)
	UpdateLeaveType(ctx context.Context, orgID uuid.UUID, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	DeleteLeaveType(ctx context.Context, orgID uuid.UUID, id string) error

	// Submit creates a pending request for the calling employee and reserves
	// the days on the ledger in the same transaction.
	Submit(ctx context.Context, principal authz.Principal, req SubmitLeaveRequest) (LeaveRequestResponse, error)
	GetRequest(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id string) (LeaveRequestResponse, error)
	ListRequests(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, filter RequestFilter) ([]LeaveRequestResponse, int64, error)
	Approve(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id string, req DecisionRequest) (LeaveRequestResponse, error)
	Reject(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id string, req DecisionRequest) (LeaveRequestResponse, error)
	Cancel(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id string) (LeaveRequestResponse, error)

	ListBalances(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, employeeID string, year int) ([]LeaveBalanceResponse, error)
	AdjustBalance(ctx context.Context, orgID uuid.UUID, req AdjustBalanceRequest) (LeaveBalanceResponse, error)

	// ProvisionDefaultBalances seeds the current year's ledger rows for one
	// employee from the organization's active leave types. Idempotent.
	ProvisionDefaultBalances(ctx context.Context, orgID, employeeID uuid.UUID, year int) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, logger: l}
}

func (s *service) CreateLeaveType(ctx context.Context, orgID uuid.UUID, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	lt := &LeaveType{
		OrganizationID:     orgID,
		Name:               strings.TrimSpace(req.Name),
		Description:        req.Description,
		DefaultDaysPerYear: req.DefaultDaysPerYear,
		IsPaid:             true,
		RequiresApproval:   true,
		MaxConsecutiveDays: req.MaxConsecutiveDays,
		Color:              req.Color,
		IsActive:           true,
	}
	if req.IsPaid != nil {
		lt.IsPaid = *req.IsPaid
	}
	if req.RequiresApproval != nil {
		lt.RequiresApproval = *req.RequiresApproval
	}
	if lt.Color == "" {
		lt.Color = "#3B82F6"
	}

	if err := s.repo.CreateLeaveType(ctx, lt); err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("leave type created",
		zap.String("leave_type_id", lt.ID.String()),
		zap.String("organization_id", orgID.String()),
	)
	return mapTypeToResponse(lt), nil
}

func (s *service) ListLeaveTypes(ctx context.Context, orgID uuid.UUID) ([]LeaveTypeResponse, error) {
	types, err := s.repo.ListLeaveTypes(ctx, orgID)
	if err != nil {
		return nil, err
	}
	out := make([]LeaveTypeResponse, 0, len(types))
	for i := range types {
		out = append(out, mapTypeToResponse(&types[i]))
	}
	return out, nil
}

func (s *service) UpdateLeaveType(ctx context.Context, orgID uuid.UUID, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	typeID, err := uuid.Parse(id)
	if err != nil {
		return LeaveTypeResponse{}, leaveerrors.ErrLeaveTypeNotFound
	}

	lt, err := s.repo.FindLeaveTypeByID(ctx, orgID, typeID)
	if err != nil {
		return LeaveTypeResponse{}, mapLeaveTypeError(err)
	}

	if req.Name != nil {
		lt.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		lt.Description = *req.Description
	}
	if req.DefaultDaysPerYear != nil {
		lt.DefaultDaysPerYear = *req.DefaultDaysPerYear
	}
	if req.IsPaid != nil {
		lt.IsPaid = *req.IsPaid
	}
	if req.RequiresApproval != nil {
		lt.RequiresApproval = *req.RequiresApproval
	}
	if req.MaxConsecutiveDays != nil {
		lt.MaxConsecutiveDays = *req.MaxConsecutiveDays
	}
	if req.Color != nil {
		lt.Color = *req.Color
	}
	if req.IsActive != nil {
		lt.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateLeaveType(ctx, lt); err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}
	return mapTypeToResponse(lt), nil
}

func (s *service) DeleteLeaveType(ctx context.Context, orgID uuid.UUID, id string) error {
	typeID, err := uuid.Parse(id)
	if err != nil {
		return leaveerrors.ErrLeaveTypeNotFound
	}
	if err := s.repo.DeleteLeaveType(ctx, orgID, typeID); err != nil {
		return mapLeaveTypeError(err)
	}
	return nil
}

func (s *service) Submit(ctx context.Context, principal authz.Principal, req SubmitLeaveRequest) (LeaveRequestResponse, error) {
	staff, ok := principal.(authz.Staff)
	if !ok {
		return LeaveRequestResponse{}, leaveerrors.ErrStaffOnly
	}

	leaveTypeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrLeaveTypeNotFound
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if start.After(end) {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateRange
	}

	if SpanDays(start, end, req.StartHalfDay, req.EndHalfDay) != req.TotalDays {
		return LeaveRequestResponse{}, leaveerrors.ErrTotalDaysMismatch
	}

	lt, err := s.repo.FindLeaveTypeByID(ctx, staff.OrganizationID, leaveTypeID)
	if err != nil {
		return LeaveRequestResponse{}, mapLeaveTypeError(err)
	}
	if lt.MaxConsecutiveDays > 0 && req.TotalDays > lt.MaxConsecutiveDays {
		return LeaveRequestResponse{}, leaveerrors.ErrMaxConsecutiveExceeded
	}

	request := &LeaveRequest{
		OrganizationID: staff.OrganizationID,
		EmployeeID:     staff.EmployeeID,
		LeaveTypeID:    lt.ID,
		StartDate:      start,
		EndDate:        end,
		StartHalfDay:   req.StartHalfDay,
		EndHalfDay:     req.EndHalfDay,
		TotalDays:      req.TotalDays,
		Reason:         req.Reason,
		Status:         StatusPending,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.CreateRequest(ctx, request); err != nil {
			return mapRepositoryError(err)
		}

		balance, err := qtx.GetOrCreateBalanceLocked(ctx, staff.EmployeeID, lt.ID, start.Year(), lt.DefaultDaysPerYear)
		if err != nil {
			return err
		}
		balance.PendingDays += request.TotalDays
		return qtx.UpdateBalance(ctx, balance)
	})
	if err != nil {
		s.logger.Error("submit leave request failed",
			zap.String("employee_id", staff.EmployeeID.String()),
			zap.Error(err),
		)
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("leave request submitted",
		zap.String("leave_request_id", request.ID.String()),
		zap.String("employee_id", staff.EmployeeID.String()),
		zap.Float64("total_days", request.TotalDays),
	)
	request.LeaveType = lt
	return mapRequestToResponse(request), nil
}

func (s *service) GetRequest(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id string) (LeaveRequestResponse, error) {
	requestID, err := uuid.Parse(id)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidLeaveRequestID
	}
	request, err := s.repo.FindRequestByID(ctx, orgIDs, requestID)
	if err != nil {
		return LeaveRequestResponse{}, mapRepositoryError(err)
	}
	// A colleague's request reads as not-found for plain staff.
	if staff, ok := principal.(authz.Staff); ok && !reviewsOrgRequests(staff) && request.EmployeeID != staff.EmployeeID {
		return LeaveRequestResponse{}, leaveerrors.ErrLeaveRequestNotFound
	}
	return mapRequestToResponse(request), nil
}

func (s *service) ListRequests(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, filter RequestFilter) ([]LeaveRequestResponse, int64, error) {
	if staff, ok := principal.(authz.Staff); ok && !reviewsOrgRequests(staff) {
		own := staff.EmployeeID
		filter.EmployeeID = &own
	}

	requests, total, err := s.repo.ListRequests(ctx, orgIDs, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]LeaveRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, mapRequestToResponse(&requests[i]))
	}
	return out, total, nil
}

func (s *service) Approve(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id string, req DecisionRequest) (LeaveRequestResponse, error) {
	return s.decide(ctx, principal, orgIDs, id, StatusApproved, req.ApprovalNotes)
}

func (s *service) Reject(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id string, req DecisionRequest) (LeaveRequestResponse, error) {
	return s.decide(ctx, principal, orgIDs, id, StatusRejected, req.ApprovalNotes)
}

// decide moves a pending request to approved or rejected and settles the
// ledger in the same transaction. The request row is read FOR UPDATE, so a
// second decision on the same request sees the terminal state and fails.
func (s *service) decide(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id, status, notes string) (LeaveRequestResponse, error) {
	requestID, err := uuid.Parse(id)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidLeaveRequestID
	}

	approverKind, approverID, err := approverTag(principal)
	if err != nil {
		return LeaveRequestResponse{}, err
	}

	var request *LeaveRequest
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		request, err = qtx.LockRequestByID(ctx, orgIDs, requestID)
		if err != nil {
			return mapRepositoryError(err)
		}
		if request.IsTerminal() {
			return leaveerrors.ErrNotPending
		}

		now := time.Now().UTC()
		request.Status = status
		request.ApproverKind = &approverKind
		request.ApproverID = &approverID
		request.ApprovalDate = &now
		request.ApprovalNotes = notes
		if err := qtx.UpdateRequest(ctx, request); err != nil {
			return mapRepositoryError(err)
		}

		year := request.StartDate.Year()
		if status == StatusApproved {
			lt, err := qtx.FindLeaveTypeByID(ctx, request.OrganizationID, request.LeaveTypeID)
			if err != nil {
				return mapRepositoryError(err)
			}
			balance, err := qtx.GetOrCreateBalanceLocked(ctx, request.EmployeeID, request.LeaveTypeID, year, lt.DefaultDaysPerYear)
			if err != nil {
				return err
			}
			balance.UsedDays += request.TotalDays
			balance.PendingDays -= request.TotalDays
			if err := qtx.UpdateBalance(ctx, balance); err != nil {
				return err
			}
		} else {
			// A rejection only releases the reservation, and only when the
			// ledger row exists.
			balance, err := qtx.LockBalance(ctx, request.EmployeeID, request.LeaveTypeID, year)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return s.queueLeaveDecided(ctx, tx, request)
				}
				return err
			}
			balance.PendingDays -= request.TotalDays
			if err := qtx.UpdateBalance(ctx, balance); err != nil {
				return err
			}
		}

		return s.queueLeaveDecided(ctx, tx, request)
	})
	if err != nil {
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("leave request decided",
		zap.String("leave_request_id", request.ID.String()),
		zap.String("status", status),
		zap.String("approver_kind", approverKind),
		zap.String("approver_id", approverID.String()),
	)
	return mapRequestToResponse(request), nil
}

func (s *service) Cancel(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, id string) (LeaveRequestResponse, error) {
	requestID, err := uuid.Parse(id)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidLeaveRequestID
	}

	staff, ok := principal.(authz.Staff)
	if !ok {
		return LeaveRequestResponse{}, leaveerrors.ErrNotRequester
	}

	var request *LeaveRequest
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		request, err = qtx.LockRequestByID(ctx, orgIDs, requestID)
		if err != nil {
			return mapRepositoryError(err)
		}
		if request.EmployeeID != staff.EmployeeID {
			return leaveerrors.ErrNotRequester
		}
		if request.IsTerminal() {
			return leaveerrors.ErrNotPending
		}

		request.Status = StatusCancelled
		if err := qtx.UpdateRequest(ctx, request); err != nil {
			return mapRepositoryError(err)
		}

		balance, err := qtx.LockBalance(ctx, request.EmployeeID, request.LeaveTypeID, request.StartDate.Year())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		balance.PendingDays -= request.TotalDays
		return qtx.UpdateBalance(ctx, balance)
	})
	if err != nil {
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("leave request cancelled",
		zap.String("leave_request_id", request.ID.String()),
		zap.String("employee_id", staff.EmployeeID.String()),
	)
	return mapRequestToResponse(request), nil
}

func (s *service) ListBalances(ctx context.Context, principal authz.Principal, orgIDs []uuid.UUID, employeeID string, year int) ([]LeaveBalanceResponse, error) {
	var employeeFilter *uuid.UUID
	if employeeID != "" {
		id, err := uuid.Parse(employeeID)
		if err != nil {
			return nil, leaveerrors.ErrBalanceNotFound
		}
		employeeFilter = &id
	}

	// Ledger rows are visible org-wide to HR admins only; managers and plain
	// staff read their own.
	if staff, ok := principal.(authz.Staff); ok && !staff.IsHRAdmin() {
		own := staff.EmployeeID
		employeeFilter = &own
	}

	balances, err := s.repo.ListBalances(ctx, orgIDs, employeeFilter, year)
	if err != nil {
		return nil, err
	}
	out := make([]LeaveBalanceResponse, 0, len(balances))
	for i := range balances {
		out = append(out, mapBalanceToResponse(&balances[i]))
	}
	return out, nil
}

func (s *service) AdjustBalance(ctx context.Context, orgID uuid.UUID, req AdjustBalanceRequest) (LeaveBalanceResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LeaveBalanceResponse{}, leaveerrors.ErrBalanceNotFound
	}
	leaveTypeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return LeaveBalanceResponse{}, leaveerrors.ErrLeaveTypeNotFound
	}

	// The leave type lookup doubles as the org ownership check.
	if _, err := s.repo.FindLeaveTypeByID(ctx, orgID, leaveTypeID); err != nil {
		return LeaveBalanceResponse{}, mapLeaveTypeError(err)
	}

	var balance *LeaveBalance
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		balance, err = qtx.GetOrCreateBalanceLocked(ctx, employeeID, leaveTypeID, req.Year, req.TotalDays)
		if err != nil {
			return err
		}
		balance.TotalDays = req.TotalDays
		return qtx.UpdateBalance(ctx, balance)
	})
	if err != nil {
		return LeaveBalanceResponse{}, err
	}

	s.logger.Info("leave balance adjusted",
		zap.String("employee_id", employeeID.String()),
		zap.String("leave_type_id", leaveTypeID.String()),
		zap.Int("year", req.Year),
		zap.Float64("total_days", req.TotalDays),
	)
	return mapBalanceToResponse(balance), nil
}

func (s *service) ProvisionDefaultBalances(ctx context.Context, orgID, employeeID uuid.UUID, year int) error {
	types, err := s.repo.ListLeaveTypes(ctx, orgID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		for i := range types {
			if !types[i].IsActive {
				continue
			}
			if _, err := qtx.GetOrCreateBalanceLocked(ctx, employeeID, types[i].ID, year, types[i].DefaultDaysPerYear); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *service) queueLeaveDecided(ctx context.Context, tx *gorm.DB, request *LeaveRequest) error {
	if s.outbox == nil {
		return nil
	}

	event := events.LeaveDecidedEvent{
		EventType:      "leave_decided",
		LeaveRequestID: request.ID.String(),
		EmployeeID:     request.EmployeeID.String(),
		OrganizationID: request.OrganizationID.String(),
		Status:         request.Status,
		TotalDays:      request.TotalDays,
		OccurredAt:     time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave_request",
		AggregateID:   request.ID.String(),
		EventType:     event.EventType,
		Topic:         events.LeaveDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// reviewsOrgRequests reports whether a staff member sees the whole
// organization's requests. Admin and manager roles review colleagues'
// requests; everyone else is limited to their own rows.
func reviewsOrgRequests(staff authz.Staff) bool {
	return staff.IsHRAdmin() ||
		staff.RoleCode == authz.RoleCodeManager ||
		staff.RoleCode == authz.RoleCodeHRManager
}

func approverTag(principal authz.Principal) (string, uuid.UUID, error) {
	switch p := principal.(type) {
	case authz.Owner:
		return ApproverKindAdmin, p.AdminID, nil
	case authz.Staff:
		return ApproverKindEmployee, p.EmployeeID, nil
	default:
		return "", uuid.Nil, leaveerrors.ErrLeaveRequestNotFound
	}
}
