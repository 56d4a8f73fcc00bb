package position

import (
	"context"
	"strings"

	positionerrors "github.com/SalimDiallo/LouraBackend/internal/position/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=position_service.go -destination=mock/position_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, orgID uuid.UUID, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context, orgID uuid.UUID) ([]PositionResponse, error)
	GetByID(ctx context.Context, orgID uuid.UUID, id string) (PositionResponse, error)
	Update(ctx context.Context, orgID uuid.UUID, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, orgID uuid.UUID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("position.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("position.service")
	}
	return &service{repo: repo, logger: l}
}

func validSalaryBand(min, max *float64) bool {
	if min == nil || max == nil {
		return true
	}
	return *min <= *max
}

func (s *service) Create(ctx context.Context, orgID uuid.UUID, req CreatePositionRequest) (PositionResponse, error) {
	if !validSalaryBand(req.MinSalary, req.MaxSalary) {
		return PositionResponse{}, positionerrors.ErrInvalidSalaryBand
	}

	pos := &Position{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Title:          strings.TrimSpace(req.Title),
		Code:           strings.TrimSpace(req.Code),
		Description:    req.Description,
		MinSalary:      req.MinSalary,
		MaxSalary:      req.MaxSalary,
		IsActive:       true,
	}

	if err := s.repo.Create(ctx, pos); err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("position created",
		zap.String("position_id", pos.ID.String()),
		zap.String("organization_id", orgID.String()),
	)
	return mapToResponse(*pos, 0), nil
}

func (s *service) GetAll(ctx context.Context, orgID uuid.UUID) ([]PositionResponse, error) {
	positions, err := s.repo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]PositionResponse, 0, len(positions))
	for _, pos := range positions {
		count, err := s.repo.ActiveEmployeeCount(ctx, pos.ID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		resp = append(resp, mapToResponse(pos, count))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, orgID uuid.UUID, id string) (PositionResponse, error) {
	pos, err := s.find(ctx, orgID, id)
	if err != nil {
		return PositionResponse{}, err
	}

	count, err := s.repo.ActiveEmployeeCount(ctx, pos.ID)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*pos, count), nil
}

func (s *service) Update(ctx context.Context, orgID uuid.UUID, id string, req UpdatePositionRequest) (PositionResponse, error) {
	pos, err := s.find(ctx, orgID, id)
	if err != nil {
		return PositionResponse{}, err
	}

	if req.Title != nil {
		pos.Title = strings.TrimSpace(*req.Title)
	}
	if req.Code != nil {
		pos.Code = strings.TrimSpace(*req.Code)
	}
	if req.Description != nil {
		pos.Description = *req.Description
	}
	if req.MinSalary != nil {
		pos.MinSalary = req.MinSalary
	}
	if req.MaxSalary != nil {
		pos.MaxSalary = req.MaxSalary
	}
	if !validSalaryBand(pos.MinSalary, pos.MaxSalary) {
		return PositionResponse{}, positionerrors.ErrInvalidSalaryBand
	}
	if req.IsActive != nil {
		pos.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, pos); err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	count, err := s.repo.ActiveEmployeeCount(ctx, pos.ID)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*pos, count), nil
}

func (s *service) Delete(ctx context.Context, orgID uuid.UUID, id string) error {
	pos, err := s.find(ctx, orgID, id)
	if err != nil {
		return err
	}

	count, err := s.repo.ActiveEmployeeCount(ctx, pos.ID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if count > 0 {
		return positionerrors.ErrPositionInUse
	}

	if err := s.repo.Delete(ctx, orgID, pos.ID); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("position deleted",
		zap.String("position_id", pos.ID.String()),
		zap.String("organization_id", orgID.String()),
	)
	return nil
}

func (s *service) find(ctx context.Context, orgID uuid.UUID, id string) (*Position, error) {
	posID, err := uuid.Parse(id)
	if err != nil {
		return nil, positionerrors.ErrInvalidPositionID
	}

	pos, err := s.repo.FindByID(ctx, []uuid.UUID{orgID}, posID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return pos, nil
}
