package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "github.com/SalimDiallo/LouraBackend/internal/auth/errors"
	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/employee"
	"github.com/SalimDiallo/LouraBackend/internal/middleware"
	"github.com/SalimDiallo/LouraBackend/internal/organization"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const revokedKeyPrefix = "auth:revoked:"

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	LoginEmployee(ctx context.Context, req EmployeeLoginRequest) (TokenResponse, error)
	LoginAdmin(ctx context.Context, req AdminLoginRequest) (TokenResponse, error)
	// RegisterAdmin creates an owner-admin account and signs it in. This is
	// the bootstrap path: a fresh deployment has no accounts at all.
	RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (TokenResponse, error)
	// Refresh rotates the pair: the presented refresh token is revoked and a
	// fresh pair is issued against the account's current state.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, principal authz.Principal) (MeResponse, error)
	ChangePassword(ctx context.Context, principal authz.Principal, req ChangePasswordRequest) error
}

type service struct {
	orgs      organization.Repository
	employees employee.Repository
	issuer    *TokenIssuer
	rdb       *redis.Client
	logger    *zap.Logger
}

func NewService(
	orgs organization.Repository,
	employees employee.Repository,
	issuer *TokenIssuer,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		orgs:      orgs,
		employees: employees,
		issuer:    issuer,
		rdb:       rdb,
		logger:    l,
	}
}

func (s *service) LoginEmployee(ctx context.Context, req EmployeeLoginRequest) (TokenResponse, error) {
	org, err := s.orgs.FindBySubdomain(ctx, strings.ToLower(strings.TrimSpace(req.Subdomain)))
	if err != nil {
		// Same answer as a wrong password, no tenant probing.
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	empl, err := s.employees.FindByEmailAndOrg(ctx, org.ID, strings.TrimSpace(req.Email))
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(empl.PasswordHash), []byte(req.Password)); err != nil {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}
	if !empl.IsActive {
		return TokenResponse{}, autherrors.ErrAccountDisabled
	}

	pair, err := s.issuer.IssueForStaff(empl.ID, org.ID, s.roleCode(ctx, empl))
	if err != nil {
		return TokenResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("employee login",
		zap.String("employee_id", empl.ID.String()),
		zap.String("organization_id", org.ID.String()),
	)
	return toTokenResponse(pair), nil
}

func (s *service) LoginAdmin(ctx context.Context, req AdminLoginRequest) (TokenResponse, error) {
	admin, err := s.orgs.FindAdminByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}
	if !admin.IsActive {
		return TokenResponse{}, autherrors.ErrAccountDisabled
	}

	pair, err := s.issuer.IssueForOwner(admin.ID)
	if err != nil {
		return TokenResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("admin login", zap.String("admin_id", admin.ID.String()))
	return toTokenResponse(pair), nil
}

func (s *service) RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (TokenResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return TokenResponse{}, err
	}

	admin := &organization.OwnerAdmin{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		IsActive:     true,
	}

	if err := s.orgs.CreateAdmin(ctx, admin); err != nil {
		if isDuplicateAdminEmail(err) {
			return TokenResponse{}, autherrors.ErrEmailTaken
		}
		s.logger.Error("register admin failed",
			zap.String("email", admin.Email),
			zap.Error(err),
		)
		return TokenResponse{}, err
	}

	pair, err := s.issuer.IssueForOwner(admin.ID)
	if err != nil {
		return TokenResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("admin registered", zap.String("admin_id", admin.ID.String()))
	return toTokenResponse(pair), nil
}

func isDuplicateAdminEmail(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_admin_email"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") && strings.Contains(msg, "uq_admin_email")
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenResponse, error) {
	claims, err := s.issuer.ParseRefresh(refreshToken)
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}

	jti, _ := claims["jti"].(string)
	if jti != "" && s.rdb != nil {
		revoked, err := s.rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
		if err == nil && revoked > 0 {
			return TokenResponse{}, autherrors.ErrTokenRevoked
		}
	}

	sub, _ := claims["sub"].(string)
	subID, err := uuid.Parse(sub)
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}

	var pair TokenPair
	switch kind, _ := claims["principal_kind"].(string); kind {
	case middleware.PrincipalKindAdmin:
		admin, err := s.orgs.FindAdminByID(ctx, subID)
		if err != nil || !admin.IsActive {
			return TokenResponse{}, autherrors.ErrInvalidRefreshToken
		}
		pair, err = s.issuer.IssueForOwner(admin.ID)
		if err != nil {
			return TokenResponse{}, autherrors.ErrTokenGenerationFailed
		}
	case middleware.PrincipalKindEmployee:
		orgClaim, _ := claims["organization_id"].(string)
		orgID, err := uuid.Parse(orgClaim)
		if err != nil {
			return TokenResponse{}, autherrors.ErrInvalidToken
		}
		empl, err := s.employees.FindByID(ctx, []uuid.UUID{orgID}, subID)
		if err != nil || !empl.IsActive {
			return TokenResponse{}, autherrors.ErrInvalidRefreshToken
		}
		pair, err = s.issuer.IssueForStaff(empl.ID, orgID, s.roleCode(ctx, empl))
		if err != nil {
			return TokenResponse{}, autherrors.ErrTokenGenerationFailed
		}
	default:
		return TokenResponse{}, autherrors.ErrInvalidToken
	}

	// The old token is single-use: revoke it for its remaining lifetime.
	s.revoke(ctx, claims)

	return toTokenResponse(pair), nil
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.issuer.ParseRefresh(refreshToken)
	if err != nil {
		return autherrors.ErrInvalidRefreshToken
	}
	s.revoke(ctx, claims)
	return nil
}

func (s *service) revoke(ctx context.Context, claims map[string]interface{}) {
	if s.rdb == nil {
		return
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return
	}

	ttl := time.Hour
	if exp, ok := claims["exp"].(float64); ok {
		if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
			ttl = remaining
		}
	}
	if err := s.rdb.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err(); err != nil {
		s.logger.Error("revoke refresh token failed", zap.String("jti", jti), zap.Error(err))
	}
}

func (s *service) Me(ctx context.Context, principal authz.Principal) (MeResponse, error) {
	switch p := principal.(type) {
	case authz.Owner:
		admin, err := s.orgs.FindAdminByID(ctx, p.AdminID)
		if err != nil {
			return MeResponse{}, autherrors.ErrInvalidToken
		}
		return MeResponse{
			ID:            admin.ID.String(),
			PrincipalKind: middleware.PrincipalKindAdmin,
			Email:         admin.Email,
			FullName:      admin.FullName(),
		}, nil
	case authz.Staff:
		empl, err := s.employees.FindByID(ctx, []uuid.UUID{p.OrganizationID}, p.EmployeeID)
		if err != nil {
			return MeResponse{}, autherrors.ErrInvalidToken
		}
		resp := MeResponse{
			ID:            empl.ID.String(),
			PrincipalKind: middleware.PrincipalKindEmployee,
			Email:         empl.Email,
			FullName:      empl.FullName(),
			Organization:  empl.OrganizationID.String(),
			RoleCode:      s.roleCode(ctx, empl),
		}
		if empl.AssignedRole != nil {
			resp.Permissions = empl.AssignedRole.PermissionCodes()
		}
		return resp, nil
	default:
		return MeResponse{}, autherrors.ErrInvalidToken
	}
}

func (s *service) ChangePassword(ctx context.Context, principal authz.Principal, req ChangePasswordRequest) error {
	staff, ok := principal.(authz.Staff)
	if !ok {
		return autherrors.ErrInvalidToken
	}

	empl, err := s.employees.FindByID(ctx, []uuid.UUID{staff.OrganizationID}, staff.EmployeeID)
	if err != nil {
		return autherrors.ErrInvalidToken
	}

	if err := bcrypt.CompareHashAndPassword([]byte(empl.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	empl.PasswordHash = string(hash)
	if err := s.employees.Update(ctx, empl); err != nil {
		return err
	}

	s.logger.Info("password changed", zap.String("employee_id", empl.ID.String()))
	return nil
}

func (s *service) roleCode(ctx context.Context, empl *employee.Employee) string {
	if empl.AssignedRole != nil {
		return empl.AssignedRole.Code
	}
	if empl.AssignedRoleID == nil {
		return ""
	}
	loaded, err := s.employees.FindByID(ctx, []uuid.UUID{empl.OrganizationID}, empl.ID)
	if err != nil || loaded.AssignedRole == nil {
		return ""
	}
	return loaded.AssignedRole.Code
}
