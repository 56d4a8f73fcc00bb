package role

import (
	"context"
	"fmt"
	"testing"

	"github.com/SalimDiallo/LouraBackend/internal/permission"
	roleerrors "github.com/SalimDiallo/LouraBackend/internal/role/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return gdb, mock
}

type fakePermissionService struct {
	known map[string]permission.Permission
}

func (f *fakePermissionService) Sync(ctx context.Context) (permission.SyncResult, error) {
	return permission.SyncResult{}, nil
}

func (f *fakePermissionService) List(ctx context.Context) ([]permission.PermissionResponse, error) {
	return nil, nil
}

func (f *fakePermissionService) ResolveCodes(ctx context.Context, codes []string) ([]permission.Permission, error) {
	var out []permission.Permission
	for _, code := range codes {
		if p, ok := f.known[code]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeRoleRepo struct {
	roles       map[uuid.UUID]*Role
	assignments map[uuid.UUID]int64
	created     []*Role
	replaced    map[uuid.UUID][]permission.Permission
	failReplace bool
}

func (f *fakeRoleRepo) WithTx(tx *gorm.DB) Repository { return f }

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{
		roles:       map[uuid.UUID]*Role{},
		assignments: map[uuid.UUID]int64{},
		replaced:    map[uuid.UUID][]permission.Permission{},
	}
}

func (f *fakeRoleRepo) Create(ctx context.Context, r *Role) error {
	r.ID = uuid.New()
	cp := *r
	f.roles[r.ID] = &cp
	f.created = append(f.created, &cp)
	return nil
}

func (f *fakeRoleRepo) FindByID(ctx context.Context, id uuid.UUID) (*Role, error) {
	r, ok := f.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRoleRepo) FindByOrgAndCode(ctx context.Context, orgID *uuid.UUID, code string) (*Role, error) {
	for _, r := range f.roles {
		if r.Code != code {
			continue
		}
		if orgID == nil && r.OrganizationID == nil {
			cp := *r
			return &cp, nil
		}
		if orgID != nil && r.OrganizationID != nil && *orgID == *r.OrganizationID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRoleRepo) ListForOrg(ctx context.Context, orgID uuid.UUID) ([]Role, error) {
	var out []Role
	for _, r := range f.roles {
		if r.OrganizationID == nil || *r.OrganizationID == orgID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRoleRepo) Update(ctx context.Context, r *Role) error {
	if _, ok := f.roles[r.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *r
	f.roles[r.ID] = &cp
	return nil
}

func (f *fakeRoleRepo) ReplacePermissions(ctx context.Context, r *Role, perms []permission.Permission) error {
	if f.failReplace {
		return gorm.ErrInvalidTransaction
	}
	f.replaced[r.ID] = perms
	if stored, ok := f.roles[r.ID]; ok {
		stored.Permissions = perms
	}
	return nil
}

func (f *fakeRoleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.roles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.roles, id)
	return nil
}

func (f *fakeRoleRepo) CountAssignments(ctx context.Context, roleID uuid.UUID) (int64, error) {
	return f.assignments[roleID], nil
}

func (f *fakeRoleRepo) PermissionCodesByRoleID(ctx context.Context, roleID uuid.UUID) ([]string, error) {
	r, ok := f.roles[roleID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.PermissionCodes(), nil
}

func catalogFixture(codes ...string) *fakePermissionService {
	known := make(map[string]permission.Permission, len(codes))
	for _, code := range codes {
		known[code] = permission.Permission{ID: uuid.New(), Code: code}
	}
	return &fakePermissionService{known: known}
}

func TestCreateDropsUnknownPermissionCodes(t *testing.T) {
	repo := newFakeRoleRepo()
	perms := catalogFixture("can_view_leave", "can_create_leave")
	gdb, _ := newMockGorm(t)
	svc := NewService(gdb, repo, perms)
	orgID := uuid.New()

	resp, err := svc.Create(context.Background(), orgID, CreateRoleRequest{
		Code:            "leave_clerk",
		Name:            "Leave Clerk",
		PermissionCodes: []string{"can_view_leave", "bogus_code", "can_create_leave"},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"can_view_leave", "can_create_leave"}, resp.Permissions)
	assert.NotContains(t, resp.Permissions, "bogus_code")
}

func TestCreateNormalizesCode(t *testing.T) {
	repo := newFakeRoleRepo()
	gdb, _ := newMockGorm(t)
	svc := NewService(gdb, repo, catalogFixture())
	orgID := uuid.New()

	resp, err := svc.Create(context.Background(), orgID, CreateRoleRequest{
		Code: "  Team_Lead ",
		Name: "Team Lead",
	})
	require.NoError(t, err)
	assert.Equal(t, "team_lead", resp.Code)
	require.NotNil(t, resp.OrganizationID)
	assert.Equal(t, orgID, *resp.OrganizationID)
}

func TestGetByIDHidesForeignOrgRole(t *testing.T) {
	repo := newFakeRoleRepo()
	gdb, _ := newMockGorm(t)
	svc := NewService(gdb, repo, catalogFixture())

	otherOrg := uuid.New()
	created, err := svc.Create(context.Background(), otherOrg, CreateRoleRequest{
		Code: "payroll_clerk", Name: "Payroll Clerk",
	})
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), uuid.New(), created.ID.String())
	assert.ErrorIs(t, err, roleerrors.ErrRoleNotFound)
}

func TestGlobalTemplateVisibleToEveryOrg(t *testing.T) {
	repo := newFakeRoleRepo()
	gdb, _ := newMockGorm(t)
	svc := NewService(gdb, repo, catalogFixture("can_view_leave"))
	require.NoError(t, svc.SyncPredefined(context.Background()))

	resp, err := svc.List(context.Background(), uuid.New())
	require.NoError(t, err)

	var codes []string
	for _, r := range resp {
		codes = append(codes, r.Code)
	}
	assert.Contains(t, codes, "super_admin")
	assert.Contains(t, codes, "readonly")
}

func TestSystemRoleImmutable(t *testing.T) {
	repo := newFakeRoleRepo()
	gdb, _ := newMockGorm(t)
	svc := NewService(gdb, repo, catalogFixture())
	require.NoError(t, svc.SyncPredefined(context.Background()))

	tmpl, err := repo.FindByOrgAndCode(context.Background(), nil, "readonly")
	require.NoError(t, err)

	orgID := uuid.New()
	name := "Renamed"
	_, err = svc.Update(context.Background(), orgID, tmpl.ID.String(), UpdateRoleRequest{Name: &name})
	assert.ErrorIs(t, err, roleerrors.ErrSystemRoleImmutable)

	err = svc.Delete(context.Background(), orgID, tmpl.ID.String())
	assert.ErrorIs(t, err, roleerrors.ErrSystemRoleImmutable)
}

func TestDeleteRefusesAssignedRole(t *testing.T) {
	repo := newFakeRoleRepo()
	gdb, _ := newMockGorm(t)
	svc := NewService(gdb, repo, catalogFixture())
	orgID := uuid.New()

	created, err := svc.Create(context.Background(), orgID, CreateRoleRequest{
		Code: "auditor", Name: "Auditor",
	})
	require.NoError(t, err)
	repo.assignments[created.ID] = 3

	err = svc.Delete(context.Background(), orgID, created.ID.String())
	assert.ErrorIs(t, err, roleerrors.ErrRoleInUse)
}

func TestSyncPredefinedIsIdempotent(t *testing.T) {
	repo := newFakeRoleRepo()
	gdb, mock := newMockGorm(t)
	svc := NewService(gdb, repo, catalogFixture("can_view_leave", "can_create_leave"))

	require.NoError(t, svc.SyncPredefined(context.Background()))
	first := len(repo.roles)

	// The second pass takes the update branch, one transaction per template.
	for range PredefinedRoles() {
		mock.ExpectBegin()
		mock.ExpectCommit()
	}
	require.NoError(t, svc.SyncPredefined(context.Background()))
	assert.Equal(t, first, len(repo.roles))
	assert.Equal(t, len(PredefinedRoles()), first)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDuplicateCodeMapsToRoleCodeTaken(t *testing.T) {
	orgDup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_role_org_code"}
	assert.ErrorIs(t, mapRepositoryError(orgDup), roleerrors.ErrRoleCodeTaken)

	// Template roles have no organization, so their codes are guarded by a
	// separate partial index.
	templateDup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_role_system_code"}
	assert.ErrorIs(t, mapRepositoryError(templateDup), roleerrors.ErrRoleCodeTaken)

	flattened := fmt.Errorf("duplicate key value violates unique constraint \"uq_role_system_code\"")
	assert.ErrorIs(t, mapRepositoryError(flattened), roleerrors.ErrRoleCodeTaken)
}

func TestUpdateAppliesFieldsAndPermissionsAtomically(t *testing.T) {
	repo := newFakeRoleRepo()
	gdb, mock := newMockGorm(t)
	svc := NewService(gdb, repo, catalogFixture("can_view_leave", "can_create_leave"))
	orgID := uuid.New()

	created, err := svc.Create(context.Background(), orgID, CreateRoleRequest{
		Code:            "leave_clerk",
		Name:            "Leave Clerk",
		PermissionCodes: []string{"can_view_leave"},
	})
	require.NoError(t, err)

	name := "Leave Desk"
	repo.failReplace = true
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.Update(context.Background(), orgID, created.ID.String(), UpdateRoleRequest{
		Name:            &name,
		PermissionCodes: []string{"can_create_leave"},
	})
	require.Error(t, err)

	repo.failReplace = false
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Update(context.Background(), orgID, created.ID.String(), UpdateRoleRequest{
		Name:            &name,
		PermissionCodes: []string{"can_create_leave"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Leave Desk", resp.Name)
	assert.ElementsMatch(t, []string{"can_create_leave"}, resp.Permissions)
	require.NoError(t, mock.ExpectationsWereMet())
}
