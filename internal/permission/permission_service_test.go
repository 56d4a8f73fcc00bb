package permission

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePermissionRepo struct {
	byCode   map[string]*Permission
	listHits int
}

func newFakePermissionRepo() *fakePermissionRepo {
	return &fakePermissionRepo{byCode: map[string]*Permission{}}
}

func (f *fakePermissionRepo) ListAll(ctx context.Context) ([]Permission, error) {
	f.listHits++
	perms := make([]Permission, 0, len(f.byCode))
	for _, p := range f.byCode {
		perms = append(perms, *p)
	}
	return perms, nil
}

func (f *fakePermissionRepo) FindByCodes(ctx context.Context, codes []string) ([]Permission, error) {
	var perms []Permission
	for _, code := range codes {
		if p, ok := f.byCode[code]; ok {
			perms = append(perms, *p)
		}
	}
	return perms, nil
}

func (f *fakePermissionRepo) Upsert(ctx context.Context, p *Permission) error {
	if existing, ok := f.byCode[p.Code]; ok {
		existing.Name = p.Name
		existing.Category = p.Category
		existing.Description = p.Description
		return nil
	}
	stored := *p
	stored.ID = uuid.New()
	f.byCode[p.Code] = &stored
	return nil
}

func TestSyncIsIdempotent(t *testing.T) {
	repo := newFakePermissionRepo()
	svc := NewService(repo, nil)

	first, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(Catalog), first.Created)
	assert.Equal(t, 0, first.Updated)

	second, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, len(Catalog), second.Updated)
	assert.Len(t, repo.byCode, len(Catalog))
}

func TestSyncInvalidatesCatalogCache(t *testing.T) {
	repo := newFakePermissionRepo()
	rdb, mock := redismock.NewClientMock()
	svc := NewService(repo, rdb)

	mock.ExpectDel(catalogCacheKey).SetVal(1)

	_, err := svc.Sync(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListPopulatesCacheOnMiss(t *testing.T) {
	repo := newFakePermissionRepo()
	require.NoError(t, repo.Upsert(context.Background(), &Permission{
		Code:     "can_view_employee",
		Name:     "View employees",
		Category: CategoryEmployees,
	}))

	rdb, mock := redismock.NewClientMock()
	svc := NewService(repo, rdb)

	mock.ExpectGet(catalogCacheKey).RedisNil()
	mock.Regexp().ExpectSet(catalogCacheKey, `.*can_view_employee.*`, catalogCacheTTL).SetVal("OK")

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "can_view_employee", resp[0].Code)
	assert.Equal(t, 1, repo.listHits)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListServesFromCacheWithoutQuerying(t *testing.T) {
	repo := newFakePermissionRepo()
	rdb, mock := redismock.NewClientMock()
	svc := NewService(repo, rdb)

	cached := []PermissionResponse{{
		ID:       uuid.NewString(),
		Code:     "can_run_payroll",
		Name:     "Run payroll",
		Category: CategoryPayroll,
	}}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)
	mock.ExpectGet(catalogCacheKey).SetVal(string(payload))

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "can_run_payroll", resp[0].Code)
	assert.Equal(t, 0, repo.listHits)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveCodesDropsUnknownCodes(t *testing.T) {
	repo := newFakePermissionRepo()
	require.NoError(t, repo.Upsert(context.Background(), &Permission{
		Code:     "can_view_employee",
		Name:     "View employees",
		Category: CategoryEmployees,
	}))
	svc := NewService(repo, nil)

	perms, err := svc.ResolveCodes(context.Background(), []string{"can_view_employee", "can_fly"})
	require.NoError(t, err)
	require.Len(t, perms, 1)
	assert.Equal(t, "can_view_employee", perms[0].Code)
}
