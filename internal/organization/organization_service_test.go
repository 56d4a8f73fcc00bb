package organization

import (
	"context"
	"testing"

	organizationerrors "github.com/SalimDiallo/LouraBackend/internal/organization/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeOrganizationRepo struct {
	orgs       map[uuid.UUID]*Organization
	settings   map[uuid.UUID]*OrganizationSettings
	categories map[uuid.UUID]*Category
	deleted    []uuid.UUID
}

func newFakeOrganizationRepo() *fakeOrganizationRepo {
	return &fakeOrganizationRepo{
		orgs:       map[uuid.UUID]*Organization{},
		settings:   map[uuid.UUID]*OrganizationSettings{},
		categories: map[uuid.UUID]*Category{},
	}
}

func (f *fakeOrganizationRepo) Create(ctx context.Context, org *Organization) error {
	for _, existing := range f.orgs {
		if existing.Subdomain == org.Subdomain {
			return errForFake(`duplicate key value violates unique constraint "uq_organization_subdomain"`)
		}
	}
	org.ID = uuid.New()
	f.orgs[org.ID] = org
	return nil
}

func (f *fakeOrganizationRepo) FindByID(ctx context.Context, id uuid.UUID) (*Organization, error) {
	if org, ok := f.orgs[id]; ok {
		return org, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrganizationRepo) FindBySubdomain(ctx context.Context, subdomain string) (*Organization, error) {
	for _, org := range f.orgs {
		if org.Subdomain == subdomain {
			return org, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrganizationRepo) FindAllByAdmin(ctx context.Context, adminID uuid.UUID) ([]Organization, error) {
	var out []Organization
	for _, org := range f.orgs {
		if org.AdminID == adminID {
			out = append(out, *org)
		}
	}
	return out, nil
}

func (f *fakeOrganizationRepo) OrgIDsByAdmin(ctx context.Context, adminID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, org := range f.orgs {
		if org.AdminID == adminID {
			ids = append(ids, org.ID)
		}
	}
	return ids, nil
}

func (f *fakeOrganizationRepo) Update(ctx context.Context, org *Organization) error {
	f.orgs[org.ID] = org
	return nil
}

func (f *fakeOrganizationRepo) Delete(ctx context.Context, adminID, id uuid.UUID) error {
	delete(f.orgs, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeOrganizationRepo) FindAdminByID(ctx context.Context, id uuid.UUID) (*OwnerAdmin, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrganizationRepo) FindAdminByEmail(ctx context.Context, email string) (*OwnerAdmin, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrganizationRepo) CreateAdmin(ctx context.Context, admin *OwnerAdmin) error { return nil }

func (f *fakeOrganizationRepo) UpdateAdmin(ctx context.Context, admin *OwnerAdmin) error { return nil }

func (f *fakeOrganizationRepo) GetOrCreateSettings(ctx context.Context, orgID uuid.UUID) (*OrganizationSettings, error) {
	if s, ok := f.settings[orgID]; ok {
		return s, nil
	}
	s := &OrganizationSettings{ID: uuid.New(), OrganizationID: orgID, Currency: "MAD"}
	f.settings[orgID] = s
	return s, nil
}

func (f *fakeOrganizationRepo) UpdateSettings(ctx context.Context, settings *OrganizationSettings) error {
	f.settings[settings.OrganizationID] = settings
	return nil
}

func (f *fakeOrganizationRepo) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeOrganizationRepo) FindCategoryByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	if c, ok := f.categories[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrganizationRepo) GetOrCreateCategory(ctx context.Context, category *Category) (bool, error) {
	for _, existing := range f.categories {
		if existing.Name == category.Name {
			*category = *existing
			return false, nil
		}
	}
	category.ID = uuid.New()
	cp := *category
	f.categories[category.ID] = &cp
	return true, nil
}

type errForFake string

func (e errForFake) Error() string { return string(e) }

func TestCreateNormalizesSubdomain(t *testing.T) {
	repo := newFakeOrganizationRepo()
	svc := NewService(repo)
	adminID := uuid.New()

	resp, err := svc.Create(context.Background(), adminID.String(), CreateOrganizationRequest{
		Name:      "  Acme Corp  ",
		Subdomain: "ACME",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", resp.Name)
	assert.Equal(t, "acme", resp.Subdomain)
	assert.True(t, resp.IsActive)
}

func TestCreateRejectsTakenSubdomain(t *testing.T) {
	repo := newFakeOrganizationRepo()
	svc := NewService(repo)
	adminID := uuid.New()

	_, err := svc.Create(context.Background(), adminID.String(), CreateOrganizationRequest{
		Name:      "Acme",
		Subdomain: "acme",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), uuid.NewString(), CreateOrganizationRequest{
		Name:      "Another Acme",
		Subdomain: "acme",
	})
	assert.ErrorIs(t, err, organizationerrors.ErrSubdomainTaken)
}

func TestGetByIDHidesForeignOrganization(t *testing.T) {
	repo := newFakeOrganizationRepo()
	svc := NewService(repo)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner.String(), CreateOrganizationRequest{
		Name:      "Acme",
		Subdomain: "acme",
	})
	require.NoError(t, err)

	// The owner sees the row, a different admin reads it as not-found.
	_, err = svc.GetByID(context.Background(), owner.String(), created.ID)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), uuid.NewString(), created.ID)
	assert.ErrorIs(t, err, organizationerrors.ErrNotOwner)
}

func TestGetAllByAdminListsOnlyOwnedOrganizations(t *testing.T) {
	repo := newFakeOrganizationRepo()
	svc := NewService(repo)
	first := uuid.New()
	second := uuid.New()

	_, err := svc.Create(context.Background(), first.String(), CreateOrganizationRequest{Name: "Acme", Subdomain: "acme"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), first.String(), CreateOrganizationRequest{Name: "Acme EU", Subdomain: "acme-eu"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), second.String(), CreateOrganizationRequest{Name: "Globex", Subdomain: "globex"})
	require.NoError(t, err)

	mine, err := svc.GetAllByAdmin(context.Background(), first.String())
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := svc.GetAllByAdmin(context.Background(), second.String())
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}

func TestDeleteRequiresOwnership(t *testing.T) {
	repo := newFakeOrganizationRepo()
	svc := NewService(repo)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner.String(), CreateOrganizationRequest{Name: "Acme", Subdomain: "acme"})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), uuid.NewString(), created.ID)
	assert.ErrorIs(t, err, organizationerrors.ErrNotOwner)
	assert.Empty(t, repo.deleted)

	require.NoError(t, svc.Delete(context.Background(), owner.String(), created.ID))
	assert.Len(t, repo.deleted, 1)
}

func TestUpdateSettingsUppercasesCurrency(t *testing.T) {
	repo := newFakeOrganizationRepo()
	svc := NewService(repo)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner.String(), CreateOrganizationRequest{Name: "Acme", Subdomain: "acme"})
	require.NoError(t, err)

	settings, err := svc.UpdateSettings(context.Background(), owner.String(), created.ID, UpdateSettingsRequest{
		Currency: "eur",
	})
	require.NoError(t, err)
	assert.Equal(t, "EUR", settings.Currency)
}

func TestSeedCategoriesIsIdempotent(t *testing.T) {
	repo := newFakeOrganizationRepo()
	svc := NewService(repo)

	created, err := svc.SeedCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(DefaultCategories()), created)

	created, err = svc.SeedCategories(context.Background())
	require.NoError(t, err)
	assert.Zero(t, created)

	listed, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, len(DefaultCategories()))
}

func TestCreateAttachesCategory(t *testing.T) {
	repo := newFakeOrganizationRepo()
	svc := NewService(repo)
	owner := uuid.New()

	_, err := svc.SeedCategories(context.Background())
	require.NoError(t, err)
	listed, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, listed)

	created, err := svc.Create(context.Background(), owner.String(), CreateOrganizationRequest{
		Name:       "Acme",
		Subdomain:  "acme",
		CategoryID: &listed[0].ID,
	})
	require.NoError(t, err)
	require.NotNil(t, created.CategoryID)
	assert.Equal(t, listed[0].ID, *created.CategoryID)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	repo := newFakeOrganizationRepo()
	svc := NewService(repo)
	owner := uuid.New()

	bogus := uuid.NewString()
	_, err := svc.Create(context.Background(), owner.String(), CreateOrganizationRequest{
		Name:       "Acme",
		Subdomain:  "acme",
		CategoryID: &bogus,
	})
	assert.ErrorIs(t, err, organizationerrors.ErrCategoryNotFound)
}

func TestUpdateClearsCategory(t *testing.T) {
	repo := newFakeOrganizationRepo()
	svc := NewService(repo)
	owner := uuid.New()

	_, err := svc.SeedCategories(context.Background())
	require.NoError(t, err)
	listed, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), owner.String(), CreateOrganizationRequest{
		Name:       "Acme",
		Subdomain:  "acme",
		CategoryID: &listed[0].ID,
	})
	require.NoError(t, err)

	cleared := ""
	updated, err := svc.Update(context.Background(), owner.String(), created.ID, UpdateOrganizationRequest{
		CategoryID: &cleared,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.CategoryID)
}
