package department_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/department"
	departmenterrors "github.com/SalimDiallo/LouraBackend/internal/department/errors"
	"github.com/SalimDiallo/LouraBackend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	CreateFn  func(ctx context.Context, orgID uuid.UUID, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetAllFn  func(ctx context.Context, orgID uuid.UUID) ([]department.DepartmentResponse, error)
	GetByIDFn func(ctx context.Context, orgID uuid.UUID, id string) (department.DepartmentResponse, error)
	UpdateFn  func(ctx context.Context, orgID uuid.UUID, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteFn  func(ctx context.Context, orgID uuid.UUID, id string) error
}

func (f *fakeDepartmentService) Create(ctx context.Context, orgID uuid.UUID, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, orgID, req)
}
func (f *fakeDepartmentService) GetAll(ctx context.Context, orgID uuid.UUID) ([]department.DepartmentResponse, error) {
	return f.GetAllFn(ctx, orgID)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, orgID uuid.UUID, id string) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, orgID, id)
}
func (f *fakeDepartmentService) Update(ctx context.Context, orgID uuid.UUID, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.UpdateFn(ctx, orgID, id, req)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, orgID uuid.UUID, id string) error {
	return f.DeleteFn(ctx, orgID, id)
}

func asStaff(c *gin.Context, orgID uuid.UUID) {
	c.Set(middleware.ContextPrincipal, authz.Principal(authz.Staff{
		EmployeeID:     uuid.New(),
		OrganizationID: orgID,
		RoleCode:       authz.RoleCodeHRAdmin,
	}))
}

func TestDepartmentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		orgID := uuid.New()
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, oid uuid.UUID, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				assert.Equal(t, orgID, oid)
				return department.DepartmentResponse{ID: uuid.New(), OrganizationID: oid, Name: req.Name}, nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"Engineering"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		asStaff(c, orgID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		h := department.NewHandler(&fakeDepartmentService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		asStaff(c, uuid.New())

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing principal", func(t *testing.T) {
		h := department.NewHandler(&fakeDepartmentService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"Engineering"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDepartmentHandler_OwnerNeedsOrganizationParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	orgID := uuid.New()
	svc := &fakeDepartmentService{
		GetAllFn: func(ctx context.Context, oid uuid.UUID) ([]department.DepartmentResponse, error) {
			assert.Equal(t, orgID, oid)
			return nil, nil
		},
	}
	h := department.NewHandler(svc)

	t.Run("without param", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/departments", nil)
		c.Set(middleware.ContextPrincipal, authz.Principal(authz.Owner{AdminID: uuid.New()}))

		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("with in-scope param", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/departments?organization_id="+orgID.String(), nil)
		c.Set(middleware.ContextPrincipal, authz.Principal(authz.Owner{AdminID: uuid.New()}))
		c.Set(middleware.ContextScope, authz.NewScope(orgID))

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("with out-of-scope param", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/departments?organization_id="+uuid.NewString(), nil)
		c.Set(middleware.ContextPrincipal, authz.Principal(authz.Owner{AdminID: uuid.New()}))
		c.Set(middleware.ContextScope, authz.NewScope(orgID))

		h.GetAll(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDepartmentHandler_GetById(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		svc := &fakeDepartmentService{
			GetByIDFn: func(ctx context.Context, oid uuid.UUID, id string) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/departments/"+uuid.NewString(), nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}
		asStaff(c, uuid.New())

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
