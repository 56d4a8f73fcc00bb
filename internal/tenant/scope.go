package tenant

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope restricts a query to rows owned by the given organizations. An empty
// id set matches nothing, so an unresolved principal reads an empty world.
func Scope(orgIDs []uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(orgIDs) == 0 {
			return db.Where("1 = 0")
		}
		return db.Where("organization_id IN ?", orgIDs)
	}
}

// ScopeViaEmployee does the same for tables keyed by employee rather than
// organization, going through the employees table.
func ScopeViaEmployee(orgIDs []uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(orgIDs) == 0 {
			return db.Where("1 = 0")
		}
		return db.Where("employee_id IN (SELECT id FROM employees WHERE organization_id IN ?)", orgIDs)
	}
}
