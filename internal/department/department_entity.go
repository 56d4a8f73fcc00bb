package department

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_department_org_name"`
	Name           string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_department_org_name"`
	Code           string     `gorm:"type:varchar(50)"`
	Description    string     `gorm:"type:text"`
	HeadID         *uuid.UUID `gorm:"type:uuid"`
	IsActive       bool       `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Department) TableName() string {
	return "departments"
}
