package position

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Position struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_position_org_title"`
	Title          string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_position_org_title"`
	Code           string    `gorm:"type:varchar(50)"`
	Description    string    `gorm:"type:text"`
	MinSalary      *float64  `gorm:"type:numeric(12,2)"`
	MaxSalary      *float64  `gorm:"type:numeric(12,2)"`
	IsActive       bool      `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Position) TableName() string {
	return "positions"
}
