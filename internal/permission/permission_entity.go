package permission

import (
	"time"

	"github.com/google/uuid"
)

// Permission is a seeded capability. Identity is the code; rows are only
// written by Sync, never by request handlers.
type Permission struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code        string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_permission_code"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Permission) TableName() string {
	return "permissions"
}
