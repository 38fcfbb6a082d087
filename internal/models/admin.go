package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Admin roles, highest privilege first.
const (
	RoleSuperAdmin   = "SUPER_ADMIN"
	RoleGeneralAdmin = "GENERAL_ADMIN"
)

// Admin account statuses.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Admin is a privileged operator account. The password column always holds a
// bcrypt hash; plaintext never reaches storage.
type Admin struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	NamePrefix *string        `gorm:"size:20" json:"name_prefix,omitempty"`
	FirstName  string         `gorm:"size:100;not null" json:"first_name"`
	MiddleName *string        `gorm:"size:100" json:"middle_name,omitempty"`
	LastName   string         `gorm:"size:100;not null" json:"last_name"`
	NameSuffix *string        `gorm:"size:20" json:"name_suffix,omitempty"`
	NationalID string         `gorm:"size:20;not null;uniqueIndex" json:"national_id"`
	Gender     string         `gorm:"size:20" json:"gender"`
	Birthday   datatypes.Date `json:"-"`
	Phone      int64          `json:"phone"`
	Address    string         `gorm:"type:text" json:"address"`
	Username   string         `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email      string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Role       string         `gorm:"size:20;not null;default:'GENERAL_ADMIN'" json:"role"`
	Status     string         `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	Password   string         `gorm:"not null" json:"-"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
