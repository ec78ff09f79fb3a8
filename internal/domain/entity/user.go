package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user role used for permission checks
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
	RoleViewer  Role = "viewer"
)

// User represents a system account used for authentication and attribution
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	FullName    string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Role        Role      `gorm:"type:varchar(50);not null;default:'user';index" json:"role"`
	Department  string    `gorm:"type:varchar(100)" json:"department,omitempty"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	LastLoginIP string    `gorm:"type:varchar(45)" json:"last_login_ip,omitempty"`
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin checks if the user is a system administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if the user has managerial access (admins included)
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// IsViewer checks if the user has read-only access
func (u *User) IsViewer() bool {
	return u.Role == RoleViewer
}
