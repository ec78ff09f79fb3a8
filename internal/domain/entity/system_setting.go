package entity

import (
	"time"

	"github.com/google/uuid"
)

// SystemSetting is an administrator-managed key-value configuration record
type SystemSetting struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Key           string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"key"`
	Value         JSON       `gorm:"type:jsonb;not null" json:"value"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	LastUpdatedBy *uuid.UUID `gorm:"type:uuid" json:"last_updated_by,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SystemSetting) TableName() string {
	return "system_settings"
}
