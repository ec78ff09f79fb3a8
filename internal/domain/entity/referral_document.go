package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReferralDocument represents a file attached to a referral. Documents are
// created on upload, never mutated, and removed with the owning referral.
type ReferralDocument struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReferralID  int64      `gorm:"not null;index" json:"referral_id"`
	FilePath    string     `gorm:"type:varchar(512);not null" json:"file_path"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	UploadedAt  time.Time  `gorm:"autoCreateTime" json:"uploaded_at"`
	UploadedBy  *uuid.UUID `gorm:"type:uuid" json:"uploaded_by,omitempty"`

	// Relationships
	Referral Referral `gorm:"foreignKey:ReferralID" json:"-"`
	Uploader *User    `gorm:"foreignKey:UploadedBy" json:"uploader,omitempty"`
}

func (ReferralDocument) TableName() string {
	return "referral_documents"
}
