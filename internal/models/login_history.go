package models

import (
	"encoding/json"
	"time"
)

// Login status constants
const (
	LoginStatusSuccess = "success"
	LoginStatusFailed  = "failed"
)

// LoginHistory records one login attempt and, for successful attempts, the
// eventual logout time. A row with status success and a null LogoutAt is an
// open session, eligible to be closed by a later logout event.
type LoginHistory struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	UserID         uint            `gorm:"not null;index" json:"user_id"`
	IPAddress      *string         `gorm:"size:45" json:"ip_address"`
	UserAgent      *string         `gorm:"type:text" json:"user_agent"`
	Device         *string         `gorm:"size:50" json:"device"`
	Platform       *string         `gorm:"size:50" json:"platform"`
	Browser        *string         `gorm:"size:50" json:"browser"`
	Location       *string         `gorm:"size:100" json:"location"`
	LoginAt        time.Time       `gorm:"not null;index" json:"login_at"`
	LogoutAt       *time.Time      `json:"logout_at"`
	Status         string          `gorm:"size:10;default:success" json:"status"`
	AdditionalInfo json.RawMessage `gorm:"type:jsonb" json:"additional_info,omitempty"`

	// Sessions are erased together with the user they belong to.
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for LoginHistory
func (LoginHistory) TableName() string {
	return "login_histories"
}

// IsOpen returns true if this is a success row not yet closed by a logout
func (l *LoginHistory) IsOpen() bool {
	return l.Status == LoginStatusSuccess && l.LogoutAt == nil
}
