package models

import "time"

// ActivityLog is an append-only audit trail row. The acting admin's name is
// denormalized onto the row so entries survive admin deletion.
type ActivityLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AdminID   uint   `gorm:"not null;index" json:"admin_id"`
	AdminName string `gorm:"size:100;not null" json:"admin_name"`

	ActivityType string `gorm:"size:30;not null;index" json:"activity_type"`
	Title        string `gorm:"size:255;not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Details      string `gorm:"type:text" json:"details"`

	IPAddress string `gorm:"size:45" json:"ip_address"`
	UserAgent string `gorm:"type:text" json:"user_agent"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "admin_activity_log"
}
