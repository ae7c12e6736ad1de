package models

import (
	"time"
)

type AuditLog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Action     string    `json:"action" gorm:"type:varchar(50);not null"` // login, logout, create, update, delete
	Resource   string    `json:"resource" gorm:"type:varchar(100)"`       // product, session
	ResourceID string    `json:"resource_id" gorm:"type:varchar(255)"`
	IPAddress  string    `json:"ip_address" gorm:"type:varchar(45)"`
	UserAgent  string    `json:"user_agent" gorm:"type:varchar(500)"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}
