package models

import (
	"time"
)

// Enquiry is a customer contact message. Rows are immutable once created;
// nothing in the API updates or deletes them.
type Enquiry struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"type:varchar(200);not null"`
	Email      string    `json:"email" gorm:"type:varchar(255);not null"`
	Phone      string    `json:"phone" gorm:"type:varchar(50)"`
	Message    string    `json:"message" gorm:"type:text;not null"`
	SourcePage string    `json:"source_page" gorm:"type:varchar(200)"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}
