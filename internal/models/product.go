package models

import (
	"time"
)

// Product is a catalog entry. Price is in whole currency units and the
// image field holds the root-relative reference returned by the upload
// service.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(200);not null"`
	Price       int       `json:"price" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Image       string    `json:"image" gorm:"type:varchar(500);not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
