package models

import "time"

// Member is a registered membership-card holder. WhatsApp and UniqueCode
// carry unique indexes: they are the real backstop against duplicate
// registrations racing past the service-level pre-checks.
type Member struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:255;not null" json:"name"`
	WhatsApp string `gorm:"column:whatsapp;size:20;uniqueIndex;not null" json:"whatsapp"`
	Email    string `gorm:"size:100" json:"email"`
	Address  string `gorm:"size:255" json:"address"`
	Age      *int   `json:"age"`
	Activity string `gorm:"size:255;not null" json:"activity"`

	CardType      string `gorm:"size:30;not null" json:"card_type"`
	UniqueCode    string `gorm:"size:50;uniqueIndex;not null" json:"unique_code"`
	ValidityLabel string `gorm:"size:100;not null" json:"validity_label"`

	// Number of recorded purchase transactions. Never negative.
	PurchaseCount int `gorm:"default:0" json:"purchase_count"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
