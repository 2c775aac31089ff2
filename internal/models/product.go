package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. ProductID is the business code printed on
// bills, distinct from the row id. Custom products (IsCustom) are
// private to their creating user; everything else is shared catalog.
type Product struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"_id"`
	CompanyName   string     `gorm:"size:255;not null" json:"company_name"`
	ProductName   string     `gorm:"size:255;not null" json:"product_name"`
	ProductID     string     `gorm:"size:100;not null;uniqueIndex" json:"product_id"`
	Description   string     `gorm:"size:500" json:"description,omitempty"`
	Category      string     `gorm:"size:100" json:"category,omitempty"`
	Unit          string     `gorm:"size:50" json:"unit,omitempty"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`
	IsCustom      bool       `gorm:"default:false" json:"is_custom"`
	GSTCategory   string     `gorm:"size:50" json:"gst_category,omitempty"`
	GSTPercentage string     `gorm:"size:20" json:"gst_percentage,omitempty"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (p *Product) Normalize() {
	p.CompanyName = strings.TrimSpace(p.CompanyName)
	p.ProductName = strings.TrimSpace(p.ProductName)
	p.ProductID = strings.TrimSpace(p.ProductID)
	p.Description = strings.TrimSpace(p.Description)
	p.Category = strings.TrimSpace(p.Category)
	p.Unit = strings.TrimSpace(p.Unit)
	p.GSTCategory = strings.TrimSpace(p.GSTCategory)
	p.GSTPercentage = strings.TrimSpace(p.GSTPercentage)
}
