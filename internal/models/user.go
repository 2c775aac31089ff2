package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User covers all three account roles. B2B sub-accounts provisioned by
// a B2C user carry that user's id in CreatedBy.
type User struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password      string     `gorm:"not null" json:"-"`
	UserType      string     `gorm:"size:10;not null" json:"user_type"` // B2B, B2C, ADMIN
	ShopName      string     `gorm:"size:255" json:"shop_name,omitempty"`
	GSTNumber     string     `gorm:"size:50" json:"gst_number,omitempty"`
	FullName      string     `gorm:"size:255" json:"full_name,omitempty"`
	Phone         string     `gorm:"size:50" json:"phone,omitempty"`
	Address       string     `gorm:"size:500" json:"address,omitempty"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	GSTCategory   string     `gorm:"size:50" json:"gst_category,omitempty"`
	GSTPercentage string     `gorm:"size:20" json:"gst_percentage,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Normalize applies the schema-on-write rules before persistence:
// trimmed strings and a lowercased email. Called explicitly by the
// services rather than hidden in an ORM hook.
func (u *User) Normalize() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.ShopName = strings.TrimSpace(u.ShopName)
	u.GSTNumber = strings.TrimSpace(u.GSTNumber)
	u.FullName = strings.TrimSpace(u.FullName)
	u.Phone = strings.TrimSpace(u.Phone)
	u.Address = strings.TrimSpace(u.Address)
	u.GSTCategory = strings.TrimSpace(u.GSTCategory)
	u.GSTPercentage = strings.TrimSpace(u.GSTPercentage)
}
