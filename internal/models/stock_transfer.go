package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// StockTransfer status values. Stored as-is; there is no enforced
// transition graph between them.
const (
	TransferStatusPending   = "pending"
	TransferStatusApproved  = "approved"
	TransferStatusRejected  = "rejected"
	TransferStatusCompleted = "completed"
	TransferStatusReceived  = "received"
)

// StockTransfer records one transfer event from an optional B2B
// supplier to a B2C recipient. Off-catalog goods use the Custom*
// fields instead of a product reference. TotalAmount is caller-supplied
// and deliberately not derived from Quantity*PricePerUnit.
type StockTransfer struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"_id"`
	B2BUserID          *uuid.UUID `gorm:"type:uuid" json:"-"`
	B2CUserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	ProductID          *uuid.UUID `gorm:"type:uuid" json:"-"`
	B2BUser            *User      `gorm:"foreignKey:B2BUserID" json:"-"`
	B2CUser            *User      `gorm:"foreignKey:B2CUserID" json:"-"`
	Product            *Product   `gorm:"foreignKey:ProductID" json:"-"`
	CustomProductName  string     `gorm:"size:255" json:"custom_product_name,omitempty"`
	CustomProductID    string     `gorm:"size:100" json:"custom_product_id,omitempty"`
	CustomSupplierName string     `gorm:"size:255" json:"custom_supplier_name,omitempty"`
	CustomSupplierGST  string     `gorm:"size:50" json:"custom_supplier_gst,omitempty"`
	Quantity           float64    `gorm:"not null;check:quantity >= 0" json:"quantity"`
	PricePerUnit       float64    `gorm:"not null;check:price_per_unit >= 0" json:"price_per_unit"`
	TotalAmount        float64    `gorm:"not null;check:total_amount >= 0" json:"total_amount"`
	TransferDate       time.Time  `gorm:"not null;index" json:"transfer_date"`
	Status             string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes              string     `gorm:"size:1000" json:"notes,omitempty"`
	BillNumber         string     `gorm:"size:100" json:"bill_number,omitempty"`
	HSNCode            string     `gorm:"size:50" json:"hsn_code,omitempty"`
	GSTPercentage      string     `gorm:"size:20" json:"gst_percentage,omitempty"`
	GSTCategory        string     `gorm:"size:50" json:"gst_category,omitempty"`
	SeedLevel          string     `gorm:"size:50" json:"seed_level,omitempty"`
	LotNumber          string     `gorm:"size:100" json:"lot_number,omitempty"`
	NumberOfBags       *float64   `json:"number_of_bags,omitempty"`
	PricePerBag        *float64   `json:"price_per_bag,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (t *StockTransfer) Normalize() {
	t.CustomProductName = strings.TrimSpace(t.CustomProductName)
	t.CustomProductID = strings.TrimSpace(t.CustomProductID)
	t.CustomSupplierName = strings.TrimSpace(t.CustomSupplierName)
	t.CustomSupplierGST = strings.TrimSpace(t.CustomSupplierGST)
	t.Notes = strings.TrimSpace(t.Notes)
	t.BillNumber = strings.TrimSpace(t.BillNumber)
	t.HSNCode = strings.TrimSpace(t.HSNCode)
	t.GSTPercentage = strings.TrimSpace(t.GSTPercentage)
	t.GSTCategory = strings.TrimSpace(t.GSTCategory)
	t.SeedLevel = strings.TrimSpace(t.SeedLevel)
	t.LotNumber = strings.TrimSpace(t.LotNumber)
}
