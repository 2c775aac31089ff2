package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateStockTransferRequest struct {
	B2BUserID          *uuid.UUID `json:"b2b_user_id"`
	B2CUserID          uuid.UUID  `json:"b2c_user_id"`
	ProductID          *uuid.UUID `json:"product_id"`
	CustomProductName  string     `json:"custom_product_name"`
	CustomProductID    string     `json:"custom_product_id"`
	CustomSupplierName string     `json:"custom_supplier_name"`
	CustomSupplierGST  string     `json:"custom_supplier_gst"`
	Quantity           float64    `json:"quantity"`
	PricePerUnit       float64    `json:"price_per_unit"`
	TotalAmount        float64    `json:"total_amount"`
	TransferDate       *time.Time `json:"transfer_date"`
	Status             string     `json:"status"`
	Notes              string     `json:"notes"`
	BillNumber         string     `json:"bill_number"`
	HSNCode            string     `json:"hsn_code"`
	GSTPercentage      string     `json:"gst_percentage"`
	GSTCategory        string     `json:"gst_category"`
	SeedLevel          string     `json:"seed_level"`
	LotNumber          string     `json:"lot_number"`
	NumberOfBags       *float64   `json:"number_of_bags"`
	PricePerBag        *float64   `json:"price_per_bag"`
}

// UpdateStockTransferRequest is the PUT body. Every field is a pointer:
// presence, not truthiness, gates the overwrite, so an explicit empty
// string or zero does replace the stored value.
type UpdateStockTransferRequest struct {
	CustomProductName  *string    `json:"custom_product_name"`
	CustomProductID    *string    `json:"custom_product_id"`
	CustomSupplierName *string    `json:"custom_supplier_name"`
	CustomSupplierGST  *string    `json:"custom_supplier_gst"`
	Quantity           *float64   `json:"quantity"`
	PricePerUnit       *float64   `json:"price_per_unit"`
	TotalAmount        *float64   `json:"total_amount"`
	TransferDate       *time.Time `json:"transfer_date"`
	Status             *string    `json:"status"`
	Notes              *string    `json:"notes"`
	BillNumber         *string    `json:"bill_number"`
	HSNCode            *string    `json:"hsn_code"`
	GSTPercentage      *string    `json:"gst_percentage"`
	GSTCategory        *string    `json:"gst_category"`
	SeedLevel          *string    `json:"seed_level"`
	LotNumber          *string    `json:"lot_number"`
	NumberOfBags       *float64   `json:"number_of_bags"`
	PricePerBag        *float64   `json:"price_per_bag"`
}

// UpdateTransferStatusRequest is the PATCH body. Status is a plain
// string on purpose: an empty status is skipped, unlike the PUT
// semantics above.
type UpdateTransferStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

// TransferUserRef is the sparse user projection embedded in expanded
// transfer responses.
type TransferUserRef struct {
	ID        uuid.UUID `json:"_id"`
	ShopName  string    `json:"shop_name,omitempty"`
	GSTNumber string    `json:"gst_number,omitempty"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
}

// TransferProductRef is the sparse product projection embedded in
// expanded transfer responses.
type TransferProductRef struct {
	ID          uuid.UUID `json:"_id"`
	ProductName string    `json:"product_name"`
	ProductID   string    `json:"product_id"`
}

// StockTransferResponse keeps the legacy wire names: the *_id keys
// carry the expanded reference objects, not bare ids.
type StockTransferResponse struct {
	ID                 uuid.UUID           `json:"_id"`
	B2BUser            *TransferUserRef    `json:"b2b_user_id"`
	B2CUser            *TransferUserRef    `json:"b2c_user_id"`
	Product            *TransferProductRef `json:"product_id"`
	CustomProductName  string              `json:"custom_product_name,omitempty"`
	CustomProductID    string              `json:"custom_product_id,omitempty"`
	CustomSupplierName string              `json:"custom_supplier_name,omitempty"`
	CustomSupplierGST  string              `json:"custom_supplier_gst,omitempty"`
	Quantity           float64             `json:"quantity"`
	PricePerUnit       float64             `json:"price_per_unit"`
	TotalAmount        float64             `json:"total_amount"`
	TransferDate       time.Time           `json:"transfer_date"`
	Status             string              `json:"status"`
	Notes              string              `json:"notes,omitempty"`
	BillNumber         string              `json:"bill_number,omitempty"`
	HSNCode            string              `json:"hsn_code,omitempty"`
	GSTPercentage      string              `json:"gst_percentage,omitempty"`
	GSTCategory        string              `json:"gst_category,omitempty"`
	SeedLevel          string              `json:"seed_level,omitempty"`
	LotNumber          string              `json:"lot_number,omitempty"`
	NumberOfBags       *float64            `json:"number_of_bags,omitempty"`
	PricePerBag        *float64            `json:"price_per_bag,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}
