package dto

import "github.com/google/uuid"

type CreateProductRequest struct {
	CompanyName string     `json:"company_name"`
	ProductName string     `json:"product_name"`
	ProductID   string     `json:"product_id"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Unit        string     `json:"unit"`
	IsCustom    bool       `json:"is_custom"`
	CreatedBy   *uuid.UUID `json:"created_by"`
}
