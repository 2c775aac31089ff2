package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/kisanlink/agrostock-backend/internal/dto"
	"github.com/kisanlink/agrostock-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMissingProductFields = errors.New("please provide company name, product name and ID")
	ErrProductIDTaken       = errors.New("product with this ID already exists")
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// List returns the catalog visible to userID: every active product that
// is non-custom, has no custom flag, or has no creator, plus the custom
// products created by exactly that user. The first three clauses
// overlap under this schema; they are kept separate because legacy rows
// relied on them individually.
func (s *ProductService) List(userID *uuid.UUID) ([]models.Product, error) {
	visible := s.db.
		Where("is_custom = ?", false).
		Or("is_custom IS NULL").
		Or("created_by IS NULL")
	if userID != nil {
		visible = visible.Or("created_by = ?", *userID)
	}

	var products []models.Product
	err := s.db.
		Where("is_active = ?", true).
		Where(visible).
		Order("company_name asc, product_name asc").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Create(req *dto.CreateProductRequest) (*models.Product, error) {
	if req.CompanyName == "" || req.ProductName == "" || req.ProductID == "" {
		return nil, ErrMissingProductFields
	}

	productID := strings.TrimSpace(req.ProductID)
	var existing models.Product
	if err := s.db.Where("product_id = ?", productID).First(&existing).Error; err == nil {
		return nil, ErrProductIDTaken
	}

	product := models.Product{
		ID:          uuid.New(),
		CompanyName: req.CompanyName,
		ProductName: req.ProductName,
		ProductID:   req.ProductID,
		Description: req.Description,
		Category:    req.Category,
		Unit:        req.Unit,
		IsActive:    true,
		IsCustom:    req.IsCustom,
		CreatedBy:   req.CreatedBy,
	}
	product.Normalize()

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}
