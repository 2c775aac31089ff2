package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kisanlink/agrostock-backend/internal/dto"
	"github.com/kisanlink/agrostock-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMissingTransferFields = errors.New("please provide b2c_user_id, quantity, price_per_unit, and total_amount")
	ErrTransferNotFound      = errors.New("stock transfer not found")
)

type StockTransferService struct {
	db *gorm.DB
}

func NewStockTransferService(db *gorm.DB) *StockTransferService {
	return &StockTransferService{db: db}
}

func (s *StockTransferService) List() ([]dto.StockTransferResponse, error) {
	var transfers []models.StockTransfer
	err := s.expanded().Order("transfer_date desc").Find(&transfers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stock transfers: %w", err)
	}
	return mapTransfersToResponse(transfers), nil
}

func (s *StockTransferService) ListByUser(userID uuid.UUID) ([]dto.StockTransferResponse, error) {
	var transfers []models.StockTransfer
	err := s.expanded().
		Where("b2c_user_id = ?", userID).
		Order("transfer_date desc").
		Find(&transfers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stock transfers: %w", err)
	}
	return mapTransfersToResponse(transfers), nil
}

func (s *StockTransferService) Create(req *dto.CreateStockTransferRequest) (*dto.StockTransferResponse, error) {
	// Zero counts as missing here. TotalAmount is stored as given; it is
	// not validated against Quantity*PricePerUnit.
	if req.B2CUserID == uuid.Nil || req.Quantity == 0 || req.PricePerUnit == 0 || req.TotalAmount == 0 {
		return nil, ErrMissingTransferFields
	}

	transfer := models.StockTransfer{
		ID:                 uuid.New(),
		B2BUserID:          req.B2BUserID,
		B2CUserID:          req.B2CUserID,
		ProductID:          req.ProductID,
		CustomProductName:  req.CustomProductName,
		CustomProductID:    req.CustomProductID,
		CustomSupplierName: req.CustomSupplierName,
		CustomSupplierGST:  req.CustomSupplierGST,
		Quantity:           req.Quantity,
		PricePerUnit:       req.PricePerUnit,
		TotalAmount:        req.TotalAmount,
		TransferDate:       time.Now(),
		Status:             models.TransferStatusPending,
		Notes:              req.Notes,
		BillNumber:         req.BillNumber,
		HSNCode:            req.HSNCode,
		GSTPercentage:      req.GSTPercentage,
		GSTCategory:        req.GSTCategory,
		SeedLevel:          req.SeedLevel,
		LotNumber:          req.LotNumber,
		NumberOfBags:       req.NumberOfBags,
		PricePerBag:        req.PricePerBag,
	}
	if req.TransferDate != nil {
		transfer.TransferDate = *req.TransferDate
	}
	if req.Status != "" {
		transfer.Status = req.Status
	}
	transfer.Normalize()

	if err := s.db.Create(&transfer).Error; err != nil {
		return nil, fmt.Errorf("failed to create stock transfer: %w", err)
	}

	return s.getExpanded(transfer.ID)
}

// Update applies each field the PUT body actually carried. Presence
// gates the overwrite, so explicit empty strings and zeros do replace
// stored values.
func (s *StockTransferService) Update(id uuid.UUID, req *dto.UpdateStockTransferRequest) (*dto.StockTransferResponse, error) {
	var transfer models.StockTransfer
	if err := s.db.First(&transfer, "id = ?", id).Error; err != nil {
		return nil, ErrTransferNotFound
	}

	if req.CustomProductName != nil {
		transfer.CustomProductName = *req.CustomProductName
	}
	if req.CustomProductID != nil {
		transfer.CustomProductID = *req.CustomProductID
	}
	if req.CustomSupplierName != nil {
		transfer.CustomSupplierName = *req.CustomSupplierName
	}
	if req.CustomSupplierGST != nil {
		transfer.CustomSupplierGST = *req.CustomSupplierGST
	}
	if req.Quantity != nil {
		transfer.Quantity = *req.Quantity
	}
	if req.PricePerUnit != nil {
		transfer.PricePerUnit = *req.PricePerUnit
	}
	if req.TotalAmount != nil {
		transfer.TotalAmount = *req.TotalAmount
	}
	if req.TransferDate != nil {
		transfer.TransferDate = *req.TransferDate
	}
	if req.Status != nil {
		transfer.Status = *req.Status
	}
	if req.Notes != nil {
		transfer.Notes = *req.Notes
	}
	if req.BillNumber != nil {
		transfer.BillNumber = *req.BillNumber
	}
	if req.HSNCode != nil {
		transfer.HSNCode = *req.HSNCode
	}
	if req.GSTPercentage != nil {
		transfer.GSTPercentage = *req.GSTPercentage
	}
	if req.GSTCategory != nil {
		transfer.GSTCategory = *req.GSTCategory
	}
	if req.SeedLevel != nil {
		transfer.SeedLevel = *req.SeedLevel
	}
	if req.LotNumber != nil {
		transfer.LotNumber = *req.LotNumber
	}
	if req.NumberOfBags != nil {
		transfer.NumberOfBags = req.NumberOfBags
	}
	if req.PricePerBag != nil {
		transfer.PricePerBag = req.PricePerBag
	}
	transfer.Normalize()

	if err := s.db.Save(&transfer).Error; err != nil {
		return nil, fmt.Errorf("failed to update stock transfer: %w", err)
	}

	return s.getExpanded(transfer.ID)
}

// PatchStatus updates status and notes only. Unlike Update, an empty
// status is skipped; notes still follow the presence rule. The
// asymmetry is part of the contract.
func (s *StockTransferService) PatchStatus(id uuid.UUID, req *dto.UpdateTransferStatusRequest) (*dto.StockTransferResponse, error) {
	var transfer models.StockTransfer
	if err := s.db.First(&transfer, "id = ?", id).Error; err != nil {
		return nil, ErrTransferNotFound
	}

	if req.Status != "" {
		transfer.Status = req.Status
	}
	if req.Notes != nil {
		transfer.Notes = *req.Notes
	}

	if err := s.db.Save(&transfer).Error; err != nil {
		return nil, fmt.Errorf("failed to update stock transfer: %w", err)
	}

	return s.getExpanded(transfer.ID)
}

func (s *StockTransferService) expanded() *gorm.DB {
	return s.db.
		Preload("B2BUser").
		Preload("B2CUser").
		Preload("Product")
}

func (s *StockTransferService) getExpanded(id uuid.UUID) (*dto.StockTransferResponse, error) {
	var transfer models.StockTransfer
	if err := s.expanded().First(&transfer, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to load stock transfer: %w", err)
	}
	resp := mapTransferToResponse(&transfer)
	return &resp, nil
}

func mapTransfersToResponse(transfers []models.StockTransfer) []dto.StockTransferResponse {
	resp := make([]dto.StockTransferResponse, 0, len(transfers))
	for i := range transfers {
		resp = append(resp, mapTransferToResponse(&transfers[i]))
	}
	return resp
}

func mapTransferToResponse(t *models.StockTransfer) dto.StockTransferResponse {
	resp := dto.StockTransferResponse{
		ID:                 t.ID,
		CustomProductName:  t.CustomProductName,
		CustomProductID:    t.CustomProductID,
		CustomSupplierName: t.CustomSupplierName,
		CustomSupplierGST:  t.CustomSupplierGST,
		Quantity:           t.Quantity,
		PricePerUnit:       t.PricePerUnit,
		TotalAmount:        t.TotalAmount,
		TransferDate:       t.TransferDate,
		Status:             t.Status,
		Notes:              t.Notes,
		BillNumber:         t.BillNumber,
		HSNCode:            t.HSNCode,
		GSTPercentage:      t.GSTPercentage,
		GSTCategory:        t.GSTCategory,
		SeedLevel:          t.SeedLevel,
		LotNumber:          t.LotNumber,
		NumberOfBags:       t.NumberOfBags,
		PricePerBag:        t.PricePerBag,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}

	// Sparse reference projections: the b2b ref omits full_name, the
	// b2c ref carries it.
	if t.B2BUser != nil {
		resp.B2BUser = &dto.TransferUserRef{
			ID:        t.B2BUser.ID,
			ShopName:  t.B2BUser.ShopName,
			GSTNumber: t.B2BUser.GSTNumber,
			Email:     t.B2BUser.Email,
		}
	}
	if t.B2CUser != nil {
		resp.B2CUser = &dto.TransferUserRef{
			ID:        t.B2CUser.ID,
			ShopName:  t.B2CUser.ShopName,
			GSTNumber: t.B2CUser.GSTNumber,
			Email:     t.B2CUser.Email,
			FullName:  t.B2CUser.FullName,
		}
	}
	if t.Product != nil {
		resp.Product = &dto.TransferProductRef{
			ID:          t.Product.ID,
			ProductName: t.Product.ProductName,
			ProductID:   t.Product.ProductID,
		}
	}

	return resp
}
