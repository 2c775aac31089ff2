package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kisanlink/agrostock-backend/internal/dto"
	"github.com/kisanlink/agrostock-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email, userType, shopName, fullName string) models.User {
	t.Helper()
	user := models.User{
		ID: uuid.New(), Email: email, Password: "x", UserType: userType,
		ShopName: shopName, FullName: fullName, GSTNumber: "27AAAAA0000A1Z5",
	}
	assert.NoError(t, db.Create(&user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, code, name string) models.Product {
	t.Helper()
	product := models.Product{
		ID: uuid.New(), CompanyName: "Grommer", ProductName: name,
		ProductID: code, IsActive: true,
	}
	assert.NoError(t, db.Create(&product).Error)
	return product
}

func TestStockTransferService_CreateDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockTransferService(db)
	recipient := seedUser(t, db, "b2c@example.com", "B2C", "Field Shop", "Asha Patil")

	before := time.Now()
	resp, err := svc.Create(&dto.CreateStockTransferRequest{
		B2CUserID:    recipient.ID,
		Quantity:     10,
		PricePerUnit: 5,
		TotalAmount:  50,
	})
	assert.NoError(t, err)

	assert.Equal(t, models.TransferStatusPending, resp.Status)
	assert.Nil(t, resp.B2BUser)
	assert.Nil(t, resp.Product)
	assert.NotNil(t, resp.B2CUser)
	assert.Equal(t, "b2c@example.com", resp.B2CUser.Email)
	assert.False(t, resp.TransferDate.Before(before.Add(-time.Second)))
	assert.False(t, resp.TransferDate.After(time.Now().Add(time.Second)))

	var stored models.StockTransfer
	assert.NoError(t, db.First(&stored, "id = ?", resp.ID).Error)
	assert.Nil(t, stored.B2BUserID)
	assert.Nil(t, stored.ProductID)
	assert.Equal(t, 50.0, stored.TotalAmount)
}

func TestStockTransferService_CreateMissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockTransferService(db)
	recipient := seedUser(t, db, "b2c@example.com", "B2C", "", "")

	cases := []dto.CreateStockTransferRequest{
		{Quantity: 10, PricePerUnit: 5, TotalAmount: 50},
		{B2CUserID: recipient.ID, PricePerUnit: 5, TotalAmount: 50},
		{B2CUserID: recipient.ID, Quantity: 10, TotalAmount: 50},
		{B2CUserID: recipient.ID, Quantity: 10, PricePerUnit: 5},
	}
	for _, req := range cases {
		r := req
		_, err := svc.Create(&r)
		assert.ErrorIs(t, err, ErrMissingTransferFields)
	}

	var count int64
	db.Model(&models.StockTransfer{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestStockTransferService_CreateExpandsReferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockTransferService(db)
	supplier := seedUser(t, db, "b2b@example.com", "B2B", "Agro Wholesale", "")
	recipient := seedUser(t, db, "b2c@example.com", "B2C", "Field Shop", "Asha Patil")
	product := seedProduct(t, db, "GROM-UREA", "Urea")

	resp, err := svc.Create(&dto.CreateStockTransferRequest{
		B2BUserID:    &supplier.ID,
		B2CUserID:    recipient.ID,
		ProductID:    &product.ID,
		Quantity:     4,
		PricePerUnit: 250,
		TotalAmount:  1000,
		SeedLevel:    "certified",
		LotNumber:    "LOT-42",
	})
	assert.NoError(t, err)

	assert.NotNil(t, resp.B2BUser)
	assert.Equal(t, "Agro Wholesale", resp.B2BUser.ShopName)
	// The b2b projection is the sparse one: no full name.
	assert.Empty(t, resp.B2BUser.FullName)

	assert.NotNil(t, resp.B2CUser)
	assert.Equal(t, "Asha Patil", resp.B2CUser.FullName)

	assert.NotNil(t, resp.Product)
	assert.Equal(t, "Urea", resp.Product.ProductName)
	assert.Equal(t, "GROM-UREA", resp.Product.ProductID)
}

func TestStockTransferService_UpdateAppliesPresentFieldsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockTransferService(db)
	recipient := seedUser(t, db, "b2c@example.com", "B2C", "", "")

	created, err := svc.Create(&dto.CreateStockTransferRequest{
		B2CUserID:    recipient.ID,
		Quantity:     10,
		PricePerUnit: 5,
		TotalAmount:  50,
		Notes:        "initial notes",
		BillNumber:   "BILL-1",
	})
	assert.NoError(t, err)

	quantity := 20.0
	empty := ""
	resp, err := svc.Update(created.ID, &dto.UpdateStockTransferRequest{
		Quantity: &quantity,
		// Explicit empty string: presence gates the update, so this
		// overwrites.
		BillNumber: &empty,
	})
	assert.NoError(t, err)

	assert.Equal(t, 20.0, resp.Quantity)
	assert.Empty(t, resp.BillNumber)
	// Absent fields untouched.
	assert.Equal(t, "initial notes", resp.Notes)
	assert.Equal(t, 5.0, resp.PricePerUnit)
	assert.Equal(t, 50.0, resp.TotalAmount)
}

func TestStockTransferService_UpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockTransferService(db)

	_, err := svc.Update(uuid.New(), &dto.UpdateStockTransferRequest{})
	assert.ErrorIs(t, err, ErrTransferNotFound)

	_, err = svc.PatchStatus(uuid.New(), &dto.UpdateTransferStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrTransferNotFound)
}

// The documented asymmetry: PATCH skips an empty status, PUT overwrites
// with one.
func TestStockTransferService_EmptyStatusPatchVersusPut(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockTransferService(db)
	recipient := seedUser(t, db, "b2c@example.com", "B2C", "", "")

	created, err := svc.Create(&dto.CreateStockTransferRequest{
		B2CUserID:    recipient.ID,
		Quantity:     10,
		PricePerUnit: 5,
		TotalAmount:  50,
		Status:       models.TransferStatusApproved,
	})
	assert.NoError(t, err)

	patched, err := svc.PatchStatus(created.ID, &dto.UpdateTransferStatusRequest{Status: ""})
	assert.NoError(t, err)
	assert.Equal(t, models.TransferStatusApproved, patched.Status)

	empty := ""
	updated, err := svc.Update(created.ID, &dto.UpdateStockTransferRequest{Status: &empty})
	assert.NoError(t, err)
	assert.Empty(t, updated.Status)
}

func TestStockTransferService_PatchNotesKeepsStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockTransferService(db)
	supplier := seedUser(t, db, "b2b@example.com", "B2B", "Agro Wholesale", "")
	recipient := seedUser(t, db, "b2c@example.com", "B2C", "Field Shop", "Asha Patil")
	product := seedProduct(t, db, "GROM-UREA", "Urea")

	created, err := svc.Create(&dto.CreateStockTransferRequest{
		B2BUserID:    &supplier.ID,
		B2CUserID:    recipient.ID,
		ProductID:    &product.ID,
		Quantity:     10,
		PricePerUnit: 5,
		TotalAmount:  50,
	})
	assert.NoError(t, err)

	notes := "updated"
	resp, err := svc.PatchStatus(created.ID, &dto.UpdateTransferStatusRequest{Notes: &notes})
	assert.NoError(t, err)

	assert.Equal(t, models.TransferStatusPending, resp.Status)
	assert.Equal(t, "updated", resp.Notes)
	assert.NotNil(t, resp.B2BUser)
	assert.NotNil(t, resp.B2CUser)
	assert.NotNil(t, resp.Product)
}

func TestStockTransferService_ListByUserFiltersAndSorts(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockTransferService(db)
	first := seedUser(t, db, "one@example.com", "B2C", "", "")
	second := seedUser(t, db, "two@example.com", "B2C", "", "")

	older := time.Now().Add(-48 * time.Hour)
	newer := time.Now().Add(-1 * time.Hour)

	_, err := svc.Create(&dto.CreateStockTransferRequest{
		B2CUserID: first.ID, Quantity: 1, PricePerUnit: 10, TotalAmount: 10, TransferDate: &older,
	})
	assert.NoError(t, err)
	_, err = svc.Create(&dto.CreateStockTransferRequest{
		B2CUserID: first.ID, Quantity: 2, PricePerUnit: 10, TotalAmount: 20, TransferDate: &newer,
	})
	assert.NoError(t, err)
	_, err = svc.Create(&dto.CreateStockTransferRequest{
		B2CUserID: second.ID, Quantity: 3, PricePerUnit: 10, TotalAmount: 30,
	})
	assert.NoError(t, err)

	all, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	// Newest first.
	assert.Equal(t, 3.0, all[0].Quantity)
	assert.Equal(t, 2.0, all[1].Quantity)
	assert.Equal(t, 1.0, all[2].Quantity)

	mine, err := svc.ListByUser(first.ID)
	assert.NoError(t, err)
	assert.Len(t, mine, 2)
	assert.Equal(t, 2.0, mine[0].Quantity)
	assert.Equal(t, 1.0, mine[1].Quantity)
	for _, tr := range mine {
		assert.NotNil(t, tr.B2CUser)
		assert.Equal(t, "one@example.com", tr.B2CUser.Email)
	}
}
