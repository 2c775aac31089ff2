// Seeds the default fertilizer catalog. Safe to run repeatedly:
// products whose business code already exists are skipped.
package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/kisanlink/agrostock-backend/internal/config"
	"github.com/kisanlink/agrostock-backend/internal/database"
	"github.com/kisanlink/agrostock-backend/internal/logging"
	"github.com/kisanlink/agrostock-backend/internal/models"
)

var defaultProducts = []models.Product{
	{CompanyName: "Grommer", ProductName: "20-20-0-23", ProductID: "GROM-20-20-0-23", Description: "NPK Fertilizer"},
	{CompanyName: "Grommer", ProductName: "Urea", ProductID: "GROM-UREA", Description: "Nitrogen Fertilizer"},
	{CompanyName: "Grommer", ProductName: "16-16-16", ProductID: "GROM-16-16-16", Description: "NPK Fertilizer"},
	{CompanyName: "Factfos", ProductName: "20-20-0-13", ProductID: "FACT-20-20-0-13", Description: "NPK Fertilizer"},
}

func main() {
	logging.Setup()

	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	added, skipped := 0, 0
	for _, p := range defaultProducts {
		var existing models.Product
		if err := database.DB.Where("product_id = ?", p.ProductID).First(&existing).Error; err == nil {
			slog.Info("skipped existing product", "company", p.CompanyName, "product", p.ProductName)
			skipped++
			continue
		}

		p.ID = uuid.New()
		p.IsActive = true
		p.Normalize()
		if err := database.DB.Create(&p).Error; err != nil {
			slog.Error("failed to seed product", "product", p.ProductID, "error", err)
			os.Exit(1)
		}
		slog.Info("added product", "company", p.CompanyName, "product", p.ProductName)
		added++
	}

	slog.Info("seed completed", "added", added, "skipped", skipped)
}
