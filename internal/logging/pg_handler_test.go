package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/kisanlink/agrostock-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newLogDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&models.SystemLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestPGHandlerPersistsErrors(t *testing.T) {
	db := newLogDB(t)
	h := NewPGHandler(db)

	log := slog.New(h)
	log.Error("request failed",
		"method", "POST",
		"path", "/api/stock-transfers",
		"request_id", "req-123",
		"error", "connection refused",
		"attempt", 2,
	)
	log.Info("served request", "path", "/api/health")
	h.Stop()

	assert.Eventually(t, func() bool {
		var count int64
		db.Model(&models.SystemLog{}).Count(&count)
		return count == 1
	}, 2*time.Second, 10*time.Millisecond)

	var entry models.SystemLog
	assert.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "request failed", entry.Message)
	assert.Equal(t, "POST", entry.Method)
	assert.Equal(t, "/api/stock-transfers", entry.Path)
	assert.Equal(t, "req-123", entry.RequestID)
	assert.Equal(t, "connection refused", entry.Error)
	assert.Contains(t, string(entry.Extra), "attempt")
}

func TestMultiHandlerFansOut(t *testing.T) {
	db := newLogDB(t)
	pg := NewPGHandler(db)

	var buf bytes.Buffer
	stdout := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})

	log := slog.New(NewMultiHandler(stdout, pg))
	log.Info("server started", "port", "5001")
	log.Error("migration failed", "error", "timeout")
	pg.Stop()

	// Both records reach stdout, only the error reaches the database.
	assert.Contains(t, buf.String(), "server started")
	assert.Contains(t, buf.String(), "migration failed")

	assert.Eventually(t, func() bool {
		var count int64
		db.Model(&models.SystemLog{}).Count(&count)
		return count == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestMultiHandlerEnabled(t *testing.T) {
	db := newLogDB(t)
	pg := NewPGHandler(db)
	defer pg.Stop()

	m := NewMultiHandler(pg)
	assert.False(t, m.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, m.Enabled(context.Background(), slog.LevelError))
}
