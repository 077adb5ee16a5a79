package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zapbytes/internal/models"
	"zapbytes/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormStore persists visitor entries in a relational database
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the database and migrates the visitor entries table
func NewGormStore(dsn string) (*GormStore, error) {
	if dsn == "" {
		dsn = "./data/zapbytes.db"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store database: %w", err)
	}

	if err := db.AutoMigrate(&models.VisitorEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate visitor entries: %w", err)
	}

	logger.Info("Visitor store initialized", zap.String("dsn", dsn))
	return &GormStore{db: db}, nil
}

// Get returns the value for a visitor key
func (s *GormStore) Get(ctx context.Context, visitorID, key string) (string, error) {
	var entry models.VisitorEntry
	err := s.db.WithContext(ctx).
		Where("visitor_id = ? AND cache_key = ?", visitorID, key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read entry %s: %w", key, err)
	}

	return string(entry.Value), nil
}

// Set writes a value for a visitor key, overwriting any existing entry
func (s *GormStore) Set(ctx context.Context, visitorID, key, value string) error {
	entry := models.VisitorEntry{
		VisitorID: visitorID,
		CacheKey:  key,
		Value:     datatypes.JSON(value),
	}

	err := s.db.WithContext(ctx).
		Where("visitor_id = ? AND cache_key = ?", visitorID, key).
		Assign(map[string]interface{}{"value": datatypes.JSON(value)}).
		FirstOrCreate(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write entry %s: %w", key, err)
	}

	return nil
}

// Has reports whether an entry exists for the visitor key
func (s *GormStore) Has(ctx context.Context, visitorID, key string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.VisitorEntry{}).
		Where("visitor_id = ? AND cache_key = ?", visitorID, key).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check entry %s: %w", key, err)
	}

	return count > 0, nil
}

// Delete removes an entry if present
func (s *GormStore) Delete(ctx context.Context, visitorID, key string) error {
	err := s.db.WithContext(ctx).
		Where("visitor_id = ? AND cache_key = ?", visitorID, key).
		Delete(&models.VisitorEntry{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", key, err)
	}

	return nil
}

// StaleVisitors returns visitor IDs whose entry under key predates olderThan
func (s *GormStore) StaleVisitors(ctx context.Context, key string, olderThan time.Time) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&models.VisitorEntry{}).
		Where("cache_key = ? AND updated_at < ?", key, olderThan).
		Pluck("visitor_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to scan stale visitors: %w", err)
	}

	return ids, nil
}
