package database

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// GenerationUsage represents the generation_usage table.
// It counts requests per day; generated schedules are never stored.
type GenerationUsage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Date         string `gorm:"uniqueIndex;not null" json:"date"`
	RequestCount int    `gorm:"default:0" json:"request_count"`
	TotalWeeks   int    `gorm:"default:0" json:"total_weeks"`
	TotalDays    int    `gorm:"default:0" json:"total_days"`
}

// TableName pins the table name
func (GenerationUsage) TableName() string {
	return "generation_usage"
}

// Open connects to Postgres when dsn is set, otherwise to the sqlite file at dataPath,
// and migrates the schema
func Open(dsn, dataPath string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if dsn != "" {
		cfg.PrepareStmt = false
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), cfg)
	} else {
		if dataPath == "" {
			return nil, errors.New("database: no DATABASE_URL or sqlite data path configured")
		}
		db, err = gorm.Open(sqlite.Open(dataPath), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(&GenerationUsage{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// RecordGeneration upserts today's usage row in a single query
func RecordGeneration(db *gorm.DB, date string, weeks, days int) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count": gorm.Expr("request_count + ?", 1),
			"total_weeks":   gorm.Expr("total_weeks + ?", weeks),
			"total_days":    gorm.Expr("total_days + ?", days),
		}),
	}).Create(&GenerationUsage{
		Date:         date,
		RequestCount: 1,
		TotalWeeks:   weeks,
		TotalDays:    days,
	}).Error
}

// RecentUsage returns up to limit usage rows, newest first
func RecentUsage(db *gorm.DB, limit int) ([]GenerationUsage, error) {
	var usage []GenerationUsage
	if err := db.Order("date desc").Limit(limit).Find(&usage).Error; err != nil {
		return nil, err
	}
	return usage, nil
}
