package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/riskspace/emopop/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database migrated with the full
// schema. Each test gets its own database; it disappears when the test ends.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Emotion{},
		&models.Need{},
		&models.DailyLog{},
		&models.DailyEmotion{},
		&models.DailyNeed{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{Name: name}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedEmotionRef(t *testing.T, db *gorm.DB, header, name string, isPositive bool) {
	t.Helper()
	require.NoError(t, db.Create(&models.Emotion{
		Header:     header,
		Name:       name,
		IsPositive: isPositive,
	}).Error)
}

// createLogOn inserts a daily log for an arbitrary past date, something the
// services themselves never do (they always log against "today").
func createLogOn(t *testing.T, db *gorm.DB, userID uint, date time.Time) models.DailyLog {
	t.Helper()
	log := models.DailyLog{UserID: userID, Date: date}
	require.NoError(t, db.Create(&log).Error)
	return log
}

func day(offset int) time.Time {
	now := time.Now().UTC().AddDate(0, 0, offset)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
