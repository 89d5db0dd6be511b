package services

import (
	"time"

	"github.com/riskspace/emopop/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// today returns the server-side calendar date (UTC, midnight) used as the
// daily log key. The client never supplies the date.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// upsertDailyLog finds or creates the single daily log for (userID, day)
// inside tx. The insert races safely against concurrent submissions: on a
// (user_id, date) conflict it inserts nothing and the existing row is
// fetched instead.
func upsertDailyLog(tx *gorm.DB, userID uint, day time.Time) (models.DailyLog, error) {
	log := models.DailyLog{UserID: userID, Date: day}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(&log).Error
	if err != nil {
		return log, err
	}
	if log.ID == 0 {
		err = tx.Where("user_id = ? AND date = ?", userID, day).First(&log).Error
	}
	return log, err
}
