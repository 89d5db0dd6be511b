package services

import (
	"errors"

	"github.com/riskspace/emopop/internal/dto"
	"github.com/riskspace/emopop/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound = errors.New("user not found")

type NeedService struct {
	db *gorm.DB
}

func NewNeedService(db *gorm.DB) *NeedService {
	return &NeedService{db: db}
}

// LogNeeds merges a batch of reported needs into the caller's log for today.
// The user must exist; a need already recorded for the day is skipped.
func (s *NeedService) LogNeeds(userID uint, names []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		log, err := upsertDailyLog(tx, userID, today())
		if err != nil {
			return err
		}
		for _, name := range names {
			entry := models.DailyNeed{
				DailyLogID: log.ID,
				Need:       models.NormalizeName(name),
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Summary returns per-day need counts for the user, newest date first, at
// most days rows. Every logged date appears, including those with zero
// needs recorded.
func (s *NeedService) Summary(userID uint, days int) ([]dto.NeedSummaryRow, error) {
	if days < 0 {
		days = 0
	}
	var logs []models.DailyLog
	err := s.db.Preload("Needs").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	// days is client-supplied and only bounds the loop; never let it size
	// the allocation.
	rows := make([]dto.NeedSummaryRow, 0, min(days, len(logs)))
	for _, log := range logs {
		if len(rows) >= days {
			break
		}
		rows = append(rows, dto.NeedSummaryRow{
			Date:       log.Date.Format("2006-01-02"),
			NeedsCount: len(log.Needs),
		})
	}
	return rows, nil
}

// LoadAll returns the full seeded need reference table.
func (s *NeedService) LoadAll() ([]models.Need, error) {
	var needs []models.Need
	err := s.db.Order("id").Find(&needs).Error
	return needs, err
}
