package services

import (
	"github.com/riskspace/emopop/internal/dto"
	"github.com/riskspace/emopop/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmotionService struct {
	db *gorm.DB
}

func NewEmotionService(db *gorm.DB) *EmotionService {
	return &EmotionService{db: db}
}

// LogEmotions merges a batch of reported emotions into the caller's log for
// today. Pairs already recorded for the day are skipped, so resubmitting is
// a no-op; everything commits as one transaction or not at all.
//
// Unlike LogNeeds there is no user-existence check on this path.
func (s *EmotionService) LogEmotions(userID uint, names []string, emotionType string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		log, err := upsertDailyLog(tx, userID, today())
		if err != nil {
			return err
		}
		for _, name := range names {
			entry := models.DailyEmotion{
				DailyLogID:  log.ID,
				Emotion:     models.NormalizeName(name),
				EmotionType: emotionType,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Summary returns per-day positive/negative counts for the user, newest date
// first, at most days rows. days bounds the row count, not a calendar
// window, so a sparse logger still sees their oldest entries.
//
// A date only appears when at least one logged emotion matches the seeded
// reference table by name.
func (s *EmotionService) Summary(userID uint, days int) ([]dto.EmotionSummaryRow, error) {
	if days < 0 {
		days = 0
	}
	var ref []models.Emotion
	if err := s.db.Find(&ref).Error; err != nil {
		return nil, err
	}
	polarity := make(map[string]bool, len(ref))
	for _, e := range ref {
		polarity[e.Name] = e.IsPositive
	}

	var logs []models.DailyLog
	err := s.db.Preload("Emotions").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	// days is client-supplied and only bounds the loop; never let it size
	// the allocation.
	rows := make([]dto.EmotionSummaryRow, 0, min(days, len(logs)))
	for _, log := range logs {
		if len(rows) >= days {
			break
		}
		positive, negative, matched := 0, 0, false
		for _, de := range log.Emotions {
			isPositive, ok := polarity[de.Emotion]
			if !ok {
				continue
			}
			matched = true
			if isPositive {
				positive++
			} else {
				negative++
			}
		}
		if !matched {
			continue
		}
		rows = append(rows, dto.EmotionSummaryRow{
			Date:          log.Date.Format("2006-01-02"),
			PositiveCount: positive,
			NegativeCount: negative,
		})
	}
	return rows, nil
}

// LoadAll returns the full seeded emotion reference table.
func (s *EmotionService) LoadAll() ([]models.Emotion, error) {
	var emotions []models.Emotion
	err := s.db.Order("id").Find(&emotions).Error
	return emotions, err
}
