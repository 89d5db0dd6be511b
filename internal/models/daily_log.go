package models

import "time"

// DailyLog is the per-user, per-calendar-day aggregate record. The unique
// (user_id, date) index is what makes concurrent same-day submissions safe:
// both writers upsert against it instead of racing a check-then-insert.
type DailyLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_daily_logs_user_date" json:"user_id"`
	Date      time.Time      `gorm:"type:date;not null;uniqueIndex:idx_daily_logs_user_date" json:"date"`
	Emotions  []DailyEmotion `gorm:"constraint:OnDelete:CASCADE" json:"emotions,omitempty"`
	Needs     []DailyNeed    `gorm:"constraint:OnDelete:CASCADE" json:"needs,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// DailyEmotion is one reported emotion within a daily log. A given
// (emotion, emotion_type) pair appears at most once per log.
type DailyEmotion struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DailyLogID  uint      `gorm:"not null;uniqueIndex:idx_daily_emotions_log_name_type" json:"daily_log_id"`
	Emotion     string    `gorm:"size:255;not null;uniqueIndex:idx_daily_emotions_log_name_type" json:"emotion"`
	EmotionType string    `gorm:"size:50;not null;uniqueIndex:idx_daily_emotions_log_name_type" json:"emotion_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// DailyNeed is one reported need within a daily log, at most once per log.
type DailyNeed struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DailyLogID uint      `gorm:"not null;uniqueIndex:idx_daily_needs_log_name" json:"daily_log_id"`
	Need       string    `gorm:"size:255;not null;uniqueIndex:idx_daily_needs_log_name" json:"need"`
	CreatedAt  time.Time `json:"created_at"`
}
