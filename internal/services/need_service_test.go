package services

import (
	"testing"

	"github.com/riskspace/emopop/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNeeds_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewNeedService(db)

	err := svc.LogNeeds(42, []string{"rest"})
	require.ErrorIs(t, err, ErrUserNotFound)

	var logCount, needCount int64
	db.Model(&models.DailyLog{}).Count(&logCount)
	db.Model(&models.DailyNeed{}).Count(&needCount)
	assert.Zero(t, logCount, "rejected submission must write nothing")
	assert.Zero(t, needCount)
}

func TestLogNeeds_MergesAcrossSubmissions(t *testing.T) {
	db := newTestDB(t)
	svc := NewNeedService(db)
	user := createUser(t, db, "ada")

	require.NoError(t, svc.LogNeeds(user.ID, []string{"rest"}))
	require.NoError(t, svc.LogNeeds(user.ID, []string{"rest", "connection"}))

	var entries []models.DailyNeed
	require.NoError(t, db.Order("need").Find(&entries).Error)
	require.Len(t, entries, 2)
	assert.Equal(t, "connection", entries[0].Need)
	assert.Equal(t, "rest", entries[1].Need)

	var logCount int64
	db.Model(&models.DailyLog{}).Count(&logCount)
	assert.EqualValues(t, 1, logCount)
}

func TestLogNeeds_SharesDailyLogWithEmotions(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "ada")

	require.NoError(t, NewEmotionService(db).LogEmotions(user.ID, []string{"happy"}, "primary"))
	require.NoError(t, NewNeedService(db).LogNeeds(user.ID, []string{"rest"}))

	var logCount int64
	db.Model(&models.DailyLog{}).Count(&logCount)
	assert.EqualValues(t, 1, logCount, "emotions and needs share one log per day")
}

func TestNeedSummary_IncludesZeroNeedDates(t *testing.T) {
	db := newTestDB(t)
	svc := NewNeedService(db)
	user := createUser(t, db, "ada")

	// A log exists for yesterday but records no needs; the date still
	// appears with a zero count (outer-join semantics).
	createLogOn(t, db, user.ID, day(-1))
	require.NoError(t, svc.LogNeeds(user.ID, []string{"rest", "connection"}))

	rows, err := svc.Summary(user.ID, 7)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, day(0).Format("2006-01-02"), rows[0].Date)
	assert.Equal(t, 2, rows[0].NeedsCount)
	assert.Equal(t, day(-1).Format("2006-01-02"), rows[1].Date)
	assert.Equal(t, 0, rows[1].NeedsCount)
}

func TestNeedSummary_Limit(t *testing.T) {
	db := newTestDB(t)
	svc := NewNeedService(db)
	user := createUser(t, db, "ada")

	for offset := -4; offset <= 0; offset++ {
		createLogOn(t, db, user.ID, day(offset))
	}

	rows, err := svc.Summary(user.ID, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, day(0).Format("2006-01-02"), rows[0].Date)
	assert.Equal(t, day(-1).Format("2006-01-02"), rows[1].Date)
}

func TestNeedSummary_HugeDaysValue(t *testing.T) {
	db := newTestDB(t)
	svc := NewNeedService(db)
	user := createUser(t, db, "ada")
	require.NoError(t, svc.LogNeeds(user.ID, []string{"rest"}))

	rows, err := svc.Summary(user.ID, 1<<59)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestNeedSummary_NoLogsIsEmptyNotError(t *testing.T) {
	db := newTestDB(t)
	svc := NewNeedService(db)

	rows, err := svc.Summary(99, 7)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
