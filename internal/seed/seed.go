// Package seed loads the static emotion/need reference tables from CSV
// sources. Each source has one column per category header; every non-blank
// cell names one emotion or need belonging to that header.
package seed

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/riskspace/emopop/internal/config"
	"github.com/riskspace/emopop/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Reset clears every reference row so a reload starts from scratch.
func Reset(db *gorm.DB) error {
	if err := db.Where("1 = 1").Delete(&models.Emotion{}).Error; err != nil {
		return err
	}
	return db.Where("1 = 1").Delete(&models.Need{}).Error
}

// Run resets the reference tables and reloads them from the configured CSV
// files: two emotion passes, one per polarity, then the needs file.
// Running it twice yields the same rows.
func Run(db *gorm.DB, cfg *config.Config) error {
	if err := Reset(db); err != nil {
		return fmt.Errorf("reset reference tables: %w", err)
	}
	if err := LoadEmotions(db, cfg.PositiveEmotionsCSV, true); err != nil {
		return err
	}
	if err := LoadEmotions(db, cfg.NegativeEmotionsCSV, false); err != nil {
		return err
	}
	return LoadNeeds(db, cfg.NeedsCSV)
}

// LoadEmotions inserts every non-blank cell of the CSV as an emotion tagged
// with the given polarity.
func LoadEmotions(db *gorm.DB, path string, isPositive bool) error {
	cells, err := readColumns(path)
	if err != nil {
		return err
	}
	inserted := int64(0)
	for _, c := range cells {
		row := models.Emotion{Header: c.header, Name: c.value, IsPositive: isPositive}
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if res.Error != nil {
			return fmt.Errorf("insert emotion %q: %w", c.value, res.Error)
		}
		inserted += res.RowsAffected
	}
	slog.Info("emotions seeded", "file", path, "positive", isPositive, "rows", inserted)
	return nil
}

// LoadNeeds inserts every non-blank cell of the CSV as a need.
func LoadNeeds(db *gorm.DB, path string) error {
	cells, err := readColumns(path)
	if err != nil {
		return err
	}
	inserted := int64(0)
	for _, c := range cells {
		row := models.Need{Header: c.header, Name: c.value}
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if res.Error != nil {
			return fmt.Errorf("insert need %q: %w", c.value, res.Error)
		}
		inserted += res.RowsAffected
	}
	slog.Info("needs seeded", "file", path, "rows", inserted)
	return nil
}

type cell struct {
	header string
	value  string
}

// readColumns parses a header-per-category CSV into normalized (header, name)
// pairs, skipping blank cells. Short rows are tolerated.
func readColumns(path string) ([]cell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = models.NormalizeName(h)
	}

	var cells []cell
	for _, record := range records[1:] {
		for i, raw := range record {
			if i >= len(headers) {
				break
			}
			name := models.NormalizeName(raw)
			if name == "" {
				continue
			}
			cells = append(cells, cell{header: headers[i], value: name})
		}
	}
	return cells, nil
}
