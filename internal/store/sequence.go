package store

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Event IDs may be reused after a VACUUM; the sequence never is.
const sequenceRowID = 1

// seedSequence inserts the counter row if it is missing.
func seedSequence(db *gorm.DB) error {
	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&globalSequence{ID: sequenceRowID, NextVal: 1}).Error
	if err != nil {
		return fmt.Errorf("seed sequence: %w", err)
	}
	return nil
}

// nextSequence returns the next sequence number and advances the counter.
// Callers run it inside the transaction that stores the event.
func nextSequence(tx *gorm.DB) (int64, error) {
	var row globalSequence
	if err := tx.First(&row, sequenceRowID).Error; err != nil {
		return 0, fmt.Errorf("read sequence: %w", err)
	}
	if err := tx.Model(&row).Update("next_val", gorm.Expr("next_val + 1")).Error; err != nil {
		return 0, fmt.Errorf("advance sequence: %w", err)
	}
	return row.NextVal, nil
}
