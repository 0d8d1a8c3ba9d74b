// Package sequencerepo persists the global temperature log sequence counter.
// The counter lives in a single-row table and is advanced with an atomic
// UPDATE ... RETURNING, so concurrent transactions never observe the same
// value. Allocation participates in the caller's transaction: a rolled-back
// operation burns the number (gaps are fine, duplicates are not).
package sequencerepo

import (
	"context"

	"gorm.io/gorm"
)

// CounterDTO represents the single-row table backing the sequence counter.
// NextSeq holds the value the next allocation returns.
type CounterDTO struct {
	ID      int `gorm:"primaryKey"`
	NextSeq uint64
}

// TableName specifies the database table name for the sequence counter.
func (CounterDTO) TableName() string {
	return "log_sequences"
}

// counterRow is the fixed ID of the single counter row.
const counterRow = 1

// Seed inserts the counter row when absent, starting the sequence at 1.
// Called once at startup after migration.
func Seed(db *gorm.DB) error {
	return db.Exec(`
		INSERT INTO log_sequences (id, next_seq)
		VALUES (?, 1)
		ON CONFLICT (id) DO NOTHING
	`, counterRow).Error
}

// GormSequenceCounter implements SequenceCounter using GORM.
type GormSequenceCounter struct {
	db *gorm.DB
}

// NewGormSequenceCounter creates a new GORM sequence counter.
func NewGormSequenceCounter(db *gorm.DB) *GormSequenceCounter {
	return &GormSequenceCounter{db: db}
}

// Next returns the next sequence number and advances the counter.
func (c *GormSequenceCounter) Next(ctx context.Context) (uint64, error) {
	var allocated uint64
	row := c.db.WithContext(ctx).Raw(`
		UPDATE log_sequences
		SET next_seq = next_seq + 1
		WHERE id = ?
		RETURNING next_seq - 1
	`, counterRow).Row()

	if err := row.Scan(&allocated); err != nil {
		return 0, err
	}

	return allocated, nil
}
