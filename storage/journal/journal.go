// Package journal persists day-end snapshots and the event stream to a
// gorm-backed sqlite database, strictly outside the core's determinism
// boundary: nothing in core, econ, or adapter/session reads this package,
// and nothing it contains ever feeds back into a reducer Step. It exists so
// an operator can inspect history after the process exits.
package journal

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"guildhall/core/types"
)

// SnapshotRecord is one persisted day-end snapshot row.
type SnapshotRecord struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Day         uint64 `gorm:"index"`
	GuildRank   string
	Reputation  int
	Stability   int
	MoneyCopper int64
	Reserved    int64
	Trophies    int64
}

// EventRecordRow is one persisted event, flattened for storage. Attributes
// are stored as a JSON blob since sqlite has no native map column.
type EventRecordRow struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	Day        uint64 `gorm:"index"`
	Revision   uint64
	CmdID      uint64 `gorm:"index"`
	Seq        uint64
	Type       string `gorm:"index"`
	Attributes string
}

// Store wraps the gorm connection.
type Store struct {
	db *gorm.DB
}

// Open creates or attaches to the sqlite file at path and migrates the
// journal schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&SnapshotRecord{}, &EventRecordRow{}); err != nil {
		return nil, fmt.Errorf("journal: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AppendEvents persists a batch of events produced by a single Step.
func (s *Store) AppendEvents(events []types.EventRecord) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]EventRecordRow, len(events))
	for i, e := range events {
		rows[i] = EventRecordRow{
			Day:        e.Day,
			Revision:   e.Revision,
			CmdID:      e.CmdID,
			Seq:        e.Seq,
			Type:       e.Type,
			Attributes: marshalAttributes(e.Attributes),
		}
	}
	return s.db.Create(&rows).Error
}

// AppendSnapshot persists one day-end snapshot row.
func (s *Store) AppendSnapshot(rec SnapshotRecord) error {
	return s.db.Create(&rec).Error
}

// EventsForDay returns every persisted event for the given day, in
// insertion order.
func (s *Store) EventsForDay(day uint64) ([]EventRecordRow, error) {
	var rows []EventRecordRow
	err := s.db.Where("day = ?", day).Order("id asc").Find(&rows).Error
	return rows, err
}
