package cache

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Store persists cache entries in a sqlite database so the cache survives
// between runs.
type Store struct {
	db *gorm.DB
}

// OpenStore opens (and migrates) the cache database at path.
func OpenStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open cache store: %w", err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate cache store: %w", err)
	}
	return &Store{db: db}, nil
}

// LoadInto fills c with the persisted entries, most recently accessed
// first so the freshest entries survive the capacity cut. A read failure
// leaves c empty rather than failing the caller.
func (s *Store) LoadInto(c *Cache) error {
	var entries []Entry
	if err := s.db.Order("last_accessed desc").Find(&entries).Error; err != nil {
		c.Restore(nil)
		return fmt.Errorf("load cache entries: %w", err)
	}
	c.Restore(entries)
	return nil
}

// SaveFrom writes the cache contents back to the database, replacing
// existing rows by hash.
func (s *Store) SaveFrom(c *Cache) error {
	entries := c.Snapshot()
	if len(entries) == 0 {
		return nil
	}
	err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entries).Error
	if err != nil {
		return fmt.Errorf("save cache entries: %w", err)
	}
	return nil
}

// Clear removes every persisted entry.
func (s *Store) Clear() error {
	if err := s.db.Where("1 = 1").Delete(&Entry{}).Error; err != nil {
		return fmt.Errorf("clear cache store: %w", err)
	}
	return nil
}

// Count returns the number of persisted entries.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&Entry{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count cache entries: %w", err)
	}
	return n, nil
}
