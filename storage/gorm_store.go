package storage

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/junaidrashid-git/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the durable scope: one kv_records row per key.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string, out any) (bool, error) {
	var rec models.KVRecord
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(rec.Value), out); err != nil {
		log.Printf("⚠️ Corrupt value under %q, treating as empty: %v", key, err)
		return false, nil
	}
	return true, nil
}

func (s *GormStore) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	rec := models.KVRecord{Key: key, Value: string(data)}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
}

func (s *GormStore) Remove(key string) error {
	return s.db.Delete(&models.KVRecord{}, "key = ?", key).Error
}
