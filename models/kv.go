package models

import "time"

// KVRecord is one durable key-value row. The value is a whole JSON aggregate
// (cart, user list, order log, theme); each key is read-modify-written as a
// unit, last write wins.
type KVRecord struct {
	Key       string `gorm:"primaryKey" json:"key"`
	Value     string `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time
}
