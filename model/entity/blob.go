package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Blob is one named JSON document in the key-value table backing the record stores.
type Blob struct {
	Key       string         `gorm:"column:blob_key;primaryKey;type:varchar(64)"`
	Value     datatypes.JSON `gorm:"column:value;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Blob) TableName() string {
	return "warehouse_blob"
}
