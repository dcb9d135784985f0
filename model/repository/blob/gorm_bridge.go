package blob

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	entity "warehouse.GO/model/entity"
)

// GormBridge keeps blobs in the warehouse_blob table of any gorm dialect.
type GormBridge struct {
	db *gorm.DB
}

func NewGormBridge(db *gorm.DB) *GormBridge {
	return &GormBridge{db: db}
}

func (b *GormBridge) Get(ctx context.Context, key string) ([]byte, error) {
	var row entity.Blob
	err := b.db.WithContext(ctx).Where("blob_key = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(row.Value), nil
}

// Set upserts the blob in a single statement.
func (b *GormBridge) Set(ctx context.Context, key string, value []byte) error {
	row := entity.Blob{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	return b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blob_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

func (b *GormBridge) Remove(ctx context.Context, key string) error {
	return b.db.WithContext(ctx).Where("blob_key = ?", key).Delete(&entity.Blob{}).Error
}
