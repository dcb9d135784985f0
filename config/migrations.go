package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	entity "warehouse.GO/model/entity"
)

// Migrate creates the key-value table behind the SQL storage drivers.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20261018_create_warehouse_blob",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&entity.Blob{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(entity.Blob{}.TableName())
			},
		},
	})
	return m.Migrate()
}
