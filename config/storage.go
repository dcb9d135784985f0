package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/dgraph-io/badger/v4"

	"warehouse.GO/core/cache"
	"warehouse.GO/model/repository/blob"
)

const redisPrefix = "warehouse:"

// OpenBridge opens the storage bridge named by driver using AppConfig.
func OpenBridge(driver string) (blob.Bridge, func() error, error) {
	LoadAppConfig()
	return AppConfig.OpenBridge(driver)
}

// OpenBridge opens the storage bridge named by driver. The returned close
// func releases the underlying connection and is never nil.
func (c *Config) OpenBridge(driver string) (blob.Bridge, func() error, error) {
	noop := func() error { return nil }
	switch driver {
	case "", "sqlite", "mysql", "postgres":
		db, err := c.NewDB(driver)
		if err != nil {
			return nil, noop, err
		}
		if err := Migrate(db); err != nil {
			return nil, noop, fmt.Errorf("config: migrate: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, noop, err
		}
		return blob.NewGormBridge(db), sqlDB.Close, nil
	case "redis":
		client, err := NewRedis(context.Background())
		if err != nil {
			return nil, noop, err
		}
		return blob.NewRedisBridge(client, redisPrefix), client.Close, nil
	case "badger":
		db, err := OpenBadger(c.BadgerPath)
		if err != nil {
			return nil, noop, err
		}
		return blob.NewBadgerBridge(db), db.Close, nil
	case "memory":
		return openMemory(c.MemoryDump)
	}
	return nil, noop, fmt.Errorf("config: unknown STORAGE_DRIVER %q", driver)
}

// OpenBadger opens a badger store at path; an empty path keeps it in memory.
func OpenBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	return badger.Open(opts)
}

// openMemory keeps records in a cache. With a dump path the cache is restored
// from it on open and written back on close.
func openMemory(dump string) (blob.Bridge, func() error, error) {
	c := cache.NewCache()
	if dump == "" {
		log.Println("storage: memory driver, records are lost on exit")
		return blob.NewCacheBridge(c, ""), func() error { return nil }, nil
	}
	if err := c.RestoreFromFile(dump); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, func() error { return nil }, fmt.Errorf("config: restore %s: %w", dump, err)
	}
	return blob.NewCacheBridge(c, ""), func() error { return c.DumpToFile(dump) }, nil
}
