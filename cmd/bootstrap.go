package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"warehouse.GO/config"
	"warehouse.GO/core/notify"
	"warehouse.GO/service/records"
)

// openBridge is swapped in tests.
var openBridge = config.OpenBridge

var notifier notify.Notifier = notify.LogNotifier{Logger: log.New(os.Stderr, "", log.LstdFlags)}

// OpenRecords opens the configured storage and loads every domain. A domain
// whose stored data cannot be read starts from its seed rows; the read error
// is logged, not returned. The close func is never nil.
func OpenRecords(ctx context.Context) (*records.Set, func() error, error) {
	config.LoadAppConfig()
	driver := storageDriver
	if driver == "" {
		driver = config.AppConfig.StorageDriver
	}
	b, closeFn, err := openBridge(driver)
	if err != nil {
		return nil, closeFn, err
	}
	set, err := records.Open(ctx, b, notifier)
	if err != nil {
		log.Printf("storage: %v (continuing with seed data)", err)
	}
	return set, closeFn, nil
}

// CloseRecords runs closeFn and stores its error in *err unless an earlier
// error is already there. Use it deferred with a named error result.
func CloseRecords(closeFn func() error, err *error) {
	if cerr := closeFn(); cerr != nil && *err == nil {
		*err = fmt.Errorf("close storage: %w", cerr)
	}
}
