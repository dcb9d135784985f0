package config

import (
	"log"
	"os"
	"sync"

	"github.com/spf13/viper"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName          string `mapstructure:"APP_NAME"`
	Port             string `mapstructure:"PORT"`
	Env              string `mapstructure:"APP_ENV"`
	Debug            bool   `mapstructure:"DEBUG"`
	StorageDriver    string `mapstructure:"STORAGE_DRIVER"`
	SQLitePath       string `mapstructure:"SQLITE_PATH"`
	BadgerPath       string `mapstructure:"BADGER_PATH"`
	MemoryDump       string `mapstructure:"MEMORY_DUMP"`
	DashboardRefresh string `mapstructure:"DASHBOARD_REFRESH"`
	ExportBucket     string `mapstructure:"EXPORT_BUCKET"`
}

var defaults = map[string]interface{}{
	"APP_NAME":          "창고 관리",
	"PORT":              "8080",
	"APP_ENV":           "development",
	"DEBUG":             false,
	"STORAGE_DRIVER":    "sqlite",
	"SQLITE_PATH":       "warehouse.db",
	"BADGER_PATH":       "warehouse.badger",
	"MEMORY_DUMP":       "",
	"DASHBOARD_REFRESH": "@every 5m",
	"EXPORT_BUCKET":     "",
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		cfg, err := readConfig(viper.New())
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		AppConfig = cfg
	})
}

// readConfig layers defaults, the optional WAREHOUSE_CONFIG file and the environment.
func readConfig(v *viper.Viper) (*Config, error) {
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()
	if file := v.GetString("WAREHOUSE_CONFIG"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	// An empty BADGER_PATH in the environment selects in-memory badger.
	if p, ok := os.LookupEnv("BADGER_PATH"); ok && p == "" {
		cfg.BadgerPath = ""
	}
	return cfg, nil
}
