package db

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/lib/pq"
	"github.com/orderdesk/go-order-intake/config"
	"github.com/orderdesk/go-order-intake/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database and brings the schema up to date.
// With MIGRATIONS=1 the embedded SQL migrations run via golang-migrate;
// otherwise AutoMigrate keeps development setups working without tooling.
func Connect(cfg config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var conn *gorm.DB
	var err error
	switch cfg.Driver {
	case "sqlite":
		conn, err = gorm.Open(sqlite.Open(cfg.DatabaseDSN), gormCfg)
	default:
		var sqlDB *sql.DB
		sqlDB, err = sql.Open("postgres", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		conn, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if pingErr := conn.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	if v := strings.ToLower(os.Getenv("MIGRATIONS")); v == "1" || v == "true" || v == "yes" {
		if cfg.Driver == "sqlite" {
			return nil, fmt.Errorf("sql migrations are postgres-only, unset MIGRATIONS for sqlite")
		}
		if err := RunSQLMigrations(cfg.DatabaseDSN); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		modelsToMigrate := []interface{}{
			&models.Supplier{}, &models.Product{}, &models.ClientCondition{},
			&models.PriceTableEntry{}, &models.Order{}, &models.OrderLine{},
		}
		for _, m := range modelsToMigrate {
			if migErr := conn.AutoMigrate(m); migErr != nil {
				return nil, fmt.Errorf("automigrate %T: %w", m, migErr)
			}
		}
		if cfg.Driver != "sqlite" {
			// AutoMigrate covers tables only; the order number sequence
			// lives outside the GORM schema.
			if seqErr := conn.Exec("CREATE SEQUENCE IF NOT EXISTS order_number_seq").Error; seqErr != nil {
				return nil, fmt.Errorf("create order_number_seq: %w", seqErr)
			}
		}
	}

	return conn, nil
}
