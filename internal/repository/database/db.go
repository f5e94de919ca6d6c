package database

import (
	"fmt"
	"net"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/open-textbook/anonboard/internal/config"
	"github.com/open-textbook/anonboard/internal/repository"
	"github.com/open-textbook/anonboard/internal/repository/database/model"
)

// DSN builds the mysql data source name for cfg.
func DSN(cfg config.Database) (string, error) {
	loc, err := time.LoadLocation(cfg.Loc)
	if err != nil {
		return "", fmt.Errorf("load location %q: %w", cfg.Loc, err)
	}
	dc := mysqlDriver.NewConfig()
	dc.User = cfg.User
	dc.Passwd = cfg.Pass
	dc.Net = "tcp"
	dc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	dc.DBName = cfg.Name
	dc.ParseTime = true
	dc.ClientFoundRows = true
	dc.Loc = loc
	return dc.FormatDSN(), nil
}

func dialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.Path), nil
	case config.DriverMySQL:
		dsn, err := DSN(cfg)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Open connects to the configured database, retrying until it answers a
// ping or MaxRetry attempts are used up.
func Open(cfg config.Database) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	attempts := max(cfg.MaxRetry, 1)
	for i := range attempts {
		db, err = gorm.Open(d, &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					return db, nil
				}
				_ = sqlDB.Close()
			} else {
				err = dbErr
			}
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, attempts, err)
		if i+1 < attempts {
			time.Sleep(cfg.RetryInterval)
		}
	}
	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", attempts, err)
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return err
	}
	return backfillTitleSearch(db)
}

// backfillTitleSearch fills title_search for rows written before the column
// existed.
func backfillTitleSearch(db *gorm.DB) error {
	var rows []model.Article
	return db.Model(&model.Article{}).
		Select("id", "title").
		Where("title_search = ?", "").
		FindInBatches(&rows, 500, func(tx *gorm.DB, _ int) error {
			for _, r := range rows {
				err := db.Model(&model.Article{}).
					Where("id = ?", r.ID).
					Update("title_search", repository.SearchKey(r.Title)).
					Error
				if err != nil {
					return err
				}
			}
			return nil
		}).Error
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
