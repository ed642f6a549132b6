package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrStoreNotFound reports that the logistics store file does not exist at
// the configured path. Callers match on it to tell "no store at all" apart
// from a failing query; the documented recovery is to fall back to the demo
// dataset in the presentation layer.
var ErrStoreNotFound = errors.New("logistics store not found")

// Datastore wraps the read-only GORM connection to the logistics store
type Datastore struct {
	db *gorm.DB
}

// NewDatastore opens the SQLite store at path in read-only mode. The file
// must already exist: this service never creates or mutates the store.
func NewDatastore(path string) (*Datastore, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat store %s: %w", path, err)
	}

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	// mode=ro guarantees the access path cannot mutate the underlying
	// records.
	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 newLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return &Datastore{db: db}, nil
}

// NewDatastoreFromDB wraps an already-open GORM connection. Used by tests
// that run against an in-memory store.
func NewDatastoreFromDB(db *gorm.DB) *Datastore {
	return &Datastore{db: db}
}

// Close closes the database connection
func (ds *Datastore) Close() error {
	sqlDB, err := ds.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB returns the GORM DB instance bound to the request context
func (ds *Datastore) DB(ctx context.Context) *gorm.DB {
	return ds.db.WithContext(ctx)
}
