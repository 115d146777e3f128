package storage

import (
	"context"
	"database/sql"
	"fmt"

	mem "animals-safety/internal/adapters/storage/memory"
	pg "animals-safety/internal/adapters/storage/postgres"
	lite "animals-safety/internal/adapters/storage/sqlite"
	"animals-safety/internal/config"
	"animals-safety/internal/domain/animals"
	"animals-safety/internal/platform/logger"
)

// Store es el repo elegido más su cierre.
type Store struct {
	Animals animals.Repository
	db      *sql.DB
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Open elige backend según storage.driver. memory es el default y no persiste.
func Open(ctx context.Context, cfg config.Storage, log logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		if cfg.Migrate {
			if err := pg.Migrate(db); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		log.Info("storage ready", map[string]any{"driver": cfg.Driver})
		return &Store{Animals: pg.NewAnimalsRepo(db), db: db}, nil

	case config.DriverSQLite:
		db, err := lite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		if cfg.Migrate {
			if err := lite.Migrate(db); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		log.Info("storage ready", map[string]any{"driver": cfg.Driver, "dsn": cfg.DSN})
		return &Store{Animals: lite.NewAnimalsRepo(db), db: db}, nil

	case config.DriverMemory, "":
		log.Info("storage ready", map[string]any{"driver": config.DriverMemory})
		return &Store{Animals: mem.NewAnimalRepo()}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// Migrate corre solo las migraciones (comando migrate).
func Migrate(ctx context.Context, cfg config.Storage) error {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.DSN)
		if err != nil {
			return err
		}
		defer db.Close()
		return pg.Migrate(db)
	case config.DriverSQLite:
		db, err := lite.Open(ctx, cfg.DSN)
		if err != nil {
			return err
		}
		defer db.Close()
		return lite.Migrate(db)
	default:
		return fmt.Errorf("driver %q has no migrations", cfg.Driver)
	}
}
