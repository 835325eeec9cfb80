package migration

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Blank import required for PostgreSQL driver registration for migrations
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"golang.org/x/exp/slog"

	"todolist/migrations"
)

// Migrator — интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine — фабрика для создания мигратора (чтобы не лезть в БД в тестах)
type MigrationEngine func() (Migrator, error)

type Migration struct {
	engine MigrationEngine
	log    *slog.Logger
}

func NewMigration(engine MigrationEngine, log *slog.Logger) *Migration {
	return &Migration{
		engine: engine,
		log:    log.With("component", "migration"),
	}
}

// PostgresEngine накатывает встроенные миграции по DSN.
func PostgresEngine(databaseURL string) MigrationEngine {
	return func() (Migrator, error) {
		src, err := iofs.New(migrations.FS, "postgres")
		if err != nil {
			return nil, fmt.Errorf("open postgres migrations: %w", err)
		}
		return migrate.NewWithSourceInstance("iofs", src, databaseURL)
	}
}

// SQLiteEngine работает поверх уже открытого соединения.
// Close мигратора соединение не закрывает.
func SQLiteEngine(db *sql.DB) MigrationEngine {
	return func() (Migrator, error) {
		src, err := iofs.New(migrations.FS, "sqlite")
		if err != nil {
			return nil, fmt.Errorf("open sqlite migrations: %w", err)
		}
		driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
		if err != nil {
			return nil, fmt.Errorf("sqlite migration driver: %w", err)
		}
		m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
		if err != nil {
			return nil, err
		}
		return &sharedDBMigrator{m: m}, nil
	}
}

type sharedDBMigrator struct {
	m *migrate.Migrate
}

func (s *sharedDBMigrator) Up() error {
	return s.m.Up()
}

func (s *sharedDBMigrator) Close() (error, error) {
	return nil, nil
}

func (mg *Migration) Up() (err error) {
	m, err := mg.engine()
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.log.Debug("schema is up to date")
			return nil
		}
		return fmt.Errorf("migration up: %w", err)
	}
	mg.log.Info("migrations applied")
	return nil
}
