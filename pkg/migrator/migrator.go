// Package migrator применяет SQL-миграции из fs.FS к PostgreSQL.
// Применённые версии и их контрольные суммы хранятся в schema_migrations.
package migrator

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// advisoryLockID ключ pg_advisory_lock, сериализующий миграции между репликами
const advisoryLockID = 7_341_002

var (
	// ErrScan ошибка чтения файлов миграций
	ErrScan = errors.New("migrator: failed to scan migrations")

	// ErrApply ошибка применения миграции
	ErrApply = errors.New("migrator: failed to apply migration")

	// ErrChecksumMismatch применённая миграция была изменена после применения
	ErrChecksumMismatch = errors.New("migrator: checksum mismatch")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migration файл миграции
type Migration struct {
	Version  string // Имя файла без расширения: 0001_init
	SQL      string
	Checksum string
}

// Migrator применяет миграции
type Migrator struct {
	db     *sql.DB
	fsys   fs.FS
	logger Logger
}

// New создает новый экземпляр Migrator
func New(db *sql.DB, fsys fs.FS, logger Logger) *Migrator {
	return &Migrator{db: db, fsys: fsys, logger: logger}
}

// Scan читает *.sql из корня fsys в лексикографическом порядке
func Scan(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScan, err)
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrScan, name, err)
		}
		if strings.TrimSpace(string(content)) == "" {
			return nil, fmt.Errorf("%w: %s is empty", ErrScan, name)
		}
		sum := sha256.Sum256(content)
		migrations = append(migrations, Migration{
			Version:  strings.TrimSuffix(name, path.Ext(name)),
			SQL:      string(content),
			Checksum: hex.EncodeToString(sum[:]),
		})
	}

	return migrations, nil
}

// Apply применяет все ещё не применённые миграции. Каждая миграция - отдельная транзакция.
func (m *Migrator) Apply(ctx context.Context) error {
	migrations, err := Scan(m.fsys)
	if err != nil {
		return err
	}

	conn, err := m.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire connection: %v", ErrApply, err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		return fmt.Errorf("%w: advisory lock: %v", ErrApply, err)
	}
	defer conn.ExecContext(context.Background(), "SELECT pg_advisory_unlock($1)", advisoryLockID) //nolint:errcheck

	if _, err := conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    TEXT PRIMARY KEY,
		checksum   TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		return fmt.Errorf("%w: create schema_migrations: %v", ErrApply, err)
	}

	applied, err := appliedVersions(ctx, conn)
	if err != nil {
		return err
	}

	pending, err := Pending(migrations, applied)
	if err != nil {
		return err
	}

	for _, mig := range pending {
		if err := applyOne(ctx, conn, mig); err != nil {
			return err
		}
		m.logger.Info("Migration applied: version=%s", mig.Version)
	}

	return nil
}

// Pending возвращает миграции, которых нет в applied (version -> checksum).
// Если применённая миграция изменилась, возвращается ErrChecksumMismatch.
func Pending(migrations []Migration, applied map[string]string) ([]Migration, error) {
	pending := make([]Migration, 0)
	for _, mig := range migrations {
		checksum, ok := applied[mig.Version]
		if !ok {
			pending = append(pending, mig)
			continue
		}
		if checksum != mig.Checksum {
			return nil, fmt.Errorf("%w: version %s", ErrChecksumMismatch, mig.Version)
		}
	}
	return pending, nil
}

func appliedVersions(ctx context.Context, conn *sql.Conn) (map[string]string, error) {
	rows, err := conn.QueryContext(ctx, "SELECT version, checksum FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("%w: read schema_migrations: %v", ErrApply, err)
	}
	defer rows.Close()

	applied := make(map[string]string)
	for rows.Next() {
		var version, checksum string
		if err := rows.Scan(&version, &checksum); err != nil {
			return nil, fmt.Errorf("%w: scan schema_migrations: %v", ErrApply, err)
		}
		applied[version] = checksum
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read schema_migrations: %v", ErrApply, err)
	}

	return applied, nil
}

func applyOne(ctx context.Context, conn *sql.Conn, mig Migration) (err error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: begin: %v", ErrApply, mig.Version, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, mig.SQL); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrApply, mig.Version, err)
	}
	if _, err = tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, checksum) VALUES ($1, $2)", mig.Version, mig.Checksum); err != nil {
		return fmt.Errorf("%w: %s: record version: %v", ErrApply, mig.Version, err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s: commit: %v", ErrApply, mig.Version, err)
	}

	return nil
}
