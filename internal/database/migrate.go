package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"trivia-coffee/internal/config"
	"trivia-coffee/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers the pgx5:// scheme
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationFS embed.FS

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// RunMigrations applies (or reverts) the schema of service on the configured database.
// PostgreSQL goes through golang-migrate; Oracle, which golang-migrate does not support,
// goes through a small runner that records applied files in schema_migrations.
func RunMigrations(ctx context.Context, cfg config.DBConfig, service, direction string) error {
	if direction != DirectionUp && direction != DirectionDown {
		return fmt.Errorf("unknown migration direction %q", direction)
	}
	dir := path.Join("migrations", driverDir(cfg.Driver), service)
	if _, err := fs.Stat(migrationFS, dir); err != nil {
		return fmt.Errorf("no migrations for service %q on driver %q: %w", service, cfg.Driver, err)
	}

	switch cfg.Driver {
	case config.DriverPostgres:
		return runGolangMigrate(cfg, dir, service, direction)
	case config.DriverOracle:
		db, err := NewSQLXDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		return runOracleMigrations(ctx, db, dir, direction)
	default:
		return fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

func driverDir(driver string) string {
	if driver == config.DriverOracle {
		return "oracle"
	}
	return "postgres"
}

func runGolangMigrate(cfg config.DBConfig, dir, service, direction string) error {
	src, err := iofs.New(migrationFS, dir)
	if err != nil {
		return fmt.Errorf("could not open migrations: %w", err)
	}

	// Each service keeps its own version table so both can share one database.
	dsn := strings.Replace(cfg.DSN(), "postgres://", "pgx5://", 1)
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	dsn += sep + "x-migrations-table=" + service + "_schema_migrations"

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}
	defer m.Close()

	if direction == DirectionUp {
		err = m.Up()
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("could not read migration version: %w", verr)
	}
	logger.Get().Info("Migrations completed",
		zap.String("service", service),
		zap.String("direction", direction),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}

func runOracleMigrations(ctx context.Context, db *sqlx.DB, dir, direction string) error {
	if err := ensureOracleVersionTable(ctx, db); err != nil {
		return err
	}

	files, err := migrationFiles(dir, direction)
	if err != nil {
		return err
	}

	for _, name := range files {
		version := strings.SplitN(name, ".", 2)[0]

		var applied int
		if err := db.GetContext(ctx, &applied, db.Rebind(`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`), version); err != nil {
			return fmt.Errorf("could not read schema_migrations: %w", err)
		}
		if (direction == DirectionUp) == (applied > 0) {
			continue
		}

		content, err := fs.ReadFile(migrationFS, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}

		if direction == DirectionUp {
			_, err = db.ExecContext(ctx, db.Rebind(`INSERT INTO schema_migrations (version) VALUES (?)`), version)
		} else {
			_, err = db.ExecContext(ctx, db.Rebind(`DELETE FROM schema_migrations WHERE version = ?`), version)
		}
		if err != nil {
			return fmt.Errorf("could not record migration %s: %w", name, err)
		}
		logger.Get().Info("Executed migration", zap.String("file", name))
	}
	return nil
}

func ensureOracleVersionTable(ctx context.Context, db *sqlx.DB) error {
	var exists int
	err := db.GetContext(ctx, &exists, `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`)
	if err != nil {
		return fmt.Errorf("could not inspect user_tables: %w", err)
	}
	if exists > 0 {
		return nil
	}
	_, err = db.ExecContext(ctx, `CREATE TABLE schema_migrations (version VARCHAR2(64) PRIMARY KEY)`)
	if err != nil {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}
	return nil
}

// migrationFiles lists the files of dir for direction, in execution order.
func migrationFiles(dir, direction string) ([]string, error) {
	entries, err := fs.ReadDir(migrationFS, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}
	suffix := "." + direction + ".sql"
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), suffix) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	if direction == DirectionDown {
		sort.Sort(sort.Reverse(sort.StringSlice(files)))
	}
	return files, nil
}

// SplitStatements splits a migration script on semicolons ending a line.
// go-ora executes a single statement per call.
func SplitStatements(script string) []string {
	var (
		statements []string
		current    strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		if strings.HasSuffix(trimmed, ";") {
			current.WriteString(strings.TrimSuffix(trimmed, ";"))
			statements = append(statements, current.String())
			current.Reset()
			continue
		}
		current.WriteString(trimmed)
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		statements = append(statements, rest)
	}
	return statements
}
