package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"taskflow/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.DbDriver {
	case config.DriverMySQL:
		return connectMySQL(conf)
	case config.DriverSQLite:
		return connectSQLite(conf.SqlitePath)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", conf.DbDriver)
	}
}

func connectMySQL(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect(config.DriverMySQL, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	return db, nil
}

func connectSQLite(path string) (*sqlx.DB, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sqlx.Connect(config.DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	// Every connection to ":memory:" is a separate database, and SQLite
	// serializes writers anyway.
	db.SetMaxOpenConns(1)

	return db, nil
}
