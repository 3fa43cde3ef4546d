package db

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/vibe-gaming/tourism/internal/config"
	"github.com/vibe-gaming/tourism/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	mysqlDuplicateEntry = 1062
	mysqlNoReferenced   = 1452

	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func New(cfg config.Database) (*sqlx.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	dbConn, err := sqlx.Connect(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db connection failed: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConnections)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConnections)

	if err := dbConn.Ping(); err != nil {
		return nil, err
	}

	return dbConn, nil
}

// DSN builds the driver specific connection string.
func DSN(cfg config.Database) (string, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		location, err := time.LoadLocation(cfg.TimeZone)
		if err != nil {
			return "", fmt.Errorf("time load location failed: %w", err)
		}
		conf := mysql.NewConfig()
		conf.Net = cfg.Net
		conf.Addr = cfg.Server
		conf.User = cfg.User
		conf.Passwd = cfg.Password
		conf.DBName = cfg.DBName
		conf.Timeout = cfg.Timeout
		conf.Loc = location
		conf.ParseTime = true
		// migrations hold more than one statement per file
		conf.MultiStatements = true
		// UPDATE reports matched rows, so an unchanged row is not mistaken for a missing one
		conf.ClientFoundRows = true
		return conf.FormatDSN(), nil

	case config.DriverPostgres:
		q := url.Values{}
		q.Set("sslmode", cfg.SSLMode)
		if cfg.Timeout > 0 {
			q.Set("connect_timeout", fmt.Sprintf("%d", int(cfg.Timeout.Seconds()+0.5)))
		}
		if cfg.TimeZone != "" {
			q.Set("timezone", cfg.TimeZone)
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.User, cfg.Password),
			Host:     cfg.Server,
			Path:     "/" + cfg.DBName,
			RawQuery: q.Encode(),
		}
		return u.String(), nil
	}

	return "", fmt.Errorf("unsupported driver %q", cfg.Driver)
}

// TranslateError maps driver constraint errors onto domain errors and
// returns err unchanged otherwise.
func TranslateError(err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			return fmt.Errorf("%w: %s", domain.ErrDuplicateEntry, myErr.Message)
		case mysqlNoReferenced:
			return fmt.Errorf("%w: %s", domain.ErrForeignKeyViolation, myErr.Message)
		}
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrDuplicateEntry, pqErr.Message)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrForeignKeyViolation, pqErr.Message)
		}
	}

	return err
}
