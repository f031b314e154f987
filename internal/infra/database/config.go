package database

import (
	"fmt"
	"time"

	"climate-api/pkg/resource"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config describes the store connection and its pool.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewConfigFromProperties reads app.db.*. For postgres without an explicit
// dsn the connection string is built from host, port and credentials.
func NewConfigFromProperties() (Config, error) {
	config := Config{
		Driver:          resource.GetString("app.db.driver"),
		DSN:             resource.GetString("app.db.dsn"),
		MaxOpenConns:    resource.GetInt("app.db.pool.max-open-conns"),
		MaxIdleConns:    resource.GetInt("app.db.pool.max-idle-conns"),
		ConnMaxLifetime: resource.GetDuration("app.db.pool.conn-max-lifetime"),
	}
	if config.Driver == "" {
		config.Driver = DriverSQLite
	}

	if config.Driver == DriverPostgres && config.DSN == "" {
		config.DSN = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
			resource.GetString("app.db.host"),
			resource.GetString("app.db.port"),
			resource.GetString("app.db.username"),
			resource.GetString("app.db.password"),
			resource.GetString("app.db.database"),
			resource.GetString("app.db.ssl-mode"),
			resource.GetString("app.db.schema"))
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	switch c.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported db driver %q, expected %s or %s", c.Driver, DriverSQLite, DriverPostgres)
	}
	if c.DSN == "" {
		return fmt.Errorf("db dsn is required")
	}
	return nil
}

// ApplyPool sets the pool limits that are configured (non-zero).
func (c Config) ApplyPool(pool interface {
	SetMaxOpenConns(int)
	SetMaxIdleConns(int)
	SetConnMaxLifetime(time.Duration)
}) {
	if c.MaxOpenConns > 0 {
		pool.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		pool.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetime > 0 {
		pool.SetConnMaxLifetime(c.ConnMaxLifetime)
	}
}
