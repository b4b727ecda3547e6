// Package config resolves database connection settings from an Environment.
package config

import (
	"net/url"
	"strings"
)

// Supported database drivers.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Defaults applied when no variable supplies a value.
const (
	DefaultHost    = "127.0.0.1"
	DefaultName    = "crud_app"
	DefaultUser    = "root"
	DefaultCharset = "utf8mb4"
)

const loopbackAlias = "localhost"

// DBConfig is the effective database configuration.
type DBConfig struct {
	Driver   string
	Host     string
	Port     string // empty means the driver default
	Name     string
	User     string
	Password string
	Charset  string
}

// DefaultDBConfig returns the configuration used when the environment is empty.
func DefaultDBConfig() DBConfig {
	return DBConfig{
		Driver:  DriverMySQL,
		Host:    DefaultHost,
		Name:    DefaultName,
		User:    DefaultUser,
		Charset: DefaultCharset,
	}
}

// Resolve derives the effective DBConfig. Every field is resolved on its own:
// DB_* variables first, then the MYSQL* platform variables, then the matching
// part of DATABASE_URL (or MYSQL_URL), then the default. Empty values count as
// absent. Resolution never fails.
func Resolve(env Environment) DBConfig {
	u := connectionURL(env)
	def := DefaultDBConfig()

	cfg := DBConfig{
		Driver:   first(strings.ToLower(env.Get("DB_DRIVER")), def.Driver),
		Host:     first(env.Get("DB_HOST"), env.Get("MYSQLHOST"), u.host, def.Host),
		Port:     first(env.Get("DB_PORT"), env.Get("MYSQLPORT"), u.port),
		Name:     first(env.Get("DB_NAME"), env.Get("MYSQLDATABASE"), u.name, def.Name),
		User:     first(env.Get("DB_USER"), env.Get("MYSQLUSER"), u.user, def.User),
		Password: first(env.Get("DB_PASS"), env.Get("MYSQLPASSWORD"), u.password),
		Charset:  first(env.Get("DB_CHARSET"), def.Charset),
	}

	if strings.EqualFold(cfg.Host, loopbackAlias) {
		cfg.Host = DefaultHost
	}
	return cfg
}

// urlParts holds the fields taken from a connection URL.
type urlParts struct {
	host, port, name, user, password string
}

func connectionURL(env Environment) urlParts {
	raw := first(env.Get("DATABASE_URL"), env.Get("MYSQL_URL"))
	if raw == "" {
		return urlParts{}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return urlParts{}
	}

	p := urlParts{
		host: u.Hostname(),
		port: u.Port(),
		name: strings.TrimPrefix(u.Path, "/"),
	}
	if u.User != nil {
		p.user = u.User.Username()
		p.password, _ = u.User.Password()
	}
	return p
}

// first returns the first non-empty value.
func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
