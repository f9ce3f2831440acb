package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"jobportal/logging"

	"github.com/spf13/viper"
)

type DatabaseType string

const (
	Postgres DatabaseType = "postgres"
	SQLite   DatabaseType = "sqlite3"
)

const (
	DefaultHost     = "localhost"
	DefaultPort     = 5432
	DefaultUser     = "postgres"
	DefaultPassword = "postgres"
	DefaultName     = "jobportal"
	DefaultSSL      = "disable"

	// DefaultMigrations is relative to the working directory of the process.
	DefaultMigrations = "migrations/*.sql"
)

type DatabaseConfiguration struct {
	Type        DatabaseType
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSL         string
	URL         string
	Migrations  []string
	Synchronize bool
	Logging     bool
}

// env var for each database key
var databaseEnv = []struct {
	key, env string
	def      interface{}
}{
	{"database.host", "DB_HOST", DefaultHost},
	{"database.port", "DB_PORT", DefaultPort},
	{"database.username", "DB_USERNAME", DefaultUser},
	{"database.password", "DB_PASSWORD", DefaultPassword},
	{"database.name", "DB_NAME", DefaultName},
	{"database.url", "DATABASE_URL", ""},
}

func bindDatabase(v *viper.Viper) {
	for _, e := range databaseEnv {
		v.SetDefault(e.key, e.def)
		_ = v.BindEnv(e.key, e.env)
	}
}

// LoadDatabaseConfiguration builds the data source record. Each connection
// setting comes from its environment variable when that is set and non-empty,
// otherwise from a config file key, otherwise from the default literal.
// Malformed values never fail: an unparseable or zero DB_PORT yields DefaultPort.
func LoadDatabaseConfiguration(v *viper.Viper) DatabaseConfiguration {
	if v == nil {
		v = viper.New()
	}
	bindDatabase(v)

	conf := DatabaseConfiguration{
		Type:        Postgres,
		Host:        stringOr(v.GetString("database.host"), DefaultHost),
		Port:        parsePort(v.GetString("database.port"), portKey()),
		User:        stringOr(v.GetString("database.username"), DefaultUser),
		Password:    stringOr(v.GetString("database.password"), DefaultPassword),
		Name:        stringOr(v.GetString("database.name"), DefaultName),
		SSL:         DefaultSSL,
		URL:         v.GetString("database.url"),
		Migrations:  []string{DefaultMigrations},
		Synchronize: false,
		Logging:     true,
	}

	if conf.URL != "" {
		conf.SSL = "require"
	}

	return conf
}

func stringOr(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

// portKey names where database.port was read from: the env var when it is
// set and non-empty, the config key otherwise.
func portKey() string {
	if v, ok := os.LookupEnv("DB_PORT"); ok && v != "" {
		return "DB_PORT"
	}
	return "database.port"
}

func parsePort(raw, key string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPort
	}

	port, err := strconv.Atoi(raw)
	if err != nil || port == 0 {
		logger := logging.WithComponent("config")
		logger.Warn().
			Str("key", key).
			Str("value", raw).
			Int("default", DefaultPort).
			Msg("invalid port, using default")
		return DefaultPort
	}

	return port
}

// DSN returns the connection string handed to the sql driver.
func (c DatabaseConfiguration) DSN() string {
	if c.Type == SQLite {
		return c.Name
	}

	if c.URL != "" {
		return c.URL
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSL,
	)
}

// Address is the host:port the data source connects to, without credentials.
// With DATABASE_URL set it is taken from the URL.
func (c DatabaseConfiguration) Address() string {
	if c.Type == SQLite {
		return c.Name
	}

	if c.URL != "" {
		u, err := url.Parse(c.URL)
		if err != nil || u.Host == "" {
			return "unknown"
		}
		return u.Host
	}

	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
