package store

import "time"

type Config struct {
	// Enabled turns persistence on. When false the server runs without a
	// database and handled requests are simply not recorded.
	Enabled bool `yaml:"enabled" envconfig:"STORE_ENABLED"`

	Connection        Connection
	ConnectionDetails ConnectionDetails
}

type Connection struct {
	Host     string `yaml:"host" envconfig:"STORE_HOST"`
	Port     string `yaml:"port" envconfig:"STORE_PORT"`
	User     string `yaml:"user" envconfig:"STORE_USER"`
	Password string `yaml:"password" envconfig:"STORE_PASSWORD"`
	DbName   string `yaml:"db_name" envconfig:"STORE_DB_NAME"`
	SSLMode  string `yaml:"ssl_mode" envconfig:"STORE_SSL_MODE"`
}

type ConnectionDetails struct {
	MaxOpenConns    int           `yaml:"max_open_conns" envconfig:"STORE_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `yaml:"max_idle_conns" envconfig:"STORE_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" envconfig:"STORE_CONN_MAX_LIFETIME"`
}

// withDefaults fills pool parameters so an Enabled config with only
// connection fields set behaves sensibly.
func (c Config) withDefaults() Config {
	if c.ConnectionDetails.MaxOpenConns <= 0 {
		c.ConnectionDetails.MaxOpenConns = 50
	}
	if c.ConnectionDetails.MaxIdleConns <= 0 {
		c.ConnectionDetails.MaxIdleConns = 25
	}
	if c.ConnectionDetails.ConnMaxLifetime <= 0 {
		c.ConnectionDetails.ConnMaxLifetime = time.Minute
	}
	return c
}
