package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Logger defines the interface for logging operations within the store package.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=store
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Store persists handled hello requests in PostgreSQL through GORM.
// A nil *Store is the disabled state; the server treats it as "don't record".
type Store struct {
	client *gorm.DB
	cfg    Config
	logger Logger
}

// NewStore connects to PostgreSQL and migrates the visits table.
// When cfg.Enabled is false it returns nil, which downstream code treats as
// persistence being switched off. A configured-but-unreachable database is
// fatal: silently dropping every visit would defeat the point of enabling it.
func NewStore(cfg Config, logger Logger) *Store {
	if !cfg.Enabled {
		logger.Info("visit store disabled", nil, nil)
		return nil
	}

	cfg = cfg.withDefaults()

	client, err := connect(cfg, logger)
	if err != nil {
		logger.Fatal("error connecting to visit store", err, nil)
		return nil
	}

	if err := client.AutoMigrate(&Visit{}); err != nil {
		logger.Fatal("error migrating visit store schema", err, nil)
		return nil
	}

	return &Store{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// connect opens the GORM connection and applies the pool parameters.
func connect(cfg Config, logger Logger) (*gorm.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Connection.Host,
		cfg.Connection.Port,
		cfg.Connection.User,
		cfg.Connection.Password,
		cfg.Connection.DbName,
		cfg.Connection.SSLMode)

	database, err := gorm.Open(
		postgres.Open(connStr),
		&gorm.Config{
			TranslateError: true,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	databaseInstance, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get PostgreSQL database instance: %w", err)
	}

	databaseInstance.SetMaxOpenConns(cfg.ConnectionDetails.MaxOpenConns)
	databaseInstance.SetMaxIdleConns(cfg.ConnectionDetails.MaxIdleConns)
	databaseInstance.SetConnMaxLifetime(cfg.ConnectionDetails.ConnMaxLifetime)

	logger.Info("Successfully connected to PostgreSQL database", nil, nil)

	return database, nil
}

// Close releases the underlying connection pool. Safe on a nil Store.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	db, err := s.client.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
