package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Admin    AdminConfig    `yaml:"admin"`
	Security SecurityConfig `yaml:"security"`
	CORS     CORSConfig     `yaml:"cors"`
	Uploads  UploadsConfig  `yaml:"uploads"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"`
}

type DatabaseConfig struct {
	Type     string         `yaml:"type"`
	Postgres PostgresConfig `yaml:"postgres"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	MySQL    MySQLConfig    `yaml:"mysql"`
}

type PostgresConfig struct {
	URL string `yaml:"url"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	Charset  string `yaml:"charset"`
}

type AdminConfig struct {
	Password string `yaml:"password"`
}

type SecurityConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

type CORSConfig struct {
	FrontendOrigin string `yaml:"frontend_origin"`
}

type UploadsConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads the configuration file and environment variables. A missing
// config file is tolerated so the server can run from environment variables
// alone; a missing database DSN or admin password is not.
func Load(configPath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Database.Type == "" {
		cfg.Database.Type = "postgres"
	}
	if cfg.CORS.FrontendOrigin == "" {
		cfg.CORS.FrontendOrigin = "http://localhost:3000"
	}
	if cfg.Uploads.Dir == "" {
		cfg.Uploads.Dir = "uploads"
	}
	if cfg.Security.BcryptCost == 0 {
		cfg.Security.BcryptCost = 10
	}

	// Override with environment variables
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.Postgres.URL = dbURL
	}

	if adminPassword := os.Getenv("ADMIN_PASSWORD"); adminPassword != "" {
		cfg.Admin.Password = adminPassword
	}

	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		cfg.CORS.FrontendOrigin = origin
	}

	if dbType := os.Getenv("STOREFRONT_DB_TYPE"); dbType != "" {
		cfg.Database.Type = dbType
	}

	if dbPath := os.Getenv("STOREFRONT_DB_PATH"); dbPath != "" {
		cfg.Database.SQLite.Path = dbPath
	}

	if uploadDir := os.Getenv("STOREFRONT_UPLOAD_DIR"); uploadDir != "" {
		cfg.Uploads.Dir = uploadDir
	}

	// Refuse to start without the credentials that cannot be defaulted
	if cfg.Admin.Password == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD environment variable is required")
	}

	switch cfg.Database.Type {
	case "postgres":
		if cfg.Database.Postgres.URL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case "sqlite":
		if cfg.Database.SQLite.Path == "" {
			return nil, fmt.Errorf("sqlite database path is required")
		}
	case "mysql":
		if cfg.Database.MySQL.Username == "" {
			return nil, fmt.Errorf("MySQL username is required")
		}
		if cfg.Database.MySQL.Database == "" {
			return nil, fmt.Errorf("MySQL database name is required")
		}
	}

	// Ensure upload directory exists
	if err := os.MkdirAll(cfg.Uploads.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &cfg, nil
}
