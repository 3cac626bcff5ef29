package config

import (
	"fmt"

	"github.com/staynest/service-stay/internal/pkg/config"
)

// Backend drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// ServiceConfig holds all configuration for the stay service.
type ServiceConfig struct {
	Port          string
	AppEnv        string
	AdminEmail    string
	BackendDriver string
	DBConfig      config.DatabaseConfig
	JWTConfig     config.JWTConfig
	KafkaConfig   config.KafkaConfig
}

// Load reads configuration from STAYNEST_* environment variables.
func Load() (*ServiceConfig, error) {
	v, err := config.Load("STAYNEST")
	if err != nil {
		return nil, err
	}
	v.SetDefault("DB_NAME", "staynest")
	v.SetDefault("ADMIN_EMAIL", "admin@us.com")
	v.SetDefault("BACKEND_DRIVER", DriverPostgres)

	cfg := &ServiceConfig{
		Port:          config.GetServicePort(v, "SERVICE_PORT"),
		AppEnv:        config.GetAppEnv(v),
		AdminEmail:    v.GetString("ADMIN_EMAIL"),
		BackendDriver: v.GetString("BACKEND_DRIVER"),
		DBConfig:      config.LoadDatabaseConfig(v, "DB_NAME"),
		JWTConfig:     config.LoadJWTConfig(v),
		KafkaConfig:   config.LoadKafkaConfig(v),
	}

	switch cfg.BackendDriver {
	case DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("unsupported backend driver %q", cfg.BackendDriver)
	}
	return cfg, nil
}
