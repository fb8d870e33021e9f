package config

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	Influx   InfluxConfig   `yaml:"influx"`
	Catalog  CatalogConfig  `yaml:"catalog"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port                   int           `yaml:"port"`
	RateLimitPerSec        float64       `yaml:"rate_limit_per_sec"`
	RateLimitBurst         int           `yaml:"rate_limit_burst"`
	CacheTTLSeconds        int           `yaml:"cache_ttl_seconds"`
	CacheTTL               time.Duration `yaml:"-"`
	ShutdownTimeoutSeconds int           `yaml:"shutdown_timeout_seconds"`
	ShutdownTimeout        time.Duration `yaml:"-"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"` // postgres or sqlite
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
	LogQueries             bool   `yaml:"log_queries"`
}

// LogConfig controls the process-wide zerolog logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
}

// MQTTConfig holds the broker settings for sensor report ingestion.
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"`
	ClientID    string `yaml:"client_id"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	TopicPrefix string `yaml:"topic_prefix"`
	QoS         int    `yaml:"qos"`
	Workers     int    `yaml:"workers"`
}

// InfluxConfig holds the settings of the optional time-series mirror.
type InfluxConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Token   string `yaml:"token"`
	Org     string `yaml:"org"`
	Bucket  string `yaml:"bucket"`
}

// CatalogConfig lists the device types, sensor and actuator types and models
// seeded into the database at startup.
type CatalogConfig struct {
	DeviceTypes    []TypeEntry  `yaml:"device_types"`
	SensorTypes    []TypeEntry  `yaml:"sensor_types"`
	SensorModels   []ModelEntry `yaml:"sensor_models"`
	ActuatorTypes  []TypeEntry  `yaml:"actuator_types"`
	ActuatorModels []ModelEntry `yaml:"actuator_models"`
}

// TypeEntry is a catalog type. Unit is only meaningful for sensor types.
type TypeEntry struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Unit        string `yaml:"unit"`
}

// ModelEntry is a catalog model bound to a type.
type ModelEntry struct {
	Name        string `yaml:"name"`
	TypeID      string `yaml:"type_id"`
	Description string `yaml:"description"`
}

// DSNEnvVar overrides database.dsn when set, so credentials can stay out of the file.
const DSNEnvVar = "SMARTHOME_DATABASE_DSN"

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}
	cfg.Server.CacheTTL = time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	if cfg.Server.ShutdownTimeoutSeconds <= 0 {
		cfg.Server.ShutdownTimeoutSeconds = 5
	}
	cfg.Server.ShutdownTimeout = time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if dsn := os.Getenv(DSNEnvVar); dsn != "" {
		cfg.Database.DSN = dsn
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}

	if cfg.MQTT.TopicPrefix == "" {
		cfg.MQTT.TopicPrefix = "smarthome"
	}
	if cfg.MQTT.ClientID == "" {
		cfg.MQTT.ClientID = "smarthomed"
	}
	if cfg.MQTT.QoS < 0 || cfg.MQTT.QoS > 2 {
		log.Warn().Int("qos", cfg.MQTT.QoS).Msg("mqtt.qos out of range; defaulting to 1")
		cfg.MQTT.QoS = 1
	}
	if cfg.MQTT.Workers <= 0 {
		log.Warn().Msg("mqtt.workers is not set or invalid; defaulting to 1")
		cfg.MQTT.Workers = 1
	}
}
