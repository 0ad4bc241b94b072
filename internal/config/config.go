package config

import "time"

// Config is the single, immutable, startup-loaded configuration struct.
// There is no reload path: a changed environment requires a process restart.
type Config struct {
	Environment string `mapstructure:"environment" yaml:"environment"`
	Port        int    `mapstructure:"port" yaml:"port"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`

	Database     DatabaseConfig     `mapstructure:"database" yaml:"database"`
	Cache        CacheConfig        `mapstructure:"cache" yaml:"cache"`
	CORS         CORSConfig         `mapstructure:"cors" yaml:"cors"`
	Ephemeris    EphemerisConfig    `mapstructure:"ephemeris" yaml:"ephemeris"`
	Retention    RetentionConfig    `mapstructure:"retention" yaml:"retention"`
	Admin        AdminConfig        `mapstructure:"admin" yaml:"admin"`
	Monitoring   MonitoringConfig   `mapstructure:"monitoring" yaml:"monitoring"`
	Orchestrator OrchestratorConfig `mapstructure:"orchestrator" yaml:"orchestrator"`
}

// DatabaseConfig holds the reading-persistence store connection.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver" yaml:"driver"` // "mysql" (vitess-compatible) or "none"
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
	Database string `mapstructure:"database" yaml:"database"`
	TLS      bool   `mapstructure:"tls" yaml:"tls"`
}

// CacheConfig holds the result-cache connection (§4.6 cache policy).
type CacheConfig struct {
	Addr       string `mapstructure:"addr" yaml:"addr"`
	Password   string `mapstructure:"password" yaml:"password"`
	DB         int    `mapstructure:"db" yaml:"db"`
	DefaultTTL int    `mapstructure:"default_ttl" yaml:"default_ttl"` // seconds, default 86400
}

// CORSConfig handles Cross-Origin Resource Sharing for the JSON API.
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods" yaml:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers" yaml:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials" yaml:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age" yaml:"max_age"`
}

// EphemerisConfig configures the astronomy facade's external ephemeris (§4.2.2).
type EphemerisConfig struct {
	// DataPath points at Swiss Ephemeris data files. Empty means the stub
	// (low-precision) ephemeris is used instead of github.com/tejzpr/go-swisseph.
	DataPath string `mapstructure:"data_path" yaml:"data_path"`
	// SiderealMode selects the ayanamsa applied when an engine requests
	// sidereal longitudes. Only "lahiri" is currently supported.
	SiderealMode string `mapstructure:"sidereal_mode" yaml:"sidereal_mode"`
}

// RetentionConfig caps reading lifetimes by privacy level (§3.1, §4.6).
type RetentionConfig struct {
	DefaultDays           int `mapstructure:"default_days" yaml:"default_days"`
	MaxDays               int `mapstructure:"max_days" yaml:"max_days"`
	BiometricMaxDays      int `mapstructure:"biometric_max_days" yaml:"biometric_max_days"` // default 30
	PersistenceDeadlineMS int `mapstructure:"persistence_deadline_ms" yaml:"persistence_deadline_ms"`
}

// AdminConfig holds the admin API key hash (§6); the raw key is never stored.
type AdminConfig struct {
	APIKeyHash string `mapstructure:"api_key_hash" yaml:"api_key_hash"`
}

// MonitoringConfig toggles the Prometheus metrics surface.
type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled" yaml:"enabled"`
	MetricsPath string `mapstructure:"metrics_path" yaml:"metrics_path"`
}

// OrchestratorConfig holds the deadlines of §5.
type OrchestratorConfig struct {
	RunDeadline         time.Duration `mapstructure:"run_deadline" yaml:"run_deadline"`
	PersistenceDeadline time.Duration `mapstructure:"persistence_deadline" yaml:"persistence_deadline"`
}
