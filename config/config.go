package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// WalletConfig points at the wallet bridge that holds the keys and exposes
// submission, status and record queries over HTTP.
type WalletConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	APIKey         string        `mapstructure:"api_key"` // optional bearer token for the bridge
}

// LedgerConfig holds the program binding and polling policy.
type LedgerConfig struct {
	ProgramID       string        `mapstructure:"program_id"`
	Fee             uint64        `mapstructure:"fee"` // microcredits
	PrivateFee      bool          `mapstructure:"private_fee"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	PollMaxAttempts int           `mapstructure:"poll_max_attempts"`
	ConsumedTTL     time.Duration `mapstructure:"consumed_ttl"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// AuthConfig holds the operator credential exchanged for a JWT.
type AuthConfig struct {
	OperatorName string `mapstructure:"operator_name"`
	OperatorKey  string `mapstructure:"operator_key"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PPG_ (Private Payroll Gateway).
// Nested keys use underscore: PPG_WALLET_BASE_URL, PPG_LEDGER_PROGRAM_ID, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("wallet.base_url", "http://localhost:4130")
	v.SetDefault("wallet.request_timeout", "15s")
	v.SetDefault("wallet.api_key", "")
	v.SetDefault("ledger.program_id", "payrollsystem.aleo")
	v.SetDefault("ledger.fee", 1_000_000)
	v.SetDefault("ledger.private_fee", false)
	v.SetDefault("ledger.poll_interval", "2s")
	v.SetDefault("ledger.poll_max_attempts", 60)
	v.SetDefault("ledger.consumed_ttl", "24h")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "payroll_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "private-payroll-gateway")
	v.SetDefault("auth.operator_name", "operator")
	v.SetDefault("auth.operator_key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PPG_LEDGER_PROGRAM_ID -> ledger.program_id
	v.SetEnvPrefix("PPG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
