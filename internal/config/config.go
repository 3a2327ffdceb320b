package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Gateway GatewayConfig `mapstructure:"gateway"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Kafka   KafkaConfig   `mapstructure:"kafka"`
	Log     LogConfig     `mapstructure:"log"`
	Limits  LimitsConfig  `mapstructure:"limits"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	// AllowedOrigins enables CORS for a console UI served from another origin.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GatewayConfig points at the Remote Scheduling Gateway.
type GatewayConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	// BranchTimeout bounds each dashboard branch independently.
	BranchTimeout time.Duration `mapstructure:"branch_timeout"`
}

type AuthConfig struct {
	// JWTSecret is optional: when empty, Gateway tokens are decoded without
	// signature verification and the Gateway stays the only verifier.
	JWTSecret    string        `mapstructure:"jwt_secret"`
	CookieName   string        `mapstructure:"cookie_name"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
	CookieDomain string        `mapstructure:"cookie_domain"`
	SessionTTL   time.Duration `mapstructure:"session_ttl"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Broker        string `mapstructure:"broker"`
	LeaveTopic    string `mapstructure:"leave_topic"`
	ConsumerGroup string `mapstructure:"consumer_group"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type LimitsConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// Load reads configuration. Precedence: environment > file > defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("ROTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.read_timeout", "5s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.allowed_origins", []string{})

	v.SetDefault("gateway.base_url", "https://localhost:7091/api")
	v.SetDefault("gateway.timeout", "10s")
	v.SetDefault("gateway.branch_timeout", "5s")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.cookie_name", "access_token")
	v.SetDefault("auth.cookie_secure", true)
	v.SetDefault("auth.cookie_domain", "")
	v.SetDefault("auth.session_ttl", "60m")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.broker", "")
	v.SetDefault("kafka.leave_topic", "rota.leave.status.v1")
	v.SetDefault("kafka.consumer_group", "rota-console-audit")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("limits.requests_per_second", 10)
	v.SetDefault("limits.burst", 20)
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Gateway.BaseURL) == "" {
		return fmt.Errorf("config: gateway.base_url is required")
	}
	if c.Gateway.Timeout <= 0 {
		return fmt.Errorf("config: gateway.timeout must be positive")
	}
	if c.Gateway.BranchTimeout <= 0 || c.Gateway.BranchTimeout > c.Gateway.Timeout {
		c.Gateway.BranchTimeout = c.Gateway.Timeout
	}
	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("config: auth.jwt_secret must be at least 16 characters")
	}
	if c.Auth.CookieName == "" {
		return fmt.Errorf("config: auth.cookie_name is required")
	}
	return nil
}
