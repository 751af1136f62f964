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
	Auth     AuthConfig     `mapstructure:"auth"`
	LND      LNDConfig      `mapstructure:"lnd"`
	Elements ElementsConfig `mapstructure:"elements"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Name string `mapstructure:"name"` // reported in webhook payloads
}

// Addr returns the listen address string.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type AuthConfig struct {
	APIKey string `mapstructure:"api_key"` // empty = auth disabled
}

type LNDConfig struct {
	Host         string        `mapstructure:"host"` // host:port of the gRPC interface
	TLSCertPath  string        `mapstructure:"tls_cert_path"`
	MacaroonPath string        `mapstructure:"macaroon_path"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type ElementsConfig struct {
	RPCURL   string        `mapstructure:"rpc_url"`
	User     string        `mapstructure:"user"`
	Password string        `mapstructure:"password"`
	Wallet   string        `mapstructure:"wallet"` // optional wallet name appended to the RPC path
	Timeout  time.Duration `mapstructure:"timeout"`
}

type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// PendingDir is the partition holding in-flight and error-tagged requests.
func (s StorageConfig) PendingDir() string { return s.DataDir + "/pending" }

// SentDir is the partition holding completed requests.
func (s StorageConfig) SentDir() string { return s.DataDir + "/sent" }

// WebhookFailureDir holds one JSON record per exhausted webhook delivery.
func (s StorageConfig) WebhookFailureDir() string { return s.DataDir + "/webhook-failures" }

type WebhookConfig struct {
	Timeout       time.Duration `mapstructure:"timeout"`
	RetryAttempts int           `mapstructure:"retry_attempts"` // retries after the first attempt
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: LPG_ (Lightning Payment Gateway).
// Nested keys use underscore: LPG_LND_HOST, LPG_AUTH_API_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.name", "lightning-payment-gateway")
	v.SetDefault("auth.api_key", "")
	v.SetDefault("lnd.host", "localhost:10009")
	v.SetDefault("lnd.tls_cert_path", "")
	v.SetDefault("lnd.macaroon_path", "")
	v.SetDefault("lnd.timeout", "60s")
	v.SetDefault("elements.rpc_url", "http://localhost:7041")
	v.SetDefault("elements.user", "")
	v.SetDefault("elements.password", "")
	v.SetDefault("elements.wallet", "")
	v.SetDefault("elements.timeout", "30s")
	v.SetDefault("storage.data_dir", "./data")
	v.SetDefault("webhook.timeout", "10s")
	v.SetDefault("webhook.retry_attempts", 3)
	v.SetDefault("webhook.retry_delay", "5s")
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

	// Environment variables: LPG_ELEMENTS_RPC_URL -> elements.rpc_url
	v.SetEnvPrefix("LPG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional, env vars can carry everything
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
