// Package config provides configuration loading and validation for the
// aggregator binary: symbol, logging, RPC bind address, broadcast capacity,
// and the metrics/health listen ports.
package config

import (
	"fmt"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all aggregator configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Venue     VenueConfig     `mapstructure:"venue"`
	RPC       RPCConfig       `mapstructure:"rpc"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Symbol   string `mapstructure:"symbol"`
	LogLevel string `mapstructure:"log_level"`
}

// VenueConfig holds the two venue endpoints. Both default to the real
// production feeds; there is no provision for more than two venues.
// cmd/orderbook-aggregator does not read these fields: it dials
// aggregator.BitstampURL() and aggregator.BinanceURL(symbol).
type VenueConfig struct {
	BitstampURL string `mapstructure:"bitstamp_url"`
	BinanceURL  string `mapstructure:"binance_url"`
}

// RPCConfig holds the gRPC server bind address and broadcast fan-out
// capacity.
type RPCConfig struct {
	BindAddr          string `mapstructure:"bind_addr"`
	BroadcastCapacity int    `mapstructure:"broadcast_capacity"`
}

// TelemetryConfig holds the Prometheus metrics and health-check listener
// ports.
type TelemetryConfig struct {
	MetricsAddr string `mapstructure:"metrics_addr"`
	HealthPort  int    `mapstructure:"health_port"`
}

// Flags registers the CLI flags Load reads back through viper. Kept
// separate from Load so cmd/orderbook-aggregator can call flag.Parse()
// itself; CLI argument parsing is the caller's concern.
func Flags(fs *flag.FlagSet) {
	fs.String("symbol", "ethbtc", "trading pair to subscribe to on both venues")
	fs.String("log-level", "info", "zerolog level: debug, info, warn, error")
	fs.String("bind-addr", "[::1]:10000", "gRPC server bind address")
	fs.String("metrics-addr", ":9090", "Prometheus /metrics listen address")
	fs.Int("health-port", 8081, "health check HTTP listen port")
}

// Load builds a Config from configPath (optional), environment variables
// under the OBA_ prefix, and any flags already parsed into fs.
func Load(configPath string, fs *flag.FlagSet) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("OBA")
	v.AutomaticEnv()

	bindEnvVars(v)
	setDefaults(v)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
		if fs.Changed("symbol") {
			v.Set("app.symbol", mustGet(fs, "symbol"))
		}
		if fs.Changed("log-level") {
			v.Set("app.log_level", mustGet(fs, "log-level"))
		}
		if fs.Changed("bind-addr") {
			v.Set("rpc.bind_addr", mustGet(fs, "bind-addr"))
		}
		if fs.Changed("metrics-addr") {
			v.Set("telemetry.metrics_addr", mustGet(fs, "metrics-addr"))
		}
		if fs.Changed("health-port") {
			v.Set("telemetry.health_port", mustGetInt(fs, "health-port"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func mustGet(fs *flag.FlagSet, name string) string {
	v, err := fs.GetString(name)
	if err != nil {
		return ""
	}
	return v
}

func mustGetInt(fs *flag.FlagSet, name string) int {
	v, err := fs.GetInt(name)
	if err != nil {
		return 0
	}
	return v
}

func bindEnvVars(v *viper.Viper) {
	v.BindEnv("app.symbol", "OBA_SYMBOL")
	v.BindEnv("app.log_level", "OBA_LOG_LEVEL", "LOG_LEVEL")
	v.BindEnv("venue.bitstamp_url", "OBA_BITSTAMP_URL")
	v.BindEnv("venue.binance_url", "OBA_BINANCE_URL")
	v.BindEnv("rpc.bind_addr", "OBA_BIND_ADDR")
	v.BindEnv("rpc.broadcast_capacity", "OBA_BROADCAST_CAPACITY")
	v.BindEnv("telemetry.metrics_addr", "OBA_METRICS_ADDR")
	v.BindEnv("telemetry.health_port", "OBA_HEALTH_PORT")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.symbol", "ethbtc")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("venue.bitstamp_url", "wss://ws.bitstamp.net")
	v.SetDefault("venue.binance_url", "wss://stream.binance.com:9443")

	v.SetDefault("rpc.bind_addr", "[::1]:10000")
	v.SetDefault("rpc.broadcast_capacity", 16)

	v.SetDefault("telemetry.metrics_addr", ":9090")
	v.SetDefault("telemetry.health_port", 8081)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.App.Symbol == "" {
		return fmt.Errorf("app.symbol is required")
	}
	if c.RPC.BindAddr == "" {
		return fmt.Errorf("rpc.bind_addr is required")
	}
	if c.RPC.BroadcastCapacity <= 0 {
		return fmt.Errorf("rpc.broadcast_capacity must be positive")
	}
	return nil
}
