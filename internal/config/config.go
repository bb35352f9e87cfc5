package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configurable settings for the checkout demo server.
type Config struct {
	ListenAddr string `mapstructure:"listen_addr"`
	LogLevel   string `mapstructure:"log_level"`

	Theme  string `mapstructure:"theme"`
	Amount string `mapstructure:"amount"`

	ViewportWidth  int `mapstructure:"viewport_width"`
	ViewportHeight int `mapstructure:"viewport_height"`
	FrameRate      int `mapstructure:"frame_rate"`

	FlipMs        int `mapstructure:"flip_ms"`
	SuccessHoldMs int `mapstructure:"success_hold_ms"`
	ParticleCount int `mapstructure:"particle_count"`

	GatewayLatencyMs int  `mapstructure:"gateway_latency_ms"`
	GatewayDecline   bool `mapstructure:"gateway_decline"`
}

// Load reads a JSON config file (optional) over the defaults.
// Fields not set in the file keep their defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("json")

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("theme", "midnight")
	v.SetDefault("amount", "49.99")
	v.SetDefault("viewport_width", 1280)
	v.SetDefault("viewport_height", 800)
	v.SetDefault("frame_rate", 60)
	v.SetDefault("flip_ms", 600)
	v.SetDefault("success_hold_ms", 2500)
	v.SetDefault("particle_count", 120)
	v.SetDefault("gateway_latency_ms", 400)
	v.SetDefault("gateway_decline", false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, statErr := os.Stat(path); statErr != nil {
				return Config{}, fmt.Errorf("config: read %s: %w", path, err)
			}
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Addr   string
	Theme  string
	Amount string
}

// Resolve applies CLI flag overrides. Flags take priority when non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Addr != "" {
		c.ListenAddr = flags.Addr
	}
	if flags.Theme != "" {
		c.Theme = flags.Theme
	}
	if flags.Amount != "" {
		c.Amount = flags.Amount
	}

	if c.ViewportWidth <= 0 {
		c.ViewportWidth = 1280
	}
	if c.ViewportHeight <= 0 {
		c.ViewportHeight = 800
	}
	if c.FrameRate <= 0 {
		c.FrameRate = 60
	}
}
