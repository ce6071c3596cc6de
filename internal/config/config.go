package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultAPITimeout     = 10 * time.Second
	DefaultWorkers        = 4
	DefaultPrefix         = "!"
	DefaultOperator       = "izee"
	DefaultReservoirURL   = "https://api.reservoir.tools"
	DefaultDexScreenerURL = "https://api.dexscreener.com"
)

type Config struct {
	Discord       DiscordConfig       `yaml:"discord"`
	ReactionRoles ReactionRolesConfig `yaml:"reaction_roles"`
	Commands      CommandsConfig      `yaml:"commands"`
	APIs          APIConfig           `yaml:"apis"`
	Dev           DevConfig           `yaml:"dev"`
}

type DiscordConfig struct {
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Workers        int           `yaml:"workers"`
}

// ReactionRolesConfig pairs emotes[i] with role_ids[i].
type ReactionRolesConfig struct {
	ChannelID  uint64   `yaml:"channel_id"`
	Emotes     []string `yaml:"emotes"`
	RoleIDs    []uint64 `yaml:"role_ids"`
	IgnoreBots *bool    `yaml:"ignore_bots"`
}

type CommandsConfig struct {
	Prefix   string `yaml:"prefix"`
	Operator string `yaml:"operator"`
}

type APIConfig struct {
	ReservoirURL   string        `yaml:"reservoir_url"`
	DexScreenerURL string        `yaml:"dexscreener_url"`
	Timeout        time.Duration `yaml:"timeout"`
}

type DevConfig struct {
	Enabled bool   `yaml:"enabled"`
	GuildID string `yaml:"guild_id"`
}

func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// ShouldIgnoreBots reports whether reactions from bot accounts are discarded. Defaults to true.
func (c ReactionRolesConfig) ShouldIgnoreBots() bool {
	if c.IgnoreBots == nil {
		return true
	}
	return *c.IgnoreBots
}

func (c *Config) applyDefaults() {
	if c.Discord.RequestTimeout <= 0 {
		c.Discord.RequestTimeout = DefaultRequestTimeout
	}
	if c.Discord.Workers <= 0 {
		c.Discord.Workers = DefaultWorkers
	}
	if strings.TrimSpace(c.Commands.Prefix) == "" {
		c.Commands.Prefix = DefaultPrefix
	}
	if strings.TrimSpace(c.Commands.Operator) == "" {
		c.Commands.Operator = DefaultOperator
	}
	if strings.TrimSpace(c.APIs.ReservoirURL) == "" {
		c.APIs.ReservoirURL = DefaultReservoirURL
	}
	if strings.TrimSpace(c.APIs.DexScreenerURL) == "" {
		c.APIs.DexScreenerURL = DefaultDexScreenerURL
	}
	c.APIs.ReservoirURL = strings.TrimRight(c.APIs.ReservoirURL, "/")
	c.APIs.DexScreenerURL = strings.TrimRight(c.APIs.DexScreenerURL, "/")
	if c.APIs.Timeout <= 0 {
		c.APIs.Timeout = DefaultAPITimeout
	}
}
