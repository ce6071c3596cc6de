package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"ronn-bot/internal/config"
)

var errConfigCreated = errors.New("config file created from template, fill it in and restart")

// readConfig loads the config file, writing the embedded template first when it is missing.
func readConfig(path string, logger *slog.Logger) (config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if err := createConfigFromExample(path); err != nil {
		return cfg, err
	}
	logger.Info("created config from embedded template", slog.String("path", path))
	logger.Info("set reaction_roles.channel_id, emotes and role_ids, and dev.guild_id if dev.enabled")
	return cfg, errConfigCreated
}

func createConfigFromExample(destination string) error {
	if len(config.DefaultConfigYAML) == 0 {
		return errors.New("embedded config template missing")
	}
	return os.WriteFile(destination, config.DefaultConfigYAML, 0o644)
}
