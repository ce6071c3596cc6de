package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Secrets are never read from config.yaml.
type Secrets struct {
	DiscordToken    string `env:"DISCORD_TOKEN,required,notEmpty"`
	ReservoirAPIKey string `env:"RESERVOIR_API_KEY,required,notEmpty"`
}

// LoadSecrets reads an optional dotenv file into the process environment and then parses Secrets.
// Variables already set in the environment win over the file.
func LoadSecrets(dotenvPath string) (Secrets, error) {
	var secrets Secrets
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return secrets, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}
	if err := env.Parse(&secrets); err != nil {
		return secrets, fmt.Errorf("parse env: %w", err)
	}
	return secrets, nil
}
