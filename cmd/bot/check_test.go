package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ronn-bot/internal/config"
	"ronn-bot/internal/roles"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func runCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"check"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckListsBindings(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	writeFile(t, configPath, `
reaction_roles:
  channel_id: 42
  emotes: ["<:wave:111>", "🎉"]
  role_ids: [7, 8]
`)
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("RESERVOIR_API_KEY", "key")

	out, err := runCheck(t, "--config", configPath, "--env", filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	for _, want := range []string{"watched channel: 42", "ignore bots: true", "<:wave:111> -> 7", "🎉 -> 8"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCheckRejectsMismatchedBindings(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	writeFile(t, configPath, `
reaction_roles:
  channel_id: 42
  emotes: ["<:wave:111>"]
  role_ids: [7, 8]
`)
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("RESERVOIR_API_KEY", "key")

	_, err := runCheck(t, "--config", configPath, "--env", "")
	var cfgErr *roles.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestCheckCreatesMissingConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	_, err := runCheck(t, "--config", configPath, "--env", "")
	if !errors.Is(err, errConfigCreated) {
		t.Fatalf("expected errConfigCreated, got %v", err)
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("expected config to be written: %v", err)
	}
	if !strings.Contains(string(data), "reaction_roles:") {
		t.Fatalf("unexpected template:\n%s", data)
	}
}

func TestDevGuild(t *testing.T) {
	if id, err := devGuild(configDev(false, "")); err != nil || id != nil {
		t.Fatalf("expected no guild when disabled, got %v %v", id, err)
	}
	if _, err := devGuild(configDev(true, "")); err == nil {
		t.Fatalf("expected error for missing guild id")
	}
	if _, err := devGuild(configDev(true, "abc")); err == nil {
		t.Fatalf("expected error for invalid guild id")
	}
	id, err := devGuild(configDev(true, "123"))
	if err != nil || id == nil || *id != 123 {
		t.Fatalf("expected guild 123, got %v %v", id, err)
	}
}

func configDev(enabled bool, guildID string) config.DevConfig {
	return config.DevConfig{Enabled: enabled, GuildID: guildID}
}
