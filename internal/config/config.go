// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Configuration structures, loading, and validation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/passrun-tui/internal/policy"
	"github.com/jeranaias/passrun-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete passrun configuration.
type Config struct {
	// Version of the config schema.
	Version string `toml:"version" json:"version"`

	// Policy holds the analyzer policy knobs.
	Policy PolicyConfig `toml:"policy" json:"policy"`

	// UI holds terminal interface preferences.
	UI UIConfig `toml:"ui" json:"ui"`
}

// PolicyConfig contains the tunable security-policy values. Zero values
// mean "use the built-in default" so partial files work.
type PolicyConfig struct {
	// MinEntropy is the baseline secure-entropy floor in bits.
	// Valid range: 16-128. Default: 32.
	MinEntropy float64 `toml:"min_entropy" json:"min_entropy"`
	// AttemptsPerSecond is the modeled attacker guess rate.
	// Default: 1e9 (offline GPU attack on a fast hash).
	AttemptsPerSecond uint64 `toml:"attempts_per_second" json:"attempts_per_second"`
	// ComplexityCutoff is the score at which the relaxed threshold row
	// applies. Valid range: 1-5. Default: 3.
	ComplexityCutoff int `toml:"complexity_cutoff" json:"complexity_cutoff"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// MaskInput hides the password behind mask characters in the TUI.
	MaskInput bool `toml:"mask_input" json:"mask_input"`
	// CompactMode uses a more compact report layout.
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Policy: PolicyConfig{
			MinEntropy:        policy.DefaultMinEntropy,
			AttemptsPerSecond: policy.DefaultAttemptsPerSecond,
			ComplexityCutoff:  policy.DefaultComplexityCutoff,
		},
		UI: UIConfig{
			Theme:       "auto",
			MaskInput:   true,
			CompactMode: false,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the passrun configuration directory (~/.passrun).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".passrun"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ActivePath returns the path of the config file that Load would read,
// or the TOML path if none exists yet.
func ActivePath() (string, error) {
	tomlPath, err := ConfigPathTOML()
	if err != nil {
		return "", err
	}
	if _, statErr := os.Stat(tomlPath); statErr == nil {
		return tomlPath, nil
	}
	jsonPath, err := ConfigPathJSON()
	if err != nil {
		return "", err
	}
	if _, statErr := os.Stat(jsonPath); statErr == nil {
		return jsonPath, nil
	}
	return tomlPath, nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads configuration from disk.
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last, then validation.
func Load() (*Config, error) {
	cfg := Default()

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			return finish(cfg)
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			return finish(cfg)
		}
	}

	return finish(cfg)
}

// LoadFromPath loads configuration from a specific file path with full
// validation. The extension decides the format; anything but .json is
// parsed as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}
	return finish(cfg)
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadJSON loads configuration from a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// finish applies env overrides, defaults, and validation in the fixed
// order every load path shares.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	fillDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()
	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.Policy.MinEntropy == 0 {
		cfg.Policy.MinEntropy = defaults.Policy.MinEntropy
	}
	if cfg.Policy.AttemptsPerSecond == 0 {
		cfg.Policy.AttemptsPerSecond = defaults.Policy.AttemptsPerSecond
	}
	if cfg.Policy.ComplexityCutoff == 0 {
		cfg.Policy.ComplexityCutoff = defaults.Policy.ComplexityCutoff
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides overlays PASSRUN_* environment variables onto cfg.
// Malformed values are ignored; validation reports anything out of
// range afterwards.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("PASSRUN_MIN_ENTROPY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Policy.MinEntropy = f
		}
	}
	if v := os.Getenv("PASSRUN_ATTEMPTS_PER_SECOND"); v != "" {
		if n, err := util.StringToUint64(v); err == nil {
			c.Policy.AttemptsPerSecond = n
		}
	}
	if v := os.Getenv("PASSRUN_COMPLEXITY_CUTOFF"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Policy.ComplexityCutoff = n
		}
	}
	if v := os.Getenv("PASSRUN_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("PASSRUN_MASK_INPUT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UI.MaskInput = b
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks configuration invariants. The policy values are
// validated by constructing the policy they describe.
func (c *Config) Validate() error {
	if _, err := c.ToPolicy(); err != nil {
		return err
	}
	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		return fmt.Errorf("ui.theme %q is not one of dark, light, auto", c.UI.Theme)
	}
	return nil
}

// ToPolicy builds the analyzer policy this configuration describes.
func (c *Config) ToPolicy() (policy.Policy, error) {
	return policy.FromValues(c.Policy.MinEntropy, c.Policy.AttemptsPerSecond, c.Policy.ComplexityCutoff)
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the active config path atomically.
func Save(cfg *Config) error {
	path, err := ActivePath()
	if err != nil {
		return err
	}
	if strings.HasSuffix(path, ".json") {
		return SaveJSON(cfg, path)
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration as TOML.
func SaveTOML(cfg *Config, path string) error {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode TOML config: %w", err)
	}
	if err := util.AtomicWriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// SaveJSON writes the configuration as indented JSON.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON config: %w", err)
	}
	if err := util.AtomicWriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// =============================================================================
// KEY ACCESS (config get/set plumbing for the CLI)
// =============================================================================

// Get returns the value of a dotted config key.
func (c *Config) Get(key string) (interface{}, error) {
	switch key {
	case "policy.min_entropy":
		return c.Policy.MinEntropy, nil
	case "policy.attempts_per_second":
		return c.Policy.AttemptsPerSecond, nil
	case "policy.complexity_cutoff":
		return c.Policy.ComplexityCutoff, nil
	case "ui.theme":
		return c.UI.Theme, nil
	case "ui.mask_input":
		return c.UI.MaskInput, nil
	case "ui.compact_mode":
		return c.UI.CompactMode, nil
	default:
		return nil, fmt.Errorf("unknown config key %q", key)
	}
}

// Set assigns a dotted config key from its string representation and
// validates the result.
func (c *Config) Set(key, value string) error {
	switch key {
	case "policy.min_entropy":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number: %w", key, err)
		}
		c.Policy.MinEntropy = f
	case "policy.attempts_per_second":
		n, err := util.StringToUint64(value)
		if err != nil {
			return fmt.Errorf("%s must be a positive integer: %w", key, err)
		}
		c.Policy.AttemptsPerSecond = n
	case "policy.complexity_cutoff":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		c.Policy.ComplexityCutoff = n
	case "ui.theme":
		c.UI.Theme = value
	case "ui.mask_input":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", key, err)
		}
		c.UI.MaskInput = b
	case "ui.compact_mode":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", key, err)
		}
		c.UI.CompactMode = b
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return c.Validate()
}

// Keys lists the settable config keys for help output.
func Keys() []string {
	return []string{
		"policy.min_entropy",
		"policy.attempts_per_second",
		"policy.complexity_cutoff",
		"ui.theme",
		"ui.mask_input",
		"ui.compact_mode",
	}
}
