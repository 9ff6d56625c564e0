// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	p, err := cfg.ToPolicy()
	if err != nil {
		t.Fatalf("default config produced no policy: %v", err)
	}
	if p.MinEntropy != 32.0 {
		t.Errorf("default min entropy: got %v, want 32", p.MinEntropy)
	}
}

func TestLoadFromPath_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := []byte("version = \"1.0.0\"\n\n[policy]\nmin_entropy = 48.0\nattempts_per_second = 2000000000\n\n[ui]\ntheme = \"dark\"\nmask_input = false\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Policy.MinEntropy != 48.0 {
		t.Errorf("min_entropy: got %v, want 48", cfg.Policy.MinEntropy)
	}
	if cfg.Policy.AttemptsPerSecond != 2_000_000_000 {
		t.Errorf("attempts_per_second: got %v", cfg.Policy.AttemptsPerSecond)
	}
	// Unset keys fall back to defaults.
	if cfg.Policy.ComplexityCutoff != 3 {
		t.Errorf("complexity_cutoff default: got %v, want 3", cfg.Policy.ComplexityCutoff)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme: got %q", cfg.UI.Theme)
	}
	if cfg.UI.MaskInput {
		t.Error("mask_input should be false")
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := []byte(`{"policy": {"min_entropy": 40}, "ui": {"theme": "light"}}`)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Policy.MinEntropy != 40.0 {
		t.Errorf("min_entropy: got %v, want 40", cfg.Policy.MinEntropy)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("theme: got %q", cfg.UI.Theme)
	}
}

func TestLoadFromPath_RejectsInvalidPolicy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := []byte("[policy]\nmin_entropy = 4.0\n") // below the 16-bit floor
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected validation error for min_entropy below floor")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PASSRUN_MIN_ENTROPY", "64")
	t.Setenv("PASSRUN_ATTEMPTS_PER_SECOND", "5000000000")
	t.Setenv("PASSRUN_THEME", "light")
	t.Setenv("PASSRUN_MASK_INPUT", "false")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Policy.MinEntropy != 64.0 {
		t.Errorf("env min_entropy: got %v", cfg.Policy.MinEntropy)
	}
	if cfg.Policy.AttemptsPerSecond != 5_000_000_000 {
		t.Errorf("env attempts_per_second: got %v", cfg.Policy.AttemptsPerSecond)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("env theme: got %q", cfg.UI.Theme)
	}
	if cfg.UI.MaskInput {
		t.Error("env mask_input should be false")
	}
}

func TestApplyEnvOverrides_IgnoresGarbage(t *testing.T) {
	t.Setenv("PASSRUN_MIN_ENTROPY", "not-a-number")
	t.Setenv("PASSRUN_ATTEMPTS_PER_SECOND", "-3")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Policy.MinEntropy != 32.0 {
		t.Errorf("garbage env should not override: got %v", cfg.Policy.MinEntropy)
	}
	if cfg.Policy.AttemptsPerSecond != 1_000_000_000 {
		t.Errorf("garbage env should not override: got %v", cfg.Policy.AttemptsPerSecond)
	}
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Policy.MinEntropy = 50
	cfg.UI.Theme = "dark"
	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Policy.MinEntropy != 50 {
		t.Errorf("round-trip min_entropy: got %v", loaded.Policy.MinEntropy)
	}
	if loaded.UI.Theme != "dark" {
		t.Errorf("round-trip theme: got %q", loaded.UI.Theme)
	}
}

func TestGetSet(t *testing.T) {
	cfg := Default()

	if err := cfg.Set("policy.min_entropy", "48"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, err := cfg.Get("policy.min_entropy")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v.(float64) != 48.0 {
		t.Errorf("Get after Set: got %v", v)
	}

	// Out-of-range values are rejected at Set time.
	if err := cfg.Set("policy.min_entropy", "4"); err == nil {
		t.Error("Set accepted a min_entropy below the floor")
	}
	if err := cfg.Set("ui.theme", "solarized"); err == nil {
		t.Error("Set accepted an unknown theme")
	}
	if err := cfg.Set("nope.nope", "1"); err == nil {
		t.Error("Set accepted an unknown key")
	}
	if _, err := cfg.Get("nope.nope"); err == nil {
		t.Error("Get accepted an unknown key")
	}
}
