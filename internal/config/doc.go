// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management
// for passrun.
//
// Supports both TOML and JSON configuration formats, with sensible
// defaults, environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.passrun/config.toml
//   - ~/.passrun/config.json
//   - Built-in defaults
//
// Environment overrides use the PASSRUN_ prefix (PASSRUN_MIN_ENTROPY,
// PASSRUN_ATTEMPTS_PER_SECOND, PASSRUN_THEME, PASSRUN_MASK_INPUT).
//
// The Watcher wraps fsnotify so the TUI can hot-reload policy changes
// without restarting.
package config
