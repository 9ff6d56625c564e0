// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the passrun application.
//
// This package contains common helper functions used throughout the
// application for secret masking, string truncation, numeric
// formatting, and file operations.
//
// # Key Functions
//
// Secret Handling:
//   - MaskRunes: redact a password for on-screen display
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - RuneLen: character (not byte) count
//
// Formatting:
//   - FloatToString, FloatToStringPrec: fixed-precision float rendering
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
