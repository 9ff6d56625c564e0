// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// MASKING TESTS
// =============================================================================

func TestMaskRunes_Basic(t *testing.T) {
	got := MaskRunes("secret", '*')
	if got != "******" {
		t.Errorf("MaskRunes: got %q, want %q", got, "******")
	}
}

func TestMaskRunes_Empty(t *testing.T) {
	if got := MaskRunes("", '*'); got != "" {
		t.Errorf("MaskRunes empty: got %q", got)
	}
}

func TestMaskRunes_MultiByte(t *testing.T) {
	// Mask counts characters, not bytes.
	got := MaskRunes("日本語", '*')
	if got != "***" {
		t.Errorf("MaskRunes multibyte: got %q, want %q", got, "***")
	}
}

func TestMaskAllButLast(t *testing.T) {
	cases := []struct {
		secret  string
		visible int
		want    string
	}{
		{"password123", 3, "********123"},
		{"ab", 5, "**"}, // visible >= length degrades to full mask
		{"ab", 0, "**"},
		{"", 2, ""},
	}
	for _, tc := range cases {
		if got := MaskAllButLast(tc.secret, '*', tc.visible); got != tc.want {
			t.Errorf("MaskAllButLast(%q, %d): got %q, want %q", tc.secret, tc.visible, got, tc.want)
		}
	}
}

// =============================================================================
// STRING TESTS
// =============================================================================

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("hello world", 8); got != "hello..." {
		t.Errorf("TruncateRunes: got %q", got)
	}
	if got := TruncateRunes("short", 10); got != "short" {
		t.Errorf("TruncateRunes no-op: got %q", got)
	}
	if got := TruncateRunes("abc", 0); got != "" {
		t.Errorf("TruncateRunes zero: got %q", got)
	}
}

func TestRuneLen(t *testing.T) {
	if got := RuneLen("日本語"); got != 3 {
		t.Errorf("RuneLen: got %d, want 3", got)
	}
}

// =============================================================================
// CONVERSION TESTS
// =============================================================================

func TestFloatToString(t *testing.T) {
	if got := FloatToString(56.8714); got != "56.87" {
		t.Errorf("FloatToString: got %q", got)
	}
	if got := FloatToStringPrec(56.8714, 1); got != "56.9" {
		t.Errorf("FloatToStringPrec: got %q", got)
	}
}

func TestStringToUint64(t *testing.T) {
	v, err := StringToUint64("1000000000")
	if err != nil || v != 1_000_000_000 {
		t.Errorf("StringToUint64: got %d, %v", v, err)
	}
	if _, err := StringToUint64("-5"); err == nil {
		t.Error("StringToUint64 accepted a negative")
	}
	if _, err := StringToUint64("1e9"); err == nil {
		t.Error("StringToUint64 accepted float notation")
	}
}

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.txt")
	data := []byte("hello, world!")

	err := AtomicWriteFile(path, data, 0644)
	if err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != string(data) {
		t.Errorf("Content mismatch: got %q, want %q", string(content), string(data))
	}
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "subdir", "deep", "test.txt")

	if err := AtomicWriteFile(path, []byte("test data"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("File not created: %v", err)
	}
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.txt")

	if err := AtomicWriteFile(path, []byte("initial"), 0600); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := AtomicWriteFile(path, []byte("replaced"), 0600); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "replaced" {
		t.Errorf("Overwrite failed: got %q", string(content))
	}
}
