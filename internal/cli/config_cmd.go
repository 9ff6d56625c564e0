// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration management command for passrun.
//
// Subcommands:
//   show (default)      Print the active configuration
//   get <key>           Print one value by dotted key
//   set <key> <value>   Update one value and save
//   path                Print the active config file path
//   init                Write the default config file
//   keys                List all settable keys
//
// Flags:
//   --json              Output in JSON format
//
// Examples:
//   passrun config
//   passrun config set policy.min_entropy 48
//   passrun config get ui.theme --json
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/passrun-tui/internal/config"
)

// HandleConfig dispatches the config subcommands.
func HandleConfig(args []string) error {
	parser := NewArgParser(args)

	switch parser.Subcommand() {
	case "", "show":
		return configShow(parser)
	case "get":
		return configGet(parser)
	case "set":
		return configSet(parser)
	case "path":
		return configPath(parser)
	case "init":
		return configInit(parser)
	case "keys":
		return configKeys(parser)
	default:
		return NewUsageError("unknown config subcommand: %s", parser.Subcommand())
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errConfig, err)
	}
	return cfg, nil
}

func configShow(parser *ArgParser) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if parser.BoolFlag("json") {
		return NewJSONResponse("config", cfg).Print()
	}

	fmt.Println(TitleStyle.Render("Configuration"))
	fmt.Println(SectionStyle.Render("Policy"))
	fmt.Println(row("Min entropy", FormatBits(cfg.Policy.MinEntropy)))
	fmt.Println(row("Attack rate", FormatCount(cfg.Policy.AttemptsPerSecond)+" guesses/sec"))
	fmt.Println(row("Complexity cutoff", fmt.Sprintf("%d", cfg.Policy.ComplexityCutoff)))
	fmt.Println(SectionStyle.Render("UI"))
	fmt.Println(row("Theme", cfg.UI.Theme))
	fmt.Println(row("Mask input", yesNo(cfg.UI.MaskInput)))
	fmt.Println(row("Compact mode", yesNo(cfg.UI.CompactMode)))

	if path, err := config.ActivePath(); err == nil {
		fmt.Println(DimStyle.Render("  source: " + path))
	} else {
		fmt.Println(DimStyle.Render("  source: built-in defaults (no config file)"))
	}
	return nil
}

func configGet(parser *ArgParser) error {
	key := parser.Positional(1)
	if key == "" {
		return NewUsageError("usage: passrun config get <key>")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	value, err := cfg.Get(key)
	if err != nil {
		return NewUsageError("%v (known keys: %s)", err, strings.Join(config.Keys(), ", "))
	}

	if parser.BoolFlag("json") {
		return NewJSONResponse("config", map[string]interface{}{key: value}).Print()
	}
	fmt.Println(value)
	return nil
}

func configSet(parser *ArgParser) error {
	key := parser.Positional(1)
	value := parser.Positional(2)
	if key == "" || value == "" {
		return NewUsageError("usage: passrun config set <key> <value>")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return NewUsageError("%v (known keys: %s)", err, strings.Join(config.Keys(), ", "))
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("%w: saving: %v", errConfig, err)
	}

	if parser.BoolFlag("json") {
		return NewJSONResponse("config", cfg).Print()
	}
	fmt.Println(SuccessStyle.Render("✅ " + key + " = " + value))
	return nil
}

func configPath(parser *ArgParser) error {
	path, err := config.ActivePath()
	if err != nil {
		// No file yet: print where one would be created.
		path, err = config.ConfigPathTOML()
		if err != nil {
			return fmt.Errorf("%w: %v", errConfig, err)
		}
		if !parser.BoolFlag("json") {
			fmt.Println(DimStyle.Render("(not created yet)"))
		}
	}
	if parser.BoolFlag("json") {
		return NewJSONResponse("config", map[string]string{"path": path}).Print()
	}
	fmt.Println(path)
	return nil
}

func configInit(parser *ArgParser) error {
	path, err := config.ConfigPathTOML()
	if err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}
	if _, err := os.Stat(path); err == nil && !parser.BoolFlag("confirm") {
		return NewUsageError("config already exists at %s (use --confirm to overwrite)", path)
	}

	cfg := config.Default()
	if err := config.SaveTOML(cfg, path); err != nil {
		return fmt.Errorf("%w: writing %s: %v", errConfig, path, err)
	}

	if parser.BoolFlag("json") {
		return NewJSONResponse("config", map[string]string{"created": path}).Print()
	}
	fmt.Println(SuccessStyle.Render("✅ Wrote default configuration to " + path))
	return nil
}

func configKeys(parser *ArgParser) error {
	keys := config.Keys()
	if parser.BoolFlag("json") {
		return NewJSONResponse("config", keys).Print()
	}
	for _, k := range keys {
		fmt.Println("  " + k)
	}
	return nil
}
