package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/tintlab/tint/internal/palette"
)

// CliFlags holds the values of command-line flags, with Set markers so
// zero values can be told apart from "not given".
type CliFlags struct {
	ThemeName        string
	DefaultThemeName string
	NoColor          bool

	NoColorSet bool
}

// ResolvedConfig holds the final configuration after applying all priority
// rules, with per-field source metadata for debugging.
type ResolvedConfig struct {
	Theme        string
	DefaultTheme string
	NoColor      bool

	ThemeSource   string // "cli", "env", "file", "default"
	NoColorSource string // "cli", "env", "file", "default"
}

// ResolveConfig resolves configuration from all sources. This is the single
// source of truth for config resolution in the demo.
func ResolveConfig(cliFlags CliFlags) (*ResolvedConfig, error) {
	appCfg := LoadConfig()

	resolved := &ResolvedConfig{
		Theme:         appCfg.Theme,
		DefaultTheme:  appCfg.DefaultTheme,
		NoColor:       appCfg.NoColor,
		ThemeSource:   "file",
		NoColorSource: "file",
	}

	// Theme: CLI > env > file > default.
	switch {
	case cliFlags.ThemeName != "":
		resolved.Theme = cliFlags.ThemeName
		resolved.ThemeSource = "cli"
	case os.Getenv("SWATCH_THEME") != "":
		resolved.Theme = os.Getenv("SWATCH_THEME")
		resolved.ThemeSource = "env"
	}

	if cliFlags.DefaultThemeName != "" {
		resolved.DefaultTheme = cliFlags.DefaultThemeName
	}

	// NoColor: CLI > env > file > default.
	if cliFlags.NoColorSet {
		resolved.NoColor = cliFlags.NoColor
		resolved.NoColorSource = "cli"
	} else if envNoColor := getEnvBool("SWATCH_NO_COLOR", "NO_COLOR"); envNoColor != nil {
		resolved.NoColor = *envNoColor
		resolved.NoColorSource = "env"
	}

	if err := validate(resolved); err != nil {
		return nil, err
	}

	if os.Getenv("SWATCH_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "[DEBUG ResolveConfig] theme=%s(%s) default=%s no_color=%t(%s)\n",
			resolved.Theme, resolved.ThemeSource, resolved.DefaultTheme, resolved.NoColor, resolved.NoColorSource)
	}
	return resolved, nil
}

func validate(cfg *ResolvedConfig) error {
	if _, ok := palette.ByName(cfg.Theme); !ok {
		return unknownThemeError(cfg.Theme)
	}
	if _, ok := palette.ByName(cfg.DefaultTheme); !ok {
		return unknownThemeError(cfg.DefaultTheme)
	}
	return nil
}

// unknownThemeError builds an error naming the closest built-in palettes.
func unknownThemeError(name string) error {
	names := palette.Names()
	matches := fuzzy.Find(name, names)

	var suggestions []string
	for i, m := range matches {
		if i == 2 {
			break
		}
		suggestions = append(suggestions, names[m.Index])
	}
	if len(suggestions) == 0 {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(names, ", "))
	}
	return fmt.Errorf("unknown theme %q (did you mean %s?)", name, strings.Join(suggestions, " or "))
}

// getEnvBool reads a boolean from environment variables, trying multiple
// keys. Returns nil if none are set.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
			// NO_COLOR convention: any non-empty value means on.
			if key == "NO_COLOR" {
				t := true
				return &t
			}
		}
	}
	return nil
}
