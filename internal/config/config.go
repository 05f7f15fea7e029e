package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppConfig represents the demo's configuration as read from .swatch.yaml.
type AppConfig struct {
	Theme        string `yaml:"theme,omitempty"`
	DefaultTheme string `yaml:"default_theme,omitempty"`
	NoColor      bool   `yaml:"no_color"`
}

// Defaults.
const (
	DefaultThemeName        = "dark"
	DefaultDefaultThemeName = "dark"
)

// LoadConfig loads .swatch.yaml, falling back to defaults when the file is
// missing or malformed. A bad config file degrades with a warning; it never
// aborts the program.
func LoadConfig() *AppConfig {
	appCfg := &AppConfig{
		Theme:        DefaultThemeName,
		DefaultTheme: DefaultDefaultThemeName,
	}

	configPath := getConfigPath()
	if configPath == "" {
		return appCfg
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v. Using defaults.\n", configPath, err)
		}
		return appCfg
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error unmarshalling config file %s: %v. Using defaults.\n", configPath, err)
		return appCfg
	}

	if fileCfg.Theme != "" {
		appCfg.Theme = fileCfg.Theme
	}
	if fileCfg.DefaultTheme != "" {
		appCfg.DefaultTheme = fileCfg.DefaultTheme
	}
	appCfg.NoColor = fileCfg.NoColor

	if os.Getenv("SWATCH_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "[DEBUG LoadConfig] Loaded %s: theme=%s default=%s no_color=%t\n",
			configPath, appCfg.Theme, appCfg.DefaultTheme, appCfg.NoColor)
	}
	return appCfg
}

// getConfigPath tries the local directory first, then the XDG user config
// directory.
func getConfigPath() string {
	localPath := ".swatch.yaml"
	if _, err := os.Stat(localPath); err == nil {
		return localPath
	}

	configHome, err := os.UserConfigDir()
	if err == nil && configHome != "" && configHome != "/" {
		xdgPath := filepath.Join(configHome, "swatch", ".swatch.yaml")
		if _, errStat := os.Stat(xdgPath); errStat == nil {
			return xdgPath
		}
	}
	return ""
}
