// Package config handles configuration loading and resolution for the
// swatch demo.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (-theme, -default-theme, -no-color)
//  2. Environment variables (SWATCH_THEME, SWATCH_NO_COLOR, NO_COLOR)
//  3. YAML config file (.swatch.yaml in the local directory or
//     ~/.config/swatch/.swatch.yaml)
//  4. Hardcoded defaults
//
// Only palette names travel through configuration. Theme maps themselves
// are code, never serialized.
package config
