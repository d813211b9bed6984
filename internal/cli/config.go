// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/arbor/render"
)

// Config is the on-disk configuration, decoded from TOML.
//
//	[log]
//	level = "debug"
//
//	[render]
//	indent = "  "
//	placeholder = "-"
//	color = true
//	format = "text"
//	max_depth = -1
type Config struct {
	Log    LogConfig    `toml:"log"`
	Render RenderConfig `toml:"render"`
}

// LogConfig selects the logger level: debug, info, warn or error.
type LogConfig struct {
	Level string `toml:"level"`
}

// RenderConfig holds the output settings shared by every command.
type RenderConfig struct {
	Indent      string `toml:"indent"`
	Placeholder string `toml:"placeholder"`
	Color       bool   `toml:"color"`
	Format      string `toml:"format"`
	MaxDepth    int    `toml:"max_depth"` // negative: no limit
	Output      string `toml:"-"`
	Stats       bool   `toml:"-"`
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Render: RenderConfig{
			Indent:      render.DefaultIndent,
			Placeholder: render.DefaultPlaceholder,
			Format:      formatText,
			MaxDepth:    -1,
		},
	}
}

// loadConfig returns the defaults overlaid with the TOML file at path.
// An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return validateFormat(c.Render.Format)
}

// validateFormat checks that f is one of validFormats.
func validateFormat(f string) error {
	if !lo.Contains(validFormats, f) {
		return fmt.Errorf("invalid format: %s (must be 'text', 'dot' or 'svg')", f)
	}
	return nil
}

// renderFlags mirrors RenderConfig for command-line binding.
type renderFlags struct {
	RenderConfig
}

func (f *renderFlags) bind(fs *pflag.FlagSet) {
	d := defaultConfig().Render
	fs.StringVarP(&f.Format, "format", "f", d.Format, "output format: text, dot, svg")
	fs.StringVarP(&f.Output, "output", "o", "", "output file (default stdout)")
	fs.StringVar(&f.Indent, "indent", d.Indent, "indentation unit per depth level (text)")
	fs.StringVar(&f.Placeholder, "placeholder", d.Placeholder, "label for absent payloads")
	fs.BoolVar(&f.Color, "color", false, "colour each depth level (text)")
	fs.IntVar(&f.MaxDepth, "max-depth", d.MaxDepth, "deepest level to print, negative for all (text)")
	fs.BoolVar(&f.Stats, "stats", false, "print node and level statistics to stderr")
}

// overlay returns base with every explicitly set flag applied on top.
func (f *renderFlags) overlay(fs *pflag.FlagSet, base RenderConfig) (RenderConfig, error) {
	out := base
	if fs.Changed("format") {
		out.Format = f.Format
	}
	if fs.Changed("indent") {
		out.Indent = f.Indent
	}
	if fs.Changed("placeholder") {
		out.Placeholder = f.Placeholder
	}
	if fs.Changed("color") {
		out.Color = f.Color
	}
	if fs.Changed("max-depth") {
		out.MaxDepth = f.MaxDepth
	}
	out.Output = f.Output
	out.Stats = f.Stats

	return out, validateFormat(out.Format)
}

// withConfig attaches the loaded configuration to ctx.
func withConfig(ctx context.Context, c Config) context.Context {
	return context.WithValue(ctx, configKey, c)
}

// configFromContext returns the attached configuration or the defaults.
func configFromContext(ctx context.Context) Config {
	if c, ok := ctx.Value(configKey).(Config); ok {
		return c
	}
	return defaultConfig()
}
