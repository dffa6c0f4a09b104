package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/chatterm/terminal"
	"github.com/lixenwraith/chatterm/terminal/tui"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the chatterm settings file
type Config struct {
	Servers    []Server `yaml:"servers"`
	Layout     string   `yaml:"layout"`      // compact or aligned
	Scrollback int      `yaml:"scrollback"`  // Messages kept per tab, 0 = unlimited
	StatusLine bool     `yaml:"status_line"` // Topic and nicks above the input on channel tabs
	Bell       bool     `yaml:"bell"`        // Chime on highlights and private messages
	Colors     Colors   `yaml:"colors"`
}

// Server is a tab group opened at startup
type Server struct {
	Name     string   `yaml:"name"`
	Nick     string   `yaml:"nick"`
	Channels []string `yaml:"channels"`
}

// Colors overrides theme foregrounds with "#rrggbb" values, empty keeps the default
type Colors struct {
	Timestamp    string   `yaml:"timestamp,omitempty"`
	Topic        string   `yaml:"topic,omitempty"`
	Join         string   `yaml:"join,omitempty"`
	Part         string   `yaml:"part,omitempty"`
	NickChange   string   `yaml:"nick_change,omitempty"`
	ErrMsg       string   `yaml:"err_msg,omitempty"`
	Highlight    string   `yaml:"highlight,omitempty"`
	TabActive    string   `yaml:"tab_active,omitempty"`
	TabNormal    string   `yaml:"tab_normal,omitempty"`
	TabNewMsg    string   `yaml:"tab_new_msg,omitempty"`
	TabHighlight string   `yaml:"tab_highlight,omitempty"`
	NickColors   []string `yaml:"nick_colors,omitempty"`
}

// Default returns the settings used when no file exists
func Default() *Config {
	return &Config{
		Layout:     "compact",
		Scrollback: 10000,
	}
}

// Load reads and validates path over the defaults
// A missing file yields the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// Validate reports the first problem wrapped in ErrInvalid
func (c *Config) Validate() error {
	switch c.Layout {
	case "", "compact", "aligned":
	default:
		return fmt.Errorf("%w: layout %q, want compact or aligned", ErrInvalid, c.Layout)
	}
	if c.Scrollback < 0 {
		return fmt.Errorf("%w: scrollback %d is negative", ErrInvalid, c.Scrollback)
	}

	seen := make(map[string]bool, len(c.Servers))
	for i, s := range c.Servers {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("%w: servers[%d] has no name", ErrInvalid, i)
		}
		if seen[name] {
			return fmt.Errorf("%w: server %q listed twice", ErrInvalid, name)
		}
		seen[name] = true
		if strings.ContainsAny(s.Nick, " :") {
			return fmt.Errorf("%w: server %q nick %q contains space or colon", ErrInvalid, name, s.Nick)
		}
		for _, ch := range s.Channels {
			if strings.TrimSpace(ch) == "" || strings.ContainsAny(ch, " ,") {
				return fmt.Errorf("%w: server %q channel %q", ErrInvalid, name, ch)
			}
		}
	}

	if _, err := c.Theme(tui.DefaultTheme); err != nil {
		return err
	}
	return nil
}

// Theme applies the color overrides to base
func (c *Config) Theme(base tui.Theme) (tui.Theme, error) {
	t := base
	overrides := []struct {
		name  string
		value string
		style *tui.Style
	}{
		{"timestamp", c.Colors.Timestamp, &t.Timestamp},
		{"topic", c.Colors.Topic, &t.Topic},
		{"join", c.Colors.Join, &t.Join},
		{"part", c.Colors.Part, &t.Part},
		{"nick_change", c.Colors.NickChange, &t.NickChange},
		{"err_msg", c.Colors.ErrMsg, &t.ErrMsg},
		{"highlight", c.Colors.Highlight, &t.Highlight},
		{"tab_active", c.Colors.TabActive, &t.TabActive},
		{"tab_normal", c.Colors.TabNormal, &t.TabNormal},
		{"tab_new_msg", c.Colors.TabNewMsg, &t.TabNewMsg},
		{"tab_highlight", c.Colors.TabHighlight, &t.TabHighlight},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		rgb, err := terminal.ParseHex(o.value)
		if err != nil {
			return base, fmt.Errorf("%w: colors.%s: %w", ErrInvalid, o.name, err)
		}
		o.style.Fg = rgb
		o.style.Attr &^= terminal.AttrDefaultFg
	}

	if len(c.Colors.NickColors) > 0 {
		t.NickColors = make([]terminal.RGB, 0, len(c.Colors.NickColors))
		for i, s := range c.Colors.NickColors {
			rgb, err := terminal.ParseHex(s)
			if err != nil {
				return base, fmt.Errorf("%w: colors.nick_colors[%d]: %w", ErrInvalid, i, err)
			}
			t.NickColors = append(t.NickColors, rgb)
		}
	}
	return t, nil
}
