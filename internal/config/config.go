package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fractanim/internal/anim"
)

const (
	DefaultTitle         = "Mandelbrot fractal"
	DefaultFPS           = 60
	DefaultAnimationTime = anim.DefaultPeriod
	DefaultFontPath      = "arial.ttf"
	DefaultFontSize      = 16
	DefaultTextColor     = "#00ff00"
	DefaultToggleKey     = "T"
	DefaultStartMode     = "max"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config covers presentation and timing only; resolution and iteration budget
// are fixed in package fractal.
type Config struct {
	Title         string  `yaml:"title"`
	FPS           int     `yaml:"fps"`
	AnimationTime float64 `yaml:"animation_time"`
	FontPath      string  `yaml:"font_path"`
	FontSize      int     `yaml:"font_size"`
	TextColor     string  `yaml:"text_color"`
	ToggleKey     string  `yaml:"toggle_key"`
	StartMode     string  `yaml:"start_mode"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:         DefaultTitle,
		FPS:           DefaultFPS,
		AnimationTime: DefaultAnimationTime,
		FontPath:      DefaultFontPath,
		FontSize:      DefaultFontSize,
		TextColor:     DefaultTextColor,
		ToggleKey:     DefaultToggleKey,
		StartMode:     DefaultStartMode,
	}
}

// Load reads a YAML file on top of DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.AnimationTime <= 0 {
		return fmt.Errorf("%w: animation_time must be positive, got %g", ErrInvalidConfig, c.AnimationTime)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("%w: font_size must be positive, got %d", ErrInvalidConfig, c.FontSize)
	}
	if _, err := parseHex(c.TextColor); err != nil {
		return err
	}
	if _, err := c.Key(); err != nil {
		return err
	}
	if _, err := anim.ParseMode(c.StartMode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Key returns the toggle key as an upper-case letter or digit.
func (c *Config) Key() (rune, error) {
	r := []rune(strings.TrimSpace(c.ToggleKey))
	if len(r) != 1 || !(unicode.IsLetter(r[0]) || unicode.IsDigit(r[0])) || r[0] > unicode.MaxASCII {
		return 0, fmt.Errorf("%w: toggle_key must be one ASCII letter or digit, got %q", ErrInvalidConfig, c.ToggleKey)
	}
	return unicode.ToUpper(r[0]), nil
}

func (c *Config) Mode() anim.Mode {
	m, _ := anim.ParseMode(c.StartMode)
	return m
}

func (c *Config) TextRGBA() color.RGBA {
	col, err := parseHex(c.TextColor)
	if err != nil {
		return color.RGBA{G: 255, A: 255}
	}
	return col
}

func parseHex(s string) (color.RGBA, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%w: text_color must be #rrggbb, got %q", ErrInvalidConfig, s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("%w: text_color %q: %v", ErrInvalidConfig, s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
