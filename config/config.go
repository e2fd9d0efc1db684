// Package config loads a border and base-layer description from a YAML, TOML or JSON file,
// environment variables prefixed BOXFRAME_, and command-line flags, in viper's precedence order.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = "boxframe"
	envPrefix  = "BOXFRAME"
)

// File is the decoded configuration
type File struct {
	Border BorderFile `mapstructure:"border"`
	Layer  LayerFile  `mapstructure:"layer"`
	Log    LogFile    `mapstructure:"log"`
}

// BorderFile mirrors the border builder
type BorderFile struct {
	Visible bool   `mapstructure:"visible"`
	Padding int    `mapstructure:"padding"`
	Width   int    `mapstructure:"width"`
	Type    string `mapstructure:"type"`
	// Colors lists one "#RRGGBB" per layer, outermost first
	Colors []string `mapstructure:"colors"`
	// Gradient is a [from, to] pair blended across all layers; ignored when Colors is set
	Gradient []string `mapstructure:"gradient"`
	// Omni is a single glyph drawn on the outer perimeter instead of the glyph lists
	Omni   string    `mapstructure:"omni"`
	Glyphs GlyphFile `mapstructure:"glyphs"`
}

// GlyphFile holds per-layer glyphs; each string's runes are the glyphs for layers 0, 1, ...
type GlyphFile struct {
	Top         string `mapstructure:"top"`
	Bottom      string `mapstructure:"bottom"`
	Left        string `mapstructure:"left"`
	Right       string `mapstructure:"right"`
	Horizontal  string `mapstructure:"horizontal"`
	Vertical    string `mapstructure:"vertical"`
	TopLeft     string `mapstructure:"top_left"`
	TopRight    string `mapstructure:"top_right"`
	BottomLeft  string `mapstructure:"bottom_left"`
	BottomRight string `mapstructure:"bottom_right"`
}

// LayerFile configures the base layer around the border
type LayerFile struct {
	Title      string     `mapstructure:"title"`
	Alignment  string     `mapstructure:"alignment"`
	Background string     `mapstructure:"background"`
	Foreground string     `mapstructure:"foreground"`
	Fill       bool       `mapstructure:"fill"`
	Bold       bool       `mapstructure:"bold"`
	Italic     bool       `mapstructure:"italic"`
	Underline  bool       `mapstructure:"underline"`
	Debug      bool       `mapstructure:"debug"`
	Cursor     CursorFile `mapstructure:"cursor"`
}

// CursorFile is the cursor state while the border is shown
type CursorFile struct {
	Visible bool `mapstructure:"visible"`
	X       int  `mapstructure:"x"`
	Y       int  `mapstructure:"y"`
}

// LogFile configures logging
type LogFile struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// flagKeys maps command-line flag names to config keys
var flagKeys = map[string]string{
	"padding":    "border.padding",
	"width":      "border.width",
	"type":       "border.type",
	"color":      "border.colors",
	"gradient":   "border.gradient",
	"char":       "border.omni",
	"hide":       "border.hidden",
	"title":      "layer.title",
	"align":      "layer.alignment",
	"fill":       "layer.fill",
	"debug":      "layer.debug",
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("border.visible", true)
	v.SetDefault("border.padding", 1)
	v.SetDefault("border.width", 1)
	v.SetDefault("border.type", "solid")
	v.SetDefault("border.colors", []string{})
	v.SetDefault("border.gradient", []string{})
	v.SetDefault("border.omni", "")
	v.SetDefault("border.hidden", false)

	v.SetDefault("layer.title", "")
	v.SetDefault("layer.alignment", "left")
	v.SetDefault("layer.background", "#000000")
	v.SetDefault("layer.foreground", "#FFFFFF")
	v.SetDefault("layer.fill", false)
	v.SetDefault("layer.debug", false)
	v.SetDefault("layer.cursor.visible", false)
	v.SetDefault("layer.cursor.x", 0)
	v.SetDefault("layer.cursor.y", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
}

// Loader reads configuration; keep it to re-read the same sources after a file change
type Loader struct {
	v    *viper.Viper
	path string
}

// NewLoader prepares viper for path, or for boxframe.{yaml,toml,json} in
// $HOME/.config/boxframe and the working directory when path is empty.
// Flags that were set on the command line override file and environment values.
func NewLoader(path string, flags *pflag.FlagSet) (*Loader, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath("$HOME/.config/boxframe")
		v.AddConfigPath(".")
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	return &Loader{v: v, path: path}, nil
}

// Load reads the sources and decodes them.
// A missing file is an error only when the path was given explicitly.
func (l *Loader) Load() (*File, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var f File
	if err := l.v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if l.v.GetBool("border.hidden") {
		f.Border.Visible = false
	}
	return &f, nil
}

// Path returns the config file in use, empty when running on defaults
func (l *Loader) Path() string {
	return l.v.ConfigFileUsed()
}

// Load is NewLoader followed by Loader.Load
func Load(path string, flags *pflag.FlagSet) (*File, error) {
	l, err := NewLoader(path, flags)
	if err != nil {
		return nil, err
	}
	return l.Load()
}
