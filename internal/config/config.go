// Package config loads simulator settings from flags, SLOWTIME_* variables and
// an optional slowtime.toml, in that order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	apperrors "slowtime/internal/errors"
	"slowtime/internal/face"
	"slowtime/internal/gfx"
)

const (
	EnvPrefix  = "SLOWTIME"
	ConfigName = "slowtime"
)

type Config struct {
	Face       string  `mapstructure:"face"`
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	Color      bool    `mapstructure:"color"`
	Speed      float64 `mapstructure:"speed"`
	Start      string  `mapstructure:"start"`
	StepGoal   int     `mapstructure:"step_goal"`
	TrackWidth int     `mapstructure:"track_width"`
	RingWidth  int     `mapstructure:"ring_width"`
	Backend    string  `mapstructure:"backend"`

	Headless bool   `mapstructure:"headless"`
	Ticks    uint64 `mapstructure:"ticks"`
	Hz       int    `mapstructure:"hz"`
	TUI      bool   `mapstructure:"tui"`

	Debug   bool `mapstructure:"debug"`
	Verbose bool `mapstructure:"verbose"`

	// File is the config file that was read, empty if none.
	File string `mapstructure:"-"`
}

// Defaults match the original 144x168 watch.
func Defaults() Config {
	return Config{
		Face:     "slow",
		Width:    144,
		Height:   168,
		Color:    true,
		Speed:    1,
		StepGoal: 10000,
		Backend:  string(gfx.DefaultBackend),
		Hz:       30,
	}
}

// flag name -> config key
var flagKeys = map[string]string{
	"face":        "face",
	"width":       "width",
	"height":      "height",
	"color":       "color",
	"speed":       "speed",
	"start":       "start",
	"step-goal":   "step_goal",
	"track-width": "track_width",
	"ring-width":  "ring_width",
	"backend":     "backend",
	"headless":    "headless",
	"ticks":       "ticks",
	"hz":          "hz",
	"tui":         "tui",
	"debug":       "debug",
	"verbose":     "verbose",
}

// Flags returns the flag set Load understands.
func Flags(name string) *pflag.FlagSet {
	d := Defaults()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "Path to a slowtime.toml config file")
	fs.String("face", d.Face, "Face preset: "+strings.Join(face.PresetNames(), ", "))
	fs.Int("width", d.Width, "Display width in pixels")
	fs.Int("height", d.Height, "Display height in pixels")
	fs.Bool("color", d.Color, "Color display (false renders black and white)")
	fs.Float64("speed", d.Speed, "Simulated clock speed multiplier")
	fs.String("start", d.Start, "Simulated start time as HH:MM (default now)")
	fs.Int("step-goal", d.StepGoal, "Daily step goal for the step ring")
	fs.Int("track-width", d.TrackWidth, "Override the preset's track width")
	fs.Int("ring-width", d.RingWidth, "Override the preset's ring width")
	fs.String("backend", d.Backend, "Rasterizer: "+strings.Join(backendNames(), ", "))
	fs.Bool("headless", d.Headless, "Run without a window")
	fs.Uint64("ticks", d.Ticks, "Stop after this many headless steps (0 runs forever)")
	fs.Int("hz", d.Hz, "Headless and terminal step rate")
	fs.Bool("tui", d.TUI, "Show the face in the terminal")
	fs.Bool("debug", d.Debug, "Enable debug logging")
	fs.Bool("verbose", d.Verbose, "Enable verbose logging")
	fs.Bool("version", false, "Print the version and exit")
	return fs
}

// Load parses args into fs, then merges the config file and environment.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidConfig, err)
	}

	v := viper.New()
	d := Defaults()
	v.SetDefault("face", d.Face)
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("color", d.Color)
	v.SetDefault("speed", d.Speed)
	v.SetDefault("start", d.Start)
	v.SetDefault("step_goal", d.StepGoal)
	v.SetDefault("track_width", d.TrackWidth)
	v.SetDefault("ring_width", d.RingWidth)
	v.SetDefault("backend", d.Backend)
	v.SetDefault("headless", d.Headless)
	v.SetDefault("ticks", d.Ticks)
	v.SetDefault("hz", d.Hz)
	v.SetDefault("tui", d.TUI)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("verbose", d.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigType("toml")
	path, _ := fs.GetString("config")
	if path == "" {
		path = v.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultConfigDir())
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, apperrors.Wrap(apperrors.ErrInvalidConfig, fmt.Errorf("failed to read config file: %w", err))
		}
	}

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInvalidConfig, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidConfig, fmt.Errorf("failed to unmarshal config: %w", err))
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the simulator cannot run with.
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return apperrors.New(apperrors.ErrInvalidConfig).WithDetail(fmt.Sprintf(format, args...))
	}
	if _, err := face.Preset(c.Face); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return invalid("display %dx%d", c.Width, c.Height)
	}
	if c.Speed <= 0 {
		return invalid("speed %v", c.Speed)
	}
	if c.StepGoal <= 0 {
		return invalid("step_goal %d", c.StepGoal)
	}
	if c.TrackWidth < 0 || c.RingWidth < 0 {
		return invalid("track_width %d, ring_width %d", c.TrackWidth, c.RingWidth)
	}
	if _, err := gfx.ParseBackend(c.Backend); err != nil {
		return err
	}
	if c.Hz <= 0 {
		return invalid("hz %d", c.Hz)
	}
	if _, err := c.StartTime(time.Now()); err != nil {
		return err
	}
	return nil
}

// Options resolves the face preset with any width overrides applied.
func (c *Config) Options() (face.Options, error) {
	opts, err := face.Preset(c.Face)
	if err != nil {
		return face.Options{}, err
	}
	if c.TrackWidth > 0 {
		opts.TrackWidth = c.TrackWidth
	}
	if c.RingWidth > 0 {
		opts.RingWidth = c.RingWidth
	}
	return opts, nil
}

func backendNames() []string {
	var names []string
	for _, b := range gfx.Backends() {
		names = append(names, string(b))
	}
	return names
}

// StartTime places Start on the day of now. An empty Start returns the zero
// time, meaning "start at the real clock".
func (c *Config) StartTime(now time.Time) (time.Time, error) {
	if c.Start == "" {
		return time.Time{}, nil
	}
	hm, err := time.Parse("15:04", c.Start)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.ErrInvalidConfig, err).WithDetail("start " + c.Start)
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, hm.Hour(), hm.Minute(), 0, 0, now.Location()), nil
}
