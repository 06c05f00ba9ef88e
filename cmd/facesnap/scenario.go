package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperrors "slowtime/internal/errors"
)

// Scenario is one face state to render. Nil Steps renders the face without
// step data; nil Link leaves the link state unknown.
type Scenario struct {
	Name     string `toml:"name" yaml:"name"`
	Face     string `toml:"face" yaml:"face"`
	Time     string `toml:"time" yaml:"time"`
	Date     string `toml:"date" yaml:"date"`
	Battery  *int   `toml:"battery" yaml:"battery"`
	Charging bool   `toml:"charging" yaml:"charging"`
	Steps    *int   `toml:"steps" yaml:"steps"`
	Link     *bool  `toml:"link" yaml:"link"`

	Width   int    `toml:"width" yaml:"width"`
	Height  int    `toml:"height" yaml:"height"`
	Mono    bool   `toml:"mono" yaml:"mono"`
	Scale   int    `toml:"scale" yaml:"scale"`
	Backend string `toml:"backend" yaml:"backend"`
	Output  string `toml:"output" yaml:"output"`
}

type tomlBatch struct {
	Scenario []Scenario `toml:"scenario"`
}

type yamlBatch struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads a batch file. The format follows the extension: .toml
// holds [[scenario]] tables, .yaml and .yml a scenarios list.
func LoadScenarios(path string) ([]Scenario, error) {
	var out []Scenario
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var b tomlBatch
		if _, err := toml.DecodeFile(path, &b); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidConfig, fmt.Errorf("failed to decode %s: %w", path, err))
		}
		out = b.Scenario
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidConfig, err)
		}
		var b yamlBatch
		if err := yaml.Unmarshal(data, &b); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidConfig, fmt.Errorf("failed to decode %s: %w", path, err))
		}
		out = b.Scenarios
	default:
		return nil, apperrors.New(apperrors.ErrInvalidConfig).WithDetail("unsupported batch file " + path)
	}
	if len(out) == 0 {
		return nil, apperrors.New(apperrors.ErrInvalidConfig).WithDetail("no scenarios in " + path)
	}
	for i := range out {
		if out[i].Name == "" {
			out[i].Name = fmt.Sprintf("scenario-%d", i+1)
		}
	}
	return out, nil
}

// withDefaults fills unset fields with the 144x168 slow face at full battery.
func (s Scenario) withDefaults() Scenario {
	if s.Face == "" {
		s.Face = "slow"
	}
	if s.Width <= 0 {
		s.Width = 144
	}
	if s.Height <= 0 {
		s.Height = 168
	}
	if s.Scale <= 0 {
		s.Scale = 1
	}
	if s.Battery == nil {
		full := 100
		s.Battery = &full
	}
	return s
}

// When resolves Time and Date. An empty Date means today.
func (s Scenario) When(now time.Time) (time.Time, error) {
	day := now
	if s.Date != "" {
		d, err := time.ParseInLocation(time.DateOnly, s.Date, now.Location())
		if err != nil {
			return time.Time{}, apperrors.Wrap(apperrors.ErrInvalidConfig, err).WithDetail("date " + s.Date)
		}
		day = d
	}
	if s.Time == "" {
		return time.Time{}, apperrors.New(apperrors.ErrMissingReading).WithDetail(s.Name)
	}
	hm, err := time.Parse("15:04", s.Time)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.ErrInvalidConfig, err).WithDetail("time " + s.Time)
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, hm.Hour(), hm.Minute(), 0, 0, now.Location()), nil
}
