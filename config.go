package addqueries

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v2"
)

const DefaultHTTPAddr = ":8080"

// Config is read from the function environment at cold start.
type Config struct {
	Preset     string
	PresetFile string
	LogLevel   slog.Level
	HTTPAddr   string
}

func LoadConfig() Config {
	cfg := Config{
		Preset:     os.Getenv("QUERY_PRESET"),
		PresetFile: os.Getenv("QUERY_PRESET_FILE"),
		LogLevel:   ParseLevel(os.Getenv("LOG_LEVEL")),
		HTTPAddr:   os.Getenv("HTTP_ADDR"),
	}
	if cfg.Preset == "" {
		cfg.Preset = PresetShippingLabel
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = DefaultHTTPAddr
	}
	return cfg
}

// Registry returns the built-in presets plus those from PresetFile, if set.
func (c Config) Registry() (*Registry, error) {
	if c.PresetFile == "" {
		return NewRegistry()
	}
	sets, err := LoadPresetFile(c.PresetFile)
	if err != nil {
		return nil, err
	}
	return NewRegistry(sets...)
}

// Augmenter resolves the configured preset.
func (c Config) Augmenter() (*Augmenter, error) {
	registry, err := c.Registry()
	if err != nil {
		return nil, err
	}
	preset, err := registry.Lookup(c.Preset)
	if err != nil {
		return nil, err
	}
	return NewAugmenter(preset), nil
}

type presetFile struct {
	Presets []struct {
		Name    string            `yaml:"name"`
		Queries []QueryDefinition `yaml:"queries"`
	} `yaml:"presets"`
}

// LoadPresetFile reads additional presets from a YAML file:
//
//	presets:
//	  - name: customs-form
//	    queries:
//	      - text: What is the declared value?
//	        alias: DeclaredValue
func LoadPresetFile(path string) ([]QuerySet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open preset file: %w", err)
	}
	defer file.Close()

	var pf presetFile
	decoder := yaml.NewDecoder(file)
	decoder.SetStrict(true)
	if err := decoder.Decode(&pf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode preset file %v: %w", path, err)
	}

	sets := make([]QuerySet, 0, len(pf.Presets))
	for _, p := range pf.Presets {
		set := NewQuerySet(p.Name, p.Queries...)
		if err := set.Validate(); err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	Logger.Debug("Preset file loaded", "path", path, "presets", len(sets))
	return sets, nil
}
