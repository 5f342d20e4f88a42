package addqueries_test

import (
	"log/slog"
	"testing"

	aq "github.com/juked-social/textract-mail-scanning"

	"gotest.tools/v3/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("QUERY_PRESET", "")
	t.Setenv("QUERY_PRESET_FILE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("HTTP_ADDR", "")

	cfg := aq.LoadConfig()
	assert.Equal(t, cfg.Preset, aq.PresetShippingLabel)
	assert.Equal(t, cfg.PresetFile, "")
	assert.Equal(t, cfg.LogLevel, aq.LevelInfo)
	assert.Equal(t, cfg.HTTPAddr, aq.DefaultHTTPAddr)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("QUERY_PRESET", aq.PresetSenderIdentity)
	t.Setenv("QUERY_PRESET_FILE", "testdata/presets.yaml")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("HTTP_ADDR", ":9090")

	cfg := aq.LoadConfig()
	assert.Equal(t, cfg.Preset, aq.PresetSenderIdentity)
	assert.Equal(t, cfg.PresetFile, "testdata/presets.yaml")
	assert.Equal(t, cfg.LogLevel, aq.LevelDebug)
	assert.Equal(t, cfg.HTTPAddr, ":9090")

	augmenter, err := cfg.Augmenter()
	assert.NilError(t, err)
	assert.Equal(t, augmenter.Preset.Name(), aq.PresetSenderIdentity)
}

func TestConfigAugmenterUnknownPreset(t *testing.T) {
	cfg := aq.Config{Preset: "invoice"}
	_, err := cfg.Augmenter()
	assert.ErrorIs(t, err, aq.ErrUnknownPreset)
}

func TestConfigRegistryWithPresetFile(t *testing.T) {
	cfg := aq.Config{Preset: "customs-form", PresetFile: "testdata/presets.yaml"}
	augmenter, err := cfg.Augmenter()
	assert.NilError(t, err)
	assert.DeepEqual(t, augmenter.Preset.Queries(), []aq.QueryDefinition{
		{Text: "What is the declared value?", Alias: "DeclaredValue"},
		{Text: "What is the country of origin?", Alias: "OriginCountry"},
	})
}

func TestLoadPresetFile(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    int
		wantErr error
	}{
		{name: "custom presets", path: "testdata/presets.yaml", want: 1},
		{name: "empty file", path: "testdata/presets_empty.yaml", want: 0},
		{name: "duplicate alias", path: "testdata/presets_duplicate_alias.yaml", wantErr: aq.ErrInvalidPreset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sets, err := aq.LoadPresetFile(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, len(sets), tt.want)
		})
	}
}

func TestLoadPresetFileErrors(t *testing.T) {
	_, err := aq.LoadPresetFile("testdata/does-not-exist.yaml")
	assert.ErrorContains(t, err, "open preset file")

	cfg := aq.Config{Preset: aq.PresetShippingLabel, PresetFile: "testdata/presets_builtin_name.yaml"}
	_, err = cfg.Registry()
	assert.ErrorIs(t, err, aq.ErrInvalidPreset)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", aq.LevelInfo},
		{"debug", aq.LevelDebug},
		{" Warn ", aq.LevelWarn},
		{"warning", aq.LevelWarn},
		{"ERROR", aq.LevelError},
		{"verbose", aq.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, aq.ParseLevel(tt.in), tt.want)
		})
	}
}
