//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultTOML_MatchesDefault(t *testing.T) {
	cfg, err := Load(writeConfig(t, DefaultTOML))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Volume, cfg.Volume)
	assert.Equal(t, def.UI, cfg.UI)
	assert.Equal(t, def.Palette(), cfg.Palette())
	assert.Equal(t, def.Extensions(), cfg.Extensions())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[ui]\nshow_full_path = true\n"))
	require.NoError(t, err)

	def := Default()
	assert.True(t, cfg.UI.ShowFullPath)
	assert.Equal(t, def.Volume, cfg.Volume)
	assert.Equal(t, def.Palette(), cfg.Palette())
}

func TestLoad_MergesKeyByKey(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[volume]
step = 0.1

[colors]
playing_bg = "#ff0000"
`))
	require.NoError(t, err)

	assert.InDelta(t, 0.1, cfg.Volume.Step, 1e-9)
	assert.InDelta(t, 0.80, cfg.Volume.Default, 1e-9)
	assert.InDelta(t, 1.0, cfg.Volume.Max, 1e-9)

	p := cfg.Palette()
	assert.Equal(t, "#ff0000", p.PlayingBG)
	assert.Equal(t, "#b7bdf8", p.SelectionBG)
	assert.Equal(t, "0", p.SelectionFG)
}

func TestLoad_ColorFormSwaps(t *testing.T) {
	tests := []struct {
		name    string
		content string
		get     func(Palette) string
		want    string
	}{
		{"selection_fg triple over name", "selection_fg = [10, 20, 30]", func(p Palette) string { return p.SelectionFG }, "#0a141e"},
		{"selection_fg hex over name", `selection_fg = "#ffffff"`, func(p Palette) string { return p.SelectionFG }, "#ffffff"},
		{"selection_bg name over triple", `selection_bg = "magenta"`, func(p Palette) string { return p.SelectionBG }, "5"},
		{"selection_bg hex over triple", `selection_bg = "#00ff00"`, func(p Palette) string { return p.SelectionBG }, "#00ff00"},
		{"playing_fg triple over name", "playing_fg = [255, 255, 255]", func(p Palette) string { return p.PlayingFG }, "#ffffff"},
		{"playing_fg name over name", `playing_fg = "bright_white"`, func(p Palette) string { return p.PlayingFG }, "15"},
		{"playing_bg hex over triple", `playing_bg = "#ff0000"`, func(p Palette) string { return p.PlayingBG }, "#ff0000"},
		{"playing_bg name over triple", `playing_bg = "blue"`, func(p Palette) string { return p.PlayingBG }, "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, "[colors]\n"+tt.content+"\n"))
			require.NoError(t, err)

			got := cfg.Palette()
			assert.Equal(t, tt.want, tt.get(got))

			// the other three keys keep their defaults
			def := paletteFields(Default().Palette())
			same := 0
			for i, v := range paletteFields(got) {
				if v == def[i] {
					same++
				}
			}
			assert.Equal(t, 3, same)
		})
	}
}

func paletteFields(p Palette) []string {
	return []string{p.SelectionFG, p.SelectionBG, p.PlayingFG, p.PlayingBG}
}

func TestLoad_IntegerVolumes(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[volume]\nmax = 1\ndefault = 1\n"))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cfg.Volume.Default, 1e-9)
}

func TestLoad_Extensions(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[library]\nextensions = [\"MP3\", \" \", \"wav\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{".mp3", ".wav"}, cfg.Extensions())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax error", "[volume\ndefault = "},
		{"min above max", "[volume]\nmin = 0.9\nmax = 0.1\ndefault = 0.5\n"},
		{"max above one", "[volume]\nmax = 2.0\n"},
		{"negative min", "[volume]\nmin = -0.5\n"},
		{"default outside bounds", "[volume]\ndefault = 0.1\nmin = 0.5\n"},
		{"zero step", "[volume]\nstep = 0\n"},
		{"unknown color name", "[colors]\nselection_fg = \"chartreuse-ish\"\n"},
		{"bad hex", "[colors]\nselection_fg = \"#zzzzzz\"\n"},
		{"short rgb", "[colors]\nplaying_bg = [1, 2]\n"},
		{"rgb out of range", "[colors]\nplaying_bg = [1, 2, 300]\n"},
		{"wrong type", "[colors]\nplaying_bg = true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadOrCreate_MissingFileIsCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := LoadOrCreate(path, zerolog.Nop())

	assert.Equal(t, Default().Volume, cfg.Volume)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTOML, string(data))
}

func TestLoadOrCreate_MalformedFileFallsBack(t *testing.T) {
	const broken = "[volume]\nstep = 0.2\n[colors\n"
	path := writeConfig(t, broken)

	cfg := LoadOrCreate(path, zerolog.Nop())

	assert.Equal(t, Default().Volume, cfg.Volume, "no partial merge from a broken file")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, broken, string(data), "file left untouched")
}

func TestLoadOrCreate_ValidFile(t *testing.T) {
	path := writeConfig(t, "[ui]\nshow_full_path = true\n")

	cfg := LoadOrCreate(path, zerolog.Nop())

	assert.True(t, cfg.UI.ShowFullPath)
}

func TestResolveColor(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
	}{
		{"named", "black", "0"},
		{"named mixed case", "Bright_Blue", "12"},
		{"grey alias", "grey", "8"},
		{"hex", "#B7BDF8", "#b7bdf8"},
		{"rgb ints", []any{183, 189, 248}, "#b7bdf8"},
		{"rgb int64 from toml", []any{int64(200), int64(160), int64(220)}, "#c8a0dc"},
		{"rgb whole floats", []any{255.0, 0.0, 0.0}, "#ff0000"},
		{"typed int slice", []int64{0, 0, 255}, "#0000ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveColor(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveColor_Errors(t *testing.T) {
	for _, raw := range []any{nil, "", "mauve", "#12", []any{1.5, 2, 3}, []any{"a", "b", "c"}, 42} {
		_, err := resolveColor(raw)
		assert.Error(t, err, "%v", raw)
	}
}

func TestPalette_FallsBackOnBadColors(t *testing.T) {
	cfg := Default()
	cfg.Colors.PlayingBG = "nope"

	assert.Equal(t, Default().Palette(), cfg.Palette())
}
