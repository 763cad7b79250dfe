package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/llehouerou/looper/internal/catalog"
	"github.com/llehouerou/looper/internal/errmsg"
)

const (
	appName  = "looper"
	fileName = "config.toml"
)

// ErrInvalid marks a config file that was read but cannot be used.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Volume  VolumeConfig  `koanf:"volume"`
	Colors  Colors        `koanf:"colors"`
	UI      UIConfig      `koanf:"ui"`
	Library LibraryConfig `koanf:"library"`
}

// VolumeConfig holds output gain settings, all in [0, 1].
type VolumeConfig struct {
	Default float64 `koanf:"default"`
	Step    float64 `koanf:"step"`
	Min     float64 `koanf:"min"`
	Max     float64 `koanf:"max"`
}

type UIConfig struct {
	ShowFullPath bool `koanf:"show_full_path"` // fallback name is the full path instead of the stem
}

type LibraryConfig struct {
	Extensions []string `koanf:"extensions"` // e.g. [".mp3", "flac"]
}

// DefaultTOML is written when no config file exists.
const DefaultTOML = `# looper configuration

[volume]
default = 0.80
step    = 0.05
min     = 0.0
max     = 1.0

# Colors are ANSI names ("black", "bright_blue"), "#rrggbb" strings
# or [r, g, b] triples.
[colors]
selection_fg = "black"
selection_bg = [183, 189, 248]
playing_fg   = "black"
playing_bg   = [200, 160, 220]

[ui]
show_full_path = false

[library]
extensions = [".mp3", ".wav", ".ogg", ".flac"]
`

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Volume: VolumeConfig{Default: 0.80, Step: 0.05, Min: 0, Max: 1},
		Colors: Colors{
			SelectionFG: "black",
			SelectionBG: []any{183, 189, 248},
			PlayingFG:   "black",
			PlayingBG:   []any{200, 160, 220},
		},
	}
}

// Extensions returns the configured extensions, or the built-in set.
func (c *Config) Extensions() []string {
	if len(c.Library.Extensions) == 0 {
		return catalog.DefaultExtensions
	}
	return catalog.NormalizeExtensions(c.Library.Extensions)
}

// DefaultPath returns $XDG_CONFIG_HOME/looper/config.toml, creating the
// directory if needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(appName, fileName))
}

// Load reads path and merges it over Default key by key.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	// Colors decode into empty interfaces so a name may replace a triple
	// and the other way round; unset ones are filled afterwards.
	cfg := Default()
	cfg.Colors = Colors{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	cfg.Colors = cfg.Colors.withDefaults(Default().Colors)
	cfg.Library.Extensions = cleanExtensions(cfg.Library.Extensions)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg, nil
}

// WriteDefault writes DefaultTOML to path, creating parent directories.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(DefaultTOML), 0o644)
}

// LoadOrCreate never fails: a missing file is created with defaults and a
// broken one is reported and ignored. Either way the session can start.
func LoadOrCreate(path string, log zerolog.Logger) *Config {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			log.Warn().Err(err).Msg("cannot resolve config directory, using defaults")
			return Default()
		}
		path = p
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := WriteDefault(path); err != nil {
			log.Warn().Str("path", path).Msg(errmsg.Format(errmsg.OpConfigCreate, err) + ", using defaults")
		} else {
			log.Info().Str("path", path).Msg("created default config")
		}
		return Default()
	}

	cfg, err := Load(path)
	if err != nil {
		log.Error().Str("path", path).Msg(errmsg.Format(errmsg.OpConfigLoad, err) + ", using defaults")
		return Default()
	}
	log.Debug().Str("path", path).Msg("loaded config")
	return cfg
}

func (c *Config) validate() error {
	v := c.Volume
	switch {
	case v.Min < 0 || v.Max > 1:
		return fmt.Errorf("volume bounds must be within [0, 1], got [%g, %g]", v.Min, v.Max)
	case v.Min > v.Max:
		return fmt.Errorf("volume min %g is above max %g", v.Min, v.Max)
	case v.Default < v.Min || v.Default > v.Max:
		return fmt.Errorf("volume default %g is outside [%g, %g]", v.Default, v.Min, v.Max)
	case v.Step <= 0:
		return fmt.Errorf("volume step must be positive, got %g", v.Step)
	}
	if _, err := c.Colors.Resolve(); err != nil {
		return err
	}
	return nil
}

func cleanExtensions(exts []string) []string {
	var out []string
	for _, e := range exts {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}
