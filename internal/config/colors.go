package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Colors holds the raw highlight colors as read from TOML. Each value is a
// color name, a "#rrggbb" string or an [r, g, b] array.
type Colors struct {
	SelectionFG any `koanf:"selection_fg"`
	SelectionBG any `koanf:"selection_bg"`
	PlayingFG   any `koanf:"playing_fg"`
	PlayingBG   any `koanf:"playing_bg"`
}

// Palette holds resolved colors as lipgloss color strings: an ANSI index
// ("0".."15") or a hex value.
type Palette struct {
	SelectionFG string
	SelectionBG string
	PlayingFG   string
	PlayingBG   string
}

var ansiNames = map[string]int{
	"black":          0,
	"red":            1,
	"green":          2,
	"yellow":         3,
	"blue":           4,
	"magenta":        5,
	"cyan":           6,
	"white":          7,
	"bright_black":   8,
	"gray":           8,
	"grey":           8,
	"bright_red":     9,
	"bright_green":   10,
	"bright_yellow":  11,
	"bright_blue":    12,
	"bright_magenta": 13,
	"bright_cyan":    14,
	"bright_white":   15,
}

// Resolve converts every color or reports the first bad one.
func (c Colors) Resolve() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		raw  any
		dst  *string
	}{
		{"selection_fg", c.SelectionFG, &p.SelectionFG},
		{"selection_bg", c.SelectionBG, &p.SelectionBG},
		{"playing_fg", c.PlayingFG, &p.PlayingFG},
		{"playing_bg", c.PlayingBG, &p.PlayingBG},
	}
	for _, f := range fields {
		v, err := resolveColor(f.raw)
		if err != nil {
			return Palette{}, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = v
	}
	return p, nil
}

// withDefaults fills the colors the file left unset.
func (c Colors) withDefaults(d Colors) Colors {
	if c.SelectionFG == nil {
		c.SelectionFG = d.SelectionFG
	}
	if c.SelectionBG == nil {
		c.SelectionBG = d.SelectionBG
	}
	if c.PlayingFG == nil {
		c.PlayingFG = d.PlayingFG
	}
	if c.PlayingBG == nil {
		c.PlayingBG = d.PlayingBG
	}
	return c
}

// Palette returns the resolved colors, falling back to the built-in ones.
func (c *Config) Palette() Palette {
	if p, err := c.Colors.Resolve(); err == nil {
		return p
	}
	p, _ := Default().Colors.Resolve()
	return p
}

func resolveColor(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return resolveString(v)
	case []any:
		return resolveRGB(v)
	case []int64:
		return resolveRGB(toAny(v))
	case []int:
		return resolveRGB(toAny(v))
	case nil:
		return "", fmt.Errorf("missing value")
	default:
		return "", fmt.Errorf("unsupported value %v", raw)
	}
}

func resolveString(s string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if idx, ok := ansiNames[name]; ok {
		return strconv.Itoa(idx), nil
	}
	if strings.HasPrefix(name, "#") {
		col, err := colorful.Hex(name)
		if err != nil {
			return "", fmt.Errorf("bad hex color %q", s)
		}
		return col.Hex(), nil
	}
	return "", fmt.Errorf("unknown color name %q", s)
}

func resolveRGB(parts []any) (string, error) {
	if len(parts) != 3 {
		return "", fmt.Errorf("rgb needs 3 components, got %d", len(parts))
	}
	var rgb [3]uint8
	for i, p := range parts {
		n, ok := toInt(p)
		if !ok || n < 0 || n > 255 {
			return "", fmt.Errorf("rgb component %v out of range 0-255", p)
		}
		rgb[i] = uint8(n)
	}
	col := colorful.Color{
		R: float64(rgb[0]) / 255,
		G: float64(rgb[1]) / 255,
		B: float64(rgb[2]) / 255,
	}
	return col.Hex(), nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func toAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
