package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/HuXin0817/lattice-rooms/pkg/geom"
	"github.com/zyedidia/generic/mapset"
)

const (
	DefaultSize        = 11
	DefaultTargetRooms = 20
)

type Preset string

const (
	Orthogonal          Preset = "orthogonal"
	OrthogonalDiagonals Preset = "orthogonal-diagonals"
	Custom              Preset = "custom"
)

var presetDirections = map[Preset][]geom.Direction{
	Orthogonal:          {{DX: 1, DY: 0}, {DX: 0, DY: 1}},
	OrthogonalDiagonals: {{DX: 1, DY: 0}, {DX: 0, DY: 1}, {DX: 1, DY: 1}, {DX: 1, DY: -1}},
}

// PresetDirections returns a copy of the preset's directions. Custom has none.
func PresetDirections(p Preset) ([]geom.Direction, bool) {
	dirs, c := presetDirections[p]
	if !c {
		return nil, false
	}
	return append([]geom.Direction(nil), dirs...), true
}

type Config struct {
	Size        int              `json:"size"`
	Directions  []geom.Direction `json:"directions"`
	TargetRooms int              `json:"targetRooms"`
}

func DefaultConfig() Config {
	dirs, _ := PresetDirections(OrthogonalDiagonals)
	return Config{
		Size:        DefaultSize,
		Directions:  dirs,
		TargetRooms: DefaultTargetRooms,
	}
}

// NewConfig fills zero fields with the defaults.
func NewConfig(size, targetRooms int, directions []geom.Direction) Config {
	c := DefaultConfig()
	if size != 0 {
		c.Size = size
	}
	if targetRooms != 0 {
		c.TargetRooms = targetRooms
	}
	if directions != nil {
		c.Directions = directions
	}
	return c
}

// Allows reports whether d is one of the configured directions. d must be
// canonical.
func (c Config) Allows(d geom.Direction) bool {
	for _, a := range c.Directions {
		if a == d {
			return true
		}
	}
	return false
}

// canonical normalizes and dedupes the directions. Zero vectors are dropped,
// which can only leave a config with no legal moves.
func (c Config) canonical() Config {
	seen := mapset.New[geom.Direction]()
	dirs := make([]geom.Direction, 0, len(c.Directions))
	for _, d := range c.Directions {
		n, err := geom.NormalizeDirection(d.DX, d.DY)
		if err != nil || seen.Has(n) {
			continue
		}
		seen.Put(n)
		dirs = append(dirs, n)
	}
	c.Directions = dirs
	return c
}

var ErrDirectionText = errors.New("invalid direction text")

// ParseDirections reads "dx,dy" pairs separated by whitespace or ';', e.g.
// "1,0;0,1;1,1;1,-1". The result is canonical and deduplicated.
func ParseDirections(text string) ([]geom.Direction, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty", ErrDirectionText)
	}

	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	var dirs []geom.Direction
	for _, part := range parts {
		dx, dy, c := strings.Cut(part, ",")
		if !c {
			return nil, fmt.Errorf("%w: %q is not dx,dy", ErrDirectionText, part)
		}

		x, err := strconv.Atoi(strings.TrimSpace(dx))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrDirectionText, part, err)
		}

		y, err := strconv.Atoi(strings.TrimSpace(dy))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrDirectionText, part, err)
		}

		dirs = append(dirs, geom.Direction{DX: x, DY: y})
	}

	dirs, err := geom.CanonicalDirections(dirs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectionText, err)
	}
	return dirs, nil
}

// FormatDirections is the inverse of ParseDirections.
func FormatDirections(dirs []geom.Direction) string {
	parts := make([]string, len(dirs))
	for i, d := range dirs {
		parts[i] = d.String()
	}
	return strings.Join(parts, ";")
}
