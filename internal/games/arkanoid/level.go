package arkanoid

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

var (
	// ErrNoBricks is returned for level data without a bricks list.
	ErrNoBricks = errors.New("arkanoid: level has no bricks")
	// ErrNoLevels is returned when a level set is empty.
	ErrNoLevels = errors.New("arkanoid: no levels")
	// ErrInvalidLevel is returned for a level number outside the set and
	// for levels whose bricks do not fit the playfield.
	ErrInvalidLevel = errors.New("arkanoid: invalid level")
)

//go:embed levels/*.yaml
var builtinFS embed.FS

// Position is a grid cell in zone units.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// BrickData describes one brick of a level.
type BrickData struct {
	Position Position `yaml:"position"`
	Color    Color    `yaml:"color"`
	Level    int      `yaml:"level"`
}

// LevelData is the brick layout of one level.
type LevelData struct {
	ID     string
	Name   string
	Bricks []BrickData
}

// LevelSet is an ordered list of levels. Level numbers start at 1.
type LevelSet []LevelData

// yamlLevel is the on-disk level format. Bricks can be given either as an
// explicit list or as a row map where each character is one brick-wide
// column holding a color code, and '.' or ' ' leaves the cell empty.
type yamlLevel struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Origin Position    `yaml:"origin"`
	Rows   []string    `yaml:"rows"`
	Bricks []BrickData `yaml:"bricks"`
}

// ParseLevel decodes a YAML level. number is the 1-based level number
// stamped on bricks that do not carry their own.
func ParseLevel(data []byte, number int) (LevelData, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return LevelData{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := LevelData{ID: yl.ID, Name: yl.Name}
	level.Bricks = append(level.Bricks, yl.Bricks...)

	for row, line := range yl.Rows {
		for col, ch := range line {
			if ch == '.' || ch == ' ' {
				continue
			}
			color, ok := ParseColor(string(ch))
			if !ok {
				return LevelData{}, fmt.Errorf("row %d col %d: unknown brick code %q", row, col, ch)
			}
			level.Bricks = append(level.Bricks, BrickData{
				Position: Position{X: yl.Origin.X + col*BrickWidth, Y: yl.Origin.Y + row*BrickHeight},
				Color:    color,
			})
		}
	}

	for i := range level.Bricks {
		if level.Bricks[i].Level == 0 {
			level.Bricks[i].Level = number
		}
	}

	if err := level.Validate(); err != nil {
		return LevelData{}, err
	}
	return level, nil
}

// Validate checks that the level can be played.
func (l LevelData) Validate() error {
	if len(l.Bricks) == 0 {
		return ErrNoBricks
	}
	return nil
}

// Validate checks every level of the set.
func (s LevelSet) Validate() error {
	if len(s) == 0 {
		return ErrNoLevels
	}
	for i, l := range s {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("level %d (%s): %w", i+1, l.ID, err)
		}
	}
	return nil
}

// Fits checks that every brick lies inside field.
func (l LevelData) Fits(field geom.Rect) error {
	for _, d := range l.Bricks {
		r := NewBrick(d).Bounds()
		if r.Left() < field.Left() || r.Right() > field.Right() ||
			r.Top() < field.Top() || r.Bottom() > field.Bottom() {
			return fmt.Errorf("%w: brick at (%d,%d) outside the %vx%v playfield",
				ErrInvalidLevel, d.Position.X, d.Position.Y, field.Width, field.Height)
		}
	}
	return nil
}

// Fits checks every level of the set against field.
func (s LevelSet) Fits(field geom.Rect) error {
	for i, l := range s {
		if err := l.Fits(field); err != nil {
			return fmt.Errorf("level %d (%s): %w", i+1, l.ID, err)
		}
	}
	return nil
}

// Get returns level number n, counted from 1.
func (s LevelSet) Get(n int) (LevelData, error) {
	if n < 1 || n > len(s) {
		return LevelData{}, fmt.Errorf("%w: %d (have %d)", ErrInvalidLevel, n, len(s))
	}
	return s[n-1], nil
}

// BuiltinLevels returns the levels shipped with the game.
func BuiltinLevels() (LevelSet, error) {
	return loadLevels(builtinFS, "levels")
}

// LoadLevelDir loads every .yaml or .yml file in dir, ordered by file name.
func LoadLevelDir(dir string) (LevelSet, error) {
	return loadLevels(os.DirFS(dir), ".")
}

func loadLevels(fsys fs.FS, root string) (LevelSet, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("reading levels: %w", err)
	}

	var names []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	set := make(LevelSet, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, filepath.ToSlash(filepath.Join(root, name)))
		if err != nil {
			return nil, fmt.Errorf("reading level %s: %w", name, err)
		}
		level, err := ParseLevel(data, len(set)+1)
		if err != nil {
			return nil, fmt.Errorf("parsing level %s: %w", name, err)
		}
		if level.ID == "" {
			level.ID = strings.TrimSuffix(name, filepath.Ext(name))
		}
		set = append(set, level)
	}

	if len(set) == 0 {
		return nil, ErrNoLevels
	}
	return set, nil
}
