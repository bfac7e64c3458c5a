package arkanoid

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-arkanoid/internal/entity"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// Brick dimensions in zone units.
const (
	BrickWidth  = 2
	BrickHeight = 1
)

// Color is the brick color, which sets its value and toughness.
type Color int

const (
	ColorWhite Color = iota
	ColorOrange
	ColorCyan
	ColorGreen
	ColorRed
	ColorBlue
	ColorMagenta
	ColorYellow
	ColorSilver
	colorCount
)

var colorNames = [colorCount]string{
	ColorWhite:   "white",
	ColorOrange:  "orange",
	ColorCyan:    "cyan",
	ColorGreen:   "green",
	ColorRed:     "red",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorYellow:  "yellow",
	ColorSilver:  "silver",
}

// colorCodes are the single characters used in level row maps.
var colorCodes = [colorCount]rune{
	ColorWhite:   'w',
	ColorOrange:  'o',
	ColorCyan:    'c',
	ColorGreen:   'g',
	ColorRed:     'r',
	ColorBlue:    'b',
	ColorMagenta: 'm',
	ColorYellow:  'y',
	ColorSilver:  's',
}

var colorPoints = [colorCount]int{
	ColorWhite:   50,
	ColorOrange:  60,
	ColorCyan:    70,
	ColorGreen:   80,
	ColorRed:     90,
	ColorBlue:    100,
	ColorMagenta: 110,
	ColorYellow:  120,
}

// String returns the lowercase color name.
func (c Color) String() string {
	if c < 0 || c >= colorCount {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

// Code returns the character representing c in row maps.
func (c Color) Code() rune {
	if c < 0 || c >= colorCount {
		return '?'
	}
	return colorCodes[c]
}

// ParseColor accepts a color name or its single-letter code.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c := Color(0); c < colorCount; c++ {
		if s == colorNames[c] || (len(s) == 1 && rune(s[0]) == colorCodes[c]) {
			return c, true
		}
	}
	return 0, false
}

// UnmarshalYAML decodes a color from its name or code.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, ok := ParseColor(s)
	if !ok {
		return fmt.Errorf("line %d: unknown brick color %q", node.Line, s)
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes a color as its name.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// Points returns the score for destroying a brick of color c in level.
// Silver bricks are worth more on later levels.
func Points(c Color, level int) int {
	if c == ColorSilver {
		return 50 * max(level, 1)
	}
	if c < 0 || c >= colorCount {
		return 0
	}
	return colorPoints[c]
}

// HitsToDestroy returns how many hits a brick of color c needs in level.
func HitsToDestroy(c Color, level int) int {
	if c == ColorSilver {
		return 2 + max(level, 1)/8
	}
	return 1
}

// Brick is a destructible obstacle placed on the level grid.
type Brick struct {
	data     BrickData
	hitsLeft int
}

// NewBrick builds a brick from its level descriptor.
func NewBrick(d BrickData) *Brick {
	return &Brick{data: d, hitsLeft: HitsToDestroy(d.Color, d.Level)}
}

// Bounds returns the brick's rectangle in zone units.
func (b *Brick) Bounds() geom.Rect {
	return geom.NewRect(float64(b.data.Position.X), float64(b.data.Position.Y), BrickWidth, BrickHeight)
}

// Kind marks bricks for the collision engine.
func (b *Brick) Kind() physics.Kind { return physics.KindBrick }

// Color returns the brick color.
func (b *Brick) Color() Color { return b.data.Color }

// Data returns the descriptor the brick was built from.
func (b *Brick) Data() BrickData { return b.data }

// Points returns the score awarded when the brick is destroyed.
func (b *Brick) Points() int { return Points(b.data.Color, b.data.Level) }

// HitsLeft returns the remaining hits before the brick breaks.
func (b *Brick) HitsLeft() int { return b.hitsLeft }

// Hit registers one impact and reports whether the brick is now destroyed.
func (b *Brick) Hit() bool {
	if b.hitsLeft > 0 {
		b.hitsLeft--
	}
	return b.hitsLeft == 0
}

// Bricks is the live brick set of the current level.
type Bricks = entity.Collection[*Brick, BrickData]

// NewBricks returns an empty brick collection.
func NewBricks() *Bricks {
	return entity.NewCollection(NewBrick)
}
