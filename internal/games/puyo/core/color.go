package core

import "strings"

// Color is the content of a grid cell. The zero value is an empty cell.
type Color uint8

const (
	Empty Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	colorSentinel
)

// MaxColors is the number of distinct piece colors available.
const MaxColors = int(colorSentinel) - 1

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Char returns a single character representation used by Grid.String.
func (c Color) Char() rune {
	switch c {
	case Empty:
		return '.'
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	default:
		return '?'
	}
}

// ParseColor converts a name or single-letter code to a Color.
// Returns Empty and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case ".", "empty", "":
		return Empty, true
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "purple", "p":
		return ColorPurple, true
	default:
		return Empty, false
	}
}

// AllColors returns all piece colors in declaration order.
func AllColors() []Color {
	return []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorPurple}
}

// Palette returns the first n piece colors, clamped to [1, MaxColors].
func Palette(n int) []Color {
	if n < 1 {
		n = 1
	}
	if n > MaxColors {
		n = MaxColors
	}
	return AllColors()[:n]
}

// Pair is two colors generated and placed together. First sits on the
// pivot, Second on the orbiting cell.
type Pair struct {
	First  Color
	Second Color
}
