// Package theme defines the color palettes used by the card renderer.
package theme

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines a complete color palette for card rendering.
type Theme struct {
	// Base colors
	Base     lipgloss.Color // Background
	Mantle   lipgloss.Color // Slightly lighter bg
	Surface0 lipgloss.Color // Surface
	Surface1 lipgloss.Color // Surface highlight
	Surface2 lipgloss.Color // Surface bright

	// Text colors
	Text    lipgloss.Color // Primary text
	Subtext lipgloss.Color // Secondary text
	Overlay lipgloss.Color // Dimmed text

	// Semantic colors
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Resource colors, matching the printed card iconography
	Credits  lipgloss.Color // gold
	Steel    lipgloss.Color // rust brown
	Titanium lipgloss.Color // dark gray on starfield
	Plants   lipgloss.Color // green
	Energy   lipgloss.Color // purple
	Heat     lipgloss.Color // red-orange
	Science  lipgloss.Color // white-blue
	Card     lipgloss.Color // card draw/take/peek

	// Tile colors
	City     lipgloss.Color
	Ocean    lipgloss.Color
	Greenery lipgloss.Color

	// Box colors
	ProductionBox lipgloss.Color // brown production background
	ActionBorder  lipgloss.Color // blue action box border
	EffectBorder  lipgloss.Color // ongoing effect box border
	AttackAccent  lipgloss.Color // red accent for any-player targets
}

// CatppuccinMocha is the flagship dark theme.
var CatppuccinMocha = Theme{
	Base:     lipgloss.Color("#1e1e2e"),
	Mantle:   lipgloss.Color("#181825"),
	Surface0: lipgloss.Color("#313244"),
	Surface1: lipgloss.Color("#45475a"),
	Surface2: lipgloss.Color("#585b70"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Overlay: lipgloss.Color("#6c7086"),

	Primary: lipgloss.Color("#89b4fa"),
	Success: lipgloss.Color("#a6e3a1"),
	Warning: lipgloss.Color("#f9e2af"),
	Error:   lipgloss.Color("#f38ba8"),
	Info:    lipgloss.Color("#89dceb"),

	Credits:  lipgloss.Color("#f9e2af"),
	Steel:    lipgloss.Color("#eba0ac"),
	Titanium: lipgloss.Color("#9399b2"),
	Plants:   lipgloss.Color("#a6e3a1"),
	Energy:   lipgloss.Color("#cba6f7"),
	Heat:     lipgloss.Color("#fab387"),
	Science:  lipgloss.Color("#89dceb"),
	Card:     lipgloss.Color("#b4befe"),

	City:     lipgloss.Color("#9399b2"),
	Ocean:    lipgloss.Color("#89b4fa"),
	Greenery: lipgloss.Color("#a6e3a1"),

	ProductionBox: lipgloss.Color("#8b6d4f"),
	ActionBorder:  lipgloss.Color("#89b4fa"),
	EffectBorder:  lipgloss.Color("#94e2d5"),
	AttackAccent:  lipgloss.Color("#f38ba8"),
}

// CatppuccinLatte is the light variant for light terminal backgrounds.
var CatppuccinLatte = Theme{
	Base:     lipgloss.Color("#eff1f5"),
	Mantle:   lipgloss.Color("#e6e9ef"),
	Surface0: lipgloss.Color("#ccd0da"),
	Surface1: lipgloss.Color("#bcc0cc"),
	Surface2: lipgloss.Color("#acb0be"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),
	Overlay: lipgloss.Color("#9ca0b0"),

	Primary: lipgloss.Color("#1e66f5"),
	Success: lipgloss.Color("#40a02b"),
	Warning: lipgloss.Color("#df8e1d"),
	Error:   lipgloss.Color("#d20f39"),
	Info:    lipgloss.Color("#04a5e5"),

	Credits:  lipgloss.Color("#df8e1d"),
	Steel:    lipgloss.Color("#e64553"),
	Titanium: lipgloss.Color("#6c6f85"),
	Plants:   lipgloss.Color("#40a02b"),
	Energy:   lipgloss.Color("#8839ef"),
	Heat:     lipgloss.Color("#fe640b"),
	Science:  lipgloss.Color("#04a5e5"),
	Card:     lipgloss.Color("#7287fd"),

	City:     lipgloss.Color("#6c6f85"),
	Ocean:    lipgloss.Color("#1e66f5"),
	Greenery: lipgloss.Color("#40a02b"),

	ProductionBox: lipgloss.Color("#a5704a"),
	ActionBorder:  lipgloss.Color("#1e66f5"),
	EffectBorder:  lipgloss.Color("#179299"),
	AttackAccent:  lipgloss.Color("#d20f39"),
}

// Plain is the no-color theme. Empty colors render as the terminal
// default; meaning is carried by glyphs and layout, never color alone.
var Plain = Theme{}

// NoColorEnabled reports whether colors should be disabled.
// MARSCARD_NO_COLOR takes precedence in both directions; the standard
// NO_COLOR convention disables by presence.
func NoColorEnabled() bool {
	override := strings.TrimSpace(os.Getenv("MARSCARD_NO_COLOR"))
	switch strings.ToLower(override) {
	case "0", "false", "no", "off":
		return false
	case "1", "true", "yes", "on":
		return true
	}
	_, noColorSet := os.LookupEnv("NO_COLOR")
	return noColorSet
}

// FromName returns a theme by name.
func FromName(name string) Theme {
	if NoColorEnabled() {
		return Plain
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "none", "no-color", "nocolor":
		return Plain
	case "latte", "light":
		return CatppuccinLatte
	case "mocha", "dark":
		return CatppuccinMocha
	case "auto", "":
		return autoTheme()
	default:
		return autoTheme()
	}
}

// Current returns the active theme based on MARSCARD_THEME.
func Current() Theme {
	return FromName(os.Getenv("MARSCARD_THEME"))
}

// detectDarkBackground inspects the terminal background. A variable for
// testability.
var detectDarkBackground = func() bool {
	output := termenv.NewOutput(os.Stdout)
	return output.HasDarkBackground()
}

var (
	cachedAutoTheme Theme
	autoThemeOnce   sync.Once
)

// resetAutoTheme clears the cached auto theme so tests can re-run
// detection with a mock detector.
var resetAutoTheme = func() {
	autoThemeOnce = sync.Once{}
	cachedAutoTheme = Theme{}
}

func autoTheme() Theme {
	autoThemeOnce.Do(func() {
		cachedAutoTheme = CatppuccinMocha

		defer func() {
			if recover() != nil {
				cachedAutoTheme = CatppuccinMocha
			}
		}()

		if detectDarkBackground() {
			cachedAutoTheme = CatppuccinMocha
		} else {
			cachedAutoTheme = CatppuccinLatte
		}
	})
	return cachedAutoTheme
}

// ResourceColor maps a resource type string to its theme color.
// Production variants share the base resource's color; unknown types
// fall back to the plain text color so presentation never fails on new
// resource vocabulary.
func (t Theme) ResourceColor(resourceType string) lipgloss.Color {
	base := strings.TrimSuffix(resourceType, "-production")
	switch base {
	case "credits":
		return t.Credits
	case "steel":
		return t.Steel
	case "titanium":
		return t.Titanium
	case "plants":
		return t.Plants
	case "energy":
		return t.Energy
	case "heat":
		return t.Heat
	case "science", "microbes", "animals", "floaters":
		return t.Science
	case "card-draw", "card-take", "card-peek":
		return t.Card
	case "city-placement", "city-tile":
		return t.City
	case "ocean-placement", "ocean-tile", "temperature":
		return t.Ocean
	case "greenery-placement", "greenery-tile", "oxygen":
		return t.Greenery
	default:
		return t.Text
	}
}
