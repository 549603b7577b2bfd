package icons

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// IconSet contains all glyphs used when rendering cards
type IconSet struct {
	// Resources
	Credits  string
	Steel    string
	Titanium string
	Plants   string
	Energy   string
	Heat     string
	Microbes string
	Animals  string
	Floaters string
	Science  string

	// Cards
	CardDraw string
	CardTake string
	CardPeek string

	// Tiles
	City     string
	Ocean    string
	Greenery string

	// Global parameters
	Temperature string
	Oxygen      string
	Rating      string

	// Separators between inputs and outputs
	Arrow string
	Colon string
	Or    string

	// Modifiers
	Any     string
	Star    string
	Attack  string
	Shield  string
	Percent string

	// Navigation (browse mode)
	Pointer    string
	ArrowUp    string
	ArrowDown  string
	ArrowLeft  string
	ArrowRight string
	Enter      string
	Back       string

	// Status
	Check    string
	Cross    string
	Dot      string
	Warning  string
	Info     string
	Question string

	// Overflow indicators
	ScrollUp   string
	ScrollDown string
	Ellipsis   string

	// Help
	Help string
}

// NerdFonts is the full icon set using Nerd Font symbols
var NerdFonts = IconSet{
	// Resources
	Credits:  "",
	Steel:    "󰓥",
	Titanium: "",
	Plants:   "",
	Energy:   "󱐋",
	Heat:     "",
	Microbes: "󱃎",
	Animals:  "",
	Floaters: "󰀝",
	Science:  "",

	// Cards
	CardDraw: "󰘸",
	CardTake: "󰘹",
	CardPeek: "󰈈",

	// Tiles
	City:     "",
	Ocean:    "󰖝",
	Greenery: "",

	// Global parameters
	Temperature: "",
	Oxygen:      "󰟤",
	Rating:      "",

	// Separators
	Arrow: "",
	Colon: ":",
	Or:    "/",

	// Modifiers
	Any:     "󰕟",
	Star:    "★",
	Attack:  "󰓥",
	Shield:  "󰒘",
	Percent: "%",

	// Navigation
	Pointer:    "❯",
	ArrowUp:    "",
	ArrowDown:  "",
	ArrowLeft:  "",
	ArrowRight: "",
	Enter:      "⏎",
	Back:       "",

	// Status
	Check:    "",
	Cross:    "",
	Dot:      "●",
	Warning:  "",
	Info:     "",
	Question: "",

	// Overflow
	ScrollUp:   "",
	ScrollDown: "",
	Ellipsis:   "…",

	// Help
	Help: "",
}

// Unicode is a fallback icon set using standard Unicode
var Unicode = IconSet{
	// Resources
	Credits:  "◉",
	Steel:    "⬡",
	Titanium: "✶",
	Plants:   "❦",
	Energy:   "⚡",
	Heat:     "♨",
	Microbes: "¤",
	Animals:  "♞",
	Floaters: "☁",
	Science:  "⚛",

	// Cards
	CardDraw: "🂠",
	CardTake: "🂠",
	CardPeek: "◉",

	// Tiles
	City:     "▣",
	Ocean:    "≈",
	Greenery: "❦",

	// Global parameters
	Temperature: "🌡",
	Oxygen:      "O₂",
	Rating:      "TR",

	// Separators
	Arrow: "→",
	Colon: ":",
	Or:    "/",

	// Modifiers
	Any:     "*",
	Star:    "★",
	Attack:  "⚔",
	Shield:  "⛨",
	Percent: "%",

	// Navigation
	Pointer:    "›",
	ArrowUp:    "↑",
	ArrowDown:  "↓",
	ArrowLeft:  "←",
	ArrowRight: "→",
	Enter:      "↵",
	Back:       "←",

	// Status
	Check:    "✓",
	Cross:    "✗",
	Dot:      "•",
	Warning:  "⚠",
	Info:     "ℹ",
	Question: "?",

	// Overflow
	ScrollUp:   "▲",
	ScrollDown: "▼",
	Ellipsis:   "…",

	// Help
	Help: "?",
}

// ASCII is a minimal fallback for terminals without Unicode
var ASCII = IconSet{
	// Resources
	Credits:  "$",
	Steel:    "S",
	Titanium: "T",
	Plants:   "P",
	Energy:   "E",
	Heat:     "H",
	Microbes: "m",
	Animals:  "a",
	Floaters: "f",
	Science:  "s",

	// Cards
	CardDraw: "[+]",
	CardTake: "[+]",
	CardPeek: "[?]",

	// Tiles
	City:     "[C]",
	Ocean:    "[O]",
	Greenery: "[G]",

	// Global parameters
	Temperature: "deg",
	Oxygen:      "O2",
	Rating:      "TR",

	// Separators
	Arrow: "->",
	Colon: ":",
	Or:    "/",

	// Modifiers
	Any:     "*",
	Star:    "*",
	Attack:  "!",
	Shield:  "#",
	Percent: "%",

	// Navigation
	Pointer:    ">",
	ArrowUp:    "^",
	ArrowDown:  "v",
	ArrowLeft:  "<",
	ArrowRight: ">",
	Enter:      "[Enter]",
	Back:       "<-",

	// Status
	Check:    "[x]",
	Cross:    "[X]",
	Dot:      "*",
	Warning:  "!",
	Info:     "i",
	Question: "?",

	// Overflow
	ScrollUp:   "^",
	ScrollDown: "v",
	Ellipsis:   "...",

	// Help
	Help: "?",
}

func (i IconSet) WithFallback(fallback IconSet) IconSet {
	if reflect.DeepEqual(i, fallback) {
		return i
	}

	out := i
	dst := reflect.ValueOf(&out).Elem()
	fb := reflect.ValueOf(fallback)

	for idx := 0; idx < dst.NumField(); idx++ {
		f := dst.Field(idx)
		if f.Kind() != reflect.String {
			continue
		}
		if f.String() != "" {
			continue
		}
		f.SetString(fb.Field(idx).String())
	}

	return out
}

// HasNerdFonts detects if the terminal likely supports Nerd Fonts
func HasNerdFonts() bool {
	// Explicit user preference
	if os.Getenv("MARSCARD_USE_ICONS") == "1" || os.Getenv("NERD_FONTS") == "1" {
		return true
	}
	if os.Getenv("MARSCARD_USE_ICONS") == "0" || os.Getenv("NERD_FONTS") == "0" {
		return false
	}

	// Check for Powerlevel10k config (strong indicator)
	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".p10k.zsh")); err == nil {
		return true
	}

	// Check terminal programs known to support Nerd Fonts well
	term := os.Getenv("TERM_PROGRAM")
	switch term {
	case "iTerm.app", "WezTerm", "Alacritty", "kitty", "Hyper", "vscode":
		return true
	}

	// Check for Kitty
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}

	// Check for WezTerm
	if os.Getenv("WEZTERM_PANE") != "" {
		return true
	}

	return false
}

// HasUnicode detects if the terminal supports Unicode
func HasUnicode() bool {
	lang := os.Getenv("LANG")
	lcAll := os.Getenv("LC_ALL")

	if strings.Contains(strings.ToLower(lang), "utf") ||
		strings.Contains(strings.ToLower(lcAll), "utf") {
		return true
	}

	// Most modern terminals support Unicode
	term := os.Getenv("TERM")
	if strings.Contains(term, "xterm") ||
		strings.Contains(term, "256color") ||
		strings.Contains(term, "screen") ||
		strings.Contains(term, "tmux") {
		return true
	}

	return true // Default to Unicode in modern era
}

// Detect returns the appropriate icon set for the current terminal
func Detect() IconSet {
	// Explicit preference via env var
	switch os.Getenv("MARSCARD_ICONS") {
	case "nerd", "nerdfonts":
		return NerdFonts.WithFallback(Unicode).WithFallback(ASCII)
	case "unicode":
		return Unicode.WithFallback(ASCII)
	case "ascii":
		return ASCII
	case "auto":
		if HasNerdFonts() {
			return NerdFonts.WithFallback(Unicode).WithFallback(ASCII)
		}
		if HasUnicode() {
			return Unicode.WithFallback(ASCII)
		}
	}

	// Explicit opt-in via MARSCARD_USE_ICONS or NERD_FONTS
	if os.Getenv("MARSCARD_USE_ICONS") == "1" || os.Getenv("NERD_FONTS") == "1" {
		return NerdFonts.WithFallback(Unicode).WithFallback(ASCII)
	}

	// Default to ASCII to avoid width drift issues.
	return ASCII
}

// Default is the auto-detected icon set
var Default = Detect()

// Current returns the currently active icon set
func Current() IconSet {
	return Default
}

// SetDefault allows overriding the default icon set
func SetDefault(icons IconSet) {
	Default = icons
}

// IconFor returns the glyph for a resource type string. Production
// variants share the base resource glyph. The second return is false
// when the type is unknown.
func (i IconSet) IconFor(resourceType string) (string, bool) {
	base := strings.TrimSuffix(resourceType, "-production")
	switch base {
	case "credits", "megacredits":
		return i.Credits, true
	case "steel":
		return i.Steel, true
	case "titanium":
		return i.Titanium, true
	case "plants":
		return i.Plants, true
	case "energy":
		return i.Energy, true
	case "heat":
		return i.Heat, true
	case "microbes":
		return i.Microbes, true
	case "animals":
		return i.Animals, true
	case "floaters":
		return i.Floaters, true
	case "science":
		return i.Science, true
	case "card-draw":
		return i.CardDraw, true
	case "card-take":
		return i.CardTake, true
	case "card-peek":
		return i.CardPeek, true
	case "city-placement", "city-tile":
		return i.City, true
	case "ocean-placement", "ocean-tile":
		return i.Ocean, true
	case "greenery-placement", "greenery-tile":
		return i.Greenery, true
	case "temperature":
		return i.Temperature, true
	case "oxygen":
		return i.Oxygen, true
	case "terraform-rating":
		return i.Rating, true
	default:
		return "", false
	}
}

// TileIcon returns the glyph for a tile type, or Question for unknown
func (i IconSet) TileIcon(tileType string) string {
	switch strings.TrimSuffix(tileType, "-placement") {
	case "city":
		return i.City
	case "ocean":
		return i.Ocean
	case "greenery":
		return i.Greenery
	default:
		return i.Question
	}
}

// StatusIcon returns a status glyph
func (i IconSet) StatusIcon(success bool) string {
	if success {
		return i.Check
	}
	return i.Cross
}
