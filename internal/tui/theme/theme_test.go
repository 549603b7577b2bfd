package theme

import "testing"

func withDetector(t *testing.T, detector func() bool) {
	original := detectDarkBackground
	detectDarkBackground = detector
	// Reset the cached auto theme so it re-detects with the new detector
	resetAutoTheme()
	t.Cleanup(func() {
		detectDarkBackground = original
		resetAutoTheme()
	})
}

func TestCurrentAutoUsesLightThemeWhenBackgroundIsLight(t *testing.T) {
	t.Setenv("MARSCARD_NO_COLOR", "0")
	t.Setenv("MARSCARD_THEME", "")
	withDetector(t, func() bool { return false })

	if got := Current(); got.Base != CatppuccinLatte.Base {
		t.Fatalf("expected light theme (Latte) for light background, got base %s", got.Base)
	}
}

func TestCurrentAutoUsesDarkThemeWhenBackgroundIsDark(t *testing.T) {
	t.Setenv("MARSCARD_NO_COLOR", "0")
	t.Setenv("MARSCARD_THEME", "")
	withDetector(t, func() bool { return true })

	if got := Current(); got.Base != CatppuccinMocha.Base {
		t.Fatalf("expected dark theme (Mocha) for dark background, got base %s", got.Base)
	}
}

func TestCurrentRespectsExplicitThemeOverrides(t *testing.T) {
	t.Setenv("MARSCARD_NO_COLOR", "0")
	t.Setenv("MARSCARD_THEME", "latte")
	withDetector(t, func() bool { return true })

	if got := Current(); got.Base != CatppuccinLatte.Base {
		t.Fatalf("expected Latte when explicitly requested, got base %s", got.Base)
	}

	t.Setenv("MARSCARD_THEME", "mocha")
	withDetector(t, func() bool { return false })

	if got := Current(); got.Base != CatppuccinMocha.Base {
		t.Fatalf("expected Mocha when explicitly requested, got base %s", got.Base)
	}
}

func TestCurrentTreatsAutoValueAsDetection(t *testing.T) {
	t.Setenv("MARSCARD_NO_COLOR", "0")
	t.Setenv("MARSCARD_THEME", "auto")
	withDetector(t, func() bool { return false })

	if got := Current(); got.Base != CatppuccinLatte.Base {
		t.Fatalf("expected Latte for auto detection on light background, got base %s", got.Base)
	}
}

func TestCurrentDarkLightAliases(t *testing.T) {
	t.Setenv("MARSCARD_NO_COLOR", "0")
	withDetector(t, func() bool { return true })

	t.Setenv("MARSCARD_THEME", "light")
	if got := Current(); got.Base != CatppuccinLatte.Base {
		t.Fatalf("expected Latte for 'light' alias, got base %s", got.Base)
	}

	t.Setenv("MARSCARD_THEME", "dark")
	if got := Current(); got.Base != CatppuccinMocha.Base {
		t.Fatalf("expected Mocha for 'dark' alias, got base %s", got.Base)
	}
}

func TestCurrentUnknownFallsBackToAuto(t *testing.T) {
	t.Setenv("MARSCARD_NO_COLOR", "0")
	t.Setenv("MARSCARD_THEME", "unknown-theme")
	withDetector(t, func() bool { return true })

	// Unknown should fall through to autoTheme()
	if got := Current(); got.Base != CatppuccinMocha.Base {
		t.Fatalf("expected Mocha for unknown theme with dark background, got base %s", got.Base)
	}
}

func TestThemeColors(t *testing.T) {
	themes := []struct {
		name  string
		theme Theme
	}{
		{"Mocha", CatppuccinMocha},
		{"Latte", CatppuccinLatte},
	}

	for _, tt := range themes {
		t.Run(tt.name, func(t *testing.T) {
			// Verify all required colors are set
			if tt.theme.Base == "" {
				t.Error("Base color should not be empty")
			}
			if tt.theme.Text == "" {
				t.Error("Text color should not be empty")
			}
			if tt.theme.Primary == "" {
				t.Error("Primary color should not be empty")
			}
			if tt.theme.Credits == "" {
				t.Error("Credits color should not be empty")
			}
			if tt.theme.Plants == "" {
				t.Error("Plants color should not be empty")
			}
			if tt.theme.Ocean == "" {
				t.Error("Ocean color should not be empty")
			}
			if tt.theme.ProductionBox == "" {
				t.Error("ProductionBox color should not be empty")
			}
			if tt.theme.AttackAccent == "" {
				t.Error("AttackAccent color should not be empty")
			}
		})
	}
}

func TestNoColorEnabled(t *testing.T) {
	t.Run("returns true when NO_COLOR is set", func(t *testing.T) {
		t.Setenv("MARSCARD_NO_COLOR", "")
		t.Setenv("NO_COLOR", "1")

		if !NoColorEnabled() {
			t.Error("NoColorEnabled should return true when NO_COLOR is set")
		}
	})

	t.Run("returns true when NO_COLOR is empty string", func(t *testing.T) {
		t.Setenv("MARSCARD_NO_COLOR", "")
		t.Setenv("NO_COLOR", "")

		// NO_COLOR="" still means it's set (per standard)
		if !NoColorEnabled() {
			t.Error("NoColorEnabled should return true when NO_COLOR is set to empty string")
		}
	})

	t.Run("MARSCARD_NO_COLOR=0 overrides NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		t.Setenv("MARSCARD_NO_COLOR", "0")

		if NoColorEnabled() {
			t.Error("MARSCARD_NO_COLOR=0 should force colors ON even with NO_COLOR set")
		}
	})

	t.Run("MARSCARD_NO_COLOR=false overrides NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		t.Setenv("MARSCARD_NO_COLOR", "false")

		if NoColorEnabled() {
			t.Error("MARSCARD_NO_COLOR=false should force colors ON")
		}
	})

	t.Run("MARSCARD_NO_COLOR=1 enables no-color", func(t *testing.T) {
		t.Setenv("MARSCARD_NO_COLOR", "1")

		if !NoColorEnabled() {
			t.Error("MARSCARD_NO_COLOR=1 should enable no-color mode")
		}
	})
}

func TestCurrentReturnsPlainWhenNoColorEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("MARSCARD_NO_COLOR", "")
	t.Setenv("MARSCARD_THEME", "mocha")
	withDetector(t, func() bool { return true })

	got := Current()
	if got.Base != Plain.Base {
		t.Errorf("Current() should return Plain theme when NO_COLOR is set, got base %s", got.Base)
	}
}

func TestFromNamePlainVariants(t *testing.T) {
	// Clear NO_COLOR to test explicit theme selection
	t.Setenv("MARSCARD_NO_COLOR", "0")

	variants := []string{"plain", "none", "no-color", "nocolor"}
	for _, name := range variants {
		t.Run(name, func(t *testing.T) {
			got := FromName(name)
			if got.Base != Plain.Base || got.Text != Plain.Text {
				t.Errorf("FromName(%q) should return Plain theme, got base %s", name, got.Base)
			}
		})
	}
}

func TestPlainThemeHasEmptyColors(t *testing.T) {
	// Verify Plain theme uses empty strings for colors
	if Plain.Base != "" {
		t.Errorf("Plain.Base should be empty, got %s", Plain.Base)
	}
	if Plain.Text != "" {
		t.Errorf("Plain.Text should be empty, got %s", Plain.Text)
	}
	if Plain.Credits != "" {
		t.Errorf("Plain.Credits should be empty, got %s", Plain.Credits)
	}
	if Plain.ProductionBox != "" {
		t.Errorf("Plain.ProductionBox should be empty, got %s", Plain.ProductionBox)
	}
}

func TestAutoThemeFallsBackToDarkOnPanic(t *testing.T) {
	t.Setenv("MARSCARD_NO_COLOR", "0")
	t.Setenv("MARSCARD_THEME", "")
	// Set up a detector that panics
	withDetector(t, func() bool {
		panic("simulated terminal detection failure")
	})

	// Should not panic and should return the dark theme (Mocha) as fallback
	got := Current()
	if got.Base != CatppuccinMocha.Base {
		t.Fatalf("expected Mocha fallback on panic, got base %s", got.Base)
	}
}

func TestResourceColor(t *testing.T) {
	th := CatppuccinMocha

	tests := []struct {
		resourceType string
		want         string
	}{
		{"credits", string(th.Credits)},
		{"credits-production", string(th.Credits)},
		{"steel", string(th.Steel)},
		{"titanium-production", string(th.Titanium)},
		{"plants", string(th.Plants)},
		{"energy-production", string(th.Energy)},
		{"heat", string(th.Heat)},
		{"microbes", string(th.Science)},
		{"card-draw", string(th.Card)},
		{"city-placement", string(th.City)},
		{"ocean-placement", string(th.Ocean)},
		{"greenery-placement", string(th.Greenery)},
		{"temperature", string(th.Ocean)},
		{"oxygen", string(th.Greenery)},
		{"something-unheard-of", string(th.Text)},
	}

	for _, tt := range tests {
		t.Run(tt.resourceType, func(t *testing.T) {
			if got := string(th.ResourceColor(tt.resourceType)); got != tt.want {
				t.Errorf("ResourceColor(%q) = %q, want %q", tt.resourceType, got, tt.want)
			}
		})
	}
}
