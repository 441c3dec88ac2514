package config

import (
	"testing"

	"github.com/jesseduffield/yaml"
)

func TestGetDefaultKeybindings(t *testing.T) {
	defaults := GetDefaultKeybindings()

	// Test Universal section has expected defaults
	if defaults.Universal.Quit != "q" {
		t.Errorf("Expected Universal.Quit to be 'q', got '%s'", defaults.Universal.Quit)
	}
	if defaults.Universal.QuitAlt != "<c-c>" {
		t.Errorf("Expected Universal.QuitAlt to be '<c-c>', got '%s'", defaults.Universal.QuitAlt)
	}
	if defaults.Universal.Return != "<esc>" {
		t.Errorf("Expected Universal.Return to be '<esc>', got '%s'", defaults.Universal.Return)
	}
	if defaults.Universal.Refresh != "R" {
		t.Errorf("Expected Universal.Refresh to be 'R', got '%s'", defaults.Universal.Refresh)
	}

	// Test Snaps section
	if defaults.Snaps.Rescan != "r" {
		t.Errorf("Expected Snaps.Rescan to be 'r', got '%s'", defaults.Snaps.Rescan)
	}
	if defaults.Snaps.OpenStorePage != "w" {
		t.Errorf("Expected Snaps.OpenStorePage to be 'w', got '%s'", defaults.Snaps.OpenStorePage)
	}
	if defaults.Snaps.CycleStatusFilter != "e" {
		t.Errorf("Expected Snaps.CycleStatusFilter to be 'e', got '%s'", defaults.Snaps.CycleStatusFilter)
	}

	// Test Locales section
	if defaults.Locales.FilterSnaps != "f" {
		t.Errorf("Expected Locales.FilterSnaps to be 'f', got '%s'", defaults.Locales.FilterSnaps)
	}

	// Test Status section
	if defaults.Status.EditConfig != "e" {
		t.Errorf("Expected Status.EditConfig to be 'e', got '%s'", defaults.Status.EditConfig)
	}

	// Test Main section
	if defaults.Main.Return != "<esc>" {
		t.Errorf("Expected Main.Return to be '<esc>', got '%s'", defaults.Main.Return)
	}

	// Test Menu section
	if defaults.Menu.Select != " " {
		t.Errorf("Expected Menu.Select to be ' ' (space), got '%s'", defaults.Menu.Select)
	}

	// Test Filter section
	if defaults.Filter.Confirm != "<enter>" {
		t.Errorf("Expected Filter.Confirm to be '<enter>', got '%s'", defaults.Filter.Confirm)
	}
}

func TestKeybindingConfigYAMLUnmarshal(t *testing.T) {
	yamlContent := `
universal:
  quit: 'Q'
  prevMainTab: '-'
  nextMainTab: '='
snaps:
  rescan: 'S'
  openStorePage: 'B'
locales:
  filterSnaps: 'F'
`

	var config KeybindingConfig
	err := yaml.Unmarshal([]byte(yamlContent), &config)
	if err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	// Test unmarshaled values
	if config.Universal.Quit != "Q" {
		t.Errorf("Expected Quit to be 'Q', got '%s'", config.Universal.Quit)
	}
	if config.Universal.PrevMainTab != "-" {
		t.Errorf("Expected PrevMainTab to be '-', got '%s'", config.Universal.PrevMainTab)
	}
	if config.Universal.NextMainTab != "=" {
		t.Errorf("Expected NextMainTab to be '=', got '%s'", config.Universal.NextMainTab)
	}
	if config.Snaps.Rescan != "S" {
		t.Errorf("Expected Snaps.Rescan to be 'S', got '%s'", config.Snaps.Rescan)
	}
	if config.Snaps.OpenStorePage != "B" {
		t.Errorf("Expected Snaps.OpenStorePage to be 'B', got '%s'", config.Snaps.OpenStorePage)
	}
	if config.Locales.FilterSnaps != "F" {
		t.Errorf("Expected Locales.FilterSnaps to be 'F', got '%s'", config.Locales.FilterSnaps)
	}
}

func TestKeybindingConfigYAMLMerge(t *testing.T) {
	// Start with defaults
	defaults := GetDefaultKeybindings()

	// Partial override YAML
	yamlContent := `
universal:
  quit: 'X'
snaps:
  rescan: 'Z'
`

	// Unmarshal into defaults (simulates YAML merge behavior)
	err := yaml.Unmarshal([]byte(yamlContent), &defaults)
	if err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	// Test that overridden values changed
	if defaults.Universal.Quit != "X" {
		t.Errorf("Expected Quit to be overridden to 'X', got '%s'", defaults.Universal.Quit)
	}
	if defaults.Snaps.Rescan != "Z" {
		t.Errorf("Expected Snaps.Rescan to be overridden to 'Z', got '%s'", defaults.Snaps.Rescan)
	}

	// Test that non-overridden values remain as defaults
	if defaults.Universal.QuitAlt != "<c-c>" {
		t.Errorf("Expected QuitAlt to remain '<c-c>', got '%s'", defaults.Universal.QuitAlt)
	}
	if defaults.Snaps.OpenStorePage != "w" {
		t.Errorf("Expected Snaps.OpenStorePage to remain 'w', got '%s'", defaults.Snaps.OpenStorePage)
	}
	if defaults.Locales.FilterSnaps != "f" {
		t.Errorf("Expected Locales.FilterSnaps to remain 'f', got '%s'", defaults.Locales.FilterSnaps)
	}
}

func TestKeybindingConfigSpecialKeys(t *testing.T) {
	yamlContent := `
universal:
  quit: '<f1>'
  quitAlt: '<c-c>'
  return: '<esc>'
  scrollUpMain: '<pgup>'
  scrollDownMain: '<pgdown>'
  prevItem: '<up>'
  nextItem: '<down>'
  prevPanel: '<left>'
  nextPanel: '<right>'
  togglePanel: '<tab>'
  enterMain: '<enter>'
`

	var config KeybindingConfig
	err := yaml.Unmarshal([]byte(yamlContent), &config)
	if err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	// Verify special keys are preserved as strings
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"F1", config.Universal.Quit, "<f1>"},
		{"Ctrl-C", config.Universal.QuitAlt, "<c-c>"},
		{"Escape", config.Universal.Return, "<esc>"},
		{"PageUp", config.Universal.ScrollUpMain, "<pgup>"},
		{"PageDown", config.Universal.ScrollDownMain, "<pgdown>"},
		{"Up Arrow", config.Universal.PrevItem, "<up>"},
		{"Down Arrow", config.Universal.NextItem, "<down>"},
		{"Left Arrow", config.Universal.PrevPanel, "<left>"},
		{"Right Arrow", config.Universal.NextPanel, "<right>"},
		{"Tab", config.Universal.TogglePanel, "<tab>"},
		{"Enter", config.Universal.EnterMain, "<enter>"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s: expected '%s', got '%s'", tt.name, tt.expected, tt.got)
		}
	}
}

func TestKeybindingConfigDisabled(t *testing.T) {
	yamlContent := `
universal:
  quit: '<disabled>'
snaps:
  rescan: '<disabled>'
`

	var config KeybindingConfig
	err := yaml.Unmarshal([]byte(yamlContent), &config)
	if err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if config.Universal.Quit != "<disabled>" {
		t.Errorf("Expected Quit to be '<disabled>', got '%s'", config.Universal.Quit)
	}
	if config.Snaps.Rescan != "<disabled>" {
		t.Errorf("Expected Snaps.Rescan to be '<disabled>', got '%s'", config.Snaps.Rescan)
	}
}

func TestKeybindingConfigAllSections(t *testing.T) {
	// Ensure all sections are present in the config struct
	config := GetDefaultKeybindings()

	// This test verifies the struct has all expected sections
	if config.Universal.Quit == "" {
		t.Error("Universal section missing Quit field")
	}
	if config.Status.EditConfig == "" {
		t.Error("Status section missing EditConfig field")
	}
	if config.Snaps.Rescan == "" {
		t.Error("Snaps section missing Rescan field")
	}
	if config.Locales.FilterSnaps == "" {
		t.Error("Locales section missing FilterSnaps field")
	}
	if config.Main.Return == "" {
		t.Error("Main section missing Return field")
	}
	if config.Menu.Close == "" {
		t.Error("Menu section missing Close field")
	}
	if config.Filter.Confirm == "" {
		t.Error("Filter section missing Confirm field")
	}
}
