package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		th, err := ThemeByName(name)
		if err != nil {
			t.Fatalf("ThemeByName(%q): %v", name, err)
		}
		if th.Name != name {
			t.Errorf("Name = %q, want %q", th.Name, name)
		}
	}
	if _, err := ThemeByName("neon"); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
}

func TestParseTheme_Overlay(t *testing.T) {
	th, err := ParseTheme(`
extends = "utility"
name = "brand"
card = "brand-card"
`)
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if th.Name != "brand" || th.Card != "brand-card" {
		t.Errorf("overrides not applied: %+v", th)
	}
	if th.Input != UtilityTheme.Input {
		t.Errorf("Input = %q, want inherited %q", th.Input, UtilityTheme.Input)
	}
}

func TestParseTheme_Errors(t *testing.T) {
	if _, err := ParseTheme(`extends = "missing"`); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, got %v", err)
	}
	if _, err := ParseTheme(`card = `); err == nil {
		t.Errorf("expected syntax error")
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(`delete_button = "danger"`), 0o600); err != nil {
		t.Fatal(err)
	}
	th, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if th.DeleteButton != "danger" {
		t.Errorf("DeleteButton = %q", th.DeleteButton)
	}
	if th.Name != "stylesheet-custom" {
		t.Errorf("Name = %q, want stylesheet-custom", th.Name)
	}
	if th.Card != StylesheetTheme.Card {
		t.Errorf("Card not inherited")
	}
}
