package ui

import (
	"testing"

	"github.com/yildizm/datagov/internal/catalog"
)

func TestSetThemeByName(t *testing.T) {
	defer SetTheme(&DefaultTheme)

	for _, name := range GetAvailableThemes() {
		if !SetThemeByName(name) {
			t.Errorf("SetThemeByName(%q) = false", name)
		}
		if GetTheme().Name != name {
			t.Errorf("active theme = %q, want %q", GetTheme().Name, name)
		}
	}
	if SetThemeByName("neon") {
		t.Error("unknown theme accepted")
	}
}

func TestThemeColors(t *testing.T) {
	theme := DefaultTheme

	if theme.CertificationColor(catalog.CertGold) != theme.Gold {
		t.Error("gold certification should use the gold color")
	}
	if theme.CertificationColor("PLATINUM") != theme.Muted {
		t.Error("unknown certification should be muted")
	}

	statuses := map[string]interface{}{
		"Healthy":       theme.Success,
		"Compliant":     theme.Success,
		"Review Needed": theme.Warning,
		"Critical":      theme.Error,
		"Building":      theme.Info,
		"Whatever":      theme.Secondary,
	}
	for status, want := range statuses {
		if theme.StatusColor(status) != want {
			t.Errorf("StatusColor(%q) mismatch", status)
		}
	}

	if theme.QualityColor(94) != theme.Success || theme.QualityColor(82) != theme.Warning || theme.QualityColor(45) != theme.Error {
		t.Error("quality grading mismatch")
	}
}
