package domain

import (
	"encoding/json"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	defaults := DefaultSettings()

	if defaults.ID != SettingsID {
		t.Errorf("ID = %s, want %s", defaults.ID, SettingsID)
	}
	if defaults.Homepage != "https://www.google.com" {
		t.Errorf("Homepage = %s, want https://www.google.com", defaults.Homepage)
	}
	if defaults.DefaultSearchEngine != "google" {
		t.Errorf("DefaultSearchEngine = %s, want google", defaults.DefaultSearchEngine)
	}
	if defaults.Theme != "light" {
		t.Errorf("Theme = %s, want light", defaults.Theme)
	}
}

func TestSettingsUpdateTriState(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantSet bool
		want    string
	}{
		{
			name:    "absent field is not set",
			payload: `{}`,
			wantSet: false,
		},
		{
			name:    "present value is set",
			payload: `{"theme": "dark"}`,
			wantSet: true,
			want:    "dark",
		},
		{
			name:    "explicit null is set with zero value",
			payload: `{"theme": null}`,
			wantSet: true,
			want:    "",
		},
		{
			name:    "explicit empty string is set",
			payload: `{"theme": ""}`,
			wantSet: true,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var update SettingsUpdate
			if err := json.Unmarshal([]byte(tt.payload), &update); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if update.Theme.Set != tt.wantSet {
				t.Errorf("Theme.Set = %v, want %v", update.Theme.Set, tt.wantSet)
			}
			if update.Theme.Set && update.Theme.Value != tt.want {
				t.Errorf("Theme.Value = %q, want %q", update.Theme.Value, tt.want)
			}
		})
	}
}

func TestSettingsUpdateApplyMergesNotReplaces(t *testing.T) {
	current := DefaultSettings()

	var update SettingsUpdate
	if err := json.Unmarshal([]byte(`{"theme": "dark"}`), &update); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	update.Apply(&current)

	if current.Theme != "dark" {
		t.Errorf("Theme = %s, want dark", current.Theme)
	}
	if current.Homepage != "https://www.google.com" {
		t.Errorf("Apply() touched Homepage = %s, want unchanged", current.Homepage)
	}
	if current.DefaultSearchEngine != "google" {
		t.Errorf("Apply() touched DefaultSearchEngine = %s, want unchanged", current.DefaultSearchEngine)
	}
}

func TestSettingsIgnoresUnknownStoredFields(t *testing.T) {
	stored := `{"id": "default_settings", "homepage": "https://duckduckgo.com", "default_search_engine": "duckduckgo", "theme": "dark", "legacy_toolbar": true}`

	var settings Settings
	if err := json.Unmarshal([]byte(stored), &settings); err != nil {
		t.Fatalf("Unmarshal() with unknown field error = %v", err)
	}
	if settings.Homepage != "https://duckduckgo.com" {
		t.Errorf("Homepage = %s, want https://duckduckgo.com", settings.Homepage)
	}
}
