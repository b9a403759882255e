package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "key")
	t.Setenv("YOUTUBE_CHANNEL_ID", "chan")

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.ActivityLookbackDays != 365 {
		t.Errorf("ActivityLookbackDays = %d, want 365", cfg.ActivityLookbackDays)
	}
	if cfg.SearchLookbackDays != 730 {
		t.Errorf("SearchLookbackDays = %d, want 730", cfg.SearchLookbackDays)
	}
	if cfg.SearchOverfetch != 2 {
		t.Errorf("SearchOverfetch = %d, want 2", cfg.SearchOverfetch)
	}
	if cfg.ClassifyPlaylistItems {
		t.Error("ClassifyPlaylistItems should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "key")
	t.Setenv("YOUTUBE_CHANNEL_ID", "chan")
	t.Setenv("PORT", "8080")
	t.Setenv("ACTIVITY_LOOKBACK_DAYS", "30")
	t.Setenv("SEARCH_OVERFETCH", "3")
	t.Setenv("CLASSIFY_PLAYLIST_ITEMS", "true")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.ActivityLookbackDays != 30 {
		t.Errorf("ActivityLookbackDays = %d, want 30", cfg.ActivityLookbackDays)
	}
	if cfg.SearchOverfetch != 3 {
		t.Errorf("SearchOverfetch = %d, want 3", cfg.SearchOverfetch)
	}
	if !cfg.ClassifyPlaylistItems {
		t.Error("ClassifyPlaylistItems should be true")
	}
}

func TestLoadIgnoresBadNumbers(t *testing.T) {
	t.Setenv("ACTIVITY_LOOKBACK_DAYS", "soon")

	if cfg := Load(); cfg.ActivityLookbackDays != 365 {
		t.Errorf("ActivityLookbackDays = %d, want default on parse failure", cfg.ActivityLookbackDays)
	}
}

func TestValidateMissingSettings(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("YOUTUBE_CHANNEL_ID", "")

	if err := Load().Validate(); err == nil {
		t.Error("Validate() = nil, want error for missing credentials")
	}
}
