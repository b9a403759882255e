package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the read-only process configuration, loaded once at startup.
type Config struct {
	APIKey    string
	ChannelID string
	Port      string
	Website   string
	LogDir    string

	OpenBrowser bool

	// Listing heuristics, tunable per deployment.
	ActivityLookbackDays  int
	SearchLookbackDays    int
	SearchOverfetch       int64
	ClassifyPlaylistItems bool
}

// Load reads .env when present, then the environment.
func Load() Config {
	godotenv.Load()

	return Config{
		APIKey:    os.Getenv("YOUTUBE_API_KEY"),
		ChannelID: os.Getenv("YOUTUBE_CHANNEL_ID"),
		Port:      getenv("PORT", "3000"),
		Website:   getenv("WEBSITE", "*"),
		LogDir:    os.Getenv("LOG_DIR"),

		OpenBrowser: getbool("OPEN_BROWSER", false),

		ActivityLookbackDays:  getint("ACTIVITY_LOOKBACK_DAYS", 365),
		SearchLookbackDays:    getint("SEARCH_LOOKBACK_DAYS", 730),
		SearchOverfetch:       int64(getint("SEARCH_OVERFETCH", 2)),
		ClassifyPlaylistItems: getbool("CLASSIFY_PLAYLIST_ITEMS", false),
	}
}

// Validate reports missing required settings.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("YOUTUBE_API_KEY is required")
	}
	if c.ChannelID == "" {
		return fmt.Errorf("YOUTUBE_CHANNEL_ID is required")
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getbool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
