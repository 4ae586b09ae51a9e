package commands

import (
	"fmt"
	"lapchart-scraper/internal/extract"
	"lapchart-scraper/internal/fia"
	"lapchart-scraper/internal/pipeline"
	"lapchart-scraper/internal/season"
	"lapchart-scraper/lib/configutil"
	"os"
	"time"
)

type FiaConfig struct {
	BaseUrl   string `json:"base_url"`
	UserAgent string `json:"user_agent"`
	// the defaults are merged over with mergo, which skips false values,
	// so the flag is phrased as an opt out
	DisableCloudflareBypass bool `json:"disable_cloudflare_bypass"`
}

type GeminiConfig struct {
	ApiKey            string `json:"api_key"`
	Model             string `json:"model"`
	RequestsPerMinute int    `json:"requests_per_minute"`
	BaseUrl           string `json:"base_url"`
}

type Config struct {
	Years         []int        `json:"years"`
	OutputDir     string       `json:"output_dir"`
	PauseSeconds  int          `json:"pause_seconds"`
	Validate      bool         `json:"validate"`
	LiveTimingUrl string       `json:"livetiming_url"`
	Fia           FiaConfig    `json:"fia"`
	Gemini        GeminiConfig `json:"gemini"`
}

func (c Config) Pause() time.Duration {
	return time.Duration(c.PauseSeconds) * time.Second
}

func defaultConfig() Config {
	return Config{
		Years:         []int{2021, 2025},
		OutputDir:     ".",
		PauseSeconds:  int(pipeline.DefaultPause / time.Second),
		LiveTimingUrl: season.DefaultLiveTimingURL,
		Fia: FiaConfig{
			BaseUrl:   fia.DefaultBaseURL,
			UserAgent: fia.DefaultUserAgent,
		},
		Gemini: GeminiConfig{
			Model:             extract.DefaultModel,
			RequestsPerMinute: 5,
		},
	}
}

// loadConfig reads the config file on top of the defaults and applies the
// environment and flag overrides.
func loadConfig() (Config, error) {
	cfg, err := configutil.ReadConfigWithDefaults(*configPath, defaultConfig())
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.Gemini.ApiKey = key
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	return cfg, nil
}
