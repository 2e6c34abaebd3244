package config

import "time"

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() *Config {
	return &Config{
		ServerAddr: ":8080",
		LogLevel:   "info",
		API: APIConfig{
			BaseURL:   "http://127.0.0.1:8000",
			Timeout:   10 * time.Second,
			UserAgent: "vicheka-portfolio/1.0",
		},
		Site: SiteConfig{
			Owner: "NY VICHEKA",
			Title: "NY VICHEKA",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		},
	}
}
