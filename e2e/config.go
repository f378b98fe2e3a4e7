package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// HUB_URL is the HTTP base of a running hub, the suite is skipped without it
	HubURL     string `envconfig:"HUB_URL"`
	HealthAddr string `envconfig:"HEALTH_ADDR" default:"localhost:9090"`
	// E2E_DEBUG_JSON dumps every HTTP response body
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
