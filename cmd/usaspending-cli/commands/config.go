package commands

import (
	"os"

	"usaspending-client/lib/configutil"
	"usaspending-client/lib/serviceutil"
	"usaspending-client/lib/usaspending"
)

// optional overrides read from a usaspending.json5 found in the
// working directory or any directory above it. Flags still win.
type Config struct {
	BaseUrl  string `json:"base_url"`
	PageSize int    `json:"page_size"`
}

func loadConfig() Config {
	cfg, err := configutil.ReadRecursively[Config]("usaspending.json5")
	if os.IsNotExist(err) {
		return Config{}
	}
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

func newClient() *usaspending.Client {
	return usaspending.NewClient(loadConfig().BaseUrl)
}
