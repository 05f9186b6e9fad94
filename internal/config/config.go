package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config aggregates the settings shared by the CLI and the GUI server.
type Config struct {
	// DataFile is the registry file every command loads and saves.
	DataFile string

	Server      ServerConfig
	Environment string
}

// ServerConfig describes the GUI HTTP server.
type ServerConfig struct {
	Addr string
}

// Load builds the configuration from environment variables. The data file
// comes from USERBOOK_DATA, falling back to users.json under the per-user
// config directory; a -data flag on the CLI overrides both.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	// An empty DataFile means no default could be resolved; the CLI insists
	// on -data or USERBOOK_DATA in that case.
	dataFile := strings.TrimSpace(os.Getenv("USERBOOK_DATA"))
	if dataFile == "" {
		if dir, dirErr := os.UserConfigDir(); dirErr == nil {
			dataFile = filepath.Join(dir, "userbook", "users.json")
		}
	}

	return &Config{
		DataFile:    dataFile,
		Server:      server,
		Environment: getEnvOrDefault("USERBOOK_ENV", "development"),
	}, nil
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow ":8080" or "127.0.0.1:8080" to be passed directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
