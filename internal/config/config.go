package config

import "os"

type Config struct {
	Addr             string
	LaunchConfigPath string
	LogLevel         string
}

func FromEnv() (*Config, error) {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":1337"
	}

	launchPath := os.Getenv("CURVE_CONFIG_FILE")
	if launchPath == "" {
		return nil, ErrMissingLaunchConfig
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	cfg := &Config{
		Addr:             addr,
		LaunchConfigPath: launchPath,
		LogLevel:         logLevel,
	}

	return cfg, nil
}
