package main

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const clientIdentifier = "wallet-cli"

// Config holds everything the shell needs to start. A config.toml in the
// data directory overrides the defaults; a missing file is not an error.
type Config struct {
	DataDir                string
	LogLevel               string
	LogDays                uint32
	DeviceTimeoutSeconds   uint32
	DeviceLatencyMillis    uint32
	DeviceApprove          bool
	ShutdownTimeoutSeconds uint32
}

func DefaultConfig() Config {
	return Config{
		DataDir:                defaultDataDir(),
		LogLevel:               "info",
		LogDays:                7,
		DeviceTimeoutSeconds:   60,
		DeviceLatencyMillis:    200,
		DeviceApprove:          true,
		ShutdownTimeoutSeconds: 10,
	}
}

func defaultDataDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return ".halowallet"
	}
	return filepath.Join(home, ".halowallet")
}

func makeConfig() Config {
	cfg := DefaultConfig()
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath(cfg.DataDir)
	err := viper.ReadInConfig()
	if err == nil {
		_ = viper.Unmarshal(&cfg)
	}
	return cfg
}
