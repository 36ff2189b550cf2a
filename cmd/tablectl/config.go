package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries the connection settings for the table service.
type Config struct {
	Account          string `yaml:"account"`
	Key              string `yaml:"key"`
	ConnectionString string `yaml:"connectionString"`
	Endpoint         string `yaml:"endpoint"`
}

// resolveConfig layers the three setting sources: flags override the config
// file, which overrides the environment. A .env file in the working
// directory feeds the environment when present.
func resolveConfig(path, account, key, conn, endpoint string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Account:          os.Getenv("AZURE_STORAGE_ACCOUNT"),
		Key:              os.Getenv("AZURE_STORAGE_KEY"),
		ConnectionString: os.Getenv("AZURE_STORAGE_CONNECTION_STRING"),
		Endpoint:         os.Getenv("AZURE_TABLES_ENDPOINT"),
	}

	if path != "" {
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = cfg.overlay(fileCfg)
	}

	cfg = cfg.overlay(Config{
		Account:          account,
		Key:              key,
		ConnectionString: conn,
		Endpoint:         endpoint,
	})

	if cfg.ConnectionString == "" && (cfg.Account == "" || cfg.Key == "") {
		return Config{}, fmt.Errorf("no credentials: set -account and -key, -conn, or the AZURE_STORAGE_* environment variables")
	}
	return cfg, nil
}

// overlay returns c with over's non-empty fields taking precedence.
func (c Config) overlay(over Config) Config {
	if over.Account != "" {
		c.Account = over.Account
	}
	if over.Key != "" {
		c.Key = over.Key
	}
	if over.ConnectionString != "" {
		c.ConnectionString = over.ConnectionString
	}
	if over.Endpoint != "" {
		c.Endpoint = over.Endpoint
	}
	return c
}

func loadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
