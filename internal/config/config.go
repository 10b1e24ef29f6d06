// Package config loads the aztoken CLI configuration: the helper executable
// to launch and optional identity profiles that pre-fill client, tenant, and
// scopes for a request.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nauticalab/aztoken/internal/command"
)

// DefaultHelper is the executable launched when no override is configured.
// Resolution against PATH is the launcher's concern.
const DefaultHelper = "azureauth"

// Profile is a named identity preset. When Remote is set it also matches
// requests made from inside a git checkout whose origin URL contains the
// Remote substring.
type Profile struct {
	Name   string   `yaml:"name" validate:"required"`
	Remote string   `yaml:"remote,omitempty"`
	Client string   `yaml:"client,omitempty"`
	Tenant string   `yaml:"tenant,omitempty"`
	Scopes []string `yaml:"scopes,omitempty" validate:"omitempty,min=1,dive,required"`
}

// CLIConfig represents the configuration for the CLI
type CLIConfig struct {
	HelperPath string    `yaml:"helperPath,omitempty"`
	Profiles   []Profile `yaml:"profiles,omitempty" validate:"omitempty,dive"`
}

// LoadCLIConfig loads configuration from multiple sources in order of precedence:
// 1. Flags (handled by caller)
// 2. Environment variables (AZTOKEN_HELPER, AZTOKEN_CONFIG)
// 3. Config file (~/.aztoken/config.yaml)
// A missing config file is not an error; the zero config is usable.
func LoadCLIConfig() (*CLIConfig, error) {
	configPath := os.Getenv("AZTOKEN_CONFIG")
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			configPath = filepath.Join(homeDir, ".aztoken", "config.yaml")
		}
	}

	config, err := loadCLIConfigFromPath(configPath)
	if err != nil {
		return nil, err
	}

	// Environment overrides the config file.
	if envHelper := os.Getenv("AZTOKEN_HELPER"); envHelper != "" {
		config.HelperPath = envHelper
	}
	if config.HelperPath == "" {
		config.HelperPath = DefaultHelper
	}

	return config, nil
}

func loadCLIConfigFromPath(configPath string) (*CLIConfig, error) {
	config := &CLIConfig{}

	if configPath == "" {
		return config, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := command.Validate(config); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}

	return config, nil
}

// FindProfile returns the profile with the given name, or nil.
func (c *CLIConfig) FindProfile(name string) *Profile {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i]
		}
	}
	return nil
}

// MatchRemote returns the first profile whose Remote is a substring of any
// of the given remote URLs, or nil. Profiles without a Remote never match.
func (c *CLIConfig) MatchRemote(remoteURLs []string) *Profile {
	for i := range c.Profiles {
		p := &c.Profiles[i]
		if p.Remote == "" {
			continue
		}
		for _, url := range remoteURLs {
			if strings.Contains(url, p.Remote) {
				return p
			}
		}
	}
	return nil
}
