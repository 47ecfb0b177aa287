package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".newslens"

// Environment variables that override config file credentials.
const (
	EnvClientID     = "NEWSLENS_CLIENT_ID"
	EnvClientSecret = "NEWSLENS_CLIENT_SECRET"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Profile holds one set of Naver Open API credentials.
type Profile struct {
	// ClientID is the Naver application client ID.
	ClientID string `yaml:"client_id"`

	// ClientSecret is the Naver application client secret.
	ClientSecret string `yaml:"client_secret"`
}

// File represents the structure of the .newslens configuration file.
type File struct {
	// Profiles maps profile names to API credentials. The "default"
	// profile is used when no --profile flag is given.
	Profiles map[string]Profile `yaml:"profiles,omitempty"`
}

// DefaultProfileName is used when no profile is selected explicitly.
const DefaultProfileName = "default"

// LoadConfigFile loads credential profiles from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if cf.Profiles == nil {
		cf.Profiles = make(map[string]Profile)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .newslens in the current directory
// 3. Look for .newslens in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// ResolveCredentials determines the API credentials to use.
// Environment variables take precedence over the config file so CI and
// one-off runs need no file at all. When the environment is not set, the
// named profile (or "default") is read from the config file found via
// FindConfigFile.
func ResolveCredentials(configPath, profileName string) (Profile, error) {
	// Environment wins
	id, secret := os.Getenv(EnvClientID), os.Getenv(EnvClientSecret)
	if id != "" && secret != "" {
		return Profile{ClientID: id, ClientSecret: secret}, nil
	}

	path := FindConfigFile(configPath)
	if path == "" {
		return Profile{}, ErrNoCredentials
	}

	cf, err := LoadConfigFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	if profileName == "" {
		profileName = DefaultProfileName
	}

	profile, ok := cf.Profiles[profileName]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q in %s", ErrProfileNotFound, profileName, path)
	}
	if profile.ClientID == "" || profile.ClientSecret == "" {
		return Profile{}, ErrNoCredentials
	}

	return profile, nil
}
